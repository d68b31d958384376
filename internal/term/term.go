// Package term is the terminal presentation of a hangman game: it parses
// typed lines into commands and renders engine state as text.
package term

import (
	"fmt"
	"strings"

	"github.com/robalobadob/hangman/apps/go-server/internal/game"
)

// Kind identifies a parsed command.
type Kind int

const (
	CmdGuess Kind = iota
	CmdHint
	CmdNew
	CmdQuit
	CmdHelp
)

// Command is one parsed input line.
type Command struct {
	Kind Kind
	Arg  string // raw guess text for CmdGuess
}

// Parse maps a line to a command. Anything that is not a keyword is a guess;
// the engine decides whether it is valid.
func Parse(line string) Command {
	trimmed := strings.TrimSpace(line)
	switch strings.ToLower(trimmed) {
	case ":hint", "hint", "?":
		return Command{Kind: CmdHint}
	case ":new", "new", "reset":
		return Command{Kind: CmdNew}
	case ":quit", "quit", "exit":
		return Command{Kind: CmdQuit}
	case ":help", "help":
		return Command{Kind: CmdHelp}
	}
	return Command{Kind: CmdGuess, Arg: line}
}

// Help lists the available commands.
const Help = `Type a letter and press Enter to guess.
  hint   suggest a letter (after your first guess)
  new    start a new word
  quit   leave the game`

// Render draws the board: category, spaced mask, attempts and used letters.
func Render(s game.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", s.CategoryName)
	fmt.Fprintf(&b, "  %s\n", strings.Join(s.Mask, " "))
	fmt.Fprintf(&b, "Attempts left: %d/%d\n", s.AttemptsRemaining, s.MaxAttempts)
	used := "-"
	if len(s.UsedLetters) > 0 {
		used = strings.Join(s.UsedLetters, ", ")
	}
	fmt.Fprintf(&b, "Used letters: %s", used)
	return b.String()
}

// DescribeGuess turns a guess result into the message shown to the player.
func DescribeGuess(r game.GuessResult) string {
	switch r.Status {
	case game.StatusWon:
		if r.Outcome == game.OutcomeCorrect {
			return fmt.Sprintf("Congratulations! You guessed the word: %s", r.Game.Word)
		}
	case game.StatusLost:
		if r.Outcome == game.OutcomeIncorrect {
			return fmt.Sprintf("Game over! The word was: %s", r.Game.Word)
		}
	}
	switch r.Outcome {
	case game.OutcomeCorrect:
		return "Correct! The letter is in the word."
	case game.OutcomeIncorrect:
		return "Wrong letter."
	case game.OutcomeInvalidInput:
		return "Please enter a single letter."
	case game.OutcomeLetterAlreadyUsed:
		return "You already used that letter."
	case game.OutcomeGameAlreadyOver:
		return "The game is over. Type 'new' to play again."
	}
	return string(r.Outcome)
}

// DescribeHint turns a hint result into the message shown to the player.
func DescribeHint(r game.HintResult) string {
	switch r.Outcome {
	case game.HintSuggestion:
		return fmt.Sprintf("Hint: try the letter %q", r.Letter)
	case game.HintAlmostThere:
		return "You're almost there! Keep going."
	case game.HintNoHintAvailable:
		return "Make a guess first, then ask for a hint."
	case game.HintGameAlreadyOver:
		return "The game is over. Type 'new' to play again."
	}
	return string(r.Outcome)
}
