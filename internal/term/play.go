package term

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/robalobadob/hangman/apps/go-server/internal/game"
)

// LineReader is the part of *readline.Instance the game loop needs.
type LineReader interface {
	Readline() (string, error)
}

// Play runs the command loop until the player quits, the input ends, or
// reading fails. Ctrl-C on an empty line quits; with text typed it only
// discards the line.
func Play(in LineReader, out io.Writer, e *game.Engine) error {
	show(out, "Guess the word! Start with a letter.", e.Snapshot())
	for {
		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		cmd := Parse(line)
		switch cmd.Kind {
		case CmdQuit:
			return nil
		case CmdHelp:
			fmt.Fprintln(out, Help)
		case CmdNew:
			show(out, "New word! Start with a letter.", e.StartNewGame())
		case CmdHint:
			fmt.Fprintln(out, DescribeHint(e.Hint()))
		case CmdGuess:
			res := e.GuessLetter(cmd.Arg)
			show(out, DescribeGuess(res), res.Game)
			if res.Status.Over() && (res.Outcome == game.OutcomeCorrect || res.Outcome == game.OutcomeIncorrect) {
				fmt.Fprintln(out, "Type 'new' to play again or 'quit' to leave.")
			}
		}
	}
}

func show(w io.Writer, msg string, s game.Snapshot) {
	fmt.Fprintf(w, "\n%s\n%s\n", Render(s), msg)
}
