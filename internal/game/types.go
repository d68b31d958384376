// apps/go-server/internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Status: session lifecycle (in_progress → won/lost).
//   - Outcome / HintOutcome: structured results of guesses and hint requests.
//   - Snapshot: read-only view handed to presentation adapters.
//   - GuessResult / HintResult: operation results carrying a fresh snapshot.

package game

import (
	"errors"
	"strings"
)

// MaxAttempts is the number of incorrect guesses allowed before a loss.
const MaxAttempts = 6

// Blank marks an unrevealed position in the reveal mask.
const Blank = '_'

// Status is the lifecycle state of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Over reports whether the status is terminal.
func (s Status) Over() bool { return s == StatusWon || s == StatusLost }

// Outcome is the result kind of a GuessLetter call.
type Outcome string

const (
	OutcomeCorrect           Outcome = "correct"
	OutcomeIncorrect         Outcome = "incorrect"
	OutcomeInvalidInput      Outcome = "invalid_input"
	OutcomeLetterAlreadyUsed Outcome = "letter_already_used"
	OutcomeGameAlreadyOver   Outcome = "game_already_over"
)

// HintOutcome is the result kind of a Hint call.
type HintOutcome string

const (
	HintSuggestion      HintOutcome = "suggestion"
	HintAlmostThere     HintOutcome = "almost_there"
	HintNoHintAvailable HintOutcome = "no_hint_available"
	HintGameAlreadyOver HintOutcome = "game_already_over"
)

// Rejection errors. None of them is fatal and none alters session state.
var (
	ErrInvalidInput      = errors.New("input must be a single letter")
	ErrLetterAlreadyUsed = errors.New("letter already used")
	ErrGameAlreadyOver   = errors.New("game already over")
	ErrNoHintAvailable   = errors.New("no hint before the first guess")
)

// Err maps a rejected outcome to its sentinel error; accepted outcomes map to nil.
func (o Outcome) Err() error {
	switch o {
	case OutcomeInvalidInput:
		return ErrInvalidInput
	case OutcomeLetterAlreadyUsed:
		return ErrLetterAlreadyUsed
	case OutcomeGameAlreadyOver:
		return ErrGameAlreadyOver
	}
	return nil
}

// Err maps a hint outcome to its sentinel error; suggestions and
// encouragement map to nil.
func (o HintOutcome) Err() error {
	switch o {
	case HintNoHintAvailable:
		return ErrNoHintAvailable
	case HintGameAlreadyOver:
		return ErrGameAlreadyOver
	}
	return nil
}

// Snapshot is a read-only copy of the session.
type Snapshot struct {
	Category          string   `json:"category"`
	CategoryName      string   `json:"categoryName"`
	Mask              []string `json:"mask"`        // one entry per position, "_" if hidden
	UsedLetters       []string `json:"usedLetters"` // in the order they were guessed
	AttemptsRemaining int      `json:"attemptsRemaining"`
	MaxAttempts       int      `json:"maxAttempts"`
	Status            Status   `json:"status"`
	Word              string   `json:"word,omitempty"` // only set once the game is over
}

// MaskString joins the mask into a single string ("G____").
func (s Snapshot) MaskString() string {
	return strings.Join(s.Mask, "")
}

// GuessResult is returned by GuessLetter.
type GuessResult struct {
	Outcome Outcome  `json:"outcome"`
	Letter  string   `json:"letter,omitempty"` // normalized letter, empty on invalid input
	Status  Status   `json:"status"`
	Game    Snapshot `json:"game"`
}

// HintResult is returned by Hint.
type HintResult struct {
	Outcome HintOutcome `json:"outcome"`
	Letter  string      `json:"letter,omitempty"` // set only for HintSuggestion
}
