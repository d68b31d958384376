// apps/go-server/internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Start games by drawing a category, then a word within it, uniformly at random.
//   - Validate and apply letter guesses (normalization, duplicates, game over).
//   - Reveal every occurrence of a correct letter; charge an attempt otherwise.
//   - Track state transitions: in_progress → won/lost (win checked first).
//   - Suggest an untried letter as a hint without touching the session.
//
// Notes:
//   - The engine is not safe for concurrent use; adapters serialize calls.
//   - Randomness comes from an injected Source so tests can pin outcomes.
//   - Rejected input never changes state; it is reported as an Outcome.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/samber/lo"

	"github.com/robalobadob/hangman/apps/go-server/internal/words"
)

// Engine owns exactly one active session.
type Engine struct {
	ID     string
	corpus *words.Corpus
	rnd    Source
	sess   session
}

// session is replaced wholesale by StartNewGame.
type session struct {
	category  string
	word      []rune
	mask      []rune
	used      map[rune]struct{}
	usedOrder []rune
	attempts  int
	status    Status
}

// New constructs an engine over a validated corpus and starts the first game.
// A nil src selects a crypto-seeded Source.
func New(corpus *words.Corpus, src Source) (*Engine, error) {
	if corpus == nil {
		return nil, errors.New("game: nil corpus")
	}
	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource(0)
	}
	e := &Engine{ID: randomID(), corpus: corpus, rnd: src}
	e.StartNewGame()
	return e, nil
}

// StartNewGame discards the current session and draws a fresh secret word.
func (e *Engine) StartNewGame() Snapshot {
	cats := e.corpus.Categories()
	cat := cats[e.rnd.Intn(len(cats))]
	list := e.corpus.Words(cat)
	word := []rune(list[e.rnd.Intn(len(list))])

	mask := make([]rune, len(word))
	for i := range mask {
		mask[i] = Blank
	}
	e.sess = session{
		category: cat,
		word:     word,
		mask:     mask,
		used:     make(map[rune]struct{}),
		attempts: MaxAttempts,
		status:   StatusInProgress,
	}
	return e.Snapshot()
}

// GuessLetter validates and applies a single-letter guess.
//
// Validation order:
//   - game must still be in progress;
//   - input must normalize to exactly one letter;
//   - letter must not have been used before.
func (e *Engine) GuessLetter(input string) GuessResult {
	s := &e.sess
	if s.status.Over() {
		return e.result(OutcomeGameAlreadyOver, "")
	}
	letter, ok := Normalize(input)
	if !ok {
		return e.result(OutcomeInvalidInput, "")
	}
	if _, dup := s.used[letter]; dup {
		return e.result(OutcomeLetterAlreadyUsed, string(letter))
	}

	s.used[letter] = struct{}{}
	s.usedOrder = append(s.usedOrder, letter)

	outcome := OutcomeIncorrect
	for i, r := range s.word {
		if r == letter {
			s.mask[i] = letter
			outcome = OutcomeCorrect
		}
	}
	if outcome == OutcomeIncorrect {
		s.attempts--
	}
	s.status = s.evaluate()
	return e.result(outcome, string(letter))
}

// evaluate derives the status after a mutation; a full reveal wins even if
// no attempts are left.
func (s *session) evaluate() Status {
	if string(s.mask) == string(s.word) {
		return StatusWon
	}
	if s.attempts <= 0 {
		return StatusLost
	}
	return StatusInProgress
}

// Hint suggests one letter hidden in the word and not yet tried.
// Hints are only offered after the first guess; they never consume an
// attempt, mark a letter used, or reveal anything.
func (e *Engine) Hint() HintResult {
	s := &e.sess
	if s.status.Over() {
		return HintResult{Outcome: HintGameAlreadyOver}
	}
	if len(s.usedOrder) == 0 {
		return HintResult{Outcome: HintNoHintAvailable}
	}

	hidden := lo.Filter(s.word, func(r rune, i int) bool {
		_, tried := s.used[r]
		return s.mask[i] == Blank && !tried
	})
	candidates := lo.Uniq(hidden)
	if len(candidates) == 0 {
		return HintResult{Outcome: HintAlmostThere}
	}
	pick := candidates[e.rnd.Intn(len(candidates))]
	return HintResult{Outcome: HintSuggestion, Letter: string(pick)}
}

// Snapshot returns a read-only copy of the session.
func (e *Engine) Snapshot() Snapshot {
	s := &e.sess
	snap := Snapshot{
		Category:          s.category,
		CategoryName:      words.DisplayName(s.category),
		Mask:              lo.Map(s.mask, func(r rune, _ int) string { return string(r) }),
		UsedLetters:       lo.Map(s.usedOrder, func(r rune, _ int) string { return string(r) }),
		AttemptsRemaining: s.attempts,
		MaxAttempts:       MaxAttempts,
		Status:            s.status,
	}
	if s.status.Over() {
		snap.Word = string(s.word)
	}
	return snap
}

// Status reports the current session status.
func (e *Engine) Status() Status { return e.sess.status }

func (e *Engine) result(o Outcome, letter string) GuessResult {
	return GuessResult{Outcome: o, Letter: letter, Status: e.sess.status, Game: e.Snapshot()}
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
