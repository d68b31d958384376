// apps/go-server/internal/words/words.go
//
// Provides the word corpus for the game engine.
//
// Responsibilities:
//   - Load the category → words mapping from a YAML file or fall back to the embedded default.
//   - Normalize every entry (trim, NFC, uppercase) and validate it.
//   - Supply read-only queries: Categories, Words, Stats, DisplayName.
//
// Corpus format (YAML):
//   animales: [ELEFANTE, JIRAFA]
//   paises:   [ESPAÑA, CHILE]
//
// Constraints:
//   • At least one category, every category with at least one word.
//   • Words consist only of Unicode letters (locale letters such as Ñ are fine).
//   • Categories are lowercase identifiers.
//
// A Corpus is immutable once loaded and safe to share between engines.

package words

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/hangman/apps/go-server/assets"
)

// ErrEmptyCorpus is returned when a corpus has no categories.
var ErrEmptyCorpus = errors.New("words: corpus is empty")

// Corpus maps category identifiers to their candidate secret words.
type Corpus struct {
	categories []string            // sorted category identifiers
	words      map[string][]string // category → normalized words, file order
}

// Load reads the corpus from path, or from the embedded default when path is empty.
func Load(path string) (*Corpus, error) {
	data := assets.DefaultCorpus
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("words: read %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a YAML corpus, normalizes its entries and validates the result.
func Parse(data []byte) (*Corpus, error) {
	raw := map[string][]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("words: decode corpus: %w", err)
	}
	return New(raw)
}

// New builds a validated Corpus from an in-memory mapping.
func New(raw map[string][]string) (*Corpus, error) {
	c := &Corpus{words: make(map[string][]string, len(raw))}
	for cat, list := range raw {
		key := cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(cat)))
		if key == "" {
			return nil, errors.New("words: empty category name")
		}
		if _, dup := c.words[key]; dup {
			return nil, fmt.Errorf("words: duplicate category %q", key)
		}
		out := make([]string, 0, len(list))
		for _, w := range list {
			out = append(out, NormalizeWord(w))
		}
		c.words[key] = out
		c.categories = append(c.categories, key)
	}
	sort.Strings(c.categories)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NormalizeWord trims, NFC-composes and uppercases w.
func NormalizeWord(w string) string {
	w = norm.NFC.String(strings.TrimSpace(w))
	return cases.Upper(language.Und).String(w)
}

// Validate checks the corpus preconditions the engine relies on.
func (c *Corpus) Validate() error {
	if c == nil || len(c.categories) == 0 {
		return ErrEmptyCorpus
	}
	for _, cat := range c.categories {
		list := c.words[cat]
		if len(list) == 0 {
			return fmt.Errorf("words: category %q has no words", cat)
		}
		for _, w := range list {
			if w == "" {
				return fmt.Errorf("words: category %q contains an empty word", cat)
			}
			if !isLetters(w) {
				return fmt.Errorf("words: category %q: %q is not alphabetic", cat, w)
			}
		}
	}
	return nil
}

// isLetters reports whether s is made only of Unicode letters.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Categories returns the category identifiers in sorted order.
func (c *Corpus) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Words returns the words of category, or nil if it does not exist.
func (c *Corpus) Words(category string) []string {
	list, ok := c.words[category]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// Stats returns the number of words per category.
func (c *Corpus) Stats() map[string]int {
	out := make(map[string]int, len(c.categories))
	for _, cat := range c.categories {
		out[cat] = len(c.words[cat])
	}
	return out
}

// DisplayName capitalizes the first character of a category identifier,
// leaving the rest untouched ("paises" → "Paises").
func DisplayName(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return cases.Upper(language.Und).String(string(r)) + category[size:]
}
