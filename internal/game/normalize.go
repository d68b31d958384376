package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize turns raw player input into a guessable letter.
// Whitespace is trimmed, the text is NFC-composed and uppercased; the result
// is valid only if exactly one Unicode letter remains (" a " → 'A', "ñ" → 'Ñ').
func Normalize(raw string) (rune, bool) {
	s := norm.NFC.String(strings.TrimSpace(raw))
	s = cases.Upper(language.Und).String(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return r, true
}
