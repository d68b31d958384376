package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want rune
		ok   bool
	}{
		{" a ", 'A', true},
		{"Z", 'Z', true},
		{"\tq\n", 'Q', true},
		{"ñ", 'Ñ', true},
		{"n\u0303", 'Ñ', true},
		{"é", 'É', true},
		{"AB", 0, false},
		{"a b", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"7", 0, false},
		{"-", 0, false},
		{"ß", 0, false}, // uppercases to "SS"
	}
	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
