package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"animales", "frutas", "paises", "profesiones"}, c.Categories())
	assert.Contains(t, c.Words("paises"), "ESPAÑA")
	for cat, n := range c.Stats() {
		assert.Equal(t, 6, n, cat)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Fruits: [grape, ' kiwi ']\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fruits"}, c.Categories())
	assert.Equal(t, []string{"GRAPE", "KIWI"}, c.Words("fruits"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string][]string
	}{
		{"no categories", map[string][]string{}},
		{"empty category", map[string][]string{"animals": {}}},
		{"empty word", map[string][]string{"animals": {"CAT", "  "}}},
		{"digits", map[string][]string{"animals": {"C4T"}}},
		{"spaces inside", map[string][]string{"animals": {"ICE CREAM"}}},
		{"blank category", map[string][]string{" ": {"CAT"}}},
		{"duplicate after folding", map[string][]string{"Animals": {"CAT"}, "animals": {"DOG"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.raw)
			assert.Error(t, err)
		})
	}
}

func TestEmptyCorpusSentinel(t *testing.T) {
	_, err := Parse([]byte("{}"))
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestNormalizeWordComposes(t *testing.T) {
	// "n" + combining tilde composes into a single Ñ.
	assert.Equal(t, "ESPAÑA", NormalizeWord(" espan\u0303a "))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Animales", DisplayName("animales"))
	assert.Equal(t, "ÑANDUES", DisplayName("ñANDUES"))
	assert.Equal(t, "", DisplayName(""))
}

func TestWordsReturnsCopy(t *testing.T) {
	c, err := New(map[string][]string{"fruits": {"GRAPE"}})
	require.NoError(t, err)

	list := c.Words("fruits")
	list[0] = "MUTATED"
	assert.Equal(t, []string{"GRAPE"}, c.Words("fruits"))
	assert.Nil(t, c.Words("missing"))
}

func TestCategoryKeysFoldedWithLocaleCasing(t *testing.T) {
	c, err := New(map[string][]string{" PAÍSES ": {"CHILE"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"países"}, c.Categories())
	assert.Equal(t, "Países", DisplayName(c.Categories()[0]))
}
