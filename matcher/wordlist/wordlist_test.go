package wordlist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/oasspell/annotate"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/spellerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var words = []string{"user", "name", "names", "get", "pet", "pets", "the", "receive", "deceive", "returns", "Paris"}

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDictionary(t *testing.T) {
	d := NewDictionary(words)
	assert.Equal(t, len(words), d.Len())
	assert.True(t, d.Contains("USER"))
	assert.True(t, d.Contains("paris"))
	assert.False(t, d.Contains("naem"))

	d = NewDictionary([]string{"Pet", "pet", " ", ""})
	assert.Equal(t, 1, d.Len())
}

func TestReadDictionary(t *testing.T) {
	d, err := ReadDictionary(strings.NewReader("# comment\nalpha\n\n  beta  \n#gamma\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("beta"))
	assert.False(t, d.Contains("gamma"))
}

func TestCandidates(t *testing.T) {
	d := NewDictionary(words)

	assert.Equal(t, []string{"name", "names"}, d.Candidates("naem", 2, 10))
	assert.Equal(t, []string{"receive"}, d.Candidates("Recieve", 2, 10))
	assert.Equal(t, []string{"name"}, d.Candidates("naem", 2, 1))
	assert.Empty(t, d.Candidates("xyzzyq", 2, 10))
}

func TestBoundedLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		max  int
		want int
	}{
		{"kitten", "sitting", 3, 3},
		{"kitten", "sitting", 2, 3},
		{"", "abc", 3, 3},
		{"abc", "abc", 2, 0},
		{"naem", "name", 2, 2},
		{"a", "abcd", 2, 3},
		{"café", "cafe", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, boundedLevenshtein([]rune(tt.a), []rune(tt.b), tt.max))
		})
	}
}

func TestCheckIdentifier(t *testing.T) {
	m := NewMatcher(NewDictionary(words))

	in := matcher.IdentifierInput("user_naem")
	matches, err := m.Check(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	got := matches[0]
	assert.Equal(t, 5, got.Start)
	assert.Equal(t, 9, got.End)
	assert.Equal(t, "naem", got.Covered(in.Text()))
	assert.Equal(t, []string{"name", "names"}, got.Replacements)
	assert.Equal(t, RuleID, got.RuleID)
	assert.Equal(t, "TYPOS", got.Category)
}

func TestCheckSkipsAcronymsAndNonWords(t *testing.T) {
	m := NewMatcher(NewDictionary(words))

	for _, id := range []string{"getHTTPPets", "v2", "x", "pet42", "getPets"} {
		matches, err := m.Check(context.Background(), matcher.IdentifierInput(id))
		require.NoError(t, err)
		assert.Empty(t, matches, id)
	}
}

func TestCheckProse(t *testing.T) {
	m := NewMatcher(NewDictionary(words))

	in := matcher.ProseInput(annotate.Annotate("Returns the <code>petz</code> pett"))
	matches, err := m.Check(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "pett", matches[0].Covered(in.Text()))
}

func TestCheckCanceled(t *testing.T) {
	m := NewMatcher(NewDictionary(words))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Check(ctx, matcher.IdentifierInput("petz"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	path := writeDict(t, "user\nname\n")

	m, err := New(matcher.Config{Dictionaries: []string{path}})
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	matches, err := m.Check(context.Background(), matcher.IdentifierInput("userNaem"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, []string{"name"}, matches[0].Replacements)
}

func TestNewErrors(t *testing.T) {
	_, err := New(matcher.Config{Mode: matcher.ModeGrammar, Dictionaries: []string{"unused"}})
	assert.True(t, errors.Is(err, spellerrors.ErrConfig))

	_, err = New(matcher.Config{Dictionaries: []string{filepath.Join(t.TempDir(), "missing.txt")}})
	var cfgErr *spellerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "dictionaries", cfgErr.Option)
	assert.Contains(t, cfgErr.Message, "not found")
}

func TestLoadCaches(t *testing.T) {
	a := writeDict(t, "alpha\n")
	b := writeDict(t, "beta\n")

	d1, err := Load(a, b)
	require.NoError(t, err)
	d2, err := Load(a, b)
	require.NoError(t, err)
	assert.Same(t, d1, d2)
	assert.Equal(t, 2, d1.Len())
}
