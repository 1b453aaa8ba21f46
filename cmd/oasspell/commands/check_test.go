package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasspell/internal/config"
	"github.com/erraggy/oasspell/internal/testutil"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/matcher/builtin"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

var petstoreTypos = map[string][]string{
	"sampel": {"sample"},
	"naem":   {"name"},
	"Naem":   {"name", "Name", "named"},
	"Petz":   {"pets"},
	"sise":   {"size"},
}

// setupCheck isolates a check run: it swaps in a static registry, moves to
// an empty working directory, clears OASSPELL_* settings, and disables
// color. It returns the path of a petstore model.
func setupCheck(t *testing.T) string {
	t.Helper()
	for _, key := range config.EnvVars {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())

	orig := newRegistry
	newRegistry = func() *matcher.Registry { return testutil.Typos(petstoreTypos) }
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		newRegistry = orig
		color.NoColor = noColor
	})
	return testutil.WriteTemp(t, "petstore.yaml", testutil.PetstoreYAML)
}

func TestSetupCheckFlags(t *testing.T) {
	fs, flags := SetupCheckFlags(matcher.ModeSpelling)
	assert.Equal(t, "check", fs.Name())
	assert.Equal(t, FormatText, flags.Format)
	assert.NotNil(t, fs.Lookup("no-docstrings"))

	require.NoError(t, fs.Parse([]string{
		"--engine", "wordlist", "--dict", "a.txt", "--dict", "b.txt",
		"--ignore", "petz,oauth", "--limit", "2", "-q", "--format", "json", "model.json",
	}))
	assert.Equal(t, "wordlist", flags.Engine)
	assert.Equal(t, stringList{"a.txt", "b.txt"}, flags.Dictionaries)
	assert.Equal(t, stringList{"petz", "oauth"}, flags.Ignore)
	assert.Equal(t, 2, flags.Limit)
	assert.True(t, flags.Quiet)
	assert.Equal(t, FormatJSON, flags.Format)
	assert.Equal(t, []string{"model.json"}, fs.Args())

	fs, _ = SetupCheckFlags(matcher.ModeGrammar)
	assert.Equal(t, "proofread", fs.Name())
	assert.Nil(t, fs.Lookup("no-docstrings"), "proofread always checks documentation")
}

func TestHandleCheck_Errors(t *testing.T) {
	path := setupCheck(t)
	captureOutput(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", nil, "requires exactly one file path"},
		{"two args", []string{path, path}, "requires exactly one file path"},
		{"invalid format", []string{"--format", "xml", path}, "invalid format"},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.yaml")}, "loading"},
		{"unknown engine", []string{"--engine", "nope", path}, "nope"},
		{"bad config", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), path}, "missing.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleCheck(context.Background(), tt.args)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrIssuesFound)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHandleCheck_Help(t *testing.T) {
	setupCheck(t)
	captureOutput(t)
	assert.NoError(t, HandleCheck(context.Background(), []string{"--help"}))
}

func TestHandleCheck_Text(t *testing.T) {
	path := setupCheck(t)
	out, _ := captureOutput(t)

	err := HandleCheck(context.Background(), []string{"--engine", testutil.StaticEngine, path})
	require.ErrorIs(t, err, ErrIssuesFound)

	text := out.String()
	assert.Contains(t, text, "openapi model, 12 texts checked (static)")
	assert.Contains(t, text, path+":4:16 [SpellCheck.Trait.description]")
	assert.Contains(t, text, "    A sampel API for <code>petz</code> owners.\n      ^^^^^^\n")
	assert.Contains(t, text, "[SpellCheck.Shape]")
	assert.Contains(t, text, "4 issues, 0 failures in ")
}

func TestHandleCheck_JSON(t *testing.T) {
	path := setupCheck(t)
	out, _ := captureOutput(t)

	err := HandleCheck(context.Background(), []string{
		"--engine", testutil.StaticEngine, "--ignore", "sise,naem", "--format", "json", path,
	})
	require.ErrorIs(t, err, ErrIssuesFound)

	var result struct {
		Engine     string `json:"engine"`
		Mode       string `json:"mode"`
		IssueCount int    `json:"issueCount"`
		Issues     []struct {
			ID          string   `json:"id"`
			Severity    string   `json:"severity"`
			Suggestions []string `json:"suggestions"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, testutil.StaticEngine, result.Engine)
	assert.Equal(t, "spelling", result.Mode)
	assert.Equal(t, 1, result.IssueCount)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "SpellCheck.Trait.description", result.Issues[0].ID)
	assert.Equal(t, "danger", result.Issues[0].Severity)
}

func TestHandleCheck_Clean(t *testing.T) {
	path := setupCheck(t)
	out, _ := captureOutput(t)

	err := HandleCheck(context.Background(), []string{
		"--engine", testutil.StaticEngine, "--ignore", "sampel,sise,naem", path,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "0 issues, 0 failures")
}

func TestHandleCheck_Quiet(t *testing.T) {
	path := setupCheck(t)
	out, _ := captureOutput(t)

	err := HandleCheck(context.Background(), []string{"--engine", testutil.StaticEngine, "-q", path})
	assert.ErrorIs(t, err, ErrIssuesFound)
	assert.Empty(t, out.String())
}

func TestHandleCheck_NoDocstrings(t *testing.T) {
	path := setupCheck(t)
	out, _ := captureOutput(t)

	err := HandleCheck(context.Background(), []string{
		"--engine", testutil.StaticEngine, "--no-docstrings", "--format", "yaml", path,
	})
	require.ErrorIs(t, err, ErrIssuesFound)

	var result struct {
		IssueCount int `yaml:"issueCount"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &result))
	// page_sise and petNaem.
	assert.Equal(t, 2, result.IssueCount)
}

func TestHandleCheck_Stdin(t *testing.T) {
	setupCheck(t)
	out, _ := captureOutput(t)

	f, err := os.Open(testutil.WriteTemp(t, "petstore.yaml", testutil.PetstoreYAML))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// Load reads os.Stdin directly for "-".
	origStdin := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = origStdin })

	err = HandleCheck(context.Background(), []string{"--engine", testutil.StaticEngine, StdinFilePath})
	require.ErrorIs(t, err, ErrIssuesFound)
	assert.Contains(t, out.String(), "<stdin>: openapi model")
}

func TestHandleCheck_ReportFile(t *testing.T) {
	path := setupCheck(t)
	out, _ := captureOutput(t)
	color.NoColor = false

	report := filepath.Join(t.TempDir(), "report.txt")
	err := HandleCheck(context.Background(), []string{"--engine", testutil.StaticEngine, "-o", report, path})
	require.ErrorIs(t, err, ErrIssuesFound)
	assert.Empty(t, out.String())

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "4 issues")
	assert.NotContains(t, string(data), "\x1b[", "report files are never colored")
	assert.False(t, color.NoColor, "color setting is restored")
}

func TestHandleCheck_ConfigFile(t *testing.T) {
	path := setupCheck(t)
	out, _ := captureOutput(t)

	require.NoError(t, os.WriteFile(".oasspell.yaml", []byte("engine: static\nignore: [naem, sise]\n"), 0o600))

	err := HandleCheck(context.Background(), []string{"--format", "json", path})
	require.ErrorIs(t, err, ErrIssuesFound)

	var result struct {
		IssueCount int `json:"issueCount"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 1, result.IssueCount)
}

func TestHandleCheck_WordlistEngine(t *testing.T) {
	path := setupCheck(t)
	newRegistry = builtin.Registry
	out, _ := captureOutput(t)

	dict := testutil.WriteDictionary(t,
		"a", "api", "for", "owners", "petstore", "everything", "about", "your", "pets",
		"list", "all", "page", "size", "how", "many", "items", "to", "return",
		"paged", "array", "of", "pet", "name", "the", "sample",
	)
	err := HandleCheck(context.Background(), []string{
		"--engine", "wordlist", "--dict", dict, "--format", "json", path,
	})
	require.ErrorIs(t, err, ErrIssuesFound)

	var result struct {
		Engine     string `json:"engine"`
		IssueCount int    `json:"issueCount"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "wordlist", result.Engine)
	assert.Equal(t, 4, result.IssueCount)
}

func TestHandleProofread(t *testing.T) {
	setupCheck(t)
	out, _ := captureOutput(t)

	reg, _ := testutil.StaticRegistry(func(matcher.Config) *testutil.StaticMatcher {
		return &testutil.StaticMatcher{Phrases: []testutil.Phrase{{
			Text:    "How many items",
			Message: "Consider a shorter phrase.",
			RuleID:  "WORDINESS",
		}}}
	})
	newRegistry = func() *matcher.Registry { return reg }

	path := testutil.WriteTemp(t, "petstore.yaml", testutil.PetstoreYAML)
	err := HandleProofread(context.Background(), []string{"--engine", testutil.StaticEngine, path})
	require.ErrorIs(t, err, ErrIssuesFound)
	assert.Contains(t, out.String(), "[Proofread.WORDINESS]")
	assert.Contains(t, out.String(), "Consider a shorter phrase.")
	assert.Contains(t, out.String(), "1 issue, 0 failures")
}
