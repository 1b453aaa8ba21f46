package config

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasspell/internal/testutil"
	"github.com/erraggy/oasspell/linter"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/spellerrors"
	"github.com/erraggy/oasspell/textindex"
)

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: ".oasspell.yaml",
			content: `engine: wordlist
language: en-GB
ignore: [oasspell]
limit: 2
docstrings: false
workers: 3
dictionaries: [/tmp/words]
maxDepth: 8
`,
		},
		{
			name: "json",
			file: ".oasspell.json",
			content: `{"engine": "wordlist", "language": "en-GB", "ignore": ["oasspell"], "limit": 2,
"docstrings": false, "workers": 3, "dictionaries": ["/tmp/words"], "maxDepth": 8}`,
		},
		{
			name: "toml",
			file: ".oasspell.toml",
			content: `engine = "wordlist"
language = "en-GB"
ignore = ["oasspell"]
limit = 2
docstrings = false
workers = 3
dictionaries = ["/tmp/words"]
maxDepth = 8
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteTemp(t, tt.file, tt.content)
			cfg := linter.DefaultConfig()
			cfg.Ignore = []string{"petstore"}

			require.NoError(t, LoadFile(path, &cfg))
			assert.Equal(t, "wordlist", cfg.Engine)
			assert.Equal(t, "en-GB", cfg.Language)
			assert.Equal(t, []string{"petstore", "oasspell"}, cfg.Ignore, "ignore terms accumulate")
			assert.Equal(t, 2, cfg.Limit)
			assert.False(t, cfg.Docstrings)
			assert.Equal(t, 3, cfg.Workers)
			assert.Equal(t, []string{"/tmp/words"}, cfg.Dictionaries)
			assert.Equal(t, 8, cfg.MaxDepth)
		})
	}
}

func TestLoadFileKeepsUnsetFields(t *testing.T) {
	path := testutil.WriteTemp(t, ".oasspell.yml", "limit: 1\n")
	cfg := linter.DefaultConfig()

	require.NoError(t, LoadFile(path, &cfg))
	assert.Equal(t, 1, cfg.Limit)
	assert.True(t, cfg.Docstrings)
	assert.Equal(t, linter.DefaultConfig().Engine, cfg.Engine)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown yaml key", ".oasspell.yaml", "limt: 2\n"},
		{"unknown toml key", ".oasspell.toml", "limt = 2\n"},
		{"malformed yaml", ".oasspell.yaml", "ignore: [a\n"},
		{"malformed toml", ".oasspell.toml", "ignore = [\n"},
		{"bad mode", ".oasspell.yaml", "mode: style\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteTemp(t, tt.file, tt.content)
			cfg := linter.DefaultConfig()
			cfg.Ignore = []string{"kept"}

			err := LoadFile(path, &cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, spellerrors.ErrConfig)
			assert.Equal(t, []string{"kept"}, cfg.Ignore)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		cfg := linter.DefaultConfig()
		err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), &cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})
}

func TestFind(t *testing.T) {
	path := testutil.WriteTemp(t, ".oasspell.toml", "limit = 1\n")
	dir := filepath.Dir(path)

	found, ok := Find(dir)
	require.True(t, ok)
	assert.Equal(t, path, found)

	_, ok = Find(t.TempDir())
	assert.False(t, ok)
}

func loadDoc(t *testing.T, name, content string) *textindex.Document {
	t.Helper()
	doc, err := textindex.LoadBytes([]byte(content), name)
	require.NoError(t, err)
	return doc
}

func TestApplyEmbedded(t *testing.T) {
	t.Run("openapi extension", func(t *testing.T) {
		doc := loadDoc(t, "petstore.yaml", testutil.PetstoreYAML)
		cfg := linter.DefaultConfig()
		cfg.Ignore = []string{"oasspell"}

		require.NoError(t, ApplyEmbedded(&cfg, doc))
		assert.Equal(t, []string{"oasspell", "petz"}, cfg.Ignore)
	})

	t.Run("smithy validator metadata", func(t *testing.T) {
		doc := loadDoc(t, "weather.json", testutil.WeatherSmithyJSON)
		cfg := linter.DefaultConfig()

		require.NoError(t, ApplyEmbedded(&cfg, doc))
		assert.Equal(t, []string{"forecst"}, cfg.Ignore)
		assert.Equal(t, 2, cfg.Limit)
	})

	t.Run("proofread settings are separate", func(t *testing.T) {
		doc := loadDoc(t, "weather.json", testutil.WeatherSmithyJSON)
		cfg := linter.DefaultConfig()
		cfg.Mode = matcher.ModeGrammar

		require.NoError(t, ApplyEmbedded(&cfg, doc))
		assert.Empty(t, cfg.Ignore)
		assert.Equal(t, 4, cfg.Limit)
	})

	t.Run("mode is not overridden", func(t *testing.T) {
		doc := loadDoc(t, "api.yaml", "openapi: 3.1.0\nx-oasspell:\n  mode: grammar\n  limit: 1\n")
		cfg := linter.DefaultConfig()

		require.NoError(t, ApplyEmbedded(&cfg, doc))
		assert.Equal(t, matcher.ModeSpelling, cfg.Mode)
		assert.Equal(t, 1, cfg.Limit)
	})

	t.Run("invalid settings", func(t *testing.T) {
		doc := loadDoc(t, "api.yaml", "openapi: 3.1.0\nx-oasspell:\n  limit: many\n")
		cfg := linter.DefaultConfig()

		err := ApplyEmbedded(&cfg, doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, spellerrors.ErrConfig)
		assert.Contains(t, err.Error(), "line 3")
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvEngine, "WordList")
	t.Setenv(EnvLanguage, "de")
	t.Setenv(EnvIgnore, "foo, bar,,")
	t.Setenv(EnvLimit, "2")
	t.Setenv(EnvDocstrings, "false")
	t.Setenv(EnvWorkers, "0")
	t.Setenv(EnvEndpoint, "http://lt:8010")
	t.Setenv(EnvDictionaries, "/a"+string(filepath.ListSeparator)+"/b")
	t.Setenv(EnvMaxDepth, "5")

	cfg := linter.DefaultConfig()
	cfg.Ignore = []string{"baz"}
	ApplyEnv(&cfg)

	assert.Equal(t, "wordlist", cfg.Engine)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, []string{"baz", "foo", "bar"}, cfg.Ignore)
	assert.Equal(t, 2, cfg.Limit)
	assert.False(t, cfg.Docstrings)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "http://lt:8010", cfg.Endpoint)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Dictionaries)
	assert.Equal(t, 5, cfg.MaxDepth)
}

func TestApplyEnvInvalidValues(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv(EnvLanguage, "not a tag!")
	t.Setenv(EnvLimit, "0")
	t.Setenv(EnvDocstrings, "maybe")
	t.Setenv(EnvWorkers, "-2")

	cfg := linter.DefaultConfig()
	ApplyEnv(&cfg)

	assert.Equal(t, linter.DefaultConfig(), cfg, "invalid values leave defaults unchanged")
	assert.Contains(t, buf.String(), "key="+EnvLanguage)
	assert.Contains(t, buf.String(), "key="+EnvLimit)
	assert.Contains(t, buf.String(), "key="+EnvDocstrings)
	assert.Contains(t, buf.String(), "key="+EnvWorkers)
}

func TestResolve(t *testing.T) {
	path := testutil.WriteTemp(t, ".oasspell.yaml", "limit: 3\nignore: [fromfile]\n")
	doc := loadDoc(t, "weather.json", testutil.WeatherSmithyJSON)
	t.Setenv(EnvIgnore, "fromenv")

	cfg, err := Resolve(path, doc, matcher.ModeSpelling)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Limit, "embedded settings override the file")
	assert.Equal(t, []string{"fromfile", "forecst", "fromenv"}, cfg.Ignore)

	t.Setenv(EnvLimit, "1")
	cfg, err = Resolve("", nil, matcher.ModeGrammar)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Limit, "the environment overrides everything")
	assert.Equal(t, matcher.ModeGrammar, cfg.Mode)
}
