package linter

import (
	"runtime"

	"github.com/erraggy/oasspell/annotate"
	"github.com/erraggy/oasspell/internal/stringutil"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/matcher/builtin"
	"github.com/erraggy/oasspell/spellerrors"
	"github.com/erraggy/oasspell/suggest"
)

// maxDefaultWorkers caps the default worker count. Remote engines gain little
// from more parallel requests against a single server.
const maxDefaultWorkers = 8

// Config holds the settings of a lint run. A Config is a plain value; build
// it once and pass it to New.
type Config struct {
	// Engine names the matcher engine in the registry.
	Engine string `json:"engine,omitempty" yaml:"engine,omitempty" toml:"engine,omitempty"`
	// Language is a BCP 47 tag. Empty means English.
	Language string `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`
	// Mode selects spell checking or proofreading.
	Mode matcher.Mode `json:"mode" yaml:"mode" toml:"mode"`
	// Ignore lists words that are never reported.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	// Limit is the maximum number of suggestions per issue.
	Limit int `json:"limit" yaml:"limit" toml:"limit"`
	// Docstrings enables spell checking of documentation text.
	Docstrings bool `json:"docstrings" yaml:"docstrings" toml:"docstrings"`
	// Workers is the number of concurrent matchers. 0 means
	// runtime.GOMAXPROCS(0), capped at 8.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty" toml:"workers,omitempty"`
	// Endpoint is the base URL of a remote engine.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" toml:"endpoint,omitempty"`
	// Dictionaries are word list files for local engines.
	Dictionaries []string `json:"dictionaries,omitempty" yaml:"dictionaries,omitempty" toml:"dictionaries,omitempty"`
	// MaxDepth bounds nesting of allowed markup tags in documentation.
	MaxDepth int `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty" toml:"maxDepth,omitempty"`
}

// DefaultConfig returns the default settings: spell checking in English with
// the default engine, four suggestions, and documentation included.
func DefaultConfig() Config {
	return Config{
		Engine:     builtin.DefaultEngine,
		Language:   "en",
		Mode:       matcher.ModeSpelling,
		Limit:      suggest.DefaultLimit,
		Docstrings: true,
		MaxDepth:   annotate.DefaultMaxDepth,
	}
}

// Validate reports the first invalid setting as a *spellerrors.ConfigError.
func (c Config) Validate() error {
	if c.Engine == "" {
		return &spellerrors.ConfigError{Option: "engine", Message: "must not be empty"}
	}
	if _, err := c.MatcherConfig().Tag(); err != nil {
		return &spellerrors.ConfigError{Option: "language", Value: c.Language, Cause: err}
	}
	if c.Mode != matcher.ModeSpelling && c.Mode != matcher.ModeGrammar {
		return &spellerrors.ConfigError{Option: "mode", Value: c.Mode.String(), Message: "must be spelling or grammar"}
	}
	if c.Limit < 1 {
		return &spellerrors.ConfigError{Option: "limit", Value: c.Limit, Message: "must be at least 1"}
	}
	if c.Workers < 0 {
		return &spellerrors.ConfigError{Option: "workers", Value: c.Workers, Message: "must not be negative"}
	}
	if c.MaxDepth < 0 {
		return &spellerrors.ConfigError{Option: "maxDepth", Value: c.MaxDepth, Message: "must not be negative"}
	}
	if c.Endpoint != "" && !stringutil.IsURL(c.Endpoint) {
		return &spellerrors.ConfigError{Option: "endpoint", Value: c.Endpoint, Message: "must be an http(s) URL"}
	}
	return nil
}

// MatcherConfig returns the part of c passed to a matcher factory.
func (c Config) MatcherConfig() matcher.Config {
	return matcher.Config{
		Language:     c.Language,
		Mode:         c.Mode,
		Ignore:       c.Ignore,
		Endpoint:     c.Endpoint,
		Dictionaries: c.Dictionaries,
	}
}

// workerCount returns how many workers to start for n instances.
func (c Config) workerCount(n int) int {
	w := c.Workers
	if w == 0 {
		w = min(runtime.GOMAXPROCS(0), maxDefaultWorkers)
	}
	return max(1, min(w, n))
}
