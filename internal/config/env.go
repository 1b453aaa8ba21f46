package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/erraggy/oasspell/linter"
)

// Environment variables read by ApplyEnv.
const (
	EnvEngine       = "OASSPELL_ENGINE"
	EnvLanguage     = "OASSPELL_LANGUAGE"
	EnvIgnore       = "OASSPELL_IGNORE"
	EnvLimit        = "OASSPELL_LIMIT"
	EnvDocstrings   = "OASSPELL_DOCSTRINGS"
	EnvWorkers      = "OASSPELL_WORKERS"
	EnvEndpoint     = "OASSPELL_ENDPOINT"
	EnvDictionaries = "OASSPELL_DICTIONARIES"
	EnvMaxDepth     = "OASSPELL_MAX_DEPTH"
)

// EnvVars lists every variable ApplyEnv reads.
var EnvVars = []string{
	EnvEngine, EnvLanguage, EnvIgnore, EnvLimit, EnvDocstrings,
	EnvWorkers, EnvEndpoint, EnvDictionaries, EnvMaxDepth,
}

// ApplyEnv applies OASSPELL_* environment variables to cfg. Invalid values
// log a warning and leave the setting unchanged. OASSPELL_IGNORE is a comma
// separated list added to the ignore terms; OASSPELL_DICTIONARIES is a list
// separated by the OS path list separator.
func ApplyEnv(cfg *linter.Config) {
	if v := os.Getenv(EnvEngine); v != "" {
		cfg.Engine = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		if _, err := language.Parse(v); err != nil {
			slog.Warn("invalid language env var, ignoring", "key", EnvLanguage, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		} else {
			cfg.Language = v
		}
	}
	if v := os.Getenv(EnvIgnore); v != "" {
		for term := range strings.SplitSeq(v, ",") {
			if term = strings.TrimSpace(term); term != "" {
				cfg.Ignore = append(cfg.Ignore, term)
			}
		}
	}
	cfg.Limit = envInt(EnvLimit, cfg.Limit, 1)
	cfg.Docstrings = envBool(EnvDocstrings, cfg.Docstrings)
	cfg.Workers = envInt(EnvWorkers, cfg.Workers, 0)
	if v := os.Getenv(EnvEndpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv(EnvDictionaries); v != "" {
		cfg.Dictionaries = filepath.SplitList(v)
	}
	cfg.MaxDepth = envInt(EnvMaxDepth, cfg.MaxDepth, 1)
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

// envInt reads an integer of at least minimum.
func envInt(key string, fallback, minimum int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < minimum {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
