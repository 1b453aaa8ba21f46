package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds the MCP server defaults. Matcher settings (engine,
// language, ignore list) come from the shared OASSPELL_* variables read by
// internal/config; the variables here only tune the server itself.
type serverConfig struct {
	// Document cache.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Result pagination.
	ResultLimit int
	MaxLimit    int

	// Input limits.
	MaxInlineSize   int64
	MaxTextSize     int
	AllowPrivateIPs bool
}

// cfg is the active server configuration, read once at package load.
var cfg = loadConfig()

// loadConfig reads OASSPELL_MCP_* environment variables. Invalid values log a
// warning and fall back to the default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASSPELL_MCP_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASSPELL_MCP_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASSPELL_MCP_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("OASSPELL_MCP_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("OASSPELL_MCP_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASSPELL_MCP_CACHE_SWEEP_INTERVAL", time.Minute),
		ResultLimit:        envInt("OASSPELL_MCP_RESULT_LIMIT", 100),
		MaxLimit:           envInt("OASSPELL_MCP_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("OASSPELL_MCP_MAX_INLINE_SIZE", 10<<20)),
		MaxTextSize:        envInt("OASSPELL_MCP_MAX_TEXT_SIZE", 1<<20),
		AllowPrivateIPs:    envBool("OASSPELL_MCP_ALLOW_PRIVATE_IPS", false),
	}
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

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
