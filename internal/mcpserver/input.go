package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oasspell/internal/options"
	"github.com/erraggy/oasspell/textindex"
)

// contentSourcePath names inline documents in issue locations.
const contentSourcePath = "<content>"

// specInput represents the three ways a model can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI or Smithy JSON AST file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch the model from"`
	Content string `json:"content,omitempty" jsonschema:"Inline model content (JSON or YAML)"`
}

// cacheEntry holds an indexed document with LRU ordering and TTL expiry.
type cacheEntry struct {
	doc       *textindex.Document
	touchedAt time.Time
	expiresAt time.Time
}

// docCacheStore is a session-scoped cache of indexed documents. File inputs
// are keyed by absolute path and modification time, content by its SHA-256
// hash, and URLs by the URL itself.
type docCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var docCache = &docCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached document or nil. Expired entries are removed.
func (c *docCacheStore) get(key string) *textindex.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.touchedAt = time.Now()
	return e.doc
}

// put stores a document, evicting the least recently used entry when full.
func (c *docCacheStore) put(key string, doc *textindex.Document, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{doc: doc, touchedAt: now, expiresAt: now.Add(ttl)}
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.touchedAt.Before(oldest) {
				oldestKey, oldest = k, e.touchedAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// sweep removes expired entries.
func (c *docCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper removes expired entries every interval until ctx is done.
// Only the first call starts a sweeper.
func (c *docCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key and TTL for s, or "" when s cannot be
// cached.
func (s specInput) cacheKey() (string, time.Duration) {
	switch {
	case s.File != "":
		abs, err := filepath.Abs(s.File)
		if err != nil {
			return "", 0
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", 0
		}
		return fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano()), cfg.CacheFileTTL
	case s.URL != "":
		return "url:" + s.URL, cfg.CacheURLTTL
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:]), cfg.CacheContentTTL
	default:
		return "", 0
	}
}

// resolve loads and indexes the model from whichever input was provided,
// using the document cache.
func (s specInput) resolve(ctx context.Context) (*textindex.Document, error) {
	if err := options.ValidateSingleInputSource(
		options.Source{Option: "file", Set: s.File != ""},
		options.Source{Option: "url", Set: s.URL != ""},
		options.Source{Option: "content", Set: s.Content != ""},
	); err != nil {
		return nil, err
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASSPELL_MCP_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key, ttl = s.cacheKey()
	}
	if key != "" {
		if doc := docCache.get(key); doc != nil {
			return doc, nil
		}
	}

	var doc *textindex.Document
	var err error
	switch {
	case s.File != "":
		doc, err = textindex.Load(ctx, s.File)
	case s.URL != "":
		var opts []textindex.Option
		if !cfg.AllowPrivateIPs {
			opts = append(opts, textindex.WithHTTPClient(newSafeHTTPClient()))
		}
		doc, err = textindex.Load(ctx, s.URL, opts...)
	default:
		doc, err = textindex.LoadBytes([]byte(s.Content), contentSourcePath, textindex.WithMaxSize(cfg.MaxInlineSize))
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		docCache.put(key, doc, ttl)
	}
	return doc, nil
}
