package textindex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/erraggy/oasspell"
	"github.com/erraggy/oasspell/internal/httputil"
	"github.com/erraggy/oasspell/spellerrors"
	"go.yaml.in/yaml/v4"
)

// DefaultMaxSize is the largest document loaded unless WithMaxSize says
// otherwise.
const DefaultMaxSize int64 = 10 << 20

// StdinPath loads from standard input.
const StdinPath = "-"

type loadConfig struct {
	maxSize    int64
	httpClient *http.Client
	userAgent  string
	stdin      io.Reader
}

// Option configures loading.
type Option func(*loadConfig)

// WithMaxSize sets the largest accepted document in bytes. A value <= 0
// removes the limit.
func WithMaxSize(n int64) Option {
	return func(c *loadConfig) {
		c.maxSize = n
	}
}

// WithHTTPClient sets the client used to fetch URLs.
func WithHTTPClient(client *http.Client) Option {
	return func(c *loadConfig) {
		c.httpClient = client
	}
}

// WithUserAgent sets the User-Agent sent when fetching URLs.
func WithUserAgent(ua string) Option {
	return func(c *loadConfig) {
		c.userAgent = ua
	}
}

// WithStdin replaces os.Stdin as the source for StdinPath.
func WithStdin(r io.Reader) Option {
	return func(c *loadConfig) {
		c.stdin = r
	}
}

func newLoadConfig(opts []Option) *loadConfig {
	c := &loadConfig{
		maxSize:   DefaultMaxSize,
		userAgent: oasspell.UserAgent(),
		stdin:     os.Stdin,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads a model from a file path, an http(s) URL, or StdinPath, and
// indexes its text.
func Load(ctx context.Context, path string, opts ...Option) (*Document, error) {
	cfg := newLoadConfig(opts)

	switch {
	case path == StdinPath:
		return loadReader(cfg.stdin, "<stdin>", cfg)

	case httputil.IsURL(path):
		data, _, err := httputil.Fetch(ctx, cfg.httpClient, path, cfg.userAgent, cfg.maxSize)
		if err != nil {
			return nil, fmt.Errorf("textindex: %w", err)
		}
		return parse(data, path, SourceFormatUnknown)

	default:
		if cfg.maxSize > 0 {
			if info, err := os.Stat(path); err == nil && info.Size() > cfg.maxSize {
				return nil, &spellerrors.ResourceLimitError{
					ResourceType: "file_size",
					Limit:        cfg.maxSize,
					Actual:       info.Size(),
					Message:      path,
				}
			}
		}
		data, err := os.ReadFile(path) //nolint:gosec // path is user-provided input
		if err != nil {
			return nil, fmt.Errorf("textindex: failed to read file: %w", err)
		}
		return parse(data, path, detectFormatFromPath(path))
	}
}

// LoadReader reads a model from r. sourcePath is used in locations and
// errors.
func LoadReader(r io.Reader, sourcePath string, opts ...Option) (*Document, error) {
	return loadReader(r, sourcePath, newLoadConfig(opts))
}

func loadReader(r io.Reader, sourcePath string, cfg *loadConfig) (*Document, error) {
	data, err := httputil.ReadLimited(r, cfg.maxSize, "file_size")
	if err != nil {
		return nil, fmt.Errorf("textindex: failed to read input: %w", err)
	}
	return parse(data, sourcePath, SourceFormatUnknown)
}

// LoadBytes indexes a model held in memory.
func LoadBytes(data []byte, sourcePath string, opts ...Option) (*Document, error) {
	cfg := newLoadConfig(opts)
	if cfg.maxSize > 0 && int64(len(data)) > cfg.maxSize {
		return nil, &spellerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        cfg.maxSize,
			Actual:       int64(len(data)),
		}
	}
	return parse(data, sourcePath, detectFormatFromPath(sourcePath))
}

func parse(data []byte, sourcePath string, format SourceFormat) (*Document, error) {
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &spellerrors.ParseError{
			Path:    sourcePath,
			Line:    errorLine(err),
			Message: "failed to parse YAML/JSON",
			Cause:   err,
		}
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 || root.Kind == yaml.DocumentNode {
		return nil, &spellerrors.ParseError{Path: sourcePath, Message: "empty document"}
	}
	if root.Kind != yaml.MappingNode {
		return nil, &spellerrors.ParseError{
			Path:    sourcePath,
			Line:    root.Line,
			Column:  root.Column,
			Message: "document root must be an object",
		}
	}

	doc := &Document{SourcePath: sourcePath, Format: format, root: root}
	if err := detectDialect(doc); err != nil {
		return nil, err
	}

	switch doc.Dialect {
	case DialectSmithy:
		doc.instances = indexSmithy(root, sourcePath)
	default:
		doc.instances = indexOpenAPI(root, sourcePath)
	}
	return doc, nil
}

func detectDialect(doc *Document) error {
	for _, d := range []Dialect{DialectOpenAPI, DialectSwagger, DialectSmithy} {
		if _, v := lookup(doc.root, string(d)); v != nil && v.Kind == yaml.ScalarNode {
			doc.Dialect = d
			doc.Version = v.Value
			return nil
		}
	}
	return &spellerrors.ParseError{
		Path:    doc.SourcePath,
		Message: "unrecognized model: expected an openapi, swagger, or smithy root key",
	}
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent treats input starting with '{' or '[' as JSON and
// anything else as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

var errorLinePattern = regexp.MustCompile(`line (\d+)`)

// errorLine extracts the line number from a decoder error message.
func errorLine(err error) int {
	m := errorLinePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
