package linter

import (
	"net/http"

	"github.com/erraggy/oasspell/internal/options"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/textindex"
)

// Option configures LintWithOptions.
type Option func(*lintConfig) error

type lintConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	document *textindex.Document

	config      Config
	registry    *matcher.Registry
	logger      Logger
	httpClient  *http.Client
	userAgent   string
	loadOptions []textindex.Option
}

func applyOptions(opts ...Option) (*lintConfig, error) {
	cfg := &lintConfig{
		config: DefaultConfig(),
		logger: NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		options.Source{Option: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Option: "WithDocument", Set: cfg.document != nil},
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath checks the model at a file path, URL, or "-" for stdin.
func WithFilePath(path string) Option {
	return func(cfg *lintConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithDocument checks an already loaded model.
func WithDocument(doc *textindex.Document) Option {
	return func(cfg *lintConfig) error {
		cfg.document = doc
		return nil
	}
}

// WithConfig replaces the run settings.
// Default: DefaultConfig()
func WithConfig(c Config) Option {
	return func(cfg *lintConfig) error {
		if err := c.Validate(); err != nil {
			return err
		}
		cfg.config = c
		return nil
	}
}

// WithRegistry sets the engines available to the run.
// Default: builtin.Registry()
func WithRegistry(r *matcher.Registry) Option {
	return func(cfg *lintConfig) error {
		cfg.registry = r
		return nil
	}
}

// WithLogger sets the logger.
// Default: NopLogger{}
func WithLogger(l Logger) Option {
	return func(cfg *lintConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithHTTPClient sets the client used to fetch URLs and to call remote
// engines.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *lintConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithUserAgent sets the User-Agent for HTTP requests.
// Default: oasspell/<version>
func WithUserAgent(ua string) Option {
	return func(cfg *lintConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithLoadOptions passes options to textindex.Load when the input is a path.
func WithLoadOptions(opts ...textindex.Option) Option {
	return func(cfg *lintConfig) error {
		cfg.loadOptions = append(cfg.loadOptions, opts...)
		return nil
	}
}
