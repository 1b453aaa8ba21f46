package linter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasspell"
	"github.com/erraggy/oasspell/annotate"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/matcher/builtin"
	"github.com/erraggy/oasspell/spellerrors"
	"github.com/erraggy/oasspell/suggest"
	"github.com/erraggy/oasspell/textindex"
)

// Linter checks the text of loaded models.
type Linter struct {
	// Config holds the run settings.
	Config Config
	// Registry provides the matcher engines. nil means builtin.Registry().
	Registry *matcher.Registry
	// Logger receives run diagnostics. nil means NopLogger.
	Logger Logger
	// HTTPClient is used by remote engines and URL loading. nil means a
	// default client per engine.
	HTTPClient *http.Client
	// UserAgent is sent with HTTP requests. Empty means oasspell/<version>.
	UserAgent string
}

// New creates a Linter with the given settings and engines.
func New(cfg Config, registry *matcher.Registry) *Linter {
	return &Linter{Config: cfg, Registry: registry}
}

// LintWithOptions loads the configured input and checks it.
//
//	result, err := linter.LintWithOptions(ctx,
//		linter.WithFilePath("openapi.yaml"),
//		linter.WithConfig(cfg),
//	)
func LintWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	l := &Linter{
		Config:     cfg.config,
		Registry:   cfg.registry,
		Logger:     cfg.logger,
		HTTPClient: cfg.httpClient,
		UserAgent:  cfg.userAgent,
	}
	if cfg.document != nil {
		return l.Lint(ctx, cfg.document)
	}
	return l.LintFile(ctx, *cfg.filePath, cfg.loadOptions...)
}

// LintFile loads a model from a path, URL, or "-" for stdin and checks it.
func (l *Linter) LintFile(ctx context.Context, path string, opts ...textindex.Option) (*Result, error) {
	base := []textindex.Option{textindex.WithUserAgent(l.userAgent())}
	if l.HTTPClient != nil {
		base = append(base, textindex.WithHTTPClient(l.HTTPClient))
	}
	doc, err := textindex.Load(ctx, path, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("linter: %w", err)
	}
	return l.Lint(ctx, doc)
}

// Lint checks every selected text instance of doc. In spelling mode every
// instance is checked, except documentation when Config.Docstrings is false.
// In grammar mode only documentation is checked.
//
// Each worker creates its own matcher and reuses it for all the instances it
// handles. A check that fails is reported as an error-severity issue and the
// run continues; failing to create a matcher or a canceled context ends the
// run with an error.
func (l *Linter) Lint(ctx context.Context, doc *textindex.Document) (*Result, error) {
	start := time.Now()
	cfg := l.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	registry := l.registry()
	if !registry.Has(cfg.Engine) {
		return nil, &spellerrors.ConfigError{
			Option:  "engine",
			Value:   cfg.Engine,
			Message: fmt.Sprintf("unknown engine (available: %s)", strings.Join(registry.Names(), ", ")),
		}
	}

	r, err := l.newRun(doc)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("checking instances", "count", len(r.instances), "engine", cfg.Engine)

	results := make([][]Issue, len(r.instances))
	if len(r.instances) > 0 {
		if err := r.dispatch(ctx, registry, results); err != nil {
			return nil, err
		}
	}

	res := &Result{
		SourcePath:    doc.SourcePath,
		Dialect:       doc.Dialect,
		Mode:          cfg.Mode,
		Engine:        cfg.Engine,
		Issues:        make([]Issue, 0),
		InstanceCount: len(r.instances),
	}
	for _, found := range results {
		res.Issues = append(res.Issues, found...)
	}
	for _, issue := range res.Issues {
		if issue.Severity >= SeverityError {
			res.FailureCount++
		} else {
			res.IssueCount++
		}
	}
	res.Duration = time.Since(start)

	r.logger.Info("lint complete",
		"instances", res.InstanceCount,
		"issues", res.IssueCount,
		"failures", res.FailureCount,
		"duration", res.Duration)
	return res, nil
}

func (l *Linter) registry() *matcher.Registry {
	if l.Registry != nil {
		return l.Registry
	}
	return builtin.Registry()
}

func (l *Linter) userAgent() string {
	if l.UserAgent != "" {
		return l.UserAgent
	}
	return oasspell.UserAgent()
}

// run holds the immutable state shared by the workers of one Lint call.
type run struct {
	config    Config
	mcfg      matcher.Config
	logger    Logger
	formatter *suggest.Formatter
	annotator *annotate.Annotator
	tag       language.Tag
	instances []textindex.Instance
}

func (l *Linter) newRun(doc *textindex.Document) (*run, error) {
	cfg := l.Config
	mcfg := cfg.MatcherConfig()
	mcfg.HTTPClient = l.HTTPClient
	mcfg.UserAgent = l.userAgent()

	tag, err := mcfg.Tag()
	if err != nil {
		return nil, &spellerrors.ConfigError{Option: "language", Value: cfg.Language, Cause: err}
	}
	formatter, err := suggest.New(suggest.WithLimit(cfg.Limit), suggest.WithLanguage(tag))
	if err != nil {
		return nil, err
	}

	logger := l.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	return &run{
		config:    cfg,
		mcfg:      mcfg,
		logger:    logger.With("source", doc.SourcePath, "mode", cfg.Mode.String()),
		formatter: formatter,
		annotator: annotate.New(annotate.WithMaxDepth(cfg.MaxDepth)),
		tag:       tag,
		instances: selectInstances(doc.Instances(), cfg),
	}, nil
}

// selectInstances returns the instances checked in cfg.Mode.
func selectInstances(all []textindex.Instance, cfg Config) []textindex.Instance {
	out := make([]textindex.Instance, 0, len(all))
	for _, inst := range all {
		switch {
		case cfg.Mode == matcher.ModeGrammar && !inst.Documentation:
		case cfg.Mode == matcher.ModeSpelling && inst.Documentation && !cfg.Docstrings:
		default:
			out = append(out, inst)
		}
	}
	return out
}

// dispatch checks r.instances on a pool of workers, storing the issues of
// instance i in results[i].
func (r *run) dispatch(ctx context.Context, registry *matcher.Registry, results [][]Issue) error {
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range r.instances {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	workers := r.config.workerCount(len(r.instances))
	for w := range workers {
		g.Go(func() error {
			m, err := registry.New(r.config.Engine, r.mcfg)
			if err != nil {
				return fmt.Errorf("linter: failed to create matcher: %w", err)
			}
			defer func() {
				if err := m.Close(); err != nil {
					r.logger.Warn("failed to close matcher", "worker", w, "error", err)
				}
			}()
			r.logger.Debug("matcher created", "worker", w, "engine", r.config.Engine)

			for i := range jobs {
				found, err := r.check(gctx, m, r.instances[i])
				if err != nil {
					return err
				}
				results[i] = found
			}
			return nil
		})
	}

	return g.Wait()
}

// check runs m over one instance. The only error returned is the context's;
// every other failure becomes an issue.
func (r *run) check(ctx context.Context, m matcher.Matcher, inst textindex.Instance) ([]Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in, err := r.input(inst)
	if err != nil {
		return []Issue{r.failure(inst, err)}, nil
	}
	if in.Segments.TextCount() == 0 {
		return nil, nil
	}

	matches, err := m.Check(ctx, in)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, spellerrors.ErrMatcher) {
			err = &spellerrors.MatcherError{Engine: r.config.Engine, Message: "check failed", Cause: err}
		}
		r.logger.Warn("check failed", "path", inst.Path, "error", err)
		return []Issue{r.failure(inst, err)}, nil
	}

	checkable := in.Text()
	out := make([]Issue, 0, len(matches))
	for _, match := range matches {
		if match.Start < 0 || match.End < match.Start || match.End > len(checkable) {
			err := &spellerrors.OffsetError{Start: match.Start, End: match.End, Length: len(checkable)}
			r.logger.Warn("match out of range", "path", inst.Path, "error", err)
			out = append(out, r.failure(inst, err))
			continue
		}
		start, end := originalSpan(in.Segments, match.Start, match.End)

		issue, err := r.issue(inst, match, start, end)
		if err != nil {
			r.logger.Warn("failed to format suggestions", "path", inst.Path, "error", err)
			out = append(out, r.failure(inst, err))
			continue
		}
		out = append(out, issue)
	}
	slices.SortStableFunc(out, func(a, b Issue) int { return a.Start - b.Start })
	return out, nil
}

// input wraps inst for the matcher. Prose is annotated so markup stays out
// of the matcher's view; names are checked as a single plain segment.
func (r *run) input(inst textindex.Instance) (matcher.Input, error) {
	if !inst.IsProse() {
		return matcher.IdentifierInput(inst.Text), nil
	}
	segs, err := r.annotator.Annotate(inst.Text)
	if err != nil {
		return matcher.Input{}, err
	}
	return matcher.ProseInput(segs), nil
}

func (r *run) issue(inst textindex.Instance, match matcher.Match, start, end int) (Issue, error) {
	issue := baseIssue(inst)
	issue.Severity = SeverityDanger
	issue.Start, issue.End = start, end

	if r.config.Mode == matcher.ModeGrammar {
		issue.ID = grammarID(match)
		issue.Message = grammarMessage(match)
		issue.Suggestions = limit(match.Replacements, r.formatter.Limit())
		return issue, nil
	}

	// A span that crosses markup would lose the markup on substitution.
	var suggestions []string
	if end-start == match.End-match.Start {
		var err error
		suggestions, err = r.formatter.Format(inst.Text, start, end, match.Replacements)
		if err != nil {
			return Issue{}, err
		}
	}
	if inst.Kind == textindex.KindNamespace {
		lower := cases.Lower(r.tag)
		for i, s := range suggestions {
			suggestions[i] = lower.String(s)
		}
	}
	issue.ID = spellingID(inst)
	issue.Message = spellingMessage(inst, suggestions)
	issue.Suggestions = suggestions
	return issue, nil
}

func (r *run) failure(inst textindex.Instance, err error) Issue {
	issue := baseIssue(inst)
	issue.ID = FailureID(r.config.Mode)
	issue.Severity = SeverityError
	issue.Message = "Could not check text: " + err.Error()
	return issue
}

func baseIssue(inst textindex.Instance) Issue {
	return Issue{
		Path:   inst.Path,
		Shape:  inst.Shape,
		Trait:  inst.Trait,
		Text:   inst.Text,
		Line:   inst.Location.Line,
		Column: inst.Location.Column,
		File:   inst.Location.File,
	}
}

// originalSpan maps a [start, end) span of segs.Checkable() to the
// annotated text. The end is mapped through the last matched byte so markup
// following the match is not included.
func originalSpan(segs annotate.Segments, start, end int) (int, int) {
	s := segs.OriginalOffset(start)
	if end <= start {
		return s, s
	}
	return s, segs.OriginalOffset(end-1) + 1
}

func limit(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
