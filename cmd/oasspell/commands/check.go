package commands

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasspell/internal/config"
	"github.com/erraggy/oasspell/internal/fileutil"
	"github.com/erraggy/oasspell/linter"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/matcher/builtin"
	"github.com/erraggy/oasspell/textindex"
	"github.com/fatih/color"
)

// CheckFlags contains flags for the check and proofread commands
type CheckFlags struct {
	Config       string
	Engine       string
	Endpoint     string
	Language     string
	Ignore       stringList
	Dictionaries stringList
	Limit        int
	NoDocstrings bool
	Workers      int
	MaxDepth     int
	MaxSize      int64
	Format       string
	Output       string
	Quiet        bool
	Verbose      bool
	NoColor      bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command
// (mode ModeSpelling) or the proofread command (mode ModeGrammar).
func SetupCheckFlags(mode matcher.Mode) (*flag.FlagSet, *CheckFlags) {
	name := "check"
	if mode == matcher.ModeGrammar {
		name = "proofread"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &CheckFlags{}

	fs.StringVar(&flags.Config, "config", "", "config file (default: .oasspell.yaml, .yml, .json, or .toml in the current directory)")
	fs.StringVar(&flags.Engine, "engine", "", "matcher engine: "+builtin.DefaultEngine+" or wordlist")
	fs.StringVar(&flags.Endpoint, "endpoint", "", "LanguageTool server URL")
	fs.StringVar(&flags.Language, "language", "", "language tag, such as en or en-GB")
	fs.Var(&flags.Ignore, "ignore", "word to never report (repeatable, comma-separated)")
	fs.Var(&flags.Dictionaries, "dict", "word list file for the wordlist engine (repeatable)")
	fs.IntVar(&flags.Limit, "limit", 0, "maximum suggestions per issue (default 4)")
	fs.IntVar(&flags.Workers, "workers", 0, "concurrent matchers (default: CPU count, at most 8)")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "markup nesting depth checked in documentation (default 64)")
	fs.Int64Var(&flags.MaxSize, "max-size", textindex.DefaultMaxSize, "largest model accepted, in bytes")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "write the report to a file instead of stdout")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: print nothing, only set the exit code")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: print nothing, only set the exit code")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log progress to stderr")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	if mode == matcher.ModeSpelling {
		fs.BoolVar(&flags.NoDocstrings, "no-docstrings", false, "skip documentation and check names only")
	}

	fs.Usage = func() {
		out := fs.Output()
		if mode == matcher.ModeGrammar {
			Writef(out, "Usage: oasspell proofread [flags] <file|url|->\n\n")
			Writef(out, "Check the documentation of an OpenAPI document or Smithy JSON AST model for grammar and style problems.\n\n")
		} else {
			Writef(out, "Usage: oasspell check [flags] <file|url|->\n\n")
			Writef(out, "Spell check the names and text of an OpenAPI document or Smithy JSON AST model.\n\n")
		}
		Writef(out, "Flags:\n")
		fs.PrintDefaults()
		Writef(out, "\nOutput Formats:\n")
		Writef(out, "  text (default)  Human-readable text output\n")
		Writef(out, "  json            JSON format for programmatic processing\n")
		Writef(out, "  yaml            YAML format for programmatic processing\n")
		Writef(out, "\nExamples:\n")
		if mode == matcher.ModeGrammar {
			Writef(out, "  oasspell proofread --endpoint http://localhost:8081 openapi.yaml\n")
		} else {
			Writef(out, "  oasspell check openapi.yaml\n")
			Writef(out, "  oasspell check --engine wordlist --dict words.txt model.json\n")
			Writef(out, "  oasspell check --ignore petz,oauth --format json openapi.yaml | jq '.issueCount'\n")
			Writef(out, "  cat openapi.yaml | oasspell check -q -\n")
		}
		Writef(out, "\nConfiguration is read from the config file, settings embedded in the model,\n")
		Writef(out, "and OASSPELL_* environment variables, in that order. Flags override all of them.\n")
		Writef(out, "\nExit Codes:\n")
		Writef(out, "  0    No issues found\n")
		Writef(out, "  1    Issues found, or the model could not be checked\n")
	}

	return fs, flags
}

// newRegistry returns the matcher engines available to the CLI.
var newRegistry = builtin.Registry

// HandleCheck executes the check command
func HandleCheck(ctx context.Context, args []string) error {
	return handleLint(ctx, args, matcher.ModeSpelling)
}

// HandleProofread executes the proofread command
func HandleProofread(ctx context.Context, args []string) error {
	return handleLint(ctx, args, matcher.ModeGrammar)
}

func handleLint(ctx context.Context, args []string, mode matcher.Mode) error {
	fs, flags := SetupCheckFlags(mode)
	if help, err := parseArgs(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%s command requires exactly one file path, URL, or '-' for stdin", fs.Name())
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.NoColor {
		color.NoColor = true
	}

	specPath := fs.Arg(0)
	logger := NewLogger(flags.Verbose)

	doc, err := textindex.Load(ctx, specPath, textindex.WithMaxSize(flags.MaxSize))
	if err != nil {
		return fmt.Errorf("loading %s: %w", FormatSpecPath(specPath), err)
	}

	cfg, err := resolveConfig(fs, flags, doc, mode)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved", "engine", cfg.Engine, "language", cfg.Language, "mode", cfg.Mode.String())

	l := linter.New(cfg, newRegistry())
	l.Logger = linter.NewSlogAdapter(logger)
	result, err := l.Lint(ctx, doc)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		if err := writeResult(result, flags); err != nil {
			return err
		}
	}
	if result.HasIssues() {
		return ErrIssuesFound
	}
	return nil
}

// resolveConfig layers the config file, embedded settings, and environment
// under the flags that were set on the command line.
func resolveConfig(fs *flag.FlagSet, flags *CheckFlags, doc *textindex.Document, mode matcher.Mode) (linter.Config, error) {
	path := flags.Config
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = config.Find(wd)
		}
	}
	cfg, err := config.Resolve(path, doc, mode)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "engine":
			cfg.Engine = flags.Engine
		case "endpoint":
			cfg.Endpoint = flags.Endpoint
		case "language":
			cfg.Language = flags.Language
		case "ignore":
			cfg.Ignore = append(cfg.Ignore, flags.Ignore...)
		case "dict":
			cfg.Dictionaries = flags.Dictionaries
		case "limit":
			cfg.Limit = flags.Limit
		case "workers":
			cfg.Workers = flags.Workers
		case "max-depth":
			cfg.MaxDepth = flags.MaxDepth
		case "no-docstrings":
			cfg.Docstrings = !flags.NoDocstrings
		}
	})
	return cfg, cfg.Validate()
}

// writeResult renders result in the requested format to stdout or the
// output file.
func writeResult(result *linter.Result, flags *CheckFlags) error {
	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format, flags.Output)
	}
	if flags.Output == "" {
		return RenderText(stdout, result)
	}
	// Report files never carry terminal escapes.
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()
	var buf bytes.Buffer
	if err := RenderText(&buf, result); err != nil {
		return err
	}
	return fileutil.WriteReport(flags.Output, buf.Bytes())
}
