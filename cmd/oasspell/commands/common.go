// Package commands provides CLI command handlers for oasspell.
package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/oasspell/internal/cliutil"
	"github.com/erraggy/oasspell/internal/fileutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrIssuesFound is returned by check commands when the model has issues.
// The issues have already been reported; callers only need to exit non-zero.
var ErrIssuesFound = errors.New("issues found")

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalStructured marshals data as json or yaml.
func MarshalStructured(data any, format string) ([]byte, error) {
	var out []byte
	var err error
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return out, nil
}

// OutputStructured writes data as json or yaml to stdout, or to outputPath
// when it is set.
func OutputStructured(data any, format, outputPath string) error {
	out, err := MarshalStructured(data, format)
	if err != nil {
		return err
	}
	if outputPath != "" {
		return fileutil.WriteReport(outputPath, out)
	}
	Writef(stdout, "%s", out)
	return nil
}

// FormatSpecPath returns a display-friendly path for the model.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted help or diagnostic output to w. Write errors are
// dropped.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.NewPrinter(w).Printf(format, args...)
}

// NewLogger returns a text logger on stderr at debug level when verbose is
// set, and a logger that drops everything below warnings otherwise.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// stringList is a repeatable flag that also accepts comma-separated values.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// parseArgs parses args and reports whether help was requested.
func parseArgs(fs *flag.FlagSet, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
