package commands

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/oasspell/internal/cliutil"
	"github.com/erraggy/oasspell/internal/severity"
	"github.com/erraggy/oasspell/linter"
	"github.com/fatih/color"
)

// excerptWidth bounds the text excerpt printed under an issue, in display
// columns.
const excerptWidth = 100

var (
	boldStyle  = color.New(color.Bold)
	faintStyle = color.New(color.Faint)
	caretStyle = color.New(color.FgGreen, color.Bold)
)

// severityStyle returns the color of a severity marker.
func severityStyle(s severity.Severity) *color.Color {
	switch s {
	case severity.SeverityError:
		return color.New(color.FgRed, color.Bold)
	case severity.SeverityDanger:
		return color.New(color.FgYellow, color.Bold)
	case severity.SeverityWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

// RenderText writes a human-readable report of result to w. Each issue shows
// its location, id, and message, followed by the offending line of text with
// the problem underlined. It returns the first write error.
func RenderText(w io.Writer, result *linter.Result) error {
	p := cliutil.NewPrinter(w)
	p.Printf("%s: %s model, %d texts checked (%s)\n",
		boldStyle.Sprint(FormatSpecPath(result.SourcePath)), result.Dialect, result.InstanceCount, result.Engine)

	for _, issue := range result.Issues {
		p.Printf("\n%s %s [%s]\n", severityStyle(issue.Severity).Sprint(issue.Severity.Symbol()), issue.Location(), issue.ID)
		if issue.HasLocation() {
			p.Printf("  %s\n", faintStyle.Sprint(issue.Path))
		}
		p.Printf("  %s\n", issue.Message)
		if issue.Text != "" && issue.End > issue.Start {
			line, marker := cliutil.Caret(issue.Text, issue.Start, issue.End)
			p.Printf("    %s\n", cliutil.Truncate(line, excerptWidth))
			if len(marker) <= excerptWidth {
				p.Printf("    %s\n", caretStyle.Sprint(marker))
			}
		}
	}

	summary := []string{plural(result.IssueCount, "issue"), plural(result.FailureCount, "failure")}
	p.Printf("\n%s in %s\n", strings.Join(summary, ", "), result.Duration.Round(time.Millisecond))
	return p.Err()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
