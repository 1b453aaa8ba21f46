package mcpserver

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/erraggy/oasspell/internal/config"
	"github.com/erraggy/oasspell/linter"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/textindex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type lintInput struct {
	Spec        specInput `json:"spec"                  jsonschema:"The model to check"`
	Engine      string    `json:"engine,omitempty"      jsonschema:"Matcher engine: languagetool or wordlist (default from OASSPELL_ENGINE)"`
	Language    string    `json:"language,omitempty"    jsonschema:"BCP 47 language tag such as en or en-GB"`
	Ignore      []string  `json:"ignore,omitempty"      jsonschema:"Words never reported, added to the configured ignore list"`
	Suggestions int       `json:"suggestions,omitempty" jsonschema:"Maximum suggestions per issue (default 4)"`
	Docstrings  *bool     `json:"docstrings,omitempty"  jsonschema:"Check documentation text (spellcheck only, default true)"`
	Offset      int       `json:"offset,omitempty"      jsonschema:"Skip the first N issues (for pagination)"`
	Limit       int       `json:"limit,omitempty"       jsonschema:"Maximum number of issues to return (default 100)"`
}

type lintIssue struct {
	ID          string   `json:"id"`
	Severity    string   `json:"severity"`
	Path        string   `json:"path"`
	Shape       string   `json:"shape,omitempty"`
	Trait       string   `json:"trait,omitempty"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Line        int      `json:"line,omitempty"`
	Column      int      `json:"column,omitempty"`
}

type lintOutput struct {
	Dialect       string      `json:"dialect"`
	Engine        string      `json:"engine"`
	InstanceCount int         `json:"instance_count"`
	IssueCount    int         `json:"issue_count"`
	FailureCount  int         `json:"failure_count"`
	Returned      int         `json:"returned"`
	Issues        []lintIssue `json:"issues,omitempty"`
}

func handleSpellcheck(ctx context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	return runLint(ctx, input, matcher.ModeSpelling)
}

func handleProofread(ctx context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	return runLint(ctx, input, matcher.ModeGrammar)
}

func runLint(ctx context.Context, input lintInput, mode matcher.Mode) (*mcp.CallToolResult, lintOutput, error) {
	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}
	lc, err := input.config(doc, mode)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	l := linter.New(lc, registry)
	l.Logger = linter.NewSlogAdapter(slog.Default())
	result, err := l.Lint(ctx, doc)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	output := lintOutput{
		Dialect:       string(result.Dialect),
		Engine:        result.Engine,
		InstanceCount: result.InstanceCount,
		IssueCount:    result.IssueCount,
		FailureCount:  result.FailureCount,
	}
	page := paginate(result.Issues, input.Offset, input.Limit)
	output.Issues = makeSlice[lintIssue](len(page))
	for _, issue := range page {
		output.Issues = append(output.Issues, lintIssue{
			ID:          issue.ID,
			Severity:    issue.Severity.String(),
			Path:        issue.Path,
			Shape:       issue.Shape,
			Trait:       issue.Trait,
			Message:     issue.Message,
			Suggestions: issue.Suggestions,
			Line:        issue.Line,
			Column:      issue.Column,
		})
	}
	output.Returned = len(output.Issues)
	return nil, output, nil
}

// config resolves the linter configuration for doc: defaults, a config file
// next to a file input, settings embedded in the model, and OASSPELL_*
// variables, with the tool arguments applied last.
func (in lintInput) config(doc *textindex.Document, mode matcher.Mode) (linter.Config, error) {
	var path string
	if in.Spec.File != "" {
		path, _ = config.Find(filepath.Dir(in.Spec.File))
	}
	c, err := config.Resolve(path, doc, mode)
	if err != nil {
		return c, err
	}
	if in.Engine != "" {
		c.Engine = in.Engine
	}
	if in.Language != "" {
		c.Language = in.Language
	}
	c.Ignore = append(c.Ignore, in.Ignore...)
	if in.Suggestions > 0 {
		c.Limit = in.Suggestions
	}
	if in.Docstrings != nil {
		c.Docstrings = *in.Docstrings
	}
	return c, c.Validate()
}
