package linter

import (
	"time"

	"github.com/erraggy/oasspell/internal/issues"
	"github.com/erraggy/oasspell/internal/severity"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/textindex"
)

// Issue is a single finding of a lint run.
type Issue = issues.Issue

// Severity indicates how serious an issue is.
type Severity = severity.Severity

const (
	// SeverityError marks text that could not be checked.
	SeverityError = severity.SeverityError
	// SeverityDanger marks a probable typo or grammar problem.
	SeverityDanger = severity.SeverityDanger
)

// Result holds the outcome of a lint run.
type Result struct {
	// SourcePath is the file path or URL of the checked document.
	SourcePath string `json:"sourcePath" yaml:"sourcePath"`
	// Dialect is the model kind of the checked document.
	Dialect textindex.Dialect `json:"dialect" yaml:"dialect"`
	// Mode is spelling or grammar.
	Mode matcher.Mode `json:"mode" yaml:"mode"`
	// Engine is the matcher engine used.
	Engine string `json:"engine" yaml:"engine"`
	// Issues are the findings and failures in document order.
	Issues []Issue `json:"issues" yaml:"issues"`
	// IssueCount is the number of findings, excluding failures.
	IssueCount int `json:"issueCount" yaml:"issueCount"`
	// FailureCount is the number of texts or matches that could not be
	// checked.
	FailureCount int `json:"failureCount" yaml:"failureCount"`
	// InstanceCount is the number of texts checked.
	InstanceCount int `json:"instanceCount" yaml:"instanceCount"`
	// Duration is the time spent checking.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// HasIssues reports whether the run produced any findings or failures.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// Findings returns the issues that are not failures.
func (r *Result) Findings() []Issue {
	out := make([]Issue, 0, r.IssueCount)
	for _, issue := range r.Issues {
		if issue.Severity < SeverityError {
			out = append(out, issue)
		}
	}
	return out
}
