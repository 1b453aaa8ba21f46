// Package issues provides the issue type reported for text problems.
package issues

import (
	"fmt"

	"github.com/erraggy/oasspell/internal/severity"
)

// Issue represents a single problem found in a model's text.
type Issue struct {
	// ID identifies the kind of finding (e.g., "SpellCheck.Trait.documentation")
	ID string `json:"id" yaml:"id"`
	// Path is the JSON path to the text (e.g., "$.components.schemas.Pet.description")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Shape is the schema, operation, or shape id the text belongs to
	Shape string `json:"shape,omitempty" yaml:"shape,omitempty"`
	// Trait is the trait or field holding the text (empty for names)
	Trait string `json:"trait,omitempty" yaml:"trait,omitempty"`
	// Text is the checked text that Start and End index
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Start is the byte offset of the problem in Text
	Start int `json:"start" yaml:"start"`
	// End is the exclusive byte offset of the problem in Text
	End int `json:"end" yaml:"end"`
	// Suggestions are corrected versions of Text
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
	// File is the source file path
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// String returns a formatted string representation of the issue, prefixed
// with the severity symbol.
func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("%s %s (line %d, col %d): [%s] %s", i.Severity.Symbol(), i.Path, i.Line, i.Column, i.ID, i.Message)
	}
	return fmt.Sprintf("%s %s: [%s] %s", i.Severity.Symbol(), i.Path, i.ID, i.Message)
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the JSON path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Covered returns the flagged part of Text, or "" when the offsets do not fit.
func (i Issue) Covered() string {
	if i.Start < 0 || i.End < i.Start || i.End > len(i.Text) {
		return ""
	}
	return i.Text[i.Start:i.End]
}

// Count returns how many issues are at least as severe as min.
func Count(list []Issue, min severity.Severity) int {
	n := 0
	for _, issue := range list {
		if issue.Severity >= min {
			n++
		}
	}
	return n
}
