// Package severity provides severity levels for issues reported by the
// linter.
//
// The levels are ordered from least to most severe:
// Note < Warning < Danger < Error
//
//   - SeverityNote: informational findings
//   - SeverityWarning: findings worth a look that are often intentional
//   - SeverityDanger: likely mistakes such as spelling or grammar problems
//   - SeverityError: the text could not be checked at all
package severity

import (
	"fmt"
	"strings"
)

// Severity indicates how serious an issue is.
type Severity int

const (
	// SeverityNote is informational.
	SeverityNote Severity = iota

	// SeverityWarning marks findings that are frequently intentional.
	SeverityWarning

	// SeverityDanger marks probable mistakes in the model's text.
	SeverityDanger

	// SeverityError marks text that could not be checked, such as a matcher
	// failure or a match with invalid offsets.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityDanger:
		return "danger"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol returns the marker used in text output.
func (s Severity) Symbol() string {
	switch s {
	case SeverityError:
		return "✗"
	case SeverityDanger, SeverityWarning:
		return "⚠"
	case SeverityNote:
		return "ℹ"
	default:
		return "?"
	}
}

// Parse parses a severity name, case-insensitively.
func Parse(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "note", "info":
		return SeverityNote, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "danger":
		return SeverityDanger, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
