// Package spellerrors provides structured error types for oasspell.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON decoding failures and unknown model dialects
//   - ConfigError: Invalid configuration or input options
//   - ResourceLimitError: Resource exhaustion (nesting depth, input size)
//   - MatcherError: A language matcher failed to check one text instance
//   - OffsetError: A match reported offsets outside the checked text
//
// # Usage with errors.Is
//
//	result, err := linter.LintWithOptions(ctx, linter.WithFilePath("api.yaml"))
//	if errors.Is(err, spellerrors.ErrParse) {
//	    // Handle parse error
//	}
package spellerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a model document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrMatcher indicates a language matcher failed.
	ErrMatcher = errors.New("matcher error")

	// ErrOffset indicates match offsets outside the bounds of the checked text.
	ErrOffset = errors.New("offset out of range")
)

// ParseError represents a failure to decode a model document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded.
	// Common values: "markup_depth", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// MatcherError reports that a matcher could not check a piece of text.
// Failures are scoped to one text instance; callers continue with the rest.
type MatcherError struct {
	// Engine is the registry name of the failing matcher
	Engine string
	// StatusCode is the HTTP status returned by a remote engine (0 if not applicable)
	StatusCode int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MatcherError) Error() string {
	msg := "matcher error"
	if e.Engine != "" {
		msg += " (" + e.Engine + ")"
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MatcherError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MatcherError) Is(target error) bool {
	return target == ErrMatcher
}

// OffsetError reports a match whose offsets do not fit the text it was
// reported against.
type OffsetError struct {
	// Start is the reported start offset
	Start int
	// End is the reported end offset (exclusive)
	End int
	// Length is the byte length of the text
	Length int
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *OffsetError) Error() string {
	msg := fmt.Sprintf("offset out of range: [%d, %d) for text of length %d", e.Start, e.End, e.Length)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *OffsetError) Is(target error) bool {
	return target == ErrOffset
}
