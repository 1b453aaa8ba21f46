package spellerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})

	t.Run("As through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("textindex: %w", &ParseError{Path: "api.yaml"})
		var pe *ParseError
		if !errors.As(wrapped, &pe) {
			t.Fatal("errors.As should extract ParseError")
		}
		if pe.Path != "api.yaml" {
			t.Errorf("unexpected path: %s", pe.Path)
		}
	})
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "limit", Value: 0, Message: "must be at least 1"}
	if err.Error() != "configuration error for limit (value: 0): must be at least 1" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "markup_depth", Limit: 64, Actual: 65}
	if err.Error() != "resource limit exceeded: markup_depth (limit: 64, actual: 65)" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("ResourceLimitError should match ErrResourceLimit")
	}
}

func TestMatcherError(t *testing.T) {
	t.Run("Error message with status", func(t *testing.T) {
		err := &MatcherError{Engine: "languagetool", StatusCode: 503, Message: "server unavailable"}
		if err.Error() != "matcher error (languagetool): HTTP 503: server unavailable" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap and Is", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &MatcherError{Engine: "languagetool", Cause: cause}
		if !errors.Is(err, ErrMatcher) {
			t.Error("MatcherError should match ErrMatcher")
		}
		if !errors.Is(err, cause) {
			t.Error("MatcherError should unwrap to its cause")
		}
	})
}

func TestOffsetError(t *testing.T) {
	err := &OffsetError{Start: 3, End: 12, Length: 9}
	if err.Error() != "offset out of range: [3, 12) for text of length 9" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrOffset) {
		t.Error("OffsetError should match ErrOffset")
	}
	if errors.Is(err, ErrMatcher) {
		t.Error("OffsetError should not match ErrMatcher")
	}
}
