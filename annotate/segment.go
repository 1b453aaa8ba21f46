package annotate

import (
	"fmt"
	"strings"
)

// Kind distinguishes checkable prose from opaque markup.
type Kind int

const (
	// Text is prose handed to a language matcher.
	Text Kind = iota
	// Markup is kept out of the matcher's view.
	Markup
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Markup:
		return "markup"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "text":
		*k = Text
	case "markup":
		*k = Markup
	default:
		return fmt.Errorf("annotate: unknown segment kind %q", string(b))
	}
	return nil
}

// Segment is a typed span of annotated text.
type Segment struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Content string `json:"content" yaml:"content"`
}

// Segments is an ordered annotation of a string. Concatenating the content
// of every segment reproduces the annotated input exactly.
type Segments []Segment

// Plain wraps text as a single Text segment. Identifiers carry no markup,
// so they are checked as plain segments without scanning.
func Plain(text string) Segments {
	if text == "" {
		return Segments{}
	}
	return Segments{{Kind: Text, Content: text}}
}

// String returns the original text.
func (s Segments) String() string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(seg.Content)
	}
	return b.String()
}

// Checkable returns the concatenated content of the Text segments. Match
// offsets reported by a matcher index this string.
func (s Segments) Checkable() string {
	var b strings.Builder
	for _, seg := range s {
		if seg.Kind == Text {
			b.WriteString(seg.Content)
		}
	}
	return b.String()
}

// CheckableOffset maps an offset in String() to the corresponding offset in
// Checkable(). Offsets inside a markup segment map to the checkable position
// where that markup sits.
func (s Segments) CheckableOffset(original int) int {
	orig, check := 0, 0
	for _, seg := range s {
		n := len(seg.Content)
		if original < orig+n {
			if seg.Kind == Text {
				return check + (original - orig)
			}
			return check
		}
		orig += n
		if seg.Kind == Text {
			check += n
		}
	}
	return check
}

// OriginalOffset maps an offset in Checkable() to the corresponding offset in
// String(). The end of the checkable text maps to the end of the last Text
// segment.
func (s Segments) OriginalOffset(checkable int) int {
	orig, check, lastTextEnd := 0, 0, 0
	for _, seg := range s {
		n := len(seg.Content)
		if seg.Kind == Text {
			if checkable < check+n {
				return orig + (checkable - check)
			}
			check += n
			lastTextEnd = orig + n
		}
		orig += n
	}
	return lastTextEnd
}

// TextCount returns the number of Text segments.
func (s Segments) TextCount() int {
	n := 0
	for _, seg := range s {
		if seg.Kind == Text {
			n++
		}
	}
	return n
}
