package pathutil

import (
	"strconv"
	"strings"
)

// Root is the JSON path of the document root.
const Root = "$"

// PathBuilder builds JSON paths ("$.components.schemas.Pet") incrementally.
// Segments are stored rendered, so Push and Pop never allocate the full path;
// it is only materialized by String.
type PathBuilder struct {
	segments []string
	length   int
}

// Push appends an object key. Keys that are not plain identifiers are written
// in bracket notation: $.shapes['example#Pet'].
func (p *PathBuilder) Push(key string) {
	p.push(Segment(key))
}

// PushIndex appends an array index: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	p.push("[" + strconv.Itoa(i) + "]")
}

func (p *PathBuilder) push(seg string) {
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
}

// Depth returns the number of segments below the root.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path, starting at Root.
func (p *PathBuilder) String() string {
	var b strings.Builder
	b.Grow(len(Root) + p.length)
	b.WriteString(Root)
	for _, seg := range p.segments {
		b.WriteString(seg)
	}
	return b.String()
}

// Segment renders key as a path segment, including its leading separator.
func Segment(key string) string {
	if needsBrackets(key) {
		return "['" + strings.ReplaceAll(key, "'", `\'`) + "']"
	}
	return "." + key
}

// Child returns the path of key below parent.
func Child(parent, key string) string {
	return parent + Segment(key)
}

// needsBrackets reports whether key must use bracket notation: empty keys,
// keys starting with a digit, and keys containing separators, quotes,
// whitespace, or characters common in shape ids.
func needsBrackets(key string) bool {
	if key == "" {
		return true
	}
	for i, r := range key {
		if i == 0 && r >= '0' && r <= '9' {
			return true
		}
		switch r {
		case '.', '[', ']', '\'', '"', ' ', '\t', '\n', '\r', '#', '$', '/', '{', '}':
			return true
		}
	}
	return false
}
