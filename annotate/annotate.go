package annotate

import (
	"strings"

	"github.com/erraggy/oasspell/spellerrors"
	"golang.org/x/net/html/atom"
)

// DefaultMaxDepth bounds recursion into nested allowed tags.
const DefaultMaxDepth = 64

// checkedTags are the inline and structural elements whose content is still
// prose. Every other recognized tag pair is treated as opaque markup.
var checkedTags = map[atom.Atom]bool{
	atom.Blockquote: true,
	atom.Br:         true,
	atom.Caption:    true,
	atom.Center:     true,
	atom.Dd:         true,
	atom.Figcaption: true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Html:       true,
	atom.I:          true,
	atom.Li:         true,
	atom.Meta:       true,
	atom.P:          true,
	atom.Section:    true,
	atom.Small:      true,
	atom.Span:       true,
	atom.Strike:     true,
	atom.Strong:     true,
	atom.Title:      true,
	atom.Tt:         true,
	atom.U:          true,
	atom.Ul:         true,
}

// IsCheckedTag reports whether the content of a <name>...</name> pair is
// annotated as prose. Names compare case-insensitively.
func IsCheckedTag(name string) bool {
	a := atom.Lookup([]byte(strings.ToLower(name)))
	return a != 0 && checkedTags[a]
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithMaxDepth sets how many allowed tags may nest before their content is
// treated as opaque markup. Values below 1 keep the default.
func WithMaxDepth(depth int) Option {
	return func(a *Annotator) {
		if depth > 0 {
			a.maxDepth = depth
		}
	}
}

// WithStrictDepth makes Annotate fail with a *spellerrors.ResourceLimitError
// instead of degrading to opaque markup when the depth ceiling is reached.
func WithStrictDepth(strict bool) Option {
	return func(a *Annotator) {
		a.strict = strict
	}
}

// Annotator splits documentation into Text and Markup segments.
// An Annotator holds no mutable state and is safe for concurrent use.
type Annotator struct {
	maxDepth int
	strict   bool
}

// New creates an Annotator.
func New(opts ...Option) *Annotator {
	a := &Annotator{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnnotator = New()

// Annotate splits text with the default Annotator. It never fails: content
// nested deeper than DefaultMaxDepth is kept as opaque markup.
func Annotate(text string) Segments {
	segs, _ := defaultAnnotator.Annotate(text)
	return segs
}

// Annotate splits text into segments. Text before, between, and after tag
// pairs is Text. An allowed pair contributes its opening and closing tags as
// Markup around the recursively annotated content; any other pair becomes a
// single Markup segment.
func (a *Annotator) Annotate(text string) (Segments, error) {
	return a.annotate(text, 0, make(Segments, 0, 1))
}

func (a *Annotator) annotate(text string, depth int, out Segments) (Segments, error) {
	sc := newScanner(text)
	last := 0
	for {
		p, ok := sc.scan()
		if !ok {
			break
		}
		out = appendSegment(out, Text, text[last:p.start])

		name := text[p.nameStart:p.nameEnd]
		if !IsCheckedTag(name) {
			out = appendSegment(out, Markup, text[p.start:p.end])
			last = p.end
			continue
		}

		if depth+1 > a.maxDepth {
			if a.strict {
				return nil, &spellerrors.ResourceLimitError{
					ResourceType: "markup_depth",
					Limit:        int64(a.maxDepth),
					Actual:       int64(depth + 1),
					Message:      "nested <" + name + "> exceeds maximum markup depth",
				}
			}
			out = appendSegment(out, Markup, text[p.start:p.end])
			last = p.end
			continue
		}

		out = appendSegment(out, Markup, text[p.start:p.openEnd])
		var err error
		out, err = a.annotate(text[p.openEnd:p.closeStart], depth+1, out)
		if err != nil {
			return nil, err
		}
		out = appendSegment(out, Markup, text[p.closeStart:p.end])
		last = p.end
	}
	return appendSegment(out, Text, text[last:]), nil
}

func appendSegment(out Segments, kind Kind, content string) Segments {
	if content == "" {
		return out
	}
	return append(out, Segment{Kind: kind, Content: content})
}
