package annotate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/oasspell/spellerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) Segment   { return Segment{Kind: Text, Content: s} }
func markup(s string) Segment { return Segment{Kind: Markup, Content: s} }

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Segments
	}{
		{
			name:  "empty input",
			input: "",
			want:  Segments{},
		},
		{
			name:  "no tags",
			input: "Returns the pet.",
			want:  Segments{text("Returns the pet.")},
		},
		{
			name:  "allowed tag is recursed into",
			input: "<li>fix this typo</li>",
			want:  Segments{markup("<li>"), text("fix this typo"), markup("</li>")},
		},
		{
			name:  "disallowed tag is opaque",
			input: "<script>foo</script>",
			want:  Segments{markup("<script>foo</script>")},
		},
		{
			name:  "surrounding text",
			input: "Use <code>petId</code> to look up a pet.",
			want:  Segments{text("Use "), markup("<code>petId</code>"), text(" to look up a pet.")},
		},
		{
			name:  "nested allowed and disallowed",
			input: "<p>Call <code>x</code> now</p>",
			want: Segments{
				markup("<p>"), text("Call "), markup("<code>x</code>"), text(" now"), markup("</p>"),
			},
		},
		{
			name:  "tag names compare case-insensitively",
			input: "<LI>item</li>",
			want:  Segments{markup("<LI>"), text("item"), markup("</li>")},
		},
		{
			name:  "heading with digit",
			input: "<h2>Overview</h2>",
			want:  Segments{markup("<h2>"), text("Overview"), markup("</h2>")},
		},
		{
			name:  "content spans newlines",
			input: "<p>line one\nline two</p>",
			want:  Segments{markup("<p>"), text("line one\nline two"), markup("</p>")},
		},
		{
			name:  "unmatched open tag is literal text",
			input: "a <b>bold claim",
			want:  Segments{text("a <b>bold claim")},
		},
		{
			name:  "attributes are not recognized",
			input: `<a href="x">link</a>`,
			want:  Segments{text(`<a href="x">link</a>`)},
		},
		{
			name:  "same-name nesting balances",
			input: "<ul><li>a<li>b</li></li></ul>",
			want: Segments{
				markup("<ul>"), markup("<li>"), text("a"), markup("<li>"), text("b"),
				markup("</li>"), markup("</li>"), markup("</ul>"),
			},
		},
		{
			name:  "empty allowed pair",
			input: "x<p></p>y",
			want:  Segments{text("x"), markup("<p>"), markup("</p>"), text("y")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotate(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String(), "segments must reproduce the input")
		})
	}
}

func TestAnnotateRoundTrip(t *testing.T) {
	inputs := []string{
		"plain prose with no tags at all",
		"<p>para</p><p>another <b>para</b></p>",
		"<<p>>weird</p>>",
		"</p>close before open<p>",
		"<section><h1>T</h1><ul><li>one</li><li>two</li></ul></section>",
		"<p>unterminated <i>italic</p>",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, in, Annotate(in).String())
		})
	}
}

func TestAnnotateUnbalancedInputIsLinear(t *testing.T) {
	const n = 30000
	tests := []struct {
		name  string
		input string
		want  Segments
	}{
		{
			name:  "many unclosed opens before one close",
			input: strings.Repeat("<p>", n) + "</p>",
			want: Segments{
				text(strings.Repeat("<p>", n-1)), markup("<p>"), markup("</p>"),
			},
		},
		{
			name:  "many stray closes after one pair",
			input: "<b>x</b>" + strings.Repeat("</b>", n),
			want: Segments{
				markup("<b>"), text("x"), markup("</b>"), text(strings.Repeat("</b>", n)),
			},
		},
		{
			name:  "alternating unmatched names",
			input: strings.Repeat("<i><b>", n/2),
			want:  Segments{text(strings.Repeat("<i><b>", n/2))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			got := Annotate(tt.input)
			elapsed := time.Since(start)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
			assert.Less(t, elapsed, time.Second, "annotating %d bytes took %s", len(tt.input), elapsed)
		})
	}
}

func TestPairTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][2]int // start, end of each pair
	}{
		{name: "none", input: "plain", want: nil},
		{name: "single", input: "<p>x</p>", want: [][2]int{{0, 8}}},
		{name: "innermost open wins", input: "<p><p>x</p>", want: [][2]int{{3, 11}}},
		{name: "nested same name", input: "<p><p></p></p>", want: [][2]int{{0, 14}, {3, 10}}},
		{name: "case-insensitive", input: "<B>x</b>", want: [][2]int{{0, 8}}},
		{name: "stray close ignored", input: "</p><p>x</p>", want: [][2]int{{4, 12}}},
		{name: "malformed close is literal", input: "<p></p x></p>", want: [][2]int{{0, 13}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			for _, p := range pairTags(tt.input) {
				got = append(got, [2]int{p.start, p.end})
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnnotateCheckable(t *testing.T) {
	segs := Annotate("Use <code>petId</code> to <b>find</b> pets")
	assert.Equal(t, "Use  to  pets", segs.Checkable())

	segs = Annotate("<p>Hello <i>world</i></p>")
	assert.Equal(t, "Hello world", segs.Checkable())
	assert.Equal(t, 2, segs.TextCount())
}

func TestOffsetMapping(t *testing.T) {
	segs := Annotate("<p>Hello <i>wrold</i></p>")
	checkable := segs.Checkable()
	require.Equal(t, "Hello wrold", checkable)

	start := strings.Index(checkable, "wrold")
	orig := segs.OriginalOffset(start)
	assert.Equal(t, "wrold", segs.String()[orig:orig+5])
	assert.Equal(t, start, segs.CheckableOffset(orig))

	// Inside markup maps to the checkable position of that markup.
	assert.Equal(t, 6, segs.CheckableOffset(strings.Index(segs.String(), "<i>")+1))

	// End of checkable text maps to the end of the last text segment.
	assert.Equal(t, strings.Index(segs.String(), "</i>"), segs.OriginalOffset(len(checkable)))
}

func TestAnnotatorDepth(t *testing.T) {
	input := strings.Repeat("<p>", 4) + "deep" + strings.Repeat("</p>", 4)

	t.Run("lenient keeps deep content opaque", func(t *testing.T) {
		a := New(WithMaxDepth(2))
		segs, err := a.Annotate(input)
		require.NoError(t, err)
		assert.Equal(t, input, segs.String())
		assert.NotContains(t, segs.Checkable(), "deep")
	})

	t.Run("strict returns resource limit error", func(t *testing.T) {
		a := New(WithMaxDepth(2), WithStrictDepth(true))
		_, err := a.Annotate(input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, spellerrors.ErrResourceLimit))
	})

	t.Run("within limit", func(t *testing.T) {
		segs, err := New(WithMaxDepth(4), WithStrictDepth(true)).Annotate(input)
		require.NoError(t, err)
		assert.Equal(t, "deep", segs.Checkable())
	})
}

func TestPlain(t *testing.T) {
	assert.Equal(t, Segments{}, Plain(""))
	assert.Equal(t, Segments{text("<b>userNaem</b>")}, Plain("<b>userNaem</b>"))
}

func TestIsCheckedTag(t *testing.T) {
	for _, name := range []string{"p", "LI", "Strong", "h6", "tt", "figcaption"} {
		assert.True(t, IsCheckedTag(name), name)
	}
	for _, name := range []string{"code", "script", "pre", "a", "b", "notatag", ""} {
		assert.False(t, IsCheckedTag(name), name)
	}
}

func TestKindText(t *testing.T) {
	b, err := Markup.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "markup", string(b))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("text")))
	assert.Equal(t, Text, k)
	assert.Error(t, k.UnmarshalText([]byte("comment")))
}
