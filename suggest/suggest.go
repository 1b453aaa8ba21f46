package suggest

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/oasspell/spellerrors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLimit is the number of suggestions kept per match.
const DefaultLimit = 4

// TriggerChars force a lower-case correction when they immediately precede
// the corrected span, keeping snake_case and kebab-case segments lower-case.
const TriggerChars = "-_"

// Template is the original text with the matched span cut out.
type Template struct {
	Prefix string
	Suffix string
}

// NewTemplate cuts text[start:end] out of text. Offsets must satisfy
// 0 <= start <= end <= len(text) and fall on rune boundaries.
func NewTemplate(text string, start, end int) (Template, error) {
	if start < 0 || end < start || end > len(text) {
		return Template{}, &spellerrors.OffsetError{Start: start, End: end, Length: len(text)}
	}
	if !onRuneBoundary(text, start) || !onRuneBoundary(text, end) {
		return Template{}, &spellerrors.OffsetError{
			Start:   start,
			End:     end,
			Length:  len(text),
			Message: "offsets must fall on UTF-8 rune boundaries",
		}
	}
	return Template{Prefix: text[:start], Suffix: text[end:]}, nil
}

// Fill places s at the correction site.
func (t Template) Fill(s string) string {
	return t.Prefix + s + t.Suffix
}

// String renders the template with a %s placeholder at the correction site.
func (t Template) String() string {
	return t.Fill("%s")
}

// Preceding returns the rune immediately before the correction site.
func (t Template) Preceding() (rune, bool) {
	if t.Prefix == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(t.Prefix)
	return r, true
}

func onRuneBoundary(text string, i int) bool {
	return i == len(text) || utf8.RuneStart(text[i])
}

// Option configures a Formatter.
type Option func(*Formatter) error

// WithLimit sets the maximum number of suggestions per match.
// Default: DefaultLimit
func WithLimit(limit int) Option {
	return func(f *Formatter) error {
		if limit < 1 {
			return &spellerrors.ConfigError{Option: "limit", Value: limit, Message: "must be at least 1"}
		}
		f.limit = limit
		return nil
	}
}

// WithLanguage sets the language whose case rules apply to candidates.
// Default: language.English
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) error {
		f.tag = tag
		return nil
	}
}

// Formatter turns raw matcher candidates into corrected strings. A Formatter
// is immutable and safe for concurrent use.
type Formatter struct {
	limit  int
	tag    language.Tag
	turkic bool
}

// New creates a Formatter.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{limit: DefaultLimit, tag: language.English}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	f.turkic = isTurkic(f.tag)
	return f, nil
}

// Limit returns the configured suggestion limit.
func (f *Formatter) Limit() int {
	return f.limit
}

var defaultFormatter, _ = New()

// Format formats candidates with the default Formatter.
func Format(text string, start, end int, candidates []string) ([]string, error) {
	return defaultFormatter.Format(text, start, end, candidates)
}

// Format replaces text[start:end] with each candidate. Candidates are
// lower-cased and de-duplicated in matcher order, truncated to the limit,
// then cased for their position: lower-case after a trigger character,
// capitalized otherwise.
//
//	Format("user_naem", 5, 9, []string{"name"}) // ["user_name"]
//	Format("Recieve", 0, 7, []string{"Receive", "receive"}) // ["Receive"]
func (f *Formatter) Format(text string, start, end int, candidates []string) ([]string, error) {
	tmpl, err := NewTemplate(text, start, end)
	if err != nil {
		return nil, err
	}

	lower := cases.Lower(f.tag)
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]string, 0, min(len(candidates), f.limit))
	for _, c := range candidates {
		if len(unique) == f.limit {
			break
		}
		c = lower.String(c)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}

	keepLower := false
	if r, ok := tmpl.Preceding(); ok {
		keepLower = strings.ContainsRune(TriggerChars, r)
	}

	out := make([]string, 0, len(unique))
	for _, c := range unique {
		if !keepLower {
			c = f.capitalize(c)
		}
		out = append(out, tmpl.Fill(c))
	}
	return out, nil
}

// capitalize title-cases the first rune and leaves the rest unchanged. A
// rune with no single-rune title case, such as ß, is kept as is.
func (f *Formatter) capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	if f.turkic {
		r = unicode.TurkishCase.ToTitle(r)
	} else {
		r = unicode.ToTitle(r)
	}
	return string(r) + s[size:]
}

// isTurkic reports whether tag uses the Turkish dotted and dotless i rules.
func isTurkic(tag language.Tag) bool {
	base, _ := tag.Base()
	switch base.String() {
	case "tr", "az":
		return true
	}
	return false
}
