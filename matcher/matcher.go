package matcher

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/erraggy/oasspell/annotate"
	"golang.org/x/text/language"
)

// Mode selects which class of problems a matcher reports.
type Mode int

const (
	// ModeSpelling reports spelling mistakes only.
	ModeSpelling Mode = iota
	// ModeGrammar reports grammar and style problems, excluding spelling.
	ModeGrammar
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSpelling:
		return "spelling"
	case ModeGrammar:
		return "grammar"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "spelling" or "grammar".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "spelling", "spellcheck":
		return ModeSpelling, nil
	case "grammar", "proofread":
		return ModeGrammar, nil
	default:
		return 0, fmt.Errorf("matcher: unknown mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseMode.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// InputKind tells a matcher how the text is used in the model.
type InputKind int

const (
	// Identifier is a name: a shape, member, namespace, or operation id.
	Identifier InputKind = iota
	// Prose is free text such as documentation or a summary.
	Prose
)

// String returns the kind name.
func (k InputKind) String() string {
	if k == Prose {
		return "prose"
	}
	return "identifier"
}

// Input is one piece of text handed to a matcher.
type Input struct {
	Segments annotate.Segments
	Kind     InputKind
}

// IdentifierInput wraps a name as a single plain segment.
func IdentifierInput(name string) Input {
	return Input{Segments: annotate.Plain(name), Kind: Identifier}
}

// ProseInput wraps already-annotated documentation.
func ProseInput(segs annotate.Segments) Input {
	return Input{Segments: segs, Kind: Prose}
}

// Text returns the checkable text that match offsets refer to.
func (in Input) Text() string {
	return in.Segments.Checkable()
}

// Match is one problem found by a matcher. Start and End are byte offsets
// into Input.Text(), end exclusive.
type Match struct {
	Start        int      `json:"start" yaml:"start"`
	End          int      `json:"end" yaml:"end"`
	Message      string   `json:"message,omitempty" yaml:"message,omitempty"`
	ShortMessage string   `json:"shortMessage,omitempty" yaml:"shortMessage,omitempty"`
	RuleID       string   `json:"ruleId,omitempty" yaml:"ruleId,omitempty"`
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
	Replacements []string `json:"replacements,omitempty" yaml:"replacements,omitempty"`
}

// Covered returns the matched slice of text, or "" when the offsets do not
// fit.
func (m Match) Covered(text string) string {
	if m.Start < 0 || m.End < m.Start || m.End > len(text) {
		return ""
	}
	return text[m.Start:m.End]
}

// Matcher checks text for problems. A Matcher may hold expensive state such
// as a loaded dictionary or a connection pool; it is created once per worker
// and is not required to be safe for concurrent use.
type Matcher interface {
	Check(ctx context.Context, in Input) ([]Match, error)
	Close() error
}

// Config is passed to a Factory when a matcher is created.
type Config struct {
	// Language is a BCP 47 tag such as "en" or "en-GB".
	Language string
	// Mode selects spelling or grammar checks.
	Mode Mode
	// Ignore lists words that are never reported. Comparison is case-insensitive.
	Ignore []string
	// Endpoint is the base URL of a remote engine.
	Endpoint string
	// Dictionaries are word list files for local engines.
	Dictionaries []string
	// HTTPClient is used by remote engines. nil means a default client.
	HTTPClient *http.Client
	// UserAgent is sent by remote engines.
	UserAgent string
}

// englishTerms are common in API documentation and missing from general
// English dictionaries.
var englishTerms = []string{"docstring", "doc", "api", "sdk"}

// Tag parses Language. An empty language is English.
func (c Config) Tag() (language.Tag, error) {
	if c.Language == "" {
		return language.English, nil
	}
	return language.Parse(c.Language)
}

// IgnoreTerms returns the configured ignore list plus the built-in terms for
// the configured language.
func (c Config) IgnoreTerms() []string {
	terms := append([]string(nil), c.Ignore...)
	tag, err := c.Tag()
	if err != nil {
		return terms
	}
	if base, _ := tag.Base(); base.String() == "en" {
		terms = append(terms, englishTerms...)
	}
	return terms
}

// Factory creates a Matcher.
type Factory func(Config) (Matcher, error)
