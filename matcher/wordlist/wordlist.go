package wordlist

import (
	"context"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/spellerrors"
	"github.com/erraggy/oasspell/tokenize"
)

// Name is the registry name of this engine.
const Name = "wordlist"

// RuleID identifies matches reported by this engine.
const RuleID = "WORDLIST_SPELLING"

const (
	maxDistance   = 2
	maxCandidates = 10
	minWordLength = 2
)

// Matcher reports words that are missing from a Dictionary.
type Matcher struct {
	dict *Dictionary
}

// New creates a Matcher for cfg. It implements matcher.Factory. Dictionaries
// are loaded from cfg.Dictionaries, or DefaultDictionary when none are given.
func New(cfg matcher.Config) (matcher.Matcher, error) {
	if cfg.Mode != matcher.ModeSpelling {
		return nil, &spellerrors.ConfigError{
			Option:  "mode",
			Value:   cfg.Mode.String(),
			Message: "the wordlist engine only checks spelling",
		}
	}
	dict, err := Load(cfg.Dictionaries...)
	if err != nil {
		return nil, err
	}
	return NewMatcher(dict), nil
}

// NewMatcher creates a Matcher over dict.
func NewMatcher(dict *Dictionary) *Matcher {
	return &Matcher{dict: dict}
}

// Check splits the checkable text with the code tokenizer and reports every
// unknown word. Words containing non-letters, single letters, and all
// upper-case acronyms are not checked.
func (m *Matcher) Check(ctx context.Context, in matcher.Input) ([]matcher.Match, error) {
	var out []matcher.Match
	for _, tok := range tokenize.Words(in.Text()) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !checkable(tok.Text) || m.dict.Contains(tok.Text) {
			continue
		}
		out = append(out, matcher.Match{
			Start:        tok.Start,
			End:          tok.End,
			Message:      "Possible spelling mistake found.",
			ShortMessage: "Spelling mistake",
			RuleID:       RuleID,
			Category:     "TYPOS",
			Replacements: m.dict.Candidates(tok.Text, maxDistance, maxCandidates),
		})
	}
	return out, nil
}

// Close is a no-op; dictionaries are shared and cached.
func (m *Matcher) Close() error {
	return nil
}

func checkable(word string) bool {
	if utf8.RuneCountInString(word) < minWordLength {
		return false
	}
	upper := true
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsUpper(r) {
			upper = false
		}
	}
	return !upper
}
