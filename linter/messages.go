package linter

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasspell/internal/issues"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/textindex"
)

const (
	// SpellCheckName prefixes the ids of spelling issues.
	SpellCheckName = "SpellCheck"
	// ProofreadName prefixes the ids of grammar issues.
	ProofreadName = "Proofread"
)

// ValidatorName returns the issue id prefix for mode. It is also the name
// under which settings are embedded in a model.
func ValidatorName(mode matcher.Mode) string {
	if mode == matcher.ModeGrammar {
		return ProofreadName
	}
	return SpellCheckName
}

// FailureID returns the id of issues reporting text that could not be
// checked.
func FailureID(mode matcher.Mode) string {
	return issues.JoinID(ValidatorName(mode), "Failure")
}

// spellingID returns the issue id for a typo found in inst.
func spellingID(inst textindex.Instance) string {
	switch inst.Kind {
	case textindex.KindNamespace:
		return issues.JoinID(SpellCheckName, "Namespace")
	case textindex.KindTrait:
		if inst.Documentation {
			return issues.JoinID(SpellCheckName, "Trait", inst.Trait)
		}
		return issues.JoinID(SpellCheckName, "Trait", inst.Trait, inst.PropertyPathString())
	default:
		return issues.JoinID(SpellCheckName, "Shape")
	}
}

// spellingMessage describes a typo found in inst.
func spellingMessage(inst textindex.Instance, suggestions []string) string {
	var what string
	switch {
	case inst.Kind == textindex.KindNamespace:
		what = fmt.Sprintf("namespace `%s`", inst.Text)
	case inst.Kind == textindex.KindShape:
		what = fmt.Sprintf("shape name `%s`", inst.Text)
	case inst.Documentation:
		what = "docstring"
	case len(inst.PropertyPath) > 0:
		what = fmt.Sprintf("trait `%s` at path {%s}", inst.Trait, inst.PropertyPathString())
	default:
		what = fmt.Sprintf("trait `%s`", inst.Trait)
	}
	return "Potential typo in " + what + ". " + describeSuggestions(suggestions)
}

// describeSuggestions renders "Suggested correction(s): [a, b]".
func describeSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return "No suggestions available."
	}
	return "Suggested correction(s): [" + strings.Join(suggestions, ", ") + "]"
}

// grammarID returns the issue id for a grammar match.
func grammarID(m matcher.Match) string {
	return issues.JoinID(ProofreadName, m.RuleID)
}

var suggestionTags = strings.NewReplacer("<suggestion>", "`", "</suggestion>", "`")

// grammarMessage renders a matcher message with suggestion tags as
// backticks.
func grammarMessage(m matcher.Match) string {
	msg := m.Message
	if msg == "" {
		msg = m.ShortMessage
	}
	return suggestionTags.Replace(msg)
}
