package matcher

import (
	"context"

	"golang.org/x/text/cases"
)

type ignoring struct {
	Matcher
	terms map[string]struct{}
}

// WithIgnore wraps m so that matches covering exactly one of terms are
// dropped. Terms compare by Unicode case folding. With no terms m is returned
// unchanged.
func WithIgnore(m Matcher, terms []string) Matcher {
	if len(terms) == 0 {
		return m
	}
	fold := cases.Fold()
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if t != "" {
			set[fold.String(t)] = struct{}{}
		}
	}
	return &ignoring{Matcher: m, terms: set}
}

func (m *ignoring) Check(ctx context.Context, in Input) ([]Match, error) {
	matches, err := m.Matcher.Check(ctx, in)
	if err != nil || len(matches) == 0 {
		return matches, err
	}

	text := in.Text()
	fold := cases.Fold()
	kept := matches[:0]
	for _, match := range matches {
		if _, skip := m.terms[fold.String(match.Covered(text))]; skip {
			continue
		}
		kept = append(kept, match)
	}
	return kept, nil
}
