package testutil

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/tokenize"
)

// StaticEngine is the registry name used by StaticRegistry.
const StaticEngine = "static"

// Phrase is a grammar rule of a StaticMatcher: every occurrence of Text is
// reported with Message and RuleID.
type Phrase struct {
	Text         string
	Message      string
	RuleID       string
	Replacements []string
}

// StaticMatcher is a matcher.Matcher driven by fixed tables. In spelling
// mode it reports every word (as split by the code tokenizer) found in
// Typos, offering the mapped replacements. In grammar mode it reports every
// occurrence of each Phrase.
type StaticMatcher struct {
	Mode    matcher.Mode
	Typos   map[string][]string
	Phrases []Phrase
	// Err, when set, is returned by every Check.
	Err error

	calls  atomic.Int64
	closed atomic.Bool
}

// Check implements matcher.Matcher.
func (m *StaticMatcher) Check(ctx context.Context, in matcher.Input) ([]matcher.Match, error) {
	m.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}

	text := in.Text()
	var out []matcher.Match
	if m.Mode == matcher.ModeGrammar {
		for _, p := range m.Phrases {
			for from := 0; ; {
				i := strings.Index(text[from:], p.Text)
				if i < 0 {
					break
				}
				start := from + i
				out = append(out, matcher.Match{
					Start:        start,
					End:          start + len(p.Text),
					Message:      p.Message,
					RuleID:       p.RuleID,
					Category:     "GRAMMAR",
					Replacements: p.Replacements,
				})
				from = start + len(p.Text)
			}
		}
		return out, nil
	}

	for _, tok := range tokenize.Words(text) {
		repl, ok := m.Typos[tok.Text]
		if !ok {
			continue
		}
		out = append(out, matcher.Match{
			Start:        tok.Start,
			End:          tok.End,
			Message:      "Possible spelling mistake found.",
			RuleID:       "STATIC_SPELLING",
			Category:     "TYPOS",
			Replacements: repl,
		})
	}
	return out, nil
}

// Close implements matcher.Matcher.
func (m *StaticMatcher) Close() error {
	m.closed.Store(true)
	return nil
}

// Calls returns how many times Check ran.
func (m *StaticMatcher) Calls() int {
	return int(m.calls.Load())
}

// Closed reports whether Close was called.
func (m *StaticMatcher) Closed() bool {
	return m.closed.Load()
}

// StaticRegistry returns a registry holding StaticEngine. Every matcher it
// creates is built by proto and recorded in the returned Created.
func StaticRegistry(proto func(matcher.Config) *StaticMatcher) (*matcher.Registry, *Created) {
	created := &Created{}
	reg := matcher.NewRegistry()
	_ = reg.Register(StaticEngine, func(cfg matcher.Config) (matcher.Matcher, error) {
		m := proto(cfg)
		m.Mode = cfg.Mode
		created.add(m)
		return m, nil
	})
	return reg, created
}

// Typos returns a StaticRegistry whose matchers report typos.
func Typos(typos map[string][]string) *matcher.Registry {
	reg, _ := StaticRegistry(func(matcher.Config) *StaticMatcher {
		return &StaticMatcher{Typos: typos}
	})
	return reg
}

// Created records the matchers made by a StaticRegistry.
type Created struct {
	mu       sync.Mutex
	matchers []*StaticMatcher
}

func (c *Created) add(m *StaticMatcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.matchers = append(c.matchers, m)
}

// All returns the matchers created so far.
func (c *Created) All() []*StaticMatcher {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*StaticMatcher(nil), c.matchers...)
}
