package matcher

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/erraggy/oasspell/spellerrors"
)

// Registry maps engine names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Names are case-insensitive and may be
// registered once.
func (r *Registry) Register(name string, f Factory) error {
	key := strings.ToLower(name)
	if key == "" || f == nil {
		return &spellerrors.ConfigError{Option: "engine", Value: name, Message: "name and factory are required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[key]; ok {
		return &spellerrors.ConfigError{Option: "engine", Value: name, Message: "already registered"}
	}
	r.factories[key] = f
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.ToLower(name)]
	return ok
}

// Names returns the registered engine names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New creates a matcher for the named engine. The returned matcher drops
// matches on cfg.IgnoreTerms().
func (r *Registry) New(name string, cfg Config) (Matcher, error) {
	r.mu.RLock()
	f, ok := r.factories[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, &spellerrors.ConfigError{
			Option:  "engine",
			Value:   name,
			Message: fmt.Sprintf("unknown engine (available: %s)", strings.Join(r.Names(), ", ")),
		}
	}
	if _, err := cfg.Tag(); err != nil {
		return nil, &spellerrors.ConfigError{Option: "language", Value: cfg.Language, Cause: err}
	}

	m, err := f(cfg)
	if err != nil {
		return nil, err
	}
	return WithIgnore(m, cfg.IgnoreTerms()), nil
}
