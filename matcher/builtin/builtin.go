// Package builtin registers the matcher engines that ship with oasspell.
package builtin

import (
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/matcher/languagetool"
	"github.com/erraggy/oasspell/matcher/wordlist"
)

// DefaultEngine is the engine used when none is configured.
const DefaultEngine = languagetool.Name

// Registry returns a new registry holding every built-in engine.
func Registry() *matcher.Registry {
	reg := matcher.NewRegistry()
	mustRegister(reg, languagetool.Name, languagetool.New)
	mustRegister(reg, wordlist.Name, wordlist.New)
	return reg
}

func mustRegister(reg *matcher.Registry, name string, f matcher.Factory) {
	if err := reg.Register(name, f); err != nil {
		panic(err)
	}
}
