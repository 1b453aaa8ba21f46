// Package options provides shared checks for functional options.
package options

import (
	"strings"

	"github.com/erraggy/oasspell/spellerrors"
)

// Source is one way of supplying input, named by the option that sets it.
type Source struct {
	Option string
	Set    bool
}

// ValidateSingleInputSource ensures exactly one source is set. The returned
// *spellerrors.ConfigError lists the option names so callers can tell the
// user which options conflict or which one is missing.
func ValidateSingleInputSource(sources ...Source) error {
	var names, set []string
	for _, s := range sources {
		names = append(names, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &spellerrors.ConfigError{
			Option:  "input",
			Message: "must specify an input source (use " + strings.Join(names, " or ") + ")",
		}
	default:
		return &spellerrors.ConfigError{
			Option:  "input",
			Message: "must specify exactly one input source (got " + strings.Join(set, " and ") + ")",
		}
	}
}
