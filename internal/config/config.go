// Package config resolves linter settings from config files, settings
// embedded in the model, and OASSPELL_* environment variables.
//
// Sources are applied in this order, later ones overriding earlier ones:
//
//  1. linter.DefaultConfig()
//  2. a project file (.oasspell.yaml, .oasspell.yml, .oasspell.json, or
//     .oasspell.toml)
//  3. settings embedded in the model (see textindex.Document.EmbeddedSettings)
//  4. OASSPELL_* environment variables
//
// Command-line flags are applied by the caller after Resolve. Ignore lists
// accumulate across sources instead of replacing each other.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasspell/linter"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/spellerrors"
	"github.com/erraggy/oasspell/textindex"
)

// FileNames are the project config files looked up by Find, in order.
var FileNames = []string{".oasspell.yaml", ".oasspell.yml", ".oasspell.json", ".oasspell.toml"}

// Find returns the first config file in dir named in FileNames.
func Find(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// LoadFile applies the settings in a YAML, JSON, or TOML file to cfg.
// Unknown keys are a *spellerrors.ConfigError so typos do not pass silently.
func LoadFile(path string, cfg *linter.Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided input
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	return accumulate(cfg, func(c *linter.Config) error {
		if filepath.Ext(path) == ".toml" {
			return decodeTOML(path, data, c)
		}
		return decodeYAML(path, data, c)
	})
}

func decodeYAML(path string, data []byte, cfg *linter.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return &spellerrors.ConfigError{Option: "file", Value: path, Cause: err}
	}
	return nil
}

func decodeTOML(path string, data []byte, cfg *linter.Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return &spellerrors.ConfigError{Option: "file", Value: path, Cause: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return &spellerrors.ConfigError{
			Option:  "file",
			Value:   path,
			Message: "unknown keys: " + strings.Join(keys, ", "),
		}
	}
	return nil
}

// ApplyEmbedded applies the settings embedded in doc for the validator of
// cfg.Mode. The mode itself is never changed by embedded settings.
func ApplyEmbedded(cfg *linter.Config, doc *textindex.Document) error {
	node := doc.EmbeddedSettings(linter.ValidatorName(cfg.Mode))
	if node == nil {
		return nil
	}
	mode := cfg.Mode
	err := accumulate(cfg, func(c *linter.Config) error {
		if err := node.Decode(c); err != nil {
			return &spellerrors.ConfigError{
				Option:  "embedded",
				Value:   doc.SourcePath,
				Message: fmt.Sprintf("invalid settings at line %d", node.Line),
				Cause:   err,
			}
		}
		return nil
	})
	cfg.Mode = mode
	return err
}

// accumulate runs decode over cfg, keeping the ignore terms already in cfg
// ahead of the decoded ones.
func accumulate(cfg *linter.Config, decode func(*linter.Config) error) error {
	prev := cfg.Ignore
	cfg.Ignore = nil
	if err := decode(cfg); err != nil {
		cfg.Ignore = prev
		return err
	}
	cfg.Ignore = append(slices.Clone(prev), cfg.Ignore...)
	return nil
}

// Resolve builds the settings for checking doc: defaults, then the file at
// path (skipped when path is empty), then settings embedded in doc (skipped
// when doc is nil), then the environment. mode selects which embedded
// validator settings apply.
func Resolve(path string, doc *textindex.Document, mode matcher.Mode) (linter.Config, error) {
	cfg := linter.DefaultConfig()
	cfg.Mode = mode
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if doc != nil {
		if err := ApplyEmbedded(&cfg, doc); err != nil {
			return cfg, err
		}
	}
	ApplyEnv(&cfg)
	cfg.Mode = mode
	return cfg, cfg.Validate()
}
