package textindex

import (
	"fmt"
	"strings"
)

// Kind is where a piece of text lives in the model.
type Kind int

const (
	// KindShape is a name: a schema, property, operation id, parameter, tag,
	// shape, or member name.
	KindShape Kind = iota
	// KindTrait is a string value inside a trait or documentation field.
	KindTrait
	// KindNamespace is a Smithy namespace.
	KindNamespace
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindTrait:
		return "trait"
	case KindNamespace:
		return "namespace"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Location is a 1-based position in a source file.
type Location struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// IsKnown reports whether the location has a line number.
func (l Location) IsKnown() bool {
	return l.Line > 0
}

// String returns "file:line:column", or "line:column" without a file.
func (l Location) String() string {
	if !l.IsKnown() {
		return ""
	}
	if l.File != "" {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Instance is one piece of checkable text in a model.
type Instance struct {
	Kind Kind `json:"kind" yaml:"kind"`
	// Text is the text to check.
	Text string `json:"text" yaml:"text"`
	// Shape names what the text belongs to: a schema or property name, an
	// operation, or a Smithy shape id.
	Shape string `json:"shape,omitempty" yaml:"shape,omitempty"`
	// Trait is the idiomatic trait or field name for KindTrait instances.
	Trait string `json:"trait,omitempty" yaml:"trait,omitempty"`
	// PropertyPath lists the object keys leading to the string inside a
	// structured trait value.
	PropertyPath []string `json:"propertyPath,omitempty" yaml:"propertyPath,omitempty"`
	// Path is the JSON path of the text.
	Path string `json:"path" yaml:"path"`
	// Location is where the text starts in the source.
	Location Location `json:"location" yaml:"location"`
	// Documentation marks prose from a documentation trait or description
	// field.
	Documentation bool `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// PropertyPathString joins PropertyPath with dots.
func (i Instance) PropertyPathString() string {
	return strings.Join(i.PropertyPath, ".")
}

// IsProse reports whether the text is free text rather than a name.
func (i Instance) IsProse() bool {
	return i.Kind == KindTrait
}
