package textindex

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// Dialect is the kind of model a document holds.
type Dialect string

const (
	// DialectOpenAPI is an OpenAPI 3.x document.
	DialectOpenAPI Dialect = "openapi"
	// DialectSwagger is a Swagger 2.0 document.
	DialectSwagger Dialect = "swagger"
	// DialectSmithy is a Smithy JSON AST model.
	DialectSmithy Dialect = "smithy"
)

// SourceFormat is the serialization format of a document.
type SourceFormat string

const (
	// SourceFormatJSON is JSON input.
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML is YAML input.
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatUnknown means the format could not be determined.
	SourceFormatUnknown SourceFormat = "unknown"
)

// Document is a loaded model and the text instances found in it.
type Document struct {
	// SourcePath is the file path or URL the document was loaded from.
	SourcePath string
	// Dialect is the detected model kind.
	Dialect Dialect
	// Version is the value of the openapi, swagger, or smithy root key.
	Version string
	// Format is the detected serialization format.
	Format SourceFormat

	root      *yaml.Node
	instances []Instance
}

// Instances returns the text instances in document order. The slice is
// shared; callers must not modify it.
func (d *Document) Instances() []Instance {
	return d.instances
}

// Root returns the root mapping node.
func (d *Document) Root() *yaml.Node {
	return d.root
}

// ExtensionKey is the OpenAPI root extension holding embedded settings.
const ExtensionKey = "x-oasspell"

// EmbeddedSettings returns settings for the named validator embedded in the
// model, or nil. OpenAPI documents carry them under the x-oasspell root
// extension, optionally nested under the validator name in lower case.
// Smithy models carry them as the configuration of a metadata validators
// entry with that name.
func (d *Document) EmbeddedSettings(validator string) *yaml.Node {
	switch d.Dialect {
	case DialectSmithy:
		_, validators := lookup(d.root, "metadata", "validators")
		if validators == nil || validators.Kind != yaml.SequenceNode {
			return nil
		}
		for _, v := range validators.Content {
			if _, name := lookup(v, "name"); isString(name) && name.Value == validator {
				_, cfg := lookup(v, "configuration")
				return cfg
			}
		}
		return nil
	default:
		_, ext := lookup(d.root, ExtensionKey)
		if ext == nil || ext.Kind != yaml.MappingNode {
			return nil
		}
		if _, nested := lookup(ext, strings.ToLower(validator)); nested != nil && nested.Kind == yaml.MappingNode {
			return nested
		}
		return ext
	}
}

// lookup follows keys through nested mappings and returns the last key node
// and its value, or nils when a key is missing.
func lookup(node *yaml.Node, keys ...string) (*yaml.Node, *yaml.Node) {
	var key *yaml.Node
	for _, k := range keys {
		if node == nil || node.Kind != yaml.MappingNode {
			return nil, nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == k {
				key, next = node.Content[i], node.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil, nil
		}
		node = next
	}
	return key, node
}

// isString reports whether node is a string scalar.
func isString(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str"
}
