package textindex

import (
	"strings"

	"github.com/erraggy/oasspell/internal/httputil"
	"github.com/erraggy/oasspell/internal/pathutil"
	"go.yaml.in/yaml/v4"
)

// proseFields hold free text.
var proseFields = map[string]bool{
	"description": true,
	"summary":     true,
	"title":       true,
}

// skippedFields hold payloads and enumerations rather than prose.
var skippedFields = map[string]bool{
	"example":  true,
	"examples": true,
	"default":  true,
	"enum":     true,
	"const":    true,
}

// schemaMaps map schema names to schemas.
var schemaMaps = map[string]bool{
	"schemas":     true,
	"definitions": true,
	"$defs":       true,
}

// nameMaps are fields whose keys are chosen by the author (paths, status
// codes, media types, component names) rather than fixed field names.
var nameMaps = map[string]bool{
	"patternProperties":   true,
	"dependentSchemas":    true,
	"responses":           true,
	"parameters":          true,
	"headers":             true,
	"content":             true,
	"securitySchemes":     true,
	"securityDefinitions": true,
	"callbacks":           true,
	"links":               true,
	"requestBodies":       true,
	"pathItems":           true,
	"webhooks":            true,
	"variables":           true,
	"encoding":            true,
	"mapping":             true,
	"scopes":              true,
}

type openapiIndexer struct {
	file string
	path *pathutil.PathBuilder
	out  []Instance
}

func indexOpenAPI(root *yaml.Node, file string) []Instance {
	ix := &openapiIndexer{file: file, path: pathutil.Get()}
	defer pathutil.Put(ix.path)
	ix.object(root, "")
	return ix.out
}

// object walks a node whose mapping keys are field names. owner names the
// schema, property, or operation the fields belong to.
func (ix *openapiIndexer) object(node *yaml.Node, owner string) {
	switch node.Kind {
	case yaml.SequenceNode:
		for i, item := range node.Content {
			ix.path.PushIndex(i)
			ix.object(item, owner)
			ix.path.Pop()
		}
		return
	case yaml.MappingNode:
	default:
		return
	}

	// Parameters, headers declared as parameters, and apiKey security
	// schemes carry their wire name in "name" next to "in".
	_, in := lookup(node, "in")
	named := isString(in)
	topLevel := ix.path.Depth() == 0

	for i := 0; i+1 < len(node.Content); i += 2 {
		ix.field(node.Content[i], node.Content[i+1], owner, named, topLevel)
	}
}

// field indexes one key/value pair of an object.
func (ix *openapiIndexer) field(k, v *yaml.Node, owner string, named, topLevel bool) {
	key := k.Value
	if strings.HasPrefix(key, "x-") || skippedFields[key] || v.Kind == yaml.AliasNode {
		return
	}

	ix.path.Push(key)
	defer ix.path.Pop()

	switch {
	case proseFields[key] && isString(v):
		ix.add(Instance{
			Kind:          KindTrait,
			Text:          v.Value,
			Shape:         owner,
			Trait:         key,
			Documentation: key == "description",
		}, v)
	case key == "operationId" && isString(v):
		ix.add(Instance{Kind: KindShape, Text: v.Value, Shape: owner}, v)
	case key == "name" && named && isString(v):
		ix.add(Instance{Kind: KindShape, Text: v.Value, Shape: owner}, v)
	case key == "tags" && topLevel && v.Kind == yaml.SequenceNode:
		ix.tags(v)
	case key == "paths" && v.Kind == yaml.MappingNode:
		ix.paths(v)
	case (schemaMaps[key] || key == "properties") && v.Kind == yaml.MappingNode:
		ix.schemas(v, owner, key == "properties")
	case nameMaps[key] && v.Kind == yaml.MappingNode:
		ix.names(v, owner)
	default:
		ix.object(v, owner)
	}
}

// tags indexes the root tag list. Each tag's name is a shape name.
func (ix *openapiIndexer) tags(seq *yaml.Node) {
	for i, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		owner := ""
		if _, name := lookup(item, "name"); isString(name) {
			owner = name.Value
		}
		ix.path.PushIndex(i)
		for j := 0; j+1 < len(item.Content); j += 2 {
			ix.field(item.Content[j], item.Content[j+1], owner, true, false)
		}
		ix.path.Pop()
	}
}

// paths walks path items. Operations are owned by their operationId, or by
// "METHOD /path" when they have none.
func (ix *openapiIndexer) paths(node *yaml.Node) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, item := node.Content[i], node.Content[i+1]
		if strings.HasPrefix(k.Value, "x-") || item.Kind != yaml.MappingNode {
			continue
		}
		ix.path.Push(k.Value)
		for j := 0; j+1 < len(item.Content); j += 2 {
			mk, op := item.Content[j], item.Content[j+1]
			if !httputil.IsMethod(mk.Value) {
				ix.field(mk, op, k.Value, false, false)
				continue
			}
			owner := strings.ToUpper(mk.Value) + " " + k.Value
			if _, id := lookup(op, "operationId"); isString(id) {
				owner = id.Value
			}
			ix.path.Push(mk.Value)
			ix.object(op, owner)
			ix.path.Pop()
		}
		ix.path.Pop()
	}
}

// schemas walks a map of named schemas. Each key is a shape name.
func (ix *openapiIndexer) schemas(node *yaml.Node, owner string, properties bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		name := k.Value
		if !properties && strings.HasPrefix(name, "x-") {
			continue
		}
		shape := name
		if properties && owner != "" {
			shape = owner + "." + name
		}
		ix.path.Push(name)
		ix.add(Instance{Kind: KindShape, Text: name, Shape: shape}, k)
		ix.object(v, shape)
		ix.path.Pop()
	}
}

// names walks a map whose keys are not checked.
func (ix *openapiIndexer) names(node *yaml.Node, owner string) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if strings.HasPrefix(k.Value, "x-") {
			continue
		}
		ix.path.Push(k.Value)
		ix.object(v, owner)
		ix.path.Pop()
	}
}

func (ix *openapiIndexer) add(inst Instance, at *yaml.Node) {
	inst.Path = ix.path.String()
	inst.Location = Location{File: ix.file, Line: at.Line, Column: at.Column}
	ix.out = append(ix.out, inst)
}
