package textindex

import (
	"strings"

	"github.com/erraggy/oasspell/internal/pathutil"
	"go.yaml.in/yaml/v4"
)

// PreludeNamespace is the namespace of Smithy's built-in traits.
const PreludeNamespace = "smithy.api"

// DocumentationTrait is the shape id of the documentation trait.
const DocumentationTrait = PreludeNamespace + "#documentation"

// machineTraits hold identifiers, patterns, and selectors rather than text.
var machineTraits = map[string]bool{
	PreludeNamespace + "#pattern":         true,
	PreludeNamespace + "#http":            true,
	PreludeNamespace + "#timestampFormat": true,
	PreludeNamespace + "#mediaType":       true,
	PreludeNamespace + "#idRef":           true,
	PreludeNamespace + "#suppress":        true,
	PreludeNamespace + "#trait":           true,
	PreludeNamespace + "#auth":            true,
	PreludeNamespace + "#protocols":       true,
}

// collectionMembers are the members of list, set, and map shapes. Their
// names are fixed by Smithy, so only their traits are indexed.
var collectionMembers = []string{"member", "key", "value"}

// IdiomaticTraitName returns a trait's short name: prelude traits drop their
// namespace, other traits use their full id with '#' replaced by '.'.
func IdiomaticTraitName(id string) string {
	if name, ok := strings.CutPrefix(id, PreludeNamespace+"#"); ok {
		return name
	}
	return strings.ReplaceAll(id, "#", ".")
}

// SplitShapeID splits "ns#Name$member" into its parts. Missing parts are
// empty.
func SplitShapeID(id string) (namespace, name, member string) {
	namespace, rest, ok := strings.Cut(id, "#")
	if !ok {
		return "", id, ""
	}
	name, member, _ = strings.Cut(rest, "$")
	return namespace, name, member
}

type smithyIndexer struct {
	file       string
	path       *pathutil.PathBuilder
	namespaces map[string]bool
	out        []Instance
}

func indexSmithy(root *yaml.Node, file string) []Instance {
	ix := &smithyIndexer{file: file, path: pathutil.Get(), namespaces: make(map[string]bool)}
	defer pathutil.Put(ix.path)

	k, shapes := lookup(root, "shapes")
	if shapes == nil || shapes.Kind != yaml.MappingNode {
		return nil
	}
	ix.path.Push(k.Value)
	for i := 0; i+1 < len(shapes.Content); i += 2 {
		ix.shape(shapes.Content[i], shapes.Content[i+1])
	}
	ix.path.Pop()
	return ix.out
}

func (ix *smithyIndexer) shape(key, body *yaml.Node) {
	id := key.Value
	ns, name, _ := SplitShapeID(id)

	ix.path.Push(id)
	defer ix.path.Pop()

	if ns != "" && !ix.namespaces[ns] {
		ix.namespaces[ns] = true
		ix.add(Instance{Kind: KindNamespace, Text: ns, Shape: id}, key)
	}
	if body.Kind != yaml.MappingNode {
		return
	}

	typ := ""
	if _, t := lookup(body, "type"); isString(t) {
		typ = t.Value
	}
	// apply statements attach traits to shapes defined elsewhere.
	if typ != "apply" {
		ix.add(Instance{Kind: KindShape, Text: name, Shape: id}, key)
	}
	ix.traits(body, id)

	switch typ {
	case "list", "set", "map":
		for _, name := range collectionMembers {
			if mk, mBody := lookup(body, name); mBody != nil {
				ix.path.Push(mk.Value)
				ix.traits(mBody, id+"$"+name)
				ix.path.Pop()
			}
		}
		return
	}

	mk, members := lookup(body, "members")
	if members == nil || members.Kind != yaml.MappingNode {
		return
	}
	ix.path.Push(mk.Value)
	for i := 0; i+1 < len(members.Content); i += 2 {
		mKey, mBody := members.Content[i], members.Content[i+1]
		memberID := id + "$" + mKey.Value
		ix.path.Push(mKey.Value)
		ix.add(Instance{Kind: KindShape, Text: mKey.Value, Shape: memberID}, mKey)
		ix.traits(mBody, memberID)
		ix.path.Pop()
	}
	ix.path.Pop()
}

func (ix *smithyIndexer) traits(body *yaml.Node, shape string) {
	tk, traits := lookup(body, "traits")
	if traits == nil || traits.Kind != yaml.MappingNode {
		return
	}
	ix.path.Push(tk.Value)
	for i := 0; i+1 < len(traits.Content); i += 2 {
		traitID, value := traits.Content[i].Value, traits.Content[i+1]
		if machineTraits[traitID] {
			continue
		}
		ix.path.Push(traitID)
		ix.traitValue(value, shape, traitID, nil)
		ix.path.Pop()
	}
	ix.path.Pop()
}

// traitValue indexes every string inside a trait value. props holds the
// object keys leading to the value; list positions are not part of it.
func (ix *smithyIndexer) traitValue(node *yaml.Node, shape, traitID string, props []string) {
	switch node.Kind {
	case yaml.ScalarNode:
		if !isString(node) || strings.TrimSpace(node.Value) == "" {
			return
		}
		ix.add(Instance{
			Kind:          KindTrait,
			Text:          node.Value,
			Shape:         shape,
			Trait:         IdiomaticTraitName(traitID),
			PropertyPath:  append([]string(nil), props...),
			Documentation: traitID == DocumentationTrait,
		}, node)
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			ix.path.Push(key)
			ix.traitValue(node.Content[i+1], shape, traitID, append(props, key))
			ix.path.Pop()
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			ix.path.PushIndex(i)
			ix.traitValue(item, shape, traitID, props)
			ix.path.Pop()
		}
	}
}

func (ix *smithyIndexer) add(inst Instance, at *yaml.Node) {
	inst.Path = ix.path.String()
	inst.Location = Location{File: ix.file, Line: at.Line, Column: at.Column}
	ix.out = append(ix.out, inst)
}
