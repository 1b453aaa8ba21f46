// Package textindex loads API models and lists the human-written text in
// them.
//
// Three dialects are recognized by their root key: OpenAPI 3.x ("openapi"),
// Swagger 2.0 ("swagger"), and the Smithy JSON AST ("smithy"). Documents may
// be YAML or JSON and are read from a file, an http(s) URL, or stdin.
//
// # Instances
//
// Every checkable string becomes an [Instance]:
//
//   - [KindShape]: names chosen by the author. Schema and property names,
//     operation ids, parameter and tag names in OpenAPI; shape and member
//     names in Smithy.
//   - [KindTrait]: prose. OpenAPI description, summary, and title fields;
//     every string inside a Smithy trait value, with the object keys that
//     lead to it in PropertyPath.
//   - [KindNamespace]: each Smithy namespace, once.
//
// Examples, defaults, enumerations, and x- extensions are payloads rather
// than prose and are never indexed. Smithy traits that hold patterns,
// protocols, or shape references are skipped as well.
//
// Each instance carries its JSON path and its 1-based source location.
//
// # Usage
//
//	doc, err := textindex.Load(ctx, "openapi.yaml")
//	if err != nil {
//		return err
//	}
//	for _, inst := range doc.Instances() {
//		fmt.Println(inst.Path, inst.Text)
//	}
//
// Settings embedded in a model are available through
// [Document.EmbeddedSettings].
package textindex
