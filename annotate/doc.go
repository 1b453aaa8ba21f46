// Package annotate separates checkable prose from inline markup in
// documentation strings.
//
// Documentation in API models often embeds HTML-like tags. Annotate scans
// for same-name tag pairs (<name>...</name>, content may span lines) and
// produces an ordered list of Segments:
//
//   - text outside any recognized pair is a Text segment;
//   - a pair whose tag is on the allow-list of prose elements (paragraphs,
//     headings, list items, emphasis, spans, and similar) contributes its
//     opening and closing tags as Markup and its content is annotated
//     recursively;
//   - any other pair (code, pre, script, anchors, ...) is a single opaque
//     Markup segment and is never shown to a matcher.
//
// This is not an HTML parser. Tags with attributes, self-closing tags, and
// openings without a balancing close are left in place as literal text.
//
// Concatenating all segments always reproduces the input. Checkable returns
// only the Text content; matchers report offsets against that string, and
// CheckableOffset/OriginalOffset translate between the two.
//
//	segs := annotate.Annotate("<p>Use <code>petId</code> here</p>")
//	segs.Checkable() // "Use  here"
package annotate
