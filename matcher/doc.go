// Package matcher defines the language engine interface used by the linter
// and a registry for selecting engines by name.
//
// An engine receives an Input (annotated segments plus whether the text is an
// identifier or prose) and returns Matches whose offsets index the checkable
// text, Input.Text(). Engines are created through a Factory so that each
// worker owns its own instance:
//
//	reg := matcher.NewRegistry()
//	_ = reg.Register("wordlist", wordlist.New)
//	m, err := reg.New("wordlist", matcher.Config{Language: "en"})
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//	matches, err := m.Check(ctx, matcher.IdentifierInput("userNaem"))
//
// Registry.New wraps every engine with WithIgnore so configured ignore terms,
// plus a few terms common in English API documentation, are never reported.
package matcher
