// Package languagetool implements a matcher backed by a LanguageTool server
// (https://languagetool.org), reached over its HTTP API.
//
// Text is sent as an annotation so that markup stays out of the check while
// the server's offsets still refer to the original string. Identifiers are
// broken into words before sending: camelCase boundaries and the delimiters
// '_', '@' and '-' become markup interpreted as a space.
//
// Spelling mode enables only the TYPOS rule category; grammar mode runs every
// rule except TYPOS.
//
//	reg := matcher.NewRegistry()
//	_ = reg.Register(languagetool.Name, languagetool.New)
//	m, err := reg.New(languagetool.Name, matcher.Config{
//		Language: "en",
//		Endpoint: "http://localhost:8081",
//	})
//
// Start a local server with the official Docker image or the standalone
// distribution (languagetool-server.jar, default port 8081).
package languagetool
