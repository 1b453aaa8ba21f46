// Package oasspell checks the identifiers and documentation of API model
// definitions for spelling and grammar problems.
//
// API models mix prose with code: schema names are camelCase, parameters are
// snake_case, headers are kebab-case, and descriptions embed HTML-like tags,
// acronyms, URLs, and email addresses. A generic spell checker flags most of
// that as noise. oasspell normalizes each piece of text before a language
// engine sees it and turns the engine's raw replacements back into
// suggestions that keep the original naming convention.
//
// # Packages
//
//   - annotate: split documentation into checkable prose and opaque markup
//   - tokenize: split identifiers on code delimiters and camelCase boundaries
//   - suggest: turn replacement candidates into corrected strings
//   - textindex: load OpenAPI and Smithy JSON AST models and list the text
//     instances to check
//   - matcher: the language engine interface and registry, with
//     languagetool (remote LanguageTool server) and wordlist (local
//     dictionary) engines
//   - linter: run a matcher over every instance of a model and report issues
//   - spellerrors: typed errors for use with errors.Is and errors.As
//
// # Quick Start
//
//	cfg := linter.DefaultConfig()
//	cfg.Engine = "wordlist"
//	cfg.Dictionaries = []string{"words.txt"}
//
//	result, err := linter.LintWithOptions(ctx,
//		linter.WithFilePath("openapi.yaml"),
//		linter.WithConfig(cfg),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue.String())
//	}
//
// The three text-processing packages are pure and can be used on their own:
//
//	segs := annotate.Annotate("<p>Returns the <code>petId</code></p>")
//	words := tokenize.Words("userNaem")         // user, Naem
//	fixes, _ := suggest.Format("userNaem", 4, 8, []string{"name"}) // userName
//
// # Command Line
//
// The oasspell command wraps the linter:
//
//	oasspell check openapi.yaml
//	oasspell proofread --endpoint http://localhost:8081 model.json
//	oasspell mcp
package oasspell
