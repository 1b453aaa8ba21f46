// Package linter checks the text of API models for typos and grammar
// problems.
//
// A lint run loads a model with [textindex], annotates documentation so
// markup stays out of view, hands every selected text to a matcher from a
// [matcher.Registry], and turns each match into an issue with corrected
// suggestions.
//
// # Modes
//
// Spell checking (matcher.ModeSpelling) covers names, namespaces, and trait
// values. Documentation is included unless Config.Docstrings is false. Issue
// ids are:
//
//	SpellCheck.Shape                     a schema, property, operation, or member name
//	SpellCheck.Namespace                 a Smithy namespace
//	SpellCheck.Trait.<trait>             a trait or documentation value
//	SpellCheck.Trait.<trait>.<path>      a string inside a structured trait
//
// Proofreading (matcher.ModeGrammar) covers documentation only and reports
// Proofread.<rule> issues using the matcher's message.
//
// Findings have danger severity. Text that could not be checked is reported
// as a <Validator>.Failure issue with error severity, and the run continues.
//
// # Usage
//
//	cfg := linter.DefaultConfig()
//	cfg.Ignore = []string{"petstore"}
//	result, err := linter.LintWithOptions(ctx,
//		linter.WithFilePath("openapi.yaml"),
//		linter.WithConfig(cfg),
//	)
//	if err != nil {
//		return err
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//
// Matchers are created once per worker and reused, so engines with expensive
// setup such as loading a dictionary pay for it once per worker.
package linter
