package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/erraggy/oasspell"
	"github.com/erraggy/oasspell/cmd/oasspell/commands"
	"github.com/erraggy/oasspell/internal/mcpserver"
	"github.com/erraggy/oasspell/matcher/wordlist"
)

// commandNames lists every command accepted by main, for typo suggestions.
var commandNames = []string{"check", "proofread", "tokenize", "annotate", "suggest", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, args := os.Args[1], os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		if slices.Contains(args, "--verbose") {
			fmt.Println(oasspell.BuildInfo())
		} else {
			fmt.Printf("oasspell v%s\n", oasspell.Version())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "check", "spellcheck":
		err = commands.HandleCheck(ctx, args)
	case "proofread":
		err = commands.HandleProofread(ctx, args)
	case "tokenize":
		err = commands.HandleTokenize(args)
	case "annotate":
		err = commands.HandleAnnotate(args)
	case "suggest":
		err = commands.HandleSuggest(args)
	case "mcp":
		err = mcpserver.Run(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	stop()
	if err != nil {
		if !errors.Is(err, commands.ErrIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to a mistyped one, or "" when
// none is within two edits.
func suggestCommand(input string) string {
	matches := wordlist.NewDictionary(commandNames).Candidates(input, 2, 1)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

func printUsage() {
	fmt.Println(`oasspell - spell checking for API models

Usage:
  oasspell <command> [options]

Commands:
  check       Spell check names and documentation of an OpenAPI or Smithy model
  proofread   Check documentation for grammar and style problems
  tokenize    Split an identifier into words
  annotate    Split documentation into text and markup
  suggest     Build corrected versions of a text from candidates
  mcp         Run the MCP server over stdio
  version     Show version information (--verbose for build details)
  help        Show this help message

Examples:
  oasspell check openapi.yaml
  oasspell check --engine wordlist --dict words.txt model.json
  oasspell proofread --endpoint http://localhost:8081 openapi.yaml
  oasspell tokenize HTTPSProxyURL
  oasspell suggest --start 5 --end 9 user_naem name

Run 'oasspell <command> --help' for more information on a command.`)
}
