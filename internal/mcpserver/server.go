// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes oasspell's checks and text utilities as tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasspell"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/matcher/builtin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasspell MCP server: spell checks and proofreads the text of OpenAPI documents and Smithy JSON AST models.

Configuration: defaults come from environment variables set in your MCP client config.

Checker settings (shared with the CLI):
- OASSPELL_ENGINE (default: languagetool) - matcher engine, languagetool or wordlist
- OASSPELL_ENDPOINT - LanguageTool server URL
- OASSPELL_LANGUAGE (default: en) - language tag
- OASSPELL_IGNORE - comma-separated words never reported
- OASSPELL_DICTIONARIES - word list files for the wordlist engine

Server settings:
- OASSPELL_MCP_RESULT_LIMIT (default: 100) - default page size for issues
- OASSPELL_MCP_CACHE_ENABLED (default: true) - cache indexed models per session
- OASSPELL_MCP_CACHE_FILE_TTL (default: 15m) / OASSPELL_MCP_CACHE_URL_TTL (default: 5m)
- OASSPELL_MCP_ALLOW_PRIVATE_IPS (default: false) - allow fetching models from private addresses

A .oasspell.yaml next to a file input is honored, as are settings embedded in the model (x-oasspell, or Smithy validator metadata).`

// registry provides the matcher engines used by the check tools.
var registry *matcher.Registry = builtin.Registry()

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasspell", Version: oasspell.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "spellcheck",
		Description: "Spell check the names and text of an OpenAPI document or Smithy JSON AST model: schema, property, parameter, and operation names, namespaces, descriptions, summaries, titles, and trait values. Returns issues with JSON paths, line numbers, and corrected versions of the text. Use docstrings=false to check names only. Use offset/limit to paginate through issues.",
	}, handleSpellcheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "proofread",
		Description: "Check the documentation of an OpenAPI document or Smithy JSON AST model for grammar and style problems (spelling excluded). Requires a grammar-capable engine such as languagetool. Use offset/limit to paginate through issues.",
	}, handleProofread)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split an identifier or text into words the way the checker does: on whitespace, punctuation, '-', '_', '@', and camelCase boundaries, keeping acronyms, e-mail addresses, and URLs whole. Returns tokens with byte offsets.",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "annotate",
		Description: "Split documentation into text and markup segments the way the checker does. Formatting tags such as <p> and <i> keep their content checkable; other tags such as <code> and <b> are skipped. Returns the segments and the checkable text.",
	}, handleAnnotate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest",
		Description: "Build corrected versions of a text from replacement candidates for the span [start, end). Candidates are placed into the original text, capitalized at sentence starts, and made unique, up to limit suggestions.",
	}, handleSuggest)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise make([]T, 0, n).
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages so MCP
// clients do not learn the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
