package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oasspell/annotate"
	"github.com/erraggy/oasspell/suggest"
	"github.com/erraggy/oasspell/tokenize"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"
)

// checkTextSize rejects text longer than cfg.MaxTextSize.
func checkTextSize(text string) error {
	if len(text) > cfg.MaxTextSize {
		return fmt.Errorf("text size %d bytes exceeds maximum %d bytes; set OASSPELL_MCP_MAX_TEXT_SIZE to increase", len(text), cfg.MaxTextSize)
	}
	return nil
}

type tokenizeInput struct {
	Text      string `json:"text"                 jsonschema:"Identifier or text to split"`
	WordsOnly bool   `json:"words_only,omitempty" jsonschema:"Omit delimiter tokens"`
}

type tokenOutput struct {
	Text      string `json:"text"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Delimiter bool   `json:"delimiter,omitempty"`
}

type tokenizeOutput struct {
	Count  int           `json:"count"`
	Tokens []tokenOutput `json:"tokens,omitempty"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	if err := checkTextSize(input.Text); err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}
	tokens := tokenize.Split(input.Text)
	if input.WordsOnly {
		tokens = tokenize.Words(input.Text)
	}
	output := tokenizeOutput{Count: len(tokens), Tokens: makeSlice[tokenOutput](len(tokens))}
	for _, tok := range tokens {
		output.Tokens = append(output.Tokens, tokenOutput{
			Text:      tok.Text,
			Start:     tok.Start,
			End:       tok.End,
			Delimiter: tok.Delimiter,
		})
	}
	return nil, output, nil
}

type annotateInput struct {
	Text     string `json:"text"                jsonschema:"Documentation text, possibly containing HTML tags"`
	MaxDepth int    `json:"max_depth,omitempty" jsonschema:"Nesting depth after which tags are kept as opaque markup (default 64)"`
}

type segmentOutput struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

type annotateOutput struct {
	Segments  []segmentOutput `json:"segments,omitempty"`
	Checkable string          `json:"checkable"`
	TextCount int             `json:"text_count"`
}

func handleAnnotate(_ context.Context, _ *mcp.CallToolRequest, input annotateInput) (*mcp.CallToolResult, annotateOutput, error) {
	if err := checkTextSize(input.Text); err != nil {
		return errResult(err), annotateOutput{}, nil
	}
	segs, err := annotate.New(annotate.WithMaxDepth(input.MaxDepth)).Annotate(input.Text)
	if err != nil {
		return errResult(err), annotateOutput{}, nil
	}
	output := annotateOutput{
		Segments:  makeSlice[segmentOutput](len(segs)),
		Checkable: segs.Checkable(),
		TextCount: segs.TextCount(),
	}
	for _, seg := range segs {
		output.Segments = append(output.Segments, segmentOutput{Kind: seg.Kind.String(), Content: seg.Content})
	}
	return nil, output, nil
}

type suggestInput struct {
	Text       string   `json:"text"               jsonschema:"The original text"`
	Start      int      `json:"start"              jsonschema:"Byte offset where the misspelled span starts"`
	End        int      `json:"end"                jsonschema:"Byte offset where the misspelled span ends (exclusive)"`
	Candidates []string `json:"candidates"         jsonschema:"Replacement candidates in preference order"`
	Limit      int      `json:"limit,omitempty"    jsonschema:"Maximum number of suggestions (default 4)"`
	Language   string   `json:"language,omitempty" jsonschema:"BCP 47 language tag for capitalization rules (default en)"`
}

type suggestOutput struct {
	Template    string   `json:"template"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func handleSuggest(_ context.Context, _ *mcp.CallToolRequest, input suggestInput) (*mcp.CallToolResult, suggestOutput, error) {
	if err := checkTextSize(input.Text); err != nil {
		return errResult(err), suggestOutput{}, nil
	}
	opts := []suggest.Option{}
	if input.Limit > 0 {
		opts = append(opts, suggest.WithLimit(input.Limit))
	}
	if input.Language != "" {
		tag, err := language.Parse(input.Language)
		if err != nil {
			return errResult(fmt.Errorf("invalid language %q: %w", input.Language, err)), suggestOutput{}, nil
		}
		opts = append(opts, suggest.WithLanguage(tag))
	}
	f, err := suggest.New(opts...)
	if err != nil {
		return errResult(err), suggestOutput{}, nil
	}

	tmpl, err := suggest.NewTemplate(input.Text, input.Start, input.End)
	if err != nil {
		return errResult(err), suggestOutput{}, nil
	}
	suggestions, err := f.Format(input.Text, input.Start, input.End, input.Candidates)
	if err != nil {
		return errResult(err), suggestOutput{}, nil
	}
	return nil, suggestOutput{Template: tmpl.String(), Suggestions: suggestions}, nil
}
