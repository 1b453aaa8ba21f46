package languagetool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf16"

	"github.com/erraggy/oasspell"
	"github.com/erraggy/oasspell/annotate"
	"github.com/erraggy/oasspell/internal/httputil"
	"github.com/erraggy/oasspell/matcher"
	"github.com/erraggy/oasspell/spellerrors"
	"github.com/erraggy/oasspell/tokenize"
)

// Name is the registry name of this engine.
const Name = "languagetool"

// DefaultEndpoint is where a locally started LanguageTool server listens.
const DefaultEndpoint = "http://localhost:8081"

// typosCategory is the LanguageTool rule category for spelling mistakes.
const typosCategory = "TYPOS"

// maxErrorBody bounds how much of a failed response is kept for the error.
const maxErrorBody = 512

// maxResponse bounds the size of a decoded check response.
const maxResponse = 8 << 20

// variants maps bare language codes to the regional variant LanguageTool
// needs to enable its spelling rules.
var variants = map[string]string{
	"en": "en-US",
	"de": "de-DE",
	"pt": "pt-PT",
}

// Client checks text against a LanguageTool server.
type Client struct {
	endpoint   string
	language   string
	mode       matcher.Mode
	httpClient *http.Client
	ownsClient bool
	userAgent  string
}

// New creates a Client from cfg. It implements matcher.Factory.
func New(cfg matcher.Config) (matcher.Matcher, error) {
	return NewClient(cfg)
}

// NewClient creates a Client from cfg.
func NewClient(cfg matcher.Config) (*Client, error) {
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, &spellerrors.ConfigError{Option: "endpoint", Value: cfg.Endpoint, Cause: err}
	}

	lang, err := languageCode(cfg)
	if err != nil {
		return nil, err
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = oasspell.UserAgent()
	}

	return &Client{
		endpoint:   endpoint,
		language:   lang,
		mode:       cfg.Mode,
		httpClient: httputil.Client(cfg.HTTPClient),
		ownsClient: cfg.HTTPClient == nil,
		userAgent:  userAgent,
	}, nil
}

func languageCode(cfg matcher.Config) (string, error) {
	if strings.EqualFold(cfg.Language, "auto") {
		return "auto", nil
	}
	tag, err := cfg.Tag()
	if err != nil {
		return "", &spellerrors.ConfigError{Option: "language", Value: cfg.Language, Cause: err}
	}
	code := tag.String()
	if v, ok := variants[code]; ok {
		return v, nil
	}
	return code, nil
}

// Language returns the language code sent to the server.
func (c *Client) Language() string {
	return c.language
}

// Check sends in to the server and returns the matches, with offsets mapped
// onto in.Text().
func (c *Client) Check(ctx context.Context, in matcher.Input) ([]matcher.Match, error) {
	if in.Segments.TextCount() == 0 {
		return nil, nil
	}

	data, err := json.Marshal(annotation{Parts: buildParts(in)})
	if err != nil {
		return nil, c.fail(0, "failed to encode request", err)
	}

	form := url.Values{}
	form.Set("language", c.language)
	form.Set("data", string(data))
	switch c.mode {
	case matcher.ModeGrammar:
		form.Set("disabledCategories", typosCategory)
	default:
		form.Set("enabledCategories", typosCategory)
		form.Set("enabledOnly", "true")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, c.fail(0, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(0, "request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !httputil.IsSuccess(resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, c.fail(resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !httputil.IsJSON(ct) {
		return nil, c.fail(resp.StatusCode, fmt.Sprintf("unexpected content type %q", ct), nil)
	}

	body, err := httputil.ReadLimited(resp.Body, maxResponse, "response_size")
	if err != nil {
		return nil, c.fail(resp.StatusCode, "failed to read response", err)
	}
	var result checkResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, c.fail(resp.StatusCode, "failed to decode response", err)
	}

	return convertMatches(in.Segments, result.Matches), nil
}

// Close releases idle connections of a client the Client created itself.
func (c *Client) Close() error {
	if c.ownsClient {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

func (c *Client) fail(status int, msg string, cause error) error {
	return &spellerrors.MatcherError{Engine: Name, StatusCode: status, Message: msg, Cause: cause}
}

func convertMatches(segs annotate.Segments, raw []rawMatch) []matcher.Match {
	original := segs.String()
	out := make([]matcher.Match, 0, len(raw))
	for _, rm := range raw {
		start := utf16ToByte(original, rm.Offset)
		end := utf16ToByte(original, rm.Offset+rm.Length)
		m := matcher.Match{
			Start:        segs.CheckableOffset(start),
			End:          segs.CheckableOffset(end),
			Message:      rm.Message,
			ShortMessage: rm.ShortMessage,
			RuleID:       rm.Rule.ID,
			Category:     rm.Rule.Category.ID,
		}
		for _, r := range rm.Replacements {
			m.Replacements = append(m.Replacements, r.Value)
		}
		out = append(out, m)
	}
	return out
}

// utf16ToByte converts an offset in UTF-16 code units, as reported by the
// server, to a byte offset in s.
func utf16ToByte(s string, units int) int {
	if units <= 0 {
		return 0
	}
	n := 0
	for i, r := range s {
		if n >= units {
			return i
		}
		n += utf16.RuneLen(r)
	}
	return len(s)
}

// splitDelims are code delimiters the server should read as word breaks.
// '-' is kept in prose so hyphenated words stay intact.
func splitDelims(kind matcher.InputKind) string {
	if kind == matcher.Identifier {
		return "_@-–"
	}
	return "_@"
}

// buildParts encodes segments as a LanguageTool annotation. Markup segments
// are passed through as markup. Text is split with the code tokenizer:
// camelCase boundaries and code delimiters become markup read as a space, so
// the server sees separate words while its offsets still refer to the
// original text.
func buildParts(in matcher.Input) []part {
	delims := splitDelims(in.Kind)
	var b partBuilder
	for _, seg := range in.Segments {
		if seg.Kind == annotate.Markup {
			b.markup(seg.Content, "")
			continue
		}
		prevWord := false
		for _, tok := range tokenize.Split(seg.Content) {
			if tok.Delimiter {
				if strings.Contains(delims, tok.Text) {
					b.markup(tok.Text, " ")
				} else {
					b.text(tok.Text)
				}
				prevWord = false
				continue
			}
			if prevWord {
				b.markup("", " ")
			}
			b.text(tok.Text)
			prevWord = true
		}
	}
	return b.parts
}

type partBuilder struct {
	parts []part
}

// text appends s, merging with a preceding text part.
func (b *partBuilder) text(s string) {
	if n := len(b.parts); n > 0 && b.parts[n-1].Markup == nil {
		b.parts[n-1].Text += s
		return
	}
	b.parts = append(b.parts, part{Text: s})
}

func (b *partBuilder) markup(s, interpretAs string) {
	b.parts = append(b.parts, part{Markup: &s, InterpretAs: interpretAs})
}
