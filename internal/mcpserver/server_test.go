package mcpserver

import (
	"fmt"
	"math"
	"testing"

	"github.com/erraggy/oasspell/spellerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	ids := []string{"Shape", "Namespace", "Trait.title", "Trait.description", "Failure"}

	tests := []struct {
		name          string
		ids           []string
		offset, limit int
		want          []string
	}{
		{name: "all issues under the default limit", ids: ids, want: ids},
		{name: "first page", ids: ids, limit: 2, want: []string{"Shape", "Namespace"}},
		{name: "second page", ids: ids, offset: 2, limit: 2, want: []string{"Trait.title", "Trait.description"}},
		{name: "last partial page", ids: ids, offset: 4, limit: 2, want: []string{"Failure"}},
		{name: "past the last issue", ids: ids, offset: 5, limit: 2},
		{name: "negative offset", ids: ids, offset: -3, limit: 2},
		{name: "negative limit uses the default", ids: ids, limit: -5, want: ids},
		{name: "clean model", ids: nil, limit: 2},
		{name: "overflowing limit", ids: ids, offset: 3, limit: math.MaxInt, want: []string{"Trait.description", "Failure"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.ids, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_Bounds(t *testing.T) {
	many := make([]lintIssue, 2*cfg.MaxLimit)

	assert.Len(t, paginate(many, 0, 0), cfg.ResultLimit)
	assert.Len(t, paginate(many, 0, len(many)), cfg.MaxLimit)
	assert.Len(t, paginate(many, len(many)-3, 0), 3)
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "model path",
			err:  fmt.Errorf("textindex: failed to read file: open /home/dev/models/weather.json: no such file"),
			want: "textindex: failed to read file: open <path>: no such file",
		},
		{
			name: "dictionary paths",
			err:  fmt.Errorf("wordlist: /usr/share/dict/words and /tmp/extra.txt are unreadable"),
			want: "wordlist: <path> and <path> are unreadable",
		},
		{
			name: "no path",
			err:  &spellerrors.ParseError{Path: "<content>", Line: 3, Message: "failed to parse YAML/JSON"},
			want: (&spellerrors.ParseError{Path: "<content>", Line: 3, Message: "failed to parse YAML/JSON"}).Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[lintIssue](0))
	s := makeSlice[lintIssue](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestErrResult(t *testing.T) {
	result := errResult(fmt.Errorf("textindex: failed to read file: open /root/models/api.json: no such file"))
	require.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "textindex: failed to read file: open <path>: no such file", text.Text)
}
