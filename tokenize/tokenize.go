package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/oasspell/internal/stringutil"
)

// BaseDelimiters are the word-separating characters of a natural-language
// word tokenizer: the Unicode space family, zero-width and directional
// formatting characters, dashes, and ASCII/typographic punctuation.
const BaseDelimiters = "\u0020\u00A0\u115f\u1160\u1680" +
	"\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007" +
	"\u2008\u2009\u200A\u200B\u200c\u200d\u200e\u200f" +
	"\u2012\u2013\u2014\u2015\u2022" +
	"\u2028\u2029\u202a\u202b\u202c\u202d\u202e\u202f" +
	"\u205F\u2060\u2061\u2062\u2063\u2064\u2065\u2066\u2067\u2068\u2069" +
	"\u206A\u206b\u206c\u206d\u206E\u206F\u3000\u3164\ufeff\uffa0" +
	",.;()[]{}=*#\u2217+\u00d7\u00f7<>!?:~/\\\"'\u00ab\u00bb\u201e\u201d\u201c\u2018\u2019`\u00b4" +
	"\u201b\u2032\u203a\u2039\u2026\u00bf\u00a1\u2192\u203c\u2047\u2048\u2049" +
	"\t\n\r"

// CodeDelimiters extend BaseDelimiters with the separators used by
// kebab-case, snake_case, and decorated identifiers.
const CodeDelimiters = "-_@\u2013"

var delimiters = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(BaseDelimiters)+len(CodeDelimiters))
	for _, r := range BaseDelimiters + CodeDelimiters {
		set[r] = struct{}{}
	}
	return set
}()

// Token is one piece of a tokenized string. Start and End are byte offsets
// into the input (End exclusive).
type Token struct {
	Text      string
	Start     int
	End       int
	Delimiter bool
}

// IsDelimiter reports whether r separates tokens.
func IsDelimiter(r rune) bool {
	_, ok := delimiters[r]
	return ok
}

// Tokenize splits s into word and delimiter tokens. Joining the result
// reproduces s exactly.
//
//	Tokenize("APIKey")      // ["API", "Key"]
//	Tokenize("user_id")     // ["user", "_", "id"]
//	Tokenize("HTTPSProxy")  // ["HTTPS", "Proxy"]
func Tokenize(s string) []string {
	tokens := Split(s)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// Words returns only the non-delimiter tokens of s.
func Words(s string) []Token {
	tokens := Split(s)
	words := tokens[:0]
	for _, t := range tokens {
		if !t.Delimiter {
			words = append(words, t)
		}
	}
	return words
}

// Split is like Tokenize but keeps the byte offsets of every token.
func Split(s string) []Token {
	if s == "" {
		return []Token{}
	}

	var tokens []Token
	runStart := -1
	for i, r := range s {
		if !IsDelimiter(r) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			tokens = appendCamelSplit(tokens, s, runStart, i)
			runStart = -1
		}
		size := utf8.RuneLen(r)
		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Delimiter: true})
	}
	if runStart >= 0 {
		tokens = appendCamelSplit(tokens, s, runStart, len(s))
	}

	return joinEmailsAndURLs(s, tokens)
}

// appendCamelSplit splits s[start:end] at camelCase and acronym boundaries.
// A boundary falls before an upper-case rune that follows a non-upper-case
// rune, or before an upper-case rune that is followed by a lower-case rune
// (peeling "Key" off "APIKey"). Never at the start of the run.
func appendCamelSplit(tokens []Token, s string, start, end int) []Token {
	segStart := start
	prev, width := utf8.DecodeRuneInString(s[start:end])
	for i := start + width; i < end; i += width {
		var r rune
		r, width = utf8.DecodeRuneInString(s[i:end])
		if unicode.IsUpper(r) && i > segStart {
			boundary := !unicode.IsUpper(prev)
			if !boundary {
				next, _ := utf8.DecodeRuneInString(s[i+width : end])
				boundary = unicode.IsLower(next)
			}
			if boundary {
				tokens = append(tokens, Token{Text: s[segStart:i], Start: segStart, End: i})
				segStart = i
			}
		}
		prev = r
	}

	return append(tokens, Token{Text: s[segStart:end], Start: segStart, End: end})
}

// joinEmailsAndURLs merges every token overlapping an email or URL span into
// one word token so addresses are checked (and skipped) as a unit.
func joinEmailsAndURLs(s string, tokens []Token) []Token {
	if !strings.ContainsAny(s, "@.") {
		return tokens
	}
	spans := stringutil.EmailAndURLSpans(s)
	if len(spans) == 0 {
		return tokens
	}

	merged := make([]Token, 0, len(tokens))
	si := 0
	for i := 0; i < len(tokens); i++ {
		for si < len(spans) && spans[si][1] <= tokens[i].Start {
			si++
		}
		if si == len(spans) || tokens[i].End <= spans[si][0] {
			merged = append(merged, tokens[i])
			continue
		}
		start := tokens[i].Start
		end := tokens[i].End
		for i+1 < len(tokens) && tokens[i+1].Start < spans[si][1] {
			i++
			end = tokens[i].End
		}
		merged = append(merged, Token{Text: s[start:end], Start: start, End: end})
		si++
	}
	return merged
}
