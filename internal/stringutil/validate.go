// Package stringutil provides the email and URL patterns shared by the
// tokenizer and by endpoint validation.
package stringutil

import "regexp"

const (
	emailPattern = `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`
	urlPattern   = "(?:(?:https?|ftp)://|www\\.)[^\\s<>\"'`]*[^\\s<>\"'`.,;:!?)\\]}]"
)

var (
	urlRegex       = regexp.MustCompile(`^` + urlPattern + `$`)
	emailOrURLFind = regexp.MustCompile(urlPattern + `|` + emailPattern)
)

// IsURL checks if s is a single http(s), ftp, or www URL.
func IsURL(s string) bool {
	return urlRegex.MatchString(s)
}

// EmailAndURLSpans returns the byte ranges of every email address and URL in s,
// in order and non-overlapping. URLs win over emails when both could match at
// the same position (e.g. credentials in a URL).
func EmailAndURLSpans(s string) [][2]int {
	locs := emailOrURLFind.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([][2]int, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, [2]int{loc[0], loc[1]})
	}
	return spans
}
