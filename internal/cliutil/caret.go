package cliutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Caret returns the line of text holding the byte span [start, end) and a
// marker line that underlines the span with '^'. Widths are display columns,
// so wide runes line up in a terminal. A span crossing a newline is cut at
// the end of its first line. Tabs are shown as a single space.
func Caret(text string, start, end int) (line, marker string) {
	start = min(max(start, 0), len(text))
	end = min(max(end, start), len(text))

	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	end = min(end, lineEnd)

	line = detab(text[lineStart:lineEnd])
	pad := runewidth.StringWidth(detab(text[lineStart:start]))
	width := max(runewidth.StringWidth(detab(text[start:end])), 1)
	return line, strings.Repeat(" ", pad) + strings.Repeat("^", width)
}

// Truncate shortens s to at most width display columns, ending it with "..."
// when it is cut. A width <= 0 leaves s unchanged.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func detab(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
