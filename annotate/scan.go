package annotate

import (
	"slices"
	"strings"
)

// pair locates one <name>...</name> occurrence. All fields are byte offsets.
type pair struct {
	start      int // '<' of the opening tag
	nameStart  int
	nameEnd    int
	openEnd    int // just past the opening '>'
	closeStart int // '<' of the closing tag
	end        int // just past the closing '>'
}

// pairTags pairs every opening tag with the closing tag of the same name
// (ASCII case-insensitive) that balances it, in one pass with a stack of open
// tags per name. Openings that never balance and closings with nothing open
// are left out. The result is ordered by opening position.
func pairTags(text string) []pair {
	var pairs []pair
	var open map[string][]pair
	for k := 0; k < len(text); {
		i := strings.IndexByte(text[k:], '<')
		if i < 0 {
			break
		}
		k += i

		if k+1 < len(text) && text[k+1] == '/' {
			if gt, ok := tagName(text, k+2); ok {
				name := strings.ToLower(text[k+2 : gt])
				if stack := open[name]; len(stack) > 0 {
					p := stack[len(stack)-1]
					open[name] = stack[:len(stack)-1]
					p.closeStart, p.end = k, gt+1
					pairs = append(pairs, p)
				}
				k = gt + 1
				continue
			}
		} else if gt, ok := tagName(text, k+1); ok {
			if open == nil {
				open = make(map[string][]pair)
			}
			name := strings.ToLower(text[k+1 : gt])
			open[name] = append(open[name], pair{start: k, nameStart: k + 1, nameEnd: gt, openEnd: gt + 1})
			k = gt + 1
			continue
		}
		k++
	}
	slices.SortFunc(pairs, func(a, b pair) int { return a.start - b.start })
	return pairs
}

// scanner yields the outermost tag pairs of a text left to right. Pairs
// nested inside a returned pair are skipped; the caller annotates the
// content on its own.
type scanner struct {
	pairs []pair
	next  int
	pos   int
}

func newScanner(text string) *scanner {
	return &scanner{pairs: pairTags(text)}
}

func (sc *scanner) scan() (pair, bool) {
	for sc.next < len(sc.pairs) {
		p := sc.pairs[sc.next]
		sc.next++
		if p.start < sc.pos {
			continue
		}
		sc.pos = p.end
		return p, true
	}
	return pair{}, false
}

// tagName reports whether text[i:] is an ASCII letter followed by ASCII
// letters or digits and a '>'. It returns the offset of '>'.
func tagName(text string, i int) (int, bool) {
	if i >= len(text) || !isLetter(text[i]) {
		return 0, false
	}
	j := i + 1
	for j < len(text) && (isLetter(text[j]) || isDigit(text[j])) {
		j++
	}
	if j >= len(text) || text[j] != '>' {
		return 0, false
	}
	return j, true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
