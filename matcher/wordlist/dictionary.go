package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/erraggy/oasspell/spellerrors"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
)

// DefaultDictionary is used when no dictionary files are configured.
const DefaultDictionary = "/usr/share/dict/words"

type entry struct {
	runes   []rune
	display string
}

// Dictionary is an immutable set of known words. Lookups are case-insensitive.
// A Dictionary is safe for concurrent use.
type Dictionary struct {
	words map[string]string // folded form -> first spelling seen
	byLen map[int][]entry
}

// NewDictionary builds a Dictionary from words.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		words: make(map[string]string, len(words)),
		byLen: make(map[int][]entry),
	}
	fold := cases.Fold()
	for _, w := range words {
		d.add(fold, w)
	}
	return d
}

func (d *Dictionary) add(fold cases.Caser, word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	key := fold.String(word)
	if _, ok := d.words[key]; ok {
		return
	}
	d.words[key] = word
	r := []rune(key)
	d.byLen[len(r)] = append(d.byLen[len(r)], entry{runes: r, display: word})
}

// ReadDictionary reads one word per line. Blank lines and lines starting with
// '#' are skipped.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary(nil)
	if err := d.read(r); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) read(r io.Reader) error {
	fold := cases.Fold()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.add(fold, line)
	}
	return sc.Err()
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is known, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[cases.Fold().String(word)]
	return ok
}

type candidate struct {
	word string
	dist int
}

// Candidates returns up to limit known words within maxDist edits of word,
// closest first and alphabetical within the same distance.
func (d *Dictionary) Candidates(word string, maxDist, limit int) []string {
	target := []rune(cases.Fold().String(word))
	n := len(target)

	var found []candidate
	for l := max(1, n-maxDist); l <= n+maxDist; l++ {
		for _, e := range d.byLen[l] {
			if dist := boundedLevenshtein(target, e.runes, maxDist); dist <= maxDist {
				found = append(found, candidate{word: e.display, dist: dist})
			}
		}
	}

	slices.SortFunc(found, func(a, b candidate) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}
		return strings.Compare(a.word, b.word)
	})
	if len(found) > limit {
		found = found[:limit]
	}

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.word
	}
	return out
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*Dictionary)
	loads   singleflight.Group
)

// Load reads and merges dictionary files. Results are cached per path list,
// so every worker of a run shares one Dictionary.
func Load(paths ...string) (*Dictionary, error) {
	if len(paths) == 0 {
		paths = []string{DefaultDictionary}
	}
	key := strings.Join(paths, "\x00")

	cacheMu.Lock()
	d, ok := cache[key]
	cacheMu.Unlock()
	if ok {
		return d, nil
	}

	v, err, _ := loads.Do(key, func() (any, error) {
		d, err := loadFiles(paths)
		if err != nil {
			return nil, err
		}
		cacheMu.Lock()
		cache[key] = d
		cacheMu.Unlock()
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dictionary), nil
}

func loadFiles(paths []string) (*Dictionary, error) {
	d := NewDictionary(nil)
	for _, path := range paths {
		if err := loadFile(d, path); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func loadFile(d *Dictionary, path string) error {
	f, err := os.Open(path) //nolint:gosec // dictionary path is user configuration
	if err != nil {
		msg := "cannot open dictionary"
		if errors.Is(err, fs.ErrNotExist) {
			msg = "dictionary not found; install a word list or pass one explicitly"
		}
		return &spellerrors.ConfigError{Option: "dictionaries", Value: path, Message: msg, Cause: err}
	}
	defer func() {
		_ = f.Close()
	}()

	if err := d.read(f); err != nil {
		return fmt.Errorf("wordlist: reading %s: %w", path, err)
	}
	return nil
}
