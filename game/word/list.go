package word

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

var (
	//go:embed resources/acceptable.txt
	acceptableContent string

	//go:embed resources/final.txt
	finalContent string
)

var (
	ErrEmptyList   = errors.New("word list is empty")
	ErrInvalidWord = errors.New("words should consist of 5 latin letters")
)

// List is a word list. It remembers the order the words were given in
// and keeps a sorted index for membership checks.
type List struct {
	words  []string
	sorted []string
}

// NewList uppercases and validates words. Duplicates are kept in the
// ordered view but not in the index.
func NewList(words []string) (*List, error) {
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	l := List{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !Valid(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		l.words = append(l.words, w)
	}
	l.sorted = slices.Clone(l.words)
	slices.Sort(l.sorted)
	l.sorted = slices.Compact(l.sorted)
	return &l, nil
}

// ReadList reads whitespace separated words from r.
func ReadList(r io.Reader) (*List, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewList(words)
}

// LoadList reads a word list file.
func LoadList(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := ReadList(f)
	if err != nil {
		return nil, fmt.Errorf("invalid word list %s: %w", path, err)
	}
	return l, nil
}

// Builtin returns the embedded acceptable and final word lists.
func Builtin() (acceptable, final *List) {
	return mustRead(acceptableContent), mustRead(finalContent)
}

func mustRead(content string) *List {
	l, err := ReadList(strings.NewReader(content))
	if err != nil {
		panic(err)
	}
	return l
}

// Valid reports whether w is exactly Length uppercase latin letters.
func Valid(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is in the list.
func (l *List) Contains(w string) bool {
	_, ok := slices.BinarySearch(l.sorted, w)
	return ok
}

// Words returns the words in the order they were given.
func (l *List) Words() []string {
	return slices.Clone(l.words)
}

// Sorted returns the distinct words in ascending order.
func (l *List) Sorted() []string {
	return slices.Clone(l.sorted)
}

func (l *List) Len() int {
	return len(l.words)
}

// IsSubsetOf reports whether every word of l is in other.
func (l *List) IsSubsetOf(other *List) bool {
	for _, w := range l.sorted {
		if !other.Contains(w) {
			return false
		}
	}
	return true
}
