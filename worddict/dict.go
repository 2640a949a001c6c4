package worddict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Dict is an immutable sorted word list. It implements core.Dictionary and
// is safe for concurrent use.
type Dict struct {
	words []string
}

// New builds a Dict from words. Entries are uppercased, non-alphabetic
// entries are dropped, and duplicates collapse to one. The single-letter
// words A and I are always included.
func New(words ...string) *Dict {
	kept := make([]string, 0, len(words)+2)
	kept = append(kept, "A", "I")
	for _, w := range words {
		if w = normalize(w); w != "" {
			kept = append(kept, w)
		}
	}
	sort.Strings(kept)

	out := kept[:0]
	for i, w := range kept {
		if i == 0 || w != kept[i-1] {
			out = append(out, w)
		}
	}

	return &Dict{words: out}
}

// FromReader loads a Dict from r, one word per line.
func FromReader(r io.Reader) (*Dict, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("worddict: read: %w", err)
	}

	return New(words...), nil
}

// FromFile loads a Dict from the word list at path.
func FromFile(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("worddict: %w", err)
	}
	defer f.Close()

	return FromReader(f)
}

// Len reports the number of distinct words.
func (d *Dict) Len() int { return len(d.words) }

// IsWord reports whether text is in the list.
func (d *Dict) IsWord(text string) bool {
	i := sort.SearchStrings(d.words, text)

	return i < len(d.words) && d.words[i] == text
}

// IsPrefix reports whether any word starts with text. The word list is
// sorted, so it suffices to check the first word ≥ text.
func (d *Dict) IsPrefix(text string) bool {
	i := sort.SearchStrings(d.words, text)

	return i < len(d.words) && strings.HasPrefix(d.words[i], text)
}

// normalize uppercases w and rejects it unless it is purely alphabetic and
// either multi-letter or one of the words A and I.
func normalize(w string) string {
	w = strings.ToUpper(strings.TrimSpace(w))
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return ""
		}
	}
	if len(w) == 1 && w != "A" && w != "I" {
		return ""
	}

	return w
}
