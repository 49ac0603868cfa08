package suggest

import (
	"sort"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Completer is a prefix index over dictionary words.
// It is filled once and read concurrently afterwards.
type Completer struct {
	trie  *patricia.Trie
	words int
}

// NewCompleter creates an empty index.
func NewCompleter() *Completer {
	return &Completer{trie: patricia.NewTrie()}
}

// AddWord indexes word. The stored item is its length in runes.
func (c *Completer) AddWord(word string) {
	if word == "" {
		return
	}
	if c.trie.Insert(patricia.Prefix(word), utf8.RuneCountInString(word)) {
		c.words++
	}
}

// Len returns the number of indexed words.
func (c *Completer) Len() int {
	return c.words
}

// Complete returns up to limit indexed words starting with prefix, shortest
// first and then in byte order. The prefix itself is included when indexed.
func (c *Completer) Complete(prefix string, limit int) []string {
	if prefix == "" || limit <= 0 {
		return nil
	}

	type match struct {
		word   string
		length int
	}
	var matches []match

	err := c.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		length, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		matches = append(matches, match{word: string(p), length: length})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].length != matches[j].length {
			return matches[i].length < matches[j].length
		}
		return matches[i].word < matches[j].word
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.word
	}
	return out
}
