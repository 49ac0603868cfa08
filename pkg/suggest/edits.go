// Package suggest holds the building blocks of spelling suggestions:
// edit generation, ranking, recasing, the replacement table, the
// suggestion cache and the prefix completion index.
package suggest

import (
	"unicode"

	"github.com/bastiangx/wordcheck/internal/utils"
)

// Weights maps a candidate to the number of distinct edits that produced it.
type Weights map[string]int

// Edits returns every string one edit away from any of words: deletions,
// transpositions of differing neighbours, substitutions and insertions
// before each character. Substituted and inserted letters follow the case
// of their surroundings. When known is non-nil only candidates it accepts
// are kept.
func Edits(words []string, alphabet []rune, known func(string) bool) Weights {
	w := make(Weights)
	add := func(edit string) {
		if known == nil || known(edit) {
			w[edit]++
		}
	}

	for _, word := range words {
		runes := []rune(word)
		for i := 0; i < len(runes); i++ {
			head := string(runes[:i])
			cur := runes[i]
			rest := string(runes[i+1:])
			tail := string(runes[i:])

			add(head + rest)

			if i+1 < len(runes) && runes[i+1] != cur {
				add(head + string(runes[i+1]) + string(cur) + string(runes[i+2:]))
			}

			upper := utils.IsUpperRune(cur)
			for _, letter := range alphabet {
				if upper {
					letter = unicode.ToUpper(letter)
				}
				if letter == cur {
					continue
				}
				add(head + string(letter) + rest)
			}

			// head is checked whole, so inserts inside a mixed-case word stay lower-case
			upperSlot := utils.IsAllUpper(head) && upper
			for _, letter := range alphabet {
				if upperSlot {
					letter = unicode.ToUpper(letter)
				}
				add(head + string(letter) + tail)
			}
		}
	}
	return w
}

// Keys returns the candidates of w in unspecified order.
func (w Weights) Keys() []string {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	return keys
}

// Merge adds every weight of other whose candidate passes known into w.
func (w Weights) Merge(other Weights, known func(string) bool) {
	for word, n := range other {
		if known(word) {
			w[word] += n
		}
	}
}
