package suggest

import (
	"sort"
)

// DefaultAlphabet is used for every dictionary, whatever its TRY line says.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet returns the sorted, duplicate-free set of characters used to
// generate edits: the default Latin letters plus the dictionary's TRY and
// WORDCHARS characters.
func Alphabet(try, wordChars string) []rune {
	seen := make(map[rune]struct{}, len(DefaultAlphabet)+len(try)+len(wordChars))
	letters := make([]rune, 0, len(DefaultAlphabet)+len(try)+len(wordChars))
	for _, src := range []string{DefaultAlphabet, try, wordChars} {
		for _, r := range src {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			letters = append(letters, r)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
