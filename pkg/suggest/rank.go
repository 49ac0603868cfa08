package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/wordcheck/internal/utils"
)

// Candidate is a weighted correction.
type Candidate struct {
	Word   string
	Weight int
}

// Rank orders w by weight, heaviest first. Equal weights are ordered by
// descending byte-wise string comparison so results are deterministic.
func Rank(w Weights) []Candidate {
	ranked := make([]Candidate, 0, len(w))
	for word, weight := range w {
		ranked = append(ranked, Candidate{Word: word, Weight: weight})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return strings.Compare(ranked[i].Word, ranked[j].Word) > 0
	})
	return ranked
}

// Scheme is the capitalization pattern of a misspelled word.
type Scheme uint8

const (
	Unchanged Scheme = iota
	AllUpper
	Capitalized
)

func (s Scheme) String() string {
	switch s {
	case AllUpper:
		return "uppercase"
	case Capitalized:
		return "capitalized"
	}
	return "lowercase"
}

// DetectScheme classifies word as all upper-case, capitalized or neither.
func DetectScheme(word string) Scheme {
	switch {
	case utils.IsAllUpper(word):
		return AllUpper
	case utils.Capitalize(word) == word:
		return Capitalized
	}
	return Unchanged
}

// Apply recases word to follow s.
func (s Scheme) Apply(word string) string {
	switch s {
	case AllUpper:
		return strings.ToUpper(word)
	case Capitalized:
		return utils.UpperFirst(word)
	}
	return word
}

// Select walks ranked candidates, recasing each with scheme, and returns at
// most limit of them. Candidates rejected by skip or already selected do not
// use up the limit.
func Select(ranked []Candidate, scheme Scheme, limit int, skip func(string) bool) []string {
	selected := make([]string, 0, min(limit, len(ranked)))
	filter := utils.NewSuggestionFilter()

	working := limit
	for i := 0; i < working && i < len(ranked); i++ {
		word := scheme.Apply(ranked[i].Word)
		if (skip != nil && skip(word)) || !filter.ShouldInclude(word) {
			working++
			continue
		}
		selected = append(selected, word)
	}
	return selected
}
