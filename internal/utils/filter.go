package utils

// SuggestionFilter drops repeated suggestions while keeping their order.
// It is not safe for concurrent use; create one per result list.
type SuggestionFilter struct {
	seenWords map[string]bool
}

// NewSuggestionFilter creates a new filter. Words in exclude are treated as
// already seen.
func NewSuggestionFilter(exclude ...string) *SuggestionFilter {
	seenWords := make(map[string]bool, len(exclude))
	for _, w := range exclude {
		seenWords[w] = true
	}
	return &SuggestionFilter{seenWords: seenWords}
}

// ShouldInclude checks if a word should be included in results (not a duplicate)
// Returns true if the word should be included, false if it's a duplicate
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	if f.seenWords[word] {
		return false
	}
	f.seenWords[word] = true
	return true
}
