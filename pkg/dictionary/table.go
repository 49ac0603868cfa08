package dictionary

// Kind distinguishes a missing word from a present one with or without flags.
type Kind uint8

const (
	NoEntry Kind = iota
	Flagless
	Flagged
)

func (k Kind) String() string {
	switch k {
	case Flagless:
		return "flagless"
	case Flagged:
		return "flagged"
	}
	return "none"
}

// Record is the result of a WordTable lookup.
type Record struct {
	Kind  Kind
	Flags []string
}

// Present reports whether the word exists in the table.
func (r Record) Present() bool {
	return r.Kind != NoEntry
}

// WordTable maps surface words to their flag codes.
// It is written only while a Lexicon is built.
type WordTable struct {
	words map[string][]string
}

// NewWordTable creates an empty table.
func NewWordTable() *WordTable {
	return &WordTable{words: make(map[string][]string)}
}

// Add inserts word with flags. Flags of repeated words accumulate;
// a flagless insert never clears existing flags.
func (t *WordTable) Add(word string, flags []string) {
	existing, seen := t.words[word]
	if len(flags) == 0 {
		if !seen {
			t.words[word] = nil
		}
		return
	}
	merged := make([]string, 0, len(existing)+len(flags))
	merged = append(merged, existing...)
	merged = append(merged, flags...)
	t.words[word] = merged
}

// Lookup returns the record for word.
func (t *WordTable) Lookup(word string) Record {
	flags, ok := t.words[word]
	switch {
	case !ok:
		return Record{Kind: NoEntry}
	case len(flags) == 0:
		return Record{Kind: Flagless}
	default:
		return Record{Kind: Flagged, Flags: flags}
	}
}

// Len returns the number of distinct words.
func (t *WordTable) Len() int {
	return len(t.words)
}

// Range calls fn for every word until fn returns false.
// Iteration order is unspecified.
func (t *WordTable) Range(fn func(word string, rec Record) bool) {
	for word := range t.words {
		if !fn(word, t.Lookup(word)) {
			return
		}
	}
}
