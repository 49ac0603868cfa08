package suggest

import (
	"strings"

	"github.com/bastiangx/wordcheck/pkg/affix"
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Replacer applies the REP table of a dictionary.
// All From strings are matched in one pass with an Aho-Corasick automaton.
type Replacer struct {
	table     []affix.Replacement
	patterns  []string
	automaton aho.AhoCorasick
}

// NewReplacer builds a Replacer for table. Entries keep their order.
func NewReplacer(table []affix.Replacement) *Replacer {
	r := &Replacer{table: table}

	seen := make(map[string]bool, len(table))
	for _, rep := range table {
		if rep.From == "" || seen[rep.From] {
			continue
		}
		seen[rep.From] = true
		r.patterns = append(r.patterns, rep.From)
	}
	if len(r.patterns) > 0 {
		builder := aho.NewAhoCorasickBuilder(aho.Opts{
			DFA: true,
		})
		r.automaton = builder.Build(r.patterns)
	}
	return r
}

// Len returns the number of table entries.
func (r *Replacer) Len() int {
	return len(r.table)
}

// occurring returns the set of From strings found in word.
func (r *Replacer) occurring(word string) map[string]bool {
	found := make(map[string]bool)
	if len(r.patterns) == 0 {
		return found
	}
	iter := r.automaton.IterOverlappingByte([]byte(word))
	for next := iter.Next(); next != nil; next = iter.Next() {
		found[r.patterns[next.Pattern()]] = true
	}
	return found
}

// Candidates returns, in table order, word with the first occurrence of each
// matching From replaced by its To.
func (r *Replacer) Candidates(word string) []string {
	if len(r.table) == 0 {
		return nil
	}
	found := r.occurring(word)

	var out []string
	for _, rep := range r.table {
		if rep.From != "" && !found[rep.From] {
			continue
		}
		out = append(out, strings.Replace(word, rep.From, rep.To, 1))
	}
	return out
}

// Correct returns the first candidate accepted by known.
func (r *Replacer) Correct(word string, known func(string) bool) (string, bool) {
	for _, candidate := range r.Candidates(word) {
		if known(candidate) {
			return candidate, true
		}
	}
	return "", false
}
