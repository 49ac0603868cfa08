package affix

// Kind tells whether a rule attaches at the start or the end of a word.
type Kind uint8

const (
	Prefix Kind = iota
	Suffix
)

// MaxContinuationDepth bounds how many continuation hops a single
// application may follow. Well-formed dictionaries stay far below it.
const MaxContinuationDepth = 8

func (k Kind) String() string {
	if k == Suffix {
		return "SFX"
	}
	return "PFX"
}

func (k Kind) anchor(pattern string) string {
	if k == Suffix {
		return pattern + "$"
	}
	return "^" + pattern
}

func kindFromTag(tag string) (Kind, bool) {
	switch tag {
	case "PFX":
		return Prefix, true
	case "SFX":
		return Suffix, true
	}
	return 0, false
}

// Rule is a named PFX or SFX group of entries.
type Rule struct {
	Code       string
	Kind       Kind
	Combinable bool
	Entries    []*Entry
}

// Apply derives every form produced by r from word, following continuation
// codes through rules. Generated forms are appended to out in production
// order and the extended slice is returned. Continuations naming an unknown
// code end that branch.
func (r *Rule) Apply(word string, rules map[string]*Rule, out []string) []string {
	return r.apply(word, rules, out, 0)
}

func (r *Rule) apply(word string, rules map[string]*Rule, out []string, depth int) []string {
	for _, entry := range r.Entries {
		if !entry.Matches(word) {
			continue
		}
		form := entry.Transform(word, r.Kind)
		out = append(out, form)

		if depth >= MaxContinuationDepth {
			continue
		}
		for _, code := range entry.Continuations {
			next, ok := rules[code]
			if !ok {
				continue
			}
			out = next.apply(form, rules, out, depth+1)
		}
	}
	return out
}
