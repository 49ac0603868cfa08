package affix

import (
	"regexp"
	"strings"
)

// Entry is one transformation line of a PFX/SFX rule.
type Entry struct {
	Add           string
	Match         *regexp.Regexp
	Remove        *regexp.Regexp
	Continuations []string
}

// Matches reports whether the entry applies to word.
func (e *Entry) Matches(word string) bool {
	return e.Match == nil || e.Match.MatchString(word)
}

// Transform strips the removal text from word and attaches Add on the side
// given by kind. Only the first removal match is stripped.
func (e *Entry) Transform(word string, kind Kind) string {
	if e.Remove != nil {
		if loc := e.Remove.FindStringIndex(word); loc != nil {
			word = word[:loc[0]] + word[loc[1]:]
		}
	}
	if kind == Suffix {
		return word + e.Add
	}
	return e.Add + word
}

// parseEntry reads an entry line of the form
//
//	SFX <code> <remove> <add>[/<continuations>] [<match>]
//
// Missing fields are treated as empty.
func parseEntry(line string, kind Kind, flags FlagTable, patterns *PatternCache) *Entry {
	parts := strings.Fields(line)
	field := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	remove := field(2)
	add, continuations, _ := strings.Cut(field(3), "/")
	match := field(4)

	if add == "0" {
		add = ""
	}

	var matchSrc string
	if match != "" && match != "." {
		matchSrc = kind.anchor(match)
	}

	var removeSrc string
	if remove != "" && remove != "0" {
		removeSrc = kind.anchor(remove)
	}

	return &Entry{
		Add:           add,
		Match:         patterns.Compile(matchSrc),
		Remove:        patterns.Compile(removeSrc),
		Continuations: ParseCodes(continuations, flags),
	}
}
