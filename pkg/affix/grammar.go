/*
Package affix parses Hunspell-style affix grammars.

An affix grammar (the .aff half of a dictionary) declares prefix and suffix
rules, global flags and compound rules:

	FLAG long
	KEEPCASE KC
	SFX Aa Y 2
	SFX Aa y ies [^aeiou]y
	SFX Aa 0 s [^y]
	COMPOUNDRULE 1
	COMPOUNDRULE AaBb*
	REP 1
	REP f ph

Parse turns such text into a Grammar. It never fails: malformed patterns are
kept as unconstrained entries and unknown headers are stored as raw flags.
*/
package affix

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	lineSplitRe = regexp.MustCompile(`\r?\n`)
	commentRe   = regexp.MustCompile(`^\s*#`)
)

// Replacement is one REP pair used as a cheap first-pass correction.
type Replacement struct {
	From string
	To   string
}

// Grammar is the parsed form of an affix file.
type Grammar struct {
	Rules         map[string]*Rule
	Flags         FlagTable
	CompoundRules []string
	Replacements  []Replacement
	Patterns      *PatternCache
}

// Combinable returns the rules marked as combinable, keyed by code.
func (g *Grammar) Combinable() map[string]*Rule {
	out := make(map[string]*Rule)
	for code, rule := range g.Rules {
		if rule.Combinable {
			out[code] = rule
		}
	}
	return out
}

// Flag returns the declared value of name.
func (g *Grammar) Flag(name string) (string, bool) {
	return g.Flags.Get(name)
}

// Parse reads affix grammar text. seed pre-populates the flag table and is
// not modified.
func Parse(data string, seed FlagTable) *Grammar {
	g := &Grammar{
		Rules:    make(map[string]*Rule),
		Flags:    seed.Clone(),
		Patterns: NewPatternCache(),
	}

	lines := lineSplitRe.Split(data, -1)
	for i := 0; i < len(lines); i++ {
		line := stripComment(lines[i])
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		header := parts[0]

		if kind, ok := kindFromTag(header); ok {
			count := headerCount(parts, 3)
			rule := &Rule{
				Code:       field(parts, 1),
				Kind:       kind,
				Combinable: field(parts, 2) == "Y",
				Entries:    make([]*Entry, 0, count),
			}
			for _, sub := range following(lines, i, count) {
				if stripComment(sub) == "" {
					continue
				}
				rule.Entries = append(rule.Entries, parseEntry(sub, kind, g.Flags, g.Patterns))
			}
			g.Rules[rule.Code] = rule
			i += count
			continue
		}

		switch header {
		case "COMPOUNDRULE":
			count := headerCount(parts, 1)
			for _, sub := range following(lines, i, count) {
				if rule := field(strings.Fields(sub), 1); rule != "" {
					g.CompoundRules = append(g.CompoundRules, rule)
				}
			}
			i += count
		case "REP":
			if len(parts) == 3 {
				g.Replacements = append(g.Replacements, Replacement{From: parts[1], To: parts[2]})
			}
		default:
			g.Flags[header] = field(parts, 1)
		}
	}

	log.Debugf("Parsed affix grammar: %d rules, %d compound rules, %d replacements, %d patterns (%d malformed)",
		len(g.Rules), len(g.CompoundRules), len(g.Replacements), g.Patterns.Len(), g.Patterns.Failures())
	return g
}

// stripComment blanks lines that start with '#'. A '#' later in the line is
// kept since compound rules may use it.
func stripComment(line string) string {
	if commentRe.MatchString(line) {
		return ""
	}
	return strings.TrimSpace(line)
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func headerCount(parts []string, i int) int {
	n, err := strconv.Atoi(field(parts, i))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// following returns up to count lines after index i.
func following(lines []string, i, count int) []string {
	start := i + 1
	end := min(start+count, len(lines))
	if start >= end {
		return nil
	}
	return lines[start:end]
}
