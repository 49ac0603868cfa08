/*
Package dictionary expands a root-word list into the full lexicon of a
Hunspell-style dictionary.

Each line of the word list (the .dic half) is a root optionally followed by
its flag codes:

	cat/S
	fly/S
	sun/A
	Paris

Build applies every affix rule named by a root's flags, follows continuation
classes, combines prefixes with suffixes where rules allow it and records
compound fragments. The result is a Lexicon holding the WordTable and the
compiled compound-word expressions.

Sources for the grammar and word list are read from disk with LoadSource.
*/
package dictionary

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/pkg/affix"
	"github.com/charmbracelet/log"
)

// Lexicon is the expanded word list.
type Lexicon struct {
	Words         *WordTable
	CompoundCodes map[string][]string
	Compounds     []*regexp.Regexp
}

// MatchesCompound reports whether word matches any compound rule.
func (l *Lexicon) MatchesCompound(word string) bool {
	for _, re := range l.Compounds {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

// Build expands the word list data using the rules of g.
func Build(data string, g *affix.Grammar) *Lexicon {
	start := time.Now()

	lex := &Lexicon{
		Words:         NewWordTable(),
		CompoundCodes: compoundCodeSet(g),
	}
	b := &builder{
		grammar:    g,
		combinable: g.Combinable(),
		lex:        lex,
	}

	for _, line := range wordLines(data) {
		b.addLine(line)
	}

	pruneCodes(lex.CompoundCodes)
	lex.Compounds = compileCompounds(g.CompoundRules, lex.CompoundCodes)

	log.Debugf("Built lexicon: %d words, %d compound expressions in %v",
		lex.Words.Len(), len(lex.Compounds), time.Since(start))
	return lex
}

type builder struct {
	grammar    *affix.Grammar
	combinable map[string]*affix.Rule
	lex        *Lexicon
}

func (b *builder) addLine(line string) {
	word, flagsRaw, hasFlags := strings.Cut(line, "/")
	if hasFlags {
		// morphological fields may follow the flags
		if i := strings.IndexFunc(flagsRaw, isFieldSpace); i >= 0 {
			flagsRaw = flagsRaw[:i]
		}
	}
	if !hasFlags || flagsRaw == "" {
		word = strings.TrimSpace(word)
		if i := strings.IndexFunc(word, isFieldSpace); i >= 0 {
			word = word[:i]
		}
		if word != "" {
			b.lex.Words.Add(word, nil)
		}
		return
	}

	codes := affix.ParseCodes(flagsRaw, b.grammar.Flags)

	needAffix, declared := b.grammar.Flag(affix.NeedAffix)
	if !declared || !contains(codes, needAffix) {
		b.lex.Words.Add(word, codes)
	}

	var forms, combined []string
	for _, code := range codes {
		forms, combined = forms[:0], combined[:0]

		if rule, ok := b.grammar.Rules[code]; ok {
			forms = rule.Apply(word, b.grammar.Rules, forms)
			if rule.Combinable {
				for _, form := range forms {
					for _, other := range codes {
						partner, ok := b.combinable[other]
						if !ok || partner.Kind == rule.Kind {
							continue
						}
						combined = partner.Apply(form, b.grammar.Rules, combined)
					}
				}
			}
		}

		seen := make(map[string]struct{}, len(forms)+len(combined))
		for _, list := range [][]string{forms, combined} {
			for _, form := range list {
				if _, dup := seen[form]; dup {
					continue
				}
				seen[form] = struct{}{}
				b.lex.Words.Add(form, nil)
			}
		}

		if words, ok := b.lex.CompoundCodes[code]; ok {
			b.lex.CompoundCodes[code] = append(words, word)
		}
	}
}

// compoundCodeSet seeds an empty word list for every character used in a
// compound rule and for the ONLYINCOMPOUND code.
func compoundCodeSet(g *affix.Grammar) map[string][]string {
	codes := make(map[string][]string)
	for _, rule := range g.CompoundRules {
		for _, r := range rule {
			codes[string(r)] = nil
		}
	}
	if code, ok := g.Flag(affix.OnlyInCompound); ok {
		codes[code] = nil
	}
	return codes
}

// wordLines splits a word list into root lines. Tab-indented lines are
// comments, blank lines are dropped, and a leading all-digit line is the
// word count header.
func wordLines(data string) []string {
	raw := strings.Split(data, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "\t") || strings.TrimSpace(line) == "" {
			continue
		}
		if len(lines) == 0 && isCount(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func isCount(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || !utf8.ValidString(line) {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isFieldSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
