package dictionary

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// compileCompounds turns each compound rule into a case-insensitive regexp.
// Characters naming a code in codes become an alternation of its words, every
// other character is kept as regexp syntax (so '*' and '?' work as in the
// affix file). Rules that do not compile are dropped.
func compileCompounds(rules []string, codes map[string][]string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(rules))

	for _, rule := range rules {
		var expr strings.Builder
		expr.WriteString("(?i)^(?:")
		for _, r := range rule {
			words, ok := codes[string(r)]
			if !ok {
				expr.WriteRune(r)
				continue
			}
			expr.WriteByte('(')
			for i, w := range words {
				if i > 0 {
					expr.WriteByte('|')
				}
				expr.WriteString(regexp.QuoteMeta(w))
			}
			expr.WriteByte(')')
		}
		expr.WriteString(")$")

		re, err := regexp.Compile(expr.String())
		if err != nil {
			log.Warnf("Dropping compound rule %q: %v", rule, err)
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// pruneCodes removes codes that never received a word.
func pruneCodes(codes map[string][]string) {
	for code, words := range codes {
		if len(words) == 0 {
			delete(codes, code)
		}
	}
}
