package spell

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/affix"
	"github.com/bastiangx/wordcheck/pkg/suggest"
)

// Suggest returns up to limit corrections for word, best first.
// A correctly spelled word has no suggestions. Results are cached per word.
func (e *Engine) Suggest(word string, limit int) ([]string, error) {
	if !e.loaded.Load() {
		return nil, ErrNotLoaded
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	if cached, ok := e.cache.Lookup(word, limit); ok {
		return cached, nil
	}
	if e.check(word) {
		return []string{}, nil
	}
	if fixed, ok := e.replacer.Correct(word, e.check); ok {
		return []string{fixed}, nil
	}

	alphabet := e.getAlphabet()
	ed1 := suggest.Edits([]string{word}, alphabet, nil)
	weights := suggest.Edits(ed1.Keys(), alphabet, e.check)
	weights.Merge(ed1, e.check)

	ranked := suggest.Rank(weights)
	suggestions := suggest.Select(ranked, suggest.DetectScheme(word), limit, e.noSuggest)

	e.cache.Store(word, limit, suggestions)
	e.logger.Debugf("Suggest %q: %d candidates, returning %d", word, len(ranked), len(suggestions))
	return suggestions, nil
}

// Complete returns up to limit dictionary words starting with prefix,
// shortest first. A capitalized or all-caps prefix also matches lower-case
// words, which are returned recased like the prefix.
func (e *Engine) Complete(prefix string, limit int) ([]string, error) {
	if !e.loaded.Load() {
		return nil, ErrNotLoaded
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	prefix = strings.TrimSpace(prefix)

	results := e.completer.Complete(prefix, limit)
	scheme := suggest.DetectScheme(prefix)
	if scheme == suggest.AllUpper && utf8.RuneCountInString(prefix) == 1 {
		scheme = suggest.Capitalized
	}
	lower := strings.ToLower(prefix)
	if len(results) >= limit || scheme == suggest.Unchanged || lower == prefix {
		return results, nil
	}

	filter := utils.NewSuggestionFilter(results...)
	for _, word := range e.completer.Complete(lower, limit) {
		word = scheme.Apply(word)
		if filter.ShouldInclude(word) {
			results = append(results, word)
		}
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

func (e *Engine) noSuggest(word string) bool {
	return e.hasFlag(word, affix.NoSuggest, nil)
}

func (e *Engine) getAlphabet() []rune {
	e.alphabetOnce.Do(func() {
		try, _ := e.grammar.Flag(affix.Try)
		wordChars, _ := e.grammar.Flag(affix.WordChars)
		e.alphabet = suggest.Alphabet(try, wordChars)
	})
	return e.alphabet
}
