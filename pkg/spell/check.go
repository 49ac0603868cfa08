package spell

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/affix"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
)

// CheckExact reports whether word is in the dictionary exactly as given,
// or matches a compound rule.
func (e *Engine) CheckExact(word string) (bool, error) {
	if !e.loaded.Load() {
		return false, ErrNotLoaded
	}
	return e.checkExact(word), nil
}

// Check reports whether word is spelled correctly, tolerating an all-caps
// or capitalized spelling of a lower-case word unless it carries KEEPCASE.
// Surrounding whitespace is ignored and an empty word is correct.
func (e *Engine) Check(word string) (bool, error) {
	if !e.loaded.Load() {
		return false, ErrNotLoaded
	}
	return e.check(word), nil
}

// HasFlag reports whether word carries the code declared for the flag name
// (for example "NOSUGGEST"). Undeclared flags are never set.
func (e *Engine) HasFlag(word, name string) (bool, error) {
	if !e.loaded.Load() {
		return false, ErrNotLoaded
	}
	return e.hasFlag(word, name, nil), nil
}

func (e *Engine) check(word string) bool {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return true
	}
	if e.checkExact(trimmed) {
		return true
	}

	if utils.IsAllUpper(trimmed) {
		capitalized := utils.KeepFirstLowerRest(trimmed)
		if e.hasFlag(capitalized, affix.KeepCase, nil) {
			return false
		}
		if e.checkExact(capitalized) {
			return true
		}
		lower := strings.ToLower(trimmed)
		if e.hasFlag(lower, affix.KeepCase, nil) {
			return false
		}
		if e.checkExact(lower) {
			return true
		}
	}

	uncapitalized := utils.LowerFirst(trimmed)
	if uncapitalized != trimmed {
		if e.hasFlag(uncapitalized, affix.KeepCase, nil) {
			return false
		}
		if e.checkExact(uncapitalized) {
			return true
		}
	}
	return false
}

func (e *Engine) checkExact(word string) bool {
	rec := e.lexicon.Words.Lookup(word)
	if !rec.Present() {
		return e.hasCompoundMin &&
			utf8.RuneCountInString(word) >= e.compoundMin &&
			e.lexicon.MatchesCompound(word)
	}
	return e.accepts(rec)
}

// accepts reports whether a present record stands on its own, i.e. is not
// usable only inside compounds.
func (e *Engine) accepts(rec dictionary.Record) bool {
	if rec.Kind == dictionary.Flagless {
		return true
	}
	onlyInCompound, declared := e.grammar.Flag(affix.OnlyInCompound)
	for _, code := range rec.Flags {
		if !declared || code != onlyInCompound {
			return true
		}
	}
	return false
}

// hasFlag looks the word's codes up unless explicit is given.
func (e *Engine) hasFlag(word, name string, explicit []string) bool {
	code, declared := e.grammar.Flag(name)
	if !declared {
		return false
	}
	codes := explicit
	if codes == nil {
		codes = e.lexicon.Words.Lookup(word).Flags
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
