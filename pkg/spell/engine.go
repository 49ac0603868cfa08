/*
Package spell is the public face of wordcheck: an Engine built from one
Hunspell-style dictionary (an affix grammar plus a root word list) that
answers membership queries, produces ranked spelling suggestions and
completes prefixes.

	engine, err := spell.New("en_US", affData, dicData)
	if err != nil {
		return err
	}
	ok, _ := engine.Check("Cats")
	fixes, _ := engine.Suggest("teh", 5)

Building is deferred: NewEngine only validates its inputs and Initialize
expands the word list. After Initialize returns the Engine is safe for
concurrent use.
*/
package spell

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/affix"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
)

// DefaultLimit is used when a query asks for zero or fewer results.
const DefaultLimit = 5

// Option configures an Engine before it is built.
type Option func(*Engine)

// WithFlags pre-seeds the flag table, e.g. to force a FLAG encoding the
// affix file does not declare. Declarations in the affix file win.
func WithFlags(flags affix.FlagTable) Option {
	return func(e *Engine) {
		e.seed = flags.Clone()
	}
}

// WithLogger replaces the engine's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine checks and corrects words against one dictionary.
type Engine struct {
	locale  string
	affData string
	dicData string
	seed    affix.FlagTable
	logger  *log.Logger

	grammar   *affix.Grammar
	lexicon   *dictionary.Lexicon
	replacer  *suggest.Replacer
	completer *suggest.Completer
	cache     *suggest.Cache

	compoundMin    int
	hasCompoundMin bool

	alphabet     []rune
	alphabetOnce sync.Once

	buildTime time.Duration
	loaded    atomic.Bool
	mu        sync.Mutex
}

// NewEngine validates its inputs and returns an Engine that still needs
// Initialize. The locale is only a label for callers.
func NewEngine(locale, affData, dicData string, opts ...Option) (*Engine, error) {
	if locale == "" || affData == "" || dicData == "" {
		return nil, ErrMissingInput
	}

	e := &Engine{
		locale:  locale,
		affData: affData,
		dicData: dicData,
		logger:  logger.Default("spell"),
		cache:   suggest.NewCache(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// New creates and builds an Engine in one step.
func New(locale, affData, dicData string, opts ...Option) (*Engine, error) {
	e, err := NewEngine(locale, affData, dicData, opts...)
	if err != nil {
		return nil, err
	}
	if err := e.Initialize(); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize parses the grammar and expands the word list. Calling it again
// after a successful build does nothing.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loaded.Load() {
		return nil
	}
	if e.affData == "" || e.dicData == "" {
		return fmt.Errorf("initialize %s: %w", e.locale, ErrMissingInput)
	}

	start := time.Now()
	e.grammar = affix.Parse(e.affData, e.seed)
	e.lexicon = dictionary.Build(e.dicData, e.grammar)
	e.replacer = suggest.NewReplacer(e.grammar.Replacements)
	e.compoundMin, e.hasCompoundMin = e.grammar.Flags.Int(affix.CompoundMin)
	if e.grammar.Flags.Has(affix.CompoundMin) && !e.hasCompoundMin {
		e.logger.Warnf("Ignoring non-numeric COMPOUNDMIN %q", e.grammar.Flags[affix.CompoundMin])
	}

	e.completer = suggest.NewCompleter()
	e.lexicon.Words.Range(func(word string, rec dictionary.Record) bool {
		if e.accepts(rec) && !e.hasFlag(word, affix.NoSuggest, rec.Flags) {
			e.completer.AddWord(word)
		}
		return true
	})

	// the raw text is no longer needed once expanded
	e.affData, e.dicData = "", ""
	e.buildTime = time.Since(start)
	e.loaded.Store(true)

	e.logger.Infof("Loaded %s: %d words, %d rules in %v",
		e.locale, e.lexicon.Words.Len(), len(e.grammar.Rules), e.buildTime)
	return nil
}

// Loaded reports whether Initialize has finished.
func (e *Engine) Loaded() bool {
	return e.loaded.Load()
}

// Locale returns the label the engine was created with.
func (e *Engine) Locale() string {
	return e.locale
}

// Stats returns counters describing the built dictionary.
func (e *Engine) Stats() map[string]int {
	if !e.loaded.Load() {
		return map[string]int{"loaded": 0}
	}

	stats := map[string]int{
		"loaded":          1,
		"totalWords":      e.lexicon.Words.Len(),
		"rules":           len(e.grammar.Rules),
		"compoundRules":   len(e.lexicon.Compounds),
		"replacements":    e.replacer.Len(),
		"patterns":        e.grammar.Patterns.Len(),
		"patternFailures": e.grammar.Patterns.Failures(),
		"completions":     e.completer.Len(),
		"buildMillis":     int(e.buildTime.Milliseconds()),
	}
	for k, v := range e.cache.Stats() {
		stats[k] = v
	}
	return stats
}
