package affix

import (
	"regexp"
	"sync"

	"github.com/charmbracelet/log"
)

// PatternCache memoizes compiled affix patterns by their source text.
// Entries sharing a pattern string share one *regexp.Regexp. A pattern that
// fails to compile is remembered as nil so it is reported only once.
type PatternCache struct {
	compiled map[string]*regexp.Regexp
	failures int
	mu       sync.Mutex
}

// NewPatternCache creates an empty cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{
		compiled: make(map[string]*regexp.Regexp),
	}
}

// Compile returns the compiled form of src, or nil when src is empty or
// malformed. A nil result means the entry carries no constraint.
func (pc *PatternCache) Compile(src string) *regexp.Regexp {
	if src == "" {
		return nil
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if re, seen := pc.compiled[src]; seen {
		return re
	}

	re, err := regexp.Compile(src)
	if err != nil {
		// some shipped dictionaries carry unbalanced patterns
		log.Debugf("Ignoring malformed affix pattern %q: %v", src, err)
		pc.failures++
		re = nil
	}
	pc.compiled[src] = re
	return re
}

// Len returns the number of distinct pattern sources seen.
func (pc *PatternCache) Len() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return len(pc.compiled)
}

// Failures returns how many distinct sources failed to compile.
func (pc *PatternCache) Failures() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.failures
}
