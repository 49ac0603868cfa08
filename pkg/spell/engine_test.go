package spell

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/affix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, aff, dic string, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithLogger(logger.Discard())}, opts...)
	e, err := New("test", aff, dic, opts...)
	require.NoError(t, err)
	return e
}

func mustCheck(t *testing.T, e *Engine, word string) bool {
	t.Helper()
	ok, err := e.Check(word)
	require.NoError(t, err)
	return ok
}

func mustSuggest(t *testing.T, e *Engine, word string, limit int) []string {
	t.Helper()
	out, err := e.Suggest(word, limit)
	require.NoError(t, err)
	return out
}

const inflections = `SET UTF-8
TRY esianrtolcdugmphbyfvkwz

PFX U Y 1
PFX U 0 un .

PFX R Y 1
PFX R 0 re .

SFX S Y 4
SFX S y ies [^aeiou]y
SFX S 0 s [aeiou]y
SFX S 0 es [sxzh]
SFX S 0 s [^sxzhy]

SFX D Y 2
SFX D 0 d e
SFX D 0 ed [^e]
`

func TestExampleIO(t *testing.T) {
	e := newEngine(t, "SFX A Y 1\nSFX A 0 s .\n", "cat/A")

	assert.True(t, mustCheck(t, e, "cat"))
	assert.True(t, mustCheck(t, e, "cats"))
	assert.False(t, mustCheck(t, e, "dog"))
}

func TestRoundTripInflection(t *testing.T) {
	e := newEngine(t, inflections, "4\nfly/S\nbox/SD\nlock/URSD\ntoy/S\n")

	forms := []string{
		"fly", "flies",
		"box", "boxes", "boxed",
		"lock", "locks", "locked", "unlock", "relock",
		"unlocks", "unlocked", "relocks", "relocked",
		"toy", "toys",
	}
	for _, form := range forms {
		exact, err := e.CheckExact(form)
		require.NoError(t, err)
		assert.True(t, exact, form)
	}

	for _, wrong := range []string{"flys", "boxs", "toies", "unfly", "unrelock"} {
		assert.False(t, mustCheck(t, e, wrong), wrong)
	}
}

func TestCaseTolerance(t *testing.T) {
	e := newEngine(t, inflections, "cat/S\nParis\nNASA\n")

	for _, w := range []string{"cat", "cats"} {
		require.True(t, mustCheck(t, e, w))
		assert.True(t, mustCheck(t, e, strings.ToUpper(w)), "all caps of %s", w)
		assert.True(t, mustCheck(t, e, utils.Capitalize(w)), "capitalized %s", w)
	}

	assert.True(t, mustCheck(t, e, "PARIS"))
	assert.False(t, mustCheck(t, e, "paris"), "lower-casing a proper noun is an error")
	assert.True(t, mustCheck(t, e, "NASA"))
	assert.False(t, mustCheck(t, e, "Nasa"))
	assert.False(t, mustCheck(t, e, "cAT"))
}

func TestKeepCase(t *testing.T) {
	e := newEngine(t, "KEEPCASE K\n", "iPod/K\nHello/K\nworld/K\n")

	testCases := []struct {
		word     string
		expected bool
	}{
		{word: "iPod", expected: true},
		{word: "ipod", expected: false},
		{word: "IPOD", expected: false},
		{word: "IPod", expected: false},
		{word: "Hello", expected: true},
		{word: "hello", expected: false},
		{word: "HELLO", expected: false},
		{word: "world", expected: true},
		{word: "World", expected: false},
		{word: "WORLD", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.expected, mustCheck(t, e, tc.word))
		})
	}
}

func TestKeepCaseAllCapsLowerForm(t *testing.T) {
	e := newEngine(t, "KEEPCASE K\n", "nasa/K\nradar\n")

	assert.True(t, mustCheck(t, e, "nasa"))
	assert.False(t, mustCheck(t, e, "NASA"), "lower-case form carries KEEPCASE")
	assert.False(t, mustCheck(t, e, "Nasa"))
	assert.True(t, mustCheck(t, e, "RADAR"))
}

func TestCheckWhitespace(t *testing.T) {
	e := newEngine(t, "TRY a\n", "cat\n")

	assert.True(t, mustCheck(t, e, ""))
	assert.True(t, mustCheck(t, e, "   \t"))
	assert.True(t, mustCheck(t, e, "  cat\n"))

	exact, err := e.CheckExact(" cat")
	require.NoError(t, err)
	assert.False(t, exact, "CheckExact does not trim")
}

func TestCompoundFallback(t *testing.T) {
	aff := "COMPOUNDMIN 3\nCOMPOUNDRULE 1\nCOMPOUNDRULE AB\n"
	e := newEngine(t, aff, "sun/A\nshine/B\n")

	exact, err := e.CheckExact("sunshine")
	require.NoError(t, err)
	assert.True(t, exact)
	assert.True(t, mustCheck(t, e, "Sunshine"))
	assert.False(t, mustCheck(t, e, "shinesun"))

	short := newEngine(t, "COMPOUNDMIN 9\nCOMPOUNDRULE 1\nCOMPOUNDRULE AB\n", "sun/A\nshine/B\n")
	assert.False(t, mustCheck(t, short, "sunshine"), "shorter than COMPOUNDMIN")

	undeclared := newEngine(t, "COMPOUNDRULE 1\nCOMPOUNDRULE AB\n", "sun/A\nshine/B\n")
	assert.False(t, mustCheck(t, undeclared, "sunshine"), "compounds need COMPOUNDMIN")
}

func TestOnlyInCompound(t *testing.T) {
	aff := "ONLYINCOMPOUND C\nCOMPOUNDMIN 1\nCOMPOUNDRULE 1\nCOMPOUNDRULE AC\n"
	e := newEngine(t, aff, "foot/A\nball/C\n")

	assert.False(t, mustCheck(t, e, "ball"))
	assert.True(t, mustCheck(t, e, "foot"))
	assert.True(t, mustCheck(t, e, "football"))

	words, err := e.Complete("ba", 5)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestSuggestEditDistance(t *testing.T) {
	e := newEngine(t, "TRY esianrtolcdugmphbyfvkwz\n", "the\ndictionary\n")

	got := mustSuggest(t, e, "teh", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "the", got[0])

	// case variants accepted by Check survive recasing as distinct words
	assert.Equal(t, []string{"The", "THE"}, mustSuggest(t, e, "Teh", 5))
	assert.Equal(t, []string{"THE"}, mustSuggest(t, e, "TEH", 5))
	assert.Equal(t, []string{"dictionary", "Dictionary"}, mustSuggest(t, e, "dictonary", 5))
}

func TestSuggestNonMembership(t *testing.T) {
	e := newEngine(t, inflections, "fly/S\nbox/SD\n")

	for _, w := range []string{"fly", "flies", "Boxes", "", "  "} {
		got := mustSuggest(t, e, w, 5)
		assert.NotNil(t, got)
		assert.Empty(t, got, w)
	}
}

var neighbours = "test\ntests\nteat\ntent\ntext\ntote\nbets\njets\nlets\nnets\npets\nsets\nvets\nwets\ntees\nties\ntoes\n"

func TestSuggestDeterminism(t *testing.T) {
	first := mustSuggest(t, newEngine(t, "TRY et\n", neighbours), "tets", 8)
	second := mustSuggest(t, newEngine(t, "TRY et\n", neighbours), "tets", 8)

	require.Len(t, first, 8)
	assert.Equal(t, first, second)
}

func TestSuggestCacheMonotonic(t *testing.T) {
	e := newEngine(t, "TRY et\n", neighbours)

	small := mustSuggest(t, e, "tets", 3)
	require.Len(t, small, 3)

	large := mustSuggest(t, e, "tets", 10)
	require.Len(t, large, 10)
	assert.Equal(t, small, large[:3])

	again := mustSuggest(t, e, "tets", 3)
	assert.Equal(t, small, again)
	assert.Equal(t, 1, e.Stats()["cachedWords"])
	assert.GreaterOrEqual(t, e.Stats()["cacheHits"], 1)
}

func TestSuggestDefaultLimit(t *testing.T) {
	e := newEngine(t, "TRY et\n", neighbours)

	assert.Len(t, mustSuggest(t, e, "tets", 0), DefaultLimit)
	assert.Len(t, mustSuggest(t, e, "tets", -3), DefaultLimit)
}

func TestSuggestNoSuggest(t *testing.T) {
	e := newEngine(t, "NOSUGGEST !\n", "the\nthy/!\n")

	assert.True(t, mustCheck(t, e, "thy"), "NOSUGGEST words are still correct")

	flagged, err := e.HasFlag("thy", affix.NoSuggest)
	require.NoError(t, err)
	assert.True(t, flagged)

	got := mustSuggest(t, e, "thz", 5)
	assert.Contains(t, got, "the")
	assert.NotContains(t, got, "thy")

	completions, err := e.Complete("th", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"the"}, completions)
}

func TestSuggestReplacementTable(t *testing.T) {
	e := newEngine(t, "REP 2\nREP f ph\nREP ei ie\n", "phone\nfine\nfield\n")

	assert.Equal(t, []string{"phone"}, mustSuggest(t, e, "fone", 5))
	assert.Equal(t, []string{"field"}, mustSuggest(t, e, "feild", 5))
	assert.Equal(t, 0, e.Stats()["cachedWords"], "replacement hits are not cached")
}

func TestHasFlag(t *testing.T) {
	e := newEngine(t, "KEEPCASE K\n", "iPod/K\ncat\n")

	testCases := []struct {
		word, flag string
		expected   bool
	}{
		{word: "iPod", flag: affix.KeepCase, expected: true},
		{word: "cat", flag: affix.KeepCase, expected: false},
		{word: "missing", flag: affix.KeepCase, expected: false},
		{word: "iPod", flag: affix.NoSuggest, expected: false},
	}
	for _, tc := range testCases {
		got, err := e.HasFlag(tc.word, tc.flag)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got, "%s/%s", tc.word, tc.flag)
	}
}

func TestWithFlagsSeed(t *testing.T) {
	aff := "SFX Aa Y 1\nSFX Aa 0 s .\n"

	plain := newEngine(t, aff, "cat/Aa\n")
	assert.False(t, mustCheck(t, plain, "cats"), "without FLAG long the codes are A and a")

	long := newEngine(t, aff, "cat/Aa\n", WithFlags(affix.FlagTable{affix.FlagEncoding: affix.EncodingLong}))
	assert.True(t, mustCheck(t, long, "cats"))
}

func TestComplete(t *testing.T) {
	e := newEngine(t, "SFX A Y 1\nSFX A 0 s .\n", "cat/A\ncar\ncatalog\nCanada\n")

	got, err := e.Complete("ca", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"car", "cat", "cats", "catalog"}, got)

	got, err = e.Complete("Ca", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Canada", "Car", "Cat"}, got)

	got, err = e.Complete("C", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Canada", "Car"}, got)
}

func TestNotLoaded(t *testing.T) {
	e, err := NewEngine("en", "TRY a\n", "cat\n", WithLogger(logger.Discard()))
	require.NoError(t, err)
	assert.False(t, e.Loaded())
	assert.Equal(t, 0, e.Stats()["loaded"])

	_, err = e.CheckExact("cat")
	assert.True(t, errors.Is(err, ErrNotLoaded))
	_, err = e.Check("cat")
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = e.Suggest("cat", 5)
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = e.HasFlag("cat", affix.KeepCase)
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = e.Complete("ca", 5)
	assert.ErrorIs(t, err, ErrNotLoaded)

	require.NoError(t, e.Initialize())
	require.NoError(t, e.Initialize(), "Initialize is idempotent")
	assert.True(t, mustCheck(t, e, "cat"))
	assert.Equal(t, "en", e.Locale())
}

func TestMissingInput(t *testing.T) {
	testCases := []struct {
		description        string
		locale, aff, words string
	}{
		{description: "locale", locale: "", aff: "TRY a", words: "cat"},
		{description: "grammar", locale: "en", aff: "", words: "cat"},
		{description: "word list", locale: "en", aff: "TRY a", words: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := New(tc.locale, tc.aff, tc.words)
			assert.ErrorIs(t, err, ErrMissingInput)
		})
	}
}

func TestStats(t *testing.T) {
	e := newEngine(t, inflections+"REP 1\nREP f ph\n", "fly/S\ntoy/S\n")
	stats := e.Stats()

	assert.Equal(t, 1, stats["loaded"])
	assert.Equal(t, 4, stats["totalWords"])
	assert.Equal(t, 4, stats["rules"])
	assert.Equal(t, 1, stats["replacements"])
	assert.Equal(t, 4, stats["completions"])
	assert.Equal(t, 0, stats["patternFailures"])
}

func TestConcurrentQueries(t *testing.T) {
	e := newEngine(t, "TRY et\n", neighbours)
	queries := []string{"tets", "tset", "Tets", "TETS", "test", "tezt"}

	want := make(map[string][]string, len(queries))
	for _, q := range queries {
		want[q] = mustSuggest(t, newEngine(t, "TRY et\n", neighbours), q, 5)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				q := queries[(offset+i)%len(queries)]
				got, err := e.Suggest(q, 5)
				if err != nil {
					errs <- err
					return
				}
				if len(got) != len(want[q]) {
					errs <- errors.New("inconsistent suggestions for " + q)
					return
				}
				if _, err := e.Check(q); err != nil {
					errs <- err
					return
				}
			}
		}(worker)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func BenchmarkSuggest(b *testing.B) {
	e, err := New("bench", "TRY et\n", neighbours, WithLogger(logger.Discard()))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// distinct words bypass the cache
		if _, err := e.Suggest(queriesFor(i), 5); err != nil {
			b.Fatal(err)
		}
	}
}

func queriesFor(i int) string {
	letters := "abcdefghij"
	return "te" + string(letters[i%len(letters)]) + "s"
}
