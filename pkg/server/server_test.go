package server

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func testEngine(t *testing.T) *spell.Engine {
	t.Helper()
	e, err := spell.New("en_TEST", "SFX A Y 1\nSFX A 0 s .\n", "the\ncat/A\ncar\ncafé\n",
		spell.WithLogger(logger.Discard()))
	require.NoError(t, err)
	return e
}

func encodeRequests(t *testing.T, reqs ...any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}
	return &buf
}

func serve(t *testing.T, checker Checker, cfg *config.Config, in *bytes.Buffer) (*msgpack.Decoder, *Server, error) {
	t.Helper()
	var out bytes.Buffer
	s := NewServerWithIO(checker, cfg, in, &out)
	err := s.Start()
	return msgpack.NewDecoder(&out), s, err
}

func TestServerActions(t *testing.T) {
	in := encodeRequests(t,
		Request{ID: "1", Action: ActionCheck, Word: "Cats"},
		Request{ID: "2", Action: ActionCheck, Word: "dgo"},
		Request{ID: "3", Action: ActionSuggest, Word: "teh", Limit: 3},
		Request{ID: "4", Action: ActionComplete, Word: "ca"},
		Request{ID: "5", Action: ActionInfo},
	)

	dec, s, err := serve(t, testEngine(t), nil, in)
	require.NoError(t, err)
	assert.Equal(t, 5, s.RequestCount())

	var check CheckResponse
	require.NoError(t, dec.Decode(&check))
	assert.Equal(t, "1", check.ID)
	assert.True(t, check.Correct)

	require.NoError(t, dec.Decode(&check))
	assert.Equal(t, "2", check.ID)
	assert.False(t, check.Correct)

	var suggest SuggestResponse
	require.NoError(t, dec.Decode(&suggest))
	assert.Equal(t, "3", suggest.ID)
	require.NotEmpty(t, suggest.Suggestions)
	assert.Equal(t, Suggestion{Word: "the", Rank: 1}, suggest.Suggestions[0])
	assert.Equal(t, len(suggest.Suggestions), suggest.Count)

	require.NoError(t, dec.Decode(&suggest))
	assert.Equal(t, "4", suggest.ID)
	var words []string
	for _, sg := range suggest.Suggestions {
		words = append(words, sg.Word)
	}
	assert.Equal(t, []string{"car", "cat", "café", "cats"}, words)

	var info InfoResponse
	require.NoError(t, dec.Decode(&info))
	assert.Equal(t, "ok", info.Status)
	assert.Equal(t, "en_TEST", info.Locale)
	assert.Equal(t, 1, info.Stats["loaded"])
}

func TestServerNormalizesInput(t *testing.T) {
	in := encodeRequests(t, Request{ID: "nfc", Action: ActionCheck, Word: "  café "})

	dec, _, err := serve(t, testEngine(t), nil, in)
	require.NoError(t, err)

	var check CheckResponse
	require.NoError(t, dec.Decode(&check))
	assert.Equal(t, "café", check.Word)
	assert.True(t, check.Correct)
}

func TestServerErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxWordLength = 8

	in := encodeRequests(t,
		Request{ID: "a", Action: "spell"},
		Request{ID: "b", Action: ActionSuggest},
		Request{ID: "c", Action: ActionCheck, Word: strings.Repeat("x", 9)},
	)

	dec, _, err := serve(t, testEngine(t), cfg, in)
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 400, resp.Code)
		assert.NotEmpty(t, resp.Error)
	}
}

func TestServerNotLoaded(t *testing.T) {
	e, err := spell.NewEngine("en", "TRY a\n", "cat\n", spell.WithLogger(logger.Discard()))
	require.NoError(t, err)

	in := encodeRequests(t, Request{ID: "x", Action: ActionCheck, Word: "cat"})
	dec, _, err := serve(t, e, nil, in)
	require.NoError(t, err)

	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 503, resp.Code)
}

func TestServerLimitClamped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Suggest.MaxLimit = 2

	in := encodeRequests(t, Request{ID: "l", Action: ActionComplete, Word: "ca", Limit: 50})
	dec, _, err := serve(t, testEngine(t), cfg, in)
	require.NoError(t, err)

	var resp SuggestResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 2, resp.Count)
}

func TestServerBadInput(t *testing.T) {
	in := bytes.NewBuffer([]byte{0xc1}) // never-used msgpack code

	dec, _, err := serve(t, testEngine(t), nil, in)
	require.Error(t, err)

	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 400, resp.Code)
}
