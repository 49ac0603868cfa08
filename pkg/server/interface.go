/*
Package server implements msgpack IPC for spell checking services.

The server reads msgpack-encoded requests from stdin and writes one
msgpack-encoded response per request to stdout. Logs go to stderr.

# IPC

Every request carries an ID, an action and usually a word:

	{"id": "req_001", "a": "check", "w": "Teh"}
	{"id": "req_002", "a": "suggest", "w": "teh", "l": 5}
	{"id": "req_003", "a": "complete", "w": "dict", "l": 8}
	{"id": "req_004", "a": "info"}

A check answers with the verdict:

	{"id": "req_001", "w": "Teh", "ok": false, "t": 12}

Suggestions and completions share one shape, best first, with timing in
microseconds:

	{"id": "req_002", "s": [{"w": "the", "r": 1}, {"w": "ten", "r": 2}], "c": 2, "t": 845}

Info reports the loaded locale and the engine counters. Failures come back
as an ErrorResponse with an HTTP-like code: 400 for bad requests, 503 when
the dictionary is not loaded and 500 for anything else.
*/
package server

// Supported request actions.
const (
	ActionCheck    = "check"
	ActionSuggest  = "suggest"
	ActionComplete = "complete"
	ActionInfo     = "info"
)

// Request is a single client message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CheckResponse answers a check request.
type CheckResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Correct   bool   `msgpack:"ok"`
	TimeTaken int64  `msgpack:"t"`
}

// Suggestion is one ranked word, rank 1 being the best.
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// SuggestResponse answers suggest and complete requests.
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// InfoResponse describes the loaded dictionary.
type InfoResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Locale string         `msgpack:"locale"`
	Stats  map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
