/*
Package server implements msgpack IPC for the word dictionary.

The server reads a stream of msgpack-encoded requests from its input (stdin in
production) and writes one msgpack response per request to its output. Every
request carries an ID that is echoed back, and an action naming the operation.

# IPC

Completion requests ask for the ranked suggestions of a prefix:

	{"id": "req_001", "action": "complete", "p": "ca"}

The server responds with at most three suggestions, most frequent first:

	{"id": "req_001", "s": [{"w": "cart", "f": 9, "r": 1}, {"w": "cat", "f": 5, "r": 2}], "c": 2, "t": 14}

Word requests query and mutate the dictionary:

	{"id": "req_002", "action": "search", "w": "cat"}
	{"id": "req_003", "action": "add", "w": "cow", "f": 4}
	{"id": "req_004", "action": "delete", "w": "cow"}

and are answered with {"id": ..., "ok": true, "f": 5}. "ok" is false when the
word was missing (search, delete) or already present (add); a refused add
reports the frequency already stored.

"stats" and "health" report dictionary statistics and liveness.

"config" changes the prefix bounds and filter of the running server and
writes them to the config file in use. Omitted fields keep their value; a
request with no fields only reports the current settings:

	{"id": "req_005", "action": "config", "min": 2, "filter": false}

Contract violations such as an empty word, a negative frequency, an unknown
action or a prefix outside the configured length bounds produce an error
response with code 400.
*/
package server

// Request - one IPC request, fields used depend on Action
type Request struct {
	ID        string `msgpack:"id"`
	Action    string `msgpack:"action"`      // "complete", "search", "add", "delete", "stats", "health"
	Prefix    string `msgpack:"p,omitempty"` // for "complete"
	Word      string `msgpack:"w,omitempty"` // for "search", "add", "delete"
	Frequency int    `msgpack:"f,omitempty"` // for "add"

	// for "config"; nil fields are left unchanged
	MinPrefix    *int  `msgpack:"min,omitempty"`
	MaxPrefix    *int  `msgpack:"max,omitempty"`
	EnableFilter *bool `msgpack:"filter,omitempty"`
}

// CompletionSuggestion - one ranked suggestion
type CompletionSuggestion struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
	Rank      uint16 `msgpack:"r"`
}

// CompletionResponse - completion response, TimeTaken in microseconds
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// WordResponse - search, add and delete response
type WordResponse struct {
	ID        string `msgpack:"id"`
	OK        bool   `msgpack:"ok"`
	Frequency int    `msgpack:"f"`
}

// StatusResponse - health, ready and stats response
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
