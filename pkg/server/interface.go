/*
Package server implements msgpack IPC for the fuzzy ranking engine.

Editors and scripts that want linepick's ranking without its terminal UI start
the binary with -serve and a candidate file. The candidate pool is fixed for
the lifetime of the process; each request carries a query and gets back the
ranked matches.

# IPC

Requests are read from stdin as a stream of msgpack maps and every request
produces exactly one response map on stdout, in order:

	{"id": "req_001", "q": "srch", "l": 5}

The response lists matches best first with their 1-based rank and the rune
positions that matched, the total number of matches and the time taken in
microseconds:

	{"id": "req_001", "s": [{"c": "pkg/search/search.go", "r": 1, "p": [0, 4, 6, 9]}], "c": 1, "t": 85}

A request that cannot be served gets an error map instead:

	{"id": "req_002", "e": "query exceeds maximum length of 256 characters", "c": 400}

The server stops cleanly when stdin reaches EOF.
*/
package server

// FilterRequest asks for the candidates matching Query
type FilterRequest struct {
	ID    string `msgpack:"id"`
	Query string `msgpack:"q"`
	Limit int    `msgpack:"l,omitempty"`
}

// FilterMatch is one ranked candidate
type FilterMatch struct {
	Candidate string `msgpack:"c"`
	Rank      int    `msgpack:"r"`
	Positions []int  `msgpack:"p,omitempty"`
}

// FilterResponse answers a FilterRequest.
// Count is the total number of matches, which may exceed len(Matches).
type FilterResponse struct {
	ID        string        `msgpack:"id"`
	Matches   []FilterMatch `msgpack:"s"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// FilterError holds basic error information for a failed request
type FilterError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Error codes
const (
	CodeBadRequest = 400
	CodeInternal   = 500
)
