package mscsc

import "errors"

// Sentinel errors. Wrapped with fmt.Errorf("mscsc: %s: %w", op, Err...) at
// call sites; never stringified here.
var (
	// ErrVertexOutOfRange is returned when a vertex id falls outside [0, N].
	ErrVertexOutOfRange = errors.New("vertex out of range")

	// ErrEdgeNotFound is returned when a requested edge does not exist in
	// the adjacency list it was looked up in.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrPoolExhausted indicates the empty-node pool could not satisfy an
	// allocation request. Per §7 this is an invariant violation: the pool
	// is sized at construction time so every possible merge/split has a
	// spare id, so seeing this means the sizing invariant itself broke.
	ErrPoolExhausted = errors.New("empty super-node pool exhausted")

	// ErrNotConstructed is returned when an incremental operation is
	// attempted before Construction has run.
	ErrNotConstructed = errors.New("graph not constructed")

	// ErrMalformedInput is returned by loader readers on a syntactically
	// invalid graph or update file.
	ErrMalformedInput = errors.New("malformed input")
)
