package graph

import "errors"

// Sentinel errors for graph operations. Callers branch on these with
// errors.Is; messages are never relied upon for program logic.
var (
	// ErrEmptyName indicates a vertex name of zero length was supplied.
	ErrEmptyName = errors.New("graph: vertex name is empty")

	// ErrNameTooLong indicates a name exceeded Limits.MaxNameBytes.
	ErrNameTooLong = errors.New("graph: vertex name too long")

	// ErrCapacity indicates the vertex capacity bound was reached (Add,
	// AddDummy). The graph stays valid; the offending vertex is simply not
	// added. Edge and fan-out overflow in AddEdge is a silent no-op that
	// returns nil, not ErrCapacity.
	ErrCapacity = errors.New("graph: capacity exceeded")

	// ErrUnknownVertex indicates a VertexID not present in this graph was
	// used in an operation that requires one (e.g. AddEdge with a removed
	// or out-of-range ID).
	ErrUnknownVertex = errors.New("graph: unknown vertex id")
)
