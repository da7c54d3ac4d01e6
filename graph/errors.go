package graph

import "errors"

// Sentinel errors for the graph package. Callers MUST use errors.Is to
// branch on semantics; messages are never parameterized at the definition
// site (context, when needed, is attached with fmt.Errorf("...: %w", ErrX)
// at the call site).
var (
	// ErrTooManyVertices indicates n exceeds the 128-vertex domain limit
	// (NewUndirectedGraph also returns it for n <= 0).
	ErrTooManyVertices = errors.New("graph: vertex count exceeds 128")

	// ErrNotCubic indicates some vertex does not have exactly 3 neighbors.
	ErrNotCubic = errors.New("graph: vertex degree is not exactly 3")

	// ErrSelfLoop indicates an edge connects a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop is not allowed in a cubic graph")

	// ErrParallelEdge indicates the same unordered pair was added twice.
	ErrParallelEdge = errors.New("graph: parallel edge is not allowed in a simple cubic graph")
)
