package graph

import "github.com/jrenders/frank2/bitset"

// VertexID and EdgeID are plain zero-based indices; kept as named types for
// readability at call sites, not for type safety (both are plain int).
type VertexID = int
type EdgeID = int

// EdgeNumbering is the canonical, symmetric edge indexing described in
// spec.md §3: iterate vertices ascending, and for each vertex number its
// not-yet-numbered (strictly larger) neighbors in ascending order.
type EdgeNumbering struct {
	n     int
	index [][]int // index[u][v] = edge id, or -1 if u,v not adjacent
	ends  []edgeEnds
}

type edgeEnds struct{ U, V VertexID }

// Index returns the edge id for adjacent vertices u, v (order-independent).
// u and v are assumed adjacent; callers within this module only ever query
// pairs taken from the graph's own adjacency.
func (en *EdgeNumbering) Index(u, v VertexID) EdgeID { return en.index[u][v] }

// Endpoints returns the two vertices incident to edge e, in canonical
// (smaller, larger) order.
func (en *EdgeNumbering) Endpoints(e EdgeID) (VertexID, VertexID) {
	return en.ends[e].U, en.ends[e].V
}

// M reports the number of edges numbered (3n/2 for a cubic graph on n
// vertices).
func (en *EdgeNumbering) M() int { return len(en.ends) }

// UndirectedGraph is a simple cubic graph: every vertex has exactly three
// neighbors. Adjacency is stored as one bitset.Set per vertex.
type UndirectedGraph struct {
	N   int
	Adj []bitset.Set
	Num *EdgeNumbering
}

// NewUndirectedGraph allocates an edgeless graph on n vertices. Call AddEdge
// to populate adjacency, then Finalize once all edges are present.
func NewUndirectedGraph(n int) (*UndirectedGraph, error) {
	if n <= 0 || n > 128 {
		return nil, ErrTooManyVertices
	}

	adj := make([]bitset.Set, n)
	for i := range adj {
		adj[i] = bitset.New(n)
	}

	return &UndirectedGraph{N: n, Adj: adj}, nil
}

// AddEdge adds the undirected edge {u,v}. It rejects self-loops and
// duplicate edges so the graph stays simple, as required of a cubic graph.
func (g *UndirectedGraph) AddEdge(u, v VertexID) error {
	if u == v {
		return ErrSelfLoop
	}
	if g.Adj[u].Has(v) {
		return ErrParallelEdge
	}
	g.Adj[u].Add(v)
	g.Adj[v].Add(u)

	return nil
}

// Finalize validates that g is cubic and builds its canonical EdgeNumbering.
// Call exactly once after all edges have been added.
func (g *UndirectedGraph) Finalize() error {
	for u := 0; u < g.N; u++ {
		if g.Adj[u].Len() != 3 {
			return ErrNotCubic
		}
	}

	index := make([][]int, g.N)
	for u := range index {
		row := make([]int, g.N)
		for v := range row {
			row[v] = -1
		}
		index[u] = row
	}

	ends := make([]edgeEnds, 0, g.N*3/2)
	var next int
	for u := 0; u < g.N; u++ {
		for v, ok := g.Adj[u].Next(u); ok; v, ok = g.Adj[u].Next(v) {
			index[u][v] = next
			index[v][u] = next
			ends = append(ends, edgeEnds{U: u, V: v})
			next++
		}
	}

	g.Num = &EdgeNumbering{n: g.N, index: index, ends: ends}

	return nil
}

// M reports the number of edges (3N/2 once Finalize has run).
func (g *UndirectedGraph) M() int { return g.Num.M() }
