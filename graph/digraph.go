package graph

import "github.com/jrenders/frank2/bitset"

// DiGraph is a directed graph on the same vertex set as an UndirectedGraph,
// storing both forward (Out) and reverse (In) adjacency so that predecessor
// queries (needed by scc's second DFS pass) are O(1) per vertex instead of
// a full scan.
//
// Invariant: v ∈ Out[u] ⇔ u ∈ In[v], and ArcCount == Σ|Out[u]|. A DiGraph is
// a full orientation of an UndirectedGraph g when ArcCount == g.M() and,
// for every edge {u,v} of g, exactly one of Out[u].Has(v) / Out[v].Has(u)
// holds; fewer arcs (none reversed) is a valid partial orientation used
// during enumeration.
type DiGraph struct {
	N        int
	Out      []bitset.Set
	In       []bitset.Set
	ArcCount int
}

// NewDiGraph allocates an arc-less digraph on n vertices.
func NewDiGraph(n int) *DiGraph {
	out := make([]bitset.Set, n)
	in := make([]bitset.Set, n)
	for i := 0; i < n; i++ {
		out[i] = bitset.New(n)
		in[i] = bitset.New(n)
	}

	return &DiGraph{N: n, Out: out, In: in}
}

// AddArc records u -> v. Caller guarantees u != v and the arc is not
// already present (both hold by construction in exact/heuristic, which
// never double-orient an edge).
func (d *DiGraph) AddArc(u, v VertexID) {
	d.Out[u].Add(v)
	d.In[v].Add(u)
	d.ArcCount++
}

// RemoveArc removes u -> v if present.
func (d *DiGraph) RemoveArc(u, v VertexID) {
	if !d.Out[u].Has(v) {
		return
	}
	d.Out[u].Remove(v)
	d.In[v].Remove(u)
	d.ArcCount--
}

// HasArc reports whether u -> v is present.
func (d *DiGraph) HasArc(u, v VertexID) bool { return d.Out[u].Has(v) }

// OutDegree and InDegree report |Out[v]| and |In[v]|.
func (d *DiGraph) OutDegree(v VertexID) int { return d.Out[v].Len() }
func (d *DiGraph) InDegree(v VertexID) int  { return d.In[v].Len() }

// ReverseAll flips every arc in d (u->v becomes v->u).
func (d *DiGraph) ReverseAll() {
	for u := 0; u < d.N; u++ {
		d.Out[u], d.In[u] = d.In[u], d.Out[u]
	}
}

// Clone returns an independent copy of d, suitable for stashing as a
// witness orientation while d itself keeps being mutated by the search.
func (d *DiGraph) Clone() *DiGraph {
	out := make([]bitset.Set, d.N)
	in := make([]bitset.Set, d.N)
	for u := 0; u < d.N; u++ {
		out[u] = bitset.New(d.N)
		out[u].SetRaw(d.Out[u].Raw())
		in[u] = bitset.New(d.N)
		in[u].SetRaw(d.In[u].Raw())
	}

	return &DiGraph{N: d.N, Out: out, In: in, ArcCount: d.ArcCount}
}

// Snapshot is a reusable scratch buffer for DiGraph.Save/Restore; later
// Saves into the same Snapshot overwrite its per-vertex slices in place.
type Snapshot struct {
	out, in  [][]uint64
	arcCount int
}

// NewSnapshot allocates a Snapshot sized for a DiGraph on n vertices.
func NewSnapshot(n int) *Snapshot {
	return &Snapshot{out: make([][]uint64, n), in: make([][]uint64, n)}
}

// Save copies d's entire state into s, overwriting s's previous contents.
func (d *DiGraph) Save(s *Snapshot) {
	for u := 0; u < d.N; u++ {
		s.out[u] = append(s.out[u][:0], d.Out[u].Raw()...)
		s.in[u] = append(s.in[u][:0], d.In[u].Raw()...)
	}
	s.arcCount = d.ArcCount
}

// Restore overwrites d's entire state with s's contents (the inverse of
// Save).
func (d *DiGraph) Restore(s *Snapshot) {
	for u := 0; u < d.N; u++ {
		d.Out[u].SetRaw(s.out[u])
		d.In[u].SetRaw(s.in[u])
	}
	d.ArcCount = s.arcCount
}

// IsFullOrientationOf reports whether d orients every edge of g exactly
// once (ArcCount == g.M() and no edge is doubly-oriented or unoriented).
func (d *DiGraph) IsFullOrientationOf(g *UndirectedGraph) bool {
	if d.ArcCount != g.M() {
		return false
	}
	ok := true
	for u := 0; u < g.N && ok; u++ {
		for v, has := g.Adj[u].Next(u); has && ok; v, has = g.Adj[u].Next(v) {
			fwd := d.HasArc(u, v)
			bwd := d.HasArc(v, u)
			if fwd == bwd { // both or neither oriented: invalid
				ok = false
			}
		}
	}

	return ok
}
