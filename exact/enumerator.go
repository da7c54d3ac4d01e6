package exact

import (
	"github.com/jrenders/frank2/bitset"
	"github.com/jrenders/frank2/deletable"
	"github.com/jrenders/frank2/graph"
	"github.com/jrenders/frank2/scc"
)

type edgeRef struct{ u, v graph.VertexID }

// engine holds everything a single Decide call needs: the graph, the
// digraph being built in place by branch-and-bound, and the reusable
// scc/deletable helpers.
type engine struct {
	g       *graph.UndirectedGraph
	edges   []edgeRef
	d       *graph.DiGraph
	sccT    *scc.Tester
	oracle  *deletable.Oracle
	opts    Options
	stats   Stats
	witness Witness
	found   bool
}

// Decide runs the exact engine on g and reports whether G admits a
// strongly connected orientation with a complementary partner (Frank
// number 2). g must already be Finalize()d.
func Decide(g *graph.UndirectedGraph, opts Options) (bool, Stats, Witness) {
	edges := make([]edgeRef, g.M())
	for e := 0; e < g.M(); e++ {
		u, v := g.Num.Endpoints(e)
		edges[e] = edgeRef{u: u, v: v}
	}

	e := &engine{
		g:      g,
		edges:  edges,
		d:      graph.NewDiGraph(g.N),
		sccT:   scc.NewTester(g.N),
		oracle: deletable.NewOracle(g.N),
		opts:   opts,
	}
	if opts.BruteForce {
		if opts.Pool != nil {
			e.opts.Pool = opts.Pool
			e.opts.Pool.Reset(g.M())
		} else {
			e.opts.Pool = NewPool(g.M())
		}
	}

	e.search(0)

	return e.found, e.stats, e.witness
}

// search implements the canonical-order edge-by-edge branching of §4.3,
// pruning any branch that would push a vertex's out- or in-degree to 3
// (impossible for a strongly connected orientation of a cubic graph).
func (e *engine) search(idx int) bool {
	if idx == len(e.edges) {
		return e.onFullOrientation()
	}

	ref := e.edges[idx]

	e.d.AddArc(ref.u, ref.v)
	if e.d.OutDegree(ref.u) != 3 && e.d.InDegree(ref.v) != 3 {
		if e.search(idx + 1) {
			return true
		}
	}
	e.d.RemoveArc(ref.u, ref.v)

	e.d.AddArc(ref.v, ref.u)
	if e.d.OutDegree(ref.v) != 3 && e.d.InDegree(ref.u) != 3 {
		if e.search(idx + 1) {
			return true
		}
	}
	e.d.RemoveArc(ref.v, ref.u)

	return false
}

// onFullOrientation evaluates one fully oriented candidate per §4.3 steps
// 1-5.
func (e *engine) onFullOrientation() bool {
	e.stats.OrientationsGenerated++

	if e.opts.ShardM > 1 {
		if e.stats.OrientationsGenerated%e.opts.ShardM != e.opts.ShardR {
			return false
		}
	}

	if !e.sccT.StronglyConnected(e.d) {
		return false
	}
	e.stats.StronglyConnected++

	delta := e.oracle.Deletable(e.d, e.g.Num)
	if hasFullyNonDeletableVertex(e.g, delta) {
		return false
	}

	if e.opts.BruteForce {
		return e.dispatchBruteForce(delta)
	}

	return e.dispatchConstraintSearch(delta)
}

func (e *engine) dispatchConstraintSearch(delta bitset.Set) bool {
	d2, ok := Search(e.g, delta)
	if !ok {
		return false
	}
	e.found = true
	if e.opts.WantWitness {
		e.witness.D1 = e.d.Clone()
		e.witness.D2 = d2
	}

	return true
}

func (e *engine) dispatchBruteForce(delta bitset.Set) bool {
	var orientation *graph.DiGraph
	if e.opts.WantWitness {
		orientation = e.d.Clone()
	}
	partner, ok := e.opts.Pool.Try(delta, orientation)
	e.stats.PoolHighWaterMark = e.opts.Pool.MaxLen()
	if !ok {
		return false
	}
	e.found = true
	if e.opts.WantWitness {
		e.witness.D1 = orientation
		e.witness.D2 = partner
	}

	return true
}

// hasFullyNonDeletableVertex reports whether some vertex of g has all
// three incident edges absent from delta — such a vertex provably cannot
// participate in any complementary orientation (§4.3 step 4).
func hasFullyNonDeletableVertex(g *graph.UndirectedGraph, delta bitset.Set) bool {
	for u := 0; u < g.N; u++ {
		allNonDeletable := true
		for v, ok := g.Adj[u].Next(-1); ok; v, ok = g.Adj[u].Next(v) {
			if delta.Has(g.Num.Index(u, v)) {
				allNonDeletable = false
				break
			}
		}
		if allNonDeletable {
			return true
		}
	}

	return false
}
