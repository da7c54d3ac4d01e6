package exact

import (
	"github.com/jrenders/frank2/bitset"
	"github.com/jrenders/frank2/deletable"
	"github.com/jrenders/frank2/graph"
	"github.com/jrenders/frank2/scc"
)

// arcRef is one entry in a searcher's undo log: an arc that was added
// since some earlier trial point, to be removed again on rollback.
type arcRef struct{ u, v graph.VertexID }

// searcher builds a single complementary orientation for Search, per
// spec.md §4.4. It branches over edges in canonical order like the
// enumerator, but after every arc placement it propagates the local
// rules below to a fixpoint, forcing as many further arcs as they
// uniquely determine before the next branch point is even reached —
// this is what keeps the search from degenerating into the same
// 2^m brute force the enumerator already performs.
type searcher struct {
	g      *graph.UndirectedGraph
	delta  bitset.Set
	d      *graph.DiGraph
	sccT   *scc.Tester
	oracle *deletable.Oracle

	// incident[v] holds v's three incident edge ids, in no particular
	// order; precomputed once since every rule check walks it.
	incident [][3]graph.EdgeID

	// log records every arc added since the search began, so a failed
	// trial (including everything propagate forced along the way) can be
	// undone by truncating back to a saved length instead of copying
	// whole adjacency bitsets per trial.
	log []arcRef

	queue  []graph.VertexID
	queued []bool
}

func newSearcher(g *graph.UndirectedGraph, delta bitset.Set) *searcher {
	incident := make([][3]graph.EdgeID, g.N)
	for v := 0; v < g.N; v++ {
		i := 0
		for w, ok := g.Adj[v].Next(-1); ok; w, ok = g.Adj[v].Next(w) {
			incident[v][i] = g.Num.Index(v, w)
			i++
		}
	}

	return &searcher{
		g:        g,
		delta:    delta,
		d:        graph.NewDiGraph(g.N),
		sccT:     scc.NewTester(g.N),
		oracle:   deletable.NewOracle(g.N),
		incident: incident,
		queued:   make([]bool, g.N),
	}
}

// Search looks for an orientation D′ of g, complementary to the
// orientation that produced delta: deletable(D′) ∪ delta must cover
// every edge, per spec.md §4.4.
//
// Symmetry is broken by fixing the direction of vertex 0's lowest
// indexed incident edge (oriented away from 0): reversing every arc of
// a complementary orientation yields another complementary orientation
// with the same deletable set, so fixing one edge's direction costs
// nothing. The fixed arc is propagated like any other before branching
// begins.
func Search(g *graph.UndirectedGraph, delta bitset.Set) (*graph.DiGraph, bool) {
	s := newSearcher(g, delta)

	u0 := 0
	v0 := firstNeighbor(g, u0)
	s.addArc(u0, v0)
	if !s.localRulesHold(u0) || !s.localRulesHold(v0) || !s.propagate(u0, v0) {
		return nil, false
	}

	if s.search(0) {
		return s.d.Clone(), true
	}

	return nil, false
}

func firstNeighbor(g *graph.UndirectedGraph, u graph.VertexID) graph.VertexID {
	v, _ := g.Adj[u].Next(-1)
	return v
}

// addArc places u→v and records it in the undo log.
func (s *searcher) addArc(u, v graph.VertexID) {
	s.d.AddArc(u, v)
	s.log = append(s.log, arcRef{u, v})
}

// undoTo removes every arc logged since mark, in reverse order, and
// truncates the log back to it.
func (s *searcher) undoTo(mark int) {
	for i := len(s.log) - 1; i >= mark; i-- {
		a := s.log[i]
		s.d.RemoveArc(a.u, a.v)
	}
	s.log = s.log[:mark]
}

// search finds the next undecided edge at or after from (in canonical
// order), tries both of its orientations — each followed by a
// propagate() pass — and recurses. When no edge remains, it verifies
// the completed orientation by actually recomputing its deletable set,
// per §4.4's closing step.
func (s *searcher) search(from graph.EdgeID) bool {
	e := s.nextUndecided(from)
	if e < 0 {
		return s.verify()
	}

	u, v := s.g.Num.Endpoints(e)
	mark := len(s.log)

	s.addArc(u, v)
	if s.localRulesHold(u) && s.localRulesHold(v) && s.propagate(u, v) && s.search(e+1) {
		return true
	}
	s.undoTo(mark)

	s.addArc(v, u)
	if s.localRulesHold(v) && s.localRulesHold(u) && s.propagate(u, v) && s.search(e+1) {
		return true
	}
	s.undoTo(mark)

	return false
}

func (s *searcher) nextUndecided(from graph.EdgeID) graph.EdgeID {
	for e := from; e < s.g.M(); e++ {
		u, v := s.g.Num.Endpoints(e)
		if !s.d.HasArc(u, v) && !s.d.HasArc(v, u) {
			return e
		}
	}

	return -1
}

func (s *searcher) verify() bool {
	if !s.sccT.StronglyConnected(s.d) {
		return false
	}

	d2delta := s.oracle.Deletable(s.d, s.g.Num)
	union := d2delta.Clone()
	union.Union(s.delta)

	return union.Len() == s.g.M()
}

// propagate pushes forced completions outward from seeds until a
// fixpoint (queue empty) or a contradiction (false). Each vertex it
// visits is checked for a single remaining undecided incident edge
// whose direction the rules below already determine; if so, that arc
// is placed and both its endpoints are re-queued, since placing it may
// in turn force a neighbor's last remaining edge.
func (s *searcher) propagate(seeds ...graph.VertexID) bool {
	s.queue = s.queue[:0]
	for i := range s.queued {
		s.queued[i] = false
	}
	for _, v := range seeds {
		s.enqueue(v)
	}

	for len(s.queue) > 0 {
		v := s.queue[0]
		s.queue = s.queue[1:]
		s.queued[v] = false

		w, exists := s.soleUndecidedNeighbor(v)
		if !exists {
			continue
		}

		outFromV, forced, consistent := s.forcedDirection(v, w)
		if !consistent {
			return false
		}
		if !forced {
			continue
		}

		if outFromV {
			s.addArc(v, w)
		} else {
			s.addArc(w, v)
		}

		if !s.localRulesHold(v) || !s.localRulesHold(w) {
			return false
		}

		s.enqueue(v)
		s.enqueue(w)
	}

	return true
}

func (s *searcher) enqueue(v graph.VertexID) {
	if s.queued[v] {
		return
	}
	s.queued[v] = true
	s.queue = append(s.queue, v)
}

// soleUndecidedNeighbor reports v's other endpoint w if exactly one of
// v's three incident edges is still undecided, and false otherwise
// (nothing to force yet, or v is already fully oriented).
func (s *searcher) soleUndecidedNeighbor(v graph.VertexID) (graph.VertexID, bool) {
	found, count := -1, 0
	for _, e := range s.incident[v] {
		other := s.otherEnd(e, v)
		if !s.d.HasArc(v, other) && !s.d.HasArc(other, v) {
			count++
			found = other
			if count > 1 {
				return -1, false
			}
		}
	}
	if count == 1 {
		return found, true
	}

	return -1, false
}

func (s *searcher) otherEnd(e graph.EdgeID, v graph.VertexID) graph.VertexID {
	a, b := s.g.Num.Endpoints(e)
	if a == v {
		return b
	}

	return a
}

// localRulesHold checks the degree cap and the Δ/non-Δ alternation
// rule at v against v's currently decided incident edges. It is called
// after every single arc placement, whether from branching or from
// propagate, so a violation is caught the instant it becomes decidable.
func (s *searcher) localRulesHold(v graph.VertexID) bool {
	if s.d.OutDegree(v) > 2 || s.d.InDegree(v) > 2 {
		return false
	}

	return s.groupAlternates(v, true) && s.groupAlternates(v, false)
}

// groupAlternates enforces spec.md §4.4's alternation rule: among v's
// incident edges with Δ-membership == wantDelta, when that group has
// exactly two members (the only case the rule constrains — a group of
// one is vacuous, and a group of three is already bounded by the
// degree cap), the two must point in opposite directions at v once
// both are decided.
func (s *searcher) groupAlternates(v graph.VertexID, wantDelta bool) bool {
	members := s.group(v, wantDelta)
	if len(members) != 2 {
		return true
	}

	var decided []bool
	for _, e := range members {
		other := s.otherEnd(e, v)
		switch {
		case s.d.HasArc(v, other):
			decided = append(decided, true)
		case s.d.HasArc(other, v):
			decided = append(decided, false)
		}
	}
	if len(decided) < 2 {
		return true
	}

	return decided[0] != decided[1]
}

// group returns v's incident edges whose Δ-membership equals wantDelta.
func (s *searcher) group(v graph.VertexID, wantDelta bool) []graph.EdgeID {
	var members []graph.EdgeID
	for _, e := range s.incident[v] {
		if s.delta.Has(e) == wantDelta {
			members = append(members, e)
		}
	}

	return members
}

// forcedDirection reports whether v's sole remaining undecided edge
// (v,w) has its direction determined: outFromV is the direction (true
// = v→w) when forced is true. Two independent rules can each force a
// direction — the degree cap (a vertex already at two out- or two
// in-arcs has its last edge forced the other way) and alternation (the
// edge's own two-member Δ/non-Δ group, once its other member is
// decided, forces the opposite direction) — consistent is false iff
// they disagree, which is a genuine contradiction rather than an
// unforced edge.
func (s *searcher) forcedDirection(v, w graph.VertexID) (outFromV, forced, consistent bool) {
	var byDegree bool
	haveDegree := false
	switch {
	case s.d.OutDegree(v) == 2:
		byDegree, haveDegree = false, true
	case s.d.InDegree(v) == 2:
		byDegree, haveDegree = true, true
	}

	byGroup, haveGroup := s.groupForces(v, w)

	switch {
	case haveDegree && haveGroup:
		if byDegree != byGroup {
			return false, false, false
		}

		return byDegree, true, true
	case haveDegree:
		return byDegree, true, true
	case haveGroup:
		return byGroup, true, true
	default:
		return false, false, true
	}
}

// groupForces reports whether edge (v,w)'s own Δ/non-Δ group forces its
// direction: true only when that group has exactly the two members {e,
// other} and other is already decided, in which case e must point the
// opposite way at v.
func (s *searcher) groupForces(v, w graph.VertexID) (outFromV, have bool) {
	e := s.g.Num.Index(v, w)
	members := s.group(v, s.delta.Has(e))
	if len(members) != 2 {
		return false, false
	}

	other := members[0]
	if other == e {
		other = members[1]
	}

	oppositeEnd := s.otherEnd(other, v)
	switch {
	case s.d.HasArc(v, oppositeEnd):
		return false, true
	case s.d.HasArc(oppositeEnd, v):
		return true, true
	default:
		return false, false
	}
}
