package heuristic

import "github.com/jrenders/frank2/graph"

// Witness holds the two explicit complementary orientations produced by
// the witness builder (§4.10) when Decide is asked to double-check a
// success.
type Witness struct {
	D1, D2 *graph.DiGraph
}

// state carries all per-matching-attempt bookkeeping for one Decide
// call: the current perfect matching F, the secondary matching M used to
// pair up odd-cycle vertices, the 2-factor cycle decomposition of G-F,
// and the circuit-orientation array of §4.8. Every field is reset
// in-place between matching attempts so a full Decide run on an n-vertex
// graph costs one allocation per field, not one per attempt.
type state struct {
	g *graph.UndirectedGraph

	F []int // perfect matching: F[v] is v's matched partner
	M []int // secondary matching over 2-factor cycles; -1 if unset

	cycles  [][]int // 2-factor cycles of G-F, each a cyclic vertex sequence
	cycleOf []int   // cycleOf[v] is the index into cycles containing v

	circuitOrientation []int // next vertex along the chosen F/M circuit direction; -1 unset

	suppressed [][2]int // edges oriented directly in the witness (the case A/B bridge edges)
}

func newState(g *graph.UndirectedGraph) *state {
	n := g.N
	s := &state{
		g:                  g,
		F:                  make([]int, n),
		M:                  make([]int, n),
		cycleOf:            make([]int, n),
		circuitOrientation: make([]int, n),
	}

	return s
}

func (s *state) resetCircuitAndSuppressed() {
	for i := range s.circuitOrientation {
		s.circuitOrientation[i] = -1
	}
	s.suppressed = s.suppressed[:0]
}
