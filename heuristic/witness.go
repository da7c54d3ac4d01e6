package heuristic

import (
	"github.com/jrenders/frank2/deletable"
	"github.com/jrenders/frank2/graph"
	"github.com/jrenders/frank2/scc"
)

// buildWitness implements §4.10: construct two explicit orientations
// D1, D2 of g from the current F/M/circuitOrientation/suppressed state,
// and verify them before handing them back.
func (s *state) buildWitness() (Witness, error) {
	n := s.g.N
	d1 := graph.NewDiGraph(n)
	d2 := graph.NewDiGraph(n)

	isEndpoint := make([]bool, n)
	for _, e := range s.suppressed {
		d1.AddArc(e[0], e[1])
		d2.AddArc(e[1], e[0])
		isEndpoint[e[0]] = true
		isEndpoint[e[1]] = true
	}

	for i := 0; i < n; i++ {
		if isEndpoint[i] {
			continue
		}
		if s.circuitOrientation[i] == -1 {
			s.orient(i, false)
		}
		next := s.circuitOrientation[i]
		d1.AddArc(next, i)
		d2.AddArc(i, next)
	}

	for _, cyc := range s.cycles {
		n := len(cyc)
		for k := 0; k < n; k++ {
			p, q := cyc[k], cyc[(k+1)%n]
			if s.circuitOrientation[p] == q || s.circuitOrientation[q] == p {
				continue // already oriented by the F/M circuit pass above
			}
			d1.AddArc(p, q)
			d2.AddArc(p, q)
		}
	}

	if err := verifyWitness(s.g, d1, d2); err != nil {
		return Witness{}, err
	}

	return Witness{D1: d1, D2: d2}, nil
}

func verifyWitness(g *graph.UndirectedGraph, d1, d2 *graph.DiGraph) error {
	tester := scc.NewTester(g.N)
	if !tester.StronglyConnected(d1) || !tester.StronglyConnected(d2) {
		return ErrWitnessInvalid
	}

	oracle := deletable.NewOracle(g.N)
	del1 := oracle.Deletable(d1, g.Num)
	del2 := oracle.Deletable(d2, g.Num)
	del1.Union(del2)
	if del1.Len() != g.M() {
		return ErrWitnessInvalid
	}

	return nil
}
