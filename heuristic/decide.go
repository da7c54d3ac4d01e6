package heuristic

import (
	"github.com/jrenders/frank2/bitset"
	"github.com/jrenders/frank2/graph"
)

// Decide runs the heuristic sufficient condition of §4.6-§4.9 on g,
// enumerating perfect matchings until one yields a valid two-odd-cycle
// configuration or every matching is exhausted. When wantWitness is
// set, a successful decision additionally builds and verifies two
// explicit complementary orientations (§4.10); a verification failure
// is reported as ErrWitnessInvalid rather than silently claimed as
// negative, since it signals a defect in the configuration rather than
// a property of g.
func Decide(g *graph.UndirectedGraph, wantWitness bool) (bool, Witness, error) {
	s := newState(g)
	F := make([]int, g.N)
	for i := range F {
		F[i] = -1
	}

	remaining := bitset.New(g.N)
	for v := 0; v < g.N; v++ {
		remaining.Add(v)
	}

	var (
		found    bool
		witness  Witness
		buildErr error
	)

	enumerateMatchings(g, F, remaining, func(F []int) bool {
		s.F = F
		s.decomposeCycles()

		odd := s.oddCycleIndices()
		if len(odd) != 2 {
			return false
		}

		s.initMatching()
		if !s.testConfiguration(odd[0], odd[1]) {
			return false
		}

		if wantWitness {
			w, err := s.buildWitness()
			if err != nil {
				buildErr = err

				return false
			}
			witness = w
		}

		found = true

		return true
	})

	if buildErr != nil {
		return false, Witness{}, buildErr
	}

	return found, witness, nil
}
