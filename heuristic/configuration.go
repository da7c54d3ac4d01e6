package heuristic

// decomposeCycles walks G-F (the 2-regular graph left once F's edges are
// removed from a cubic graph) into its cyclic components, per §4.7.
// Each cycle is returned as a vertex sequence in one consistent cyclic
// direction.
func (s *state) decomposeCycles() {
	n := s.g.N
	for i := range s.cycleOf {
		s.cycleOf[i] = -1
	}
	s.cycles = s.cycles[:0]

	for v := 0; v < n; v++ {
		if s.cycleOf[v] != -1 {
			continue
		}

		id := len(s.cycles)
		var cyc []int
		prev, cur := -1, v
		for {
			cyc = append(cyc, cur)
			s.cycleOf[cur] = id

			var next int
			for w, ok := s.g.Adj[cur].Next(-1); ok; w, ok = s.g.Adj[cur].Next(w) {
				if w == prev || w == s.F[cur] {
					continue
				}
				next = w

				break
			}
			prev, cur = cur, next
			if cur == v {
				break
			}
		}
		s.cycles = append(s.cycles, cyc)
	}
}

// oddCycleIndices returns the indices of s.cycles with odd length.
func (s *state) oddCycleIndices() []int {
	var odd []int
	for i, cyc := range s.cycles {
		if len(cyc)%2 == 1 {
			odd = append(odd, i)
		}
	}

	return odd
}

// cycleNeighbors returns the two cyclic neighbors of x within cyc.
func cycleNeighbors(cyc []int, x int) (int, int) {
	n := len(cyc)
	idx := indexOf(cyc, x)

	return cyc[(idx-1+n)%n], cyc[(idx+1)%n]
}

// otherNeighbor returns x's cyclic neighbor in cyc that isn't exclude.
func otherNeighbor(cyc []int, x, exclude int) int {
	a, b := cycleNeighbors(cyc, x)
	if a == exclude {
		return b
	}

	return a
}

func indexOf(cyc []int, x int) int {
	for i, v := range cyc {
		if v == x {
			return i
		}
	}

	return -1
}

// matchCycleDefault fills an even-length cycle with the alternating
// matching that pairs cyc[0]-cyc[1], cyc[2]-cyc[3], ...
func (s *state) matchCycleDefault(cyc []int) {
	for i := 0; i < len(cyc); i += 2 {
		a, b := cyc[i], cyc[(i+1)%len(cyc)]
		s.M[a], s.M[b] = b, a
	}
}

// matchCycleSkipping fills an odd-length cycle's near-perfect matching,
// leaving skip unmatched, alternating starting just past skip.
func (s *state) matchCycleSkipping(cyc []int, skip int) {
	n := len(cyc)
	idx := indexOf(cyc, skip)
	for i := 1; i+1 < n; i += 2 {
		a := cyc[(idx+i)%n]
		b := cyc[(idx+i+1)%n]
		s.M[a], s.M[b] = b, a
	}
	s.M[skip] = -1
}

// rematchEdge re-derives an even cycle's alternating matching so that
// {p,q} is one of its matched pairs.
func (s *state) rematchEdge(cyc []int, p, q int) {
	n := len(cyc)
	idx := indexOf(cyc, p)
	if cyc[(idx+1)%n] != q {
		idx = indexOf(cyc, q)
	}
	for i := 0; i < n; i += 2 {
		a := cyc[(idx+i)%n]
		b := cyc[(idx+i+1)%n]
		s.M[a], s.M[b] = b, a
	}
}

// initMatching fills a default alternating matching for every even
// cycle. Odd cycles are left unmatched until a case A/B attempt picks
// their break vertex.
func (s *state) initMatching() {
	for i := range s.M {
		s.M[i] = -1
	}
	for _, cyc := range s.cycles {
		if len(cyc)%2 == 0 {
			s.matchCycleDefault(cyc)
		}
	}
}

// testConfiguration implements §4.7: given exactly two odd cycles
// c1Idx, c2Idx, try case A (direct bridge) then case B (length-2 path).
func (s *state) testConfiguration(c1Idx, c2Idx int) bool {
	return s.tryCaseA(c1Idx, c2Idx) || s.tryCaseB(c1Idx, c2Idx)
}

// tryCaseA scans every u in C1 for a direct F-bridge to C2.
func (s *state) tryCaseA(c1Idx, c2Idx int) bool {
	cyc1, cyc2 := s.cycles[c1Idx], s.cycles[c2Idx]

	for _, u := range cyc1 {
		v := s.F[u]
		if s.cycleOf[v] != c2Idx {
			continue
		}

		s.resetCircuitAndSuppressed()
		s.matchCycleSkipping(cyc1, u)
		s.matchCycleSkipping(cyc2, v)
		s.suppressed = append(s.suppressed, [2]int{u, v})

		u1, v1 := cycleNeighbors(cyc1, u)
		u2, v2 := cycleNeighbors(cyc2, v)
		if !s.consistent(u1, v1) || !s.consistent(u2, v2) {
			continue
		}
		if !s.strongTwoEdge() {
			continue
		}

		return true
	}

	return false
}

// tryCaseB scans every u in C1 for a length-2 F-path to C2 through an
// intermediate vertex y1 in neither odd cycle.
func (s *state) tryCaseB(c1Idx, c2Idx int) bool {
	cyc1, cyc2 := s.cycles[c1Idx], s.cycles[c2Idx]

	for _, u := range cyc1 {
		y1 := s.F[u]
		if s.cycleOf[y1] == c1Idx || s.cycleOf[y1] == c2Idx {
			continue
		}
		cycY := s.cycles[s.cycleOf[y1]]

		p, q := cycleNeighbors(cycY, y1)
		for _, y2 := range [2]int{p, q} {
			x2 := s.F[y2]
			if s.cycleOf[x2] != c2Idx {
				continue
			}
			x1 := u

			s.resetCircuitAndSuppressed()
			s.matchCycleSkipping(cyc1, x1)
			s.matchCycleSkipping(cyc2, x2)
			s.rematchEdge(cycY, y1, y2)
			s.suppressed = append(s.suppressed, [2]int{x1, y1}, [2]int{y2, x2})

			u1, v1 := cycleNeighbors(cyc1, x1)
			u2, v2 := cycleNeighbors(cyc2, x2)
			w1 := otherNeighbor(cycY, y1, y2)
			w2 := otherNeighbor(cycY, y2, y1)
			if !s.consistent(u1, v1) || !s.consistent(u2, v2) || !s.consistent(w1, w2) {
				continue
			}
			if !s.strongTwoEdge() {
				continue
			}

			return true
		}
	}

	return false
}
