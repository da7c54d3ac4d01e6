package heuristic

// orient walks the F/M circuit through v (the cycle formed by
// alternating F and M edges, which is 2-regular since both are
// matchings on the same vertex set), assigning circuitOrientation along
// the way until it reaches a vertex that already has one. startWithF
// selects which matching supplies v's first step.
func (s *state) orient(v int, startWithF bool) {
	cur := v
	useF := startWithF
	for s.circuitOrientation[cur] == -1 {
		var next int
		if useF {
			next = s.F[cur]
		} else {
			next = s.M[cur]
		}
		s.circuitOrientation[cur] = next
		cur = next
		useF = !useF
	}
}

// consistent implements the orientation-consistency test of §4.8 for a
// pair (u,v): orient whichever of u, v is not yet oriented (continuing
// the other's direction when it is already known), then require that
// u's circuit edge being the F edge is equivalent to v's circuit edge
// being the M edge.
func (s *state) consistent(u, v int) bool {
	if s.circuitOrientation[u] == -1 {
		startWithF := s.circuitOrientation[v] != -1 && s.circuitOrientation[v] == s.F[v]
		s.orient(u, startWithF)
	}
	if s.circuitOrientation[v] == -1 {
		startWithF := s.circuitOrientation[u] != -1 && s.circuitOrientation[u] == s.F[u]
		s.orient(v, startWithF)
	}

	uIsF := s.circuitOrientation[u] == s.F[u]
	vIsM := s.circuitOrientation[v] == s.M[v]

	return uIsF == vIsM
}
