package heuristic

import "github.com/jrenders/frank2/bitset"

// strongTwoEdge implements the approximation of §4.9: for every
// suppressed edge e and every pair of distinct already-oriented F-edges,
// removing e and that pair must not disconnect the graph into two
// components that each contain a cycle.
func (s *state) strongTwoEdge() bool {
	fixed := s.fixedFEdges()

	for _, e := range s.suppressed {
		for i := 0; i < len(fixed); i++ {
			for j := i + 1; j < len(fixed); j++ {
				if !s.cyclicConnectedWithout(e, fixed[i], fixed[j]) {
					return false
				}
			}
		}
	}

	return true
}

// fixedFEdges returns every edge {v, F[v]} whose circuit direction has
// already been pinned down (circuitOrientation[v] == F[v] at either of
// its endpoints v), each listed once.
func (s *state) fixedFEdges() [][2]int {
	var fixed [][2]int
	for v, partner := range s.F {
		if partner > v && (s.circuitOrientation[v] == partner || s.circuitOrientation[partner] == v) {
			fixed = append(fixed, [2]int{v, partner})
		}
	}

	return fixed
}

type dfsFrame struct{ v, parent, cursor int }

// cyclicConnectedWithout reports whether removing the given edges from
// g leaves at most one connected component containing a cycle.
func (s *state) cyclicConnectedWithout(edges ...[2]int) bool {
	n := s.g.N
	adj := make([]bitset.Set, n)
	for v := 0; v < n; v++ {
		adj[v] = s.g.Adj[v].Clone()
	}
	for _, e := range edges {
		adj[e[0]].Remove(e[1])
		adj[e[1]].Remove(e[0])
	}

	visited := make([]bool, n)
	cyclicComponents := 0
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		if dfsHasBackEdge(adj, visited, v) {
			cyclicComponents++
			if cyclicComponents > 1 {
				return false
			}
		}
	}

	return true
}

// dfsHasBackEdge runs a DFS from root over adj, marking visited as it
// goes, and reports whether it encountered a back edge (a non-tree edge
// to an already-visited vertex) — the signature of a cycle in a simple
// graph.
func dfsHasBackEdge(adj []bitset.Set, visited []bool, root int) bool {
	backEdge := false
	stack := []dfsFrame{{v: root, parent: -1, cursor: -1}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nb, ok := adj[top.v].Next(top.cursor)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		top.cursor = nb
		if nb == top.parent {
			continue
		}
		if visited[nb] {
			backEdge = true
			continue
		}
		visited[nb] = true
		stack = append(stack, dfsFrame{v: nb, parent: top.v, cursor: -1})
	}

	return backEdge
}
