package deletable

import (
	"github.com/jrenders/frank2/bitset"
	"github.com/jrenders/frank2/graph"
)

// Oracle computes deletable-edge sets for digraphs on a fixed vertex count,
// reusing its reachability scratch buffers across calls.
type Oracle struct {
	n       int
	visited []bool
	stack   []int
}

// NewOracle allocates an Oracle for digraphs on n vertices.
func NewOracle(n int) *Oracle {
	return &Oracle{n: n, visited: make([]bool, n), stack: make([]int, 0, n)}
}

// Deletable returns the EdgeSet of arcs in d whose removal preserves strong
// connectivity. d MUST already be strongly connected; callers (exact.Decide,
// exact.Search, heuristic's witness builder) only ever call this on orientations that have
// already passed scc.Tester.StronglyConnected.
func (o *Oracle) Deletable(d *graph.DiGraph, num *graph.EdgeNumbering) bitset.Set {
	result := bitset.New(num.M())

	for u := 0; u < o.n; u++ {
		for v, ok := d.Out[u].Next(-1); ok; v, ok = d.Out[u].Next(v) {
			d.RemoveArc(u, v)
			if o.reaches(d, u, v) {
				result.Add(num.Index(u, v))
			}
			d.AddArc(u, v)
		}
	}

	return result
}

// reaches reports whether, in d's current state, there is a directed path
// from src to dst. Uses an iterative DFS over d.Out with early exit.
func (o *Oracle) reaches(d *graph.DiGraph, src, dst int) bool {
	for i := range o.visited {
		o.visited[i] = false
	}
	o.stack = append(o.stack[:0], src)
	o.visited[src] = true

	for len(o.stack) > 0 {
		top := o.stack[len(o.stack)-1]
		o.stack = o.stack[:len(o.stack)-1]
		if top == dst {
			return true
		}
		for v, ok := d.Out[top].Next(-1); ok; v, ok = d.Out[top].Next(v) {
			if !o.visited[v] {
				o.visited[v] = true
				o.stack = append(o.stack, v)
			}
		}
	}

	return false
}
