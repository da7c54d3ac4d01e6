package scc

import "github.com/jrenders/frank2/graph"

// frame is one level of an explicit iterative DFS stack: the vertex being
// explored and the cursor (last neighbor index fed to bitset.Set.Next) to
// resume from.
type frame struct {
	v      int
	cursor int
}

// Tester performs repeated strong-connectivity tests against digraphs on a
// fixed vertex count n, reusing its scratch buffers across calls.
type Tester struct {
	n        int
	visited1 []bool
	visited2 []bool
	order    []int
	stack    []frame
}

// NewTester allocates a Tester for digraphs on n vertices.
func NewTester(n int) *Tester {
	return &Tester{
		n:        n,
		visited1: make([]bool, n),
		visited2: make([]bool, n),
		order:    make([]int, 0, n),
		stack:    make([]frame, 0, n),
	}
}

// StronglyConnected reports whether d is strongly connected. d must have
// the same vertex count the Tester was built with.
func (t *Tester) StronglyConnected(d *graph.DiGraph) bool {
	// 1. First pass: DFS over Out edges from every unvisited vertex,
	//    recording a global post-order.
	for i := range t.visited1 {
		t.visited1[i] = false
	}
	t.order = t.order[:0]
	for v := 0; v < t.n; v++ {
		if !t.visited1[v] {
			t.dfsForward(d, v)
		}
	}

	// 2. Second pass: a single DFS over In edges from the last-finished
	//    vertex of the post-order. d is strongly connected iff this reaches
	//    every vertex.
	for i := range t.visited2 {
		t.visited2[i] = false
	}
	start := t.order[len(t.order)-1]
	reached := t.dfsBackward(d, start)

	return reached == t.n
}

// dfsForward runs an iterative post-order DFS along Out edges starting at
// root, appending each vertex to t.order as it finishes (all descendants
// explored).
func (t *Tester) dfsForward(d *graph.DiGraph, root int) {
	t.stack = append(t.stack[:0], frame{v: root, cursor: -1})
	t.visited1[root] = true

	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		nb, ok := d.Out[top.v].Next(top.cursor)
		if !ok {
			t.order = append(t.order, top.v)
			t.stack = t.stack[:len(t.stack)-1]
			continue
		}
		top.cursor = nb
		if !t.visited1[nb] {
			t.visited1[nb] = true
			t.stack = append(t.stack, frame{v: nb, cursor: -1})
		}
	}
}

// dfsBackward runs an iterative DFS along In edges starting at root and
// returns the count of vertices reached (including root).
func (t *Tester) dfsBackward(d *graph.DiGraph, root int) int {
	t.stack = append(t.stack[:0], frame{v: root, cursor: -1})
	t.visited2[root] = true
	reached := 1

	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		nb, ok := d.In[top.v].Next(top.cursor)
		if !ok {
			t.stack = t.stack[:len(t.stack)-1]
			continue
		}
		top.cursor = nb
		if !t.visited2[nb] {
			t.visited2[nb] = true
			reached++
			t.stack = append(t.stack, frame{v: nb, cursor: -1})
		}
	}

	return reached
}
