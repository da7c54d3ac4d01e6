// Package scc implements Kosaraju's two-pass strong-connectivity test for
// graph.DiGraph, as described in spec.md §4.1.
//
// What:
//
//   - Tester: holds scratch buffers (visited flags, a post-order slice, an
//     explicit DFS stack) sized once for a given vertex count and reused
//     across every call, so repeated invocations on digraphs of the same
//     size allocate nothing beyond the first call.
//   - StronglyConnected(d): true iff d, viewed as a whole, is strongly
//     connected.
//
// Why:
//
//   - The exact engine (see exact.Decide) calls this once per fully
//     oriented candidate and the deletable-edge oracle calls it implicitly
//     (via reachability checks) once per arc of every strongly connected
//     orientation — O(n*m) calls per input graph. A fresh allocation per
//     call would dominate runtime at n=128.
//
// Algorithm: DFS from every unvisited vertex along Out edges to build a
// post-order; then DFS along In edges starting from the last-finished
// vertex of that post-order. d is strongly connected iff the second DFS
// reaches all n vertices (standard Kosaraju correctness argument: in a
// strongly connected graph any vertex reaches, and is reached by, every
// other vertex; the post-order pick is merely a fixed starting point).
//
// Complexity: O(n+m) per call, zero allocations after the Tester is built.
package scc
