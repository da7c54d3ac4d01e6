// Package deletable computes the deletable-edge set of a strongly connected
// graph.DiGraph, per spec.md §4.2: edge e is deletable in orientation D iff
// removing its arc from D leaves D strongly connected.
//
// What:
//
//   - Oracle: scratch-buffer-backed reachability tester reused across the
//     O(m) per-arc trials a single Deletable call performs, and across
//     repeated calls for digraphs of the same vertex count.
//   - Deletable(d, num): the EdgeSet of arcs whose reversal preserves
//     strong connectivity.
//
// Why it suffices to retest only u->v reachability: removing the single
// arc u->v cannot disconnect any pair other than (u,v) itself — every other
// path through the graph that happened to use arc u->v as an intermediate
// hop can be rerouted through any surviving u->v path, so strong
// connectivity survives the removal iff u can still reach v without it.
//
// Complexity: O(m) arc trials, each an O(n+m) reachability DFS, so O(m*(n+m))
// per Deletable call; the DFS reuses the Oracle's scratch buffers, and each
// call allocates only the returned EdgeSet.
package deletable
