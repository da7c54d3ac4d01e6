// Package graph defines the undirected cubic graph and digraph models used
// throughout the Frank-number decision procedure: vertex/edge adjacency as
// bit sets, a canonical edge numbering, and a directed-graph type with
// in-place arc updates and snapshot/restore support.
//
// What:
//
//   - EdgeNumbering: canonical, symmetric edge indexing over a cubic graph.
//   - UndirectedGraph: adjacency as one bitset.Set per vertex; cubic-only.
//   - DiGraph: forward (Out) and reverse (In) adjacency plus an arc count,
//     with a Snapshot/Restore pair that saves and restores its whole state
//     into a reusable buffer. The exact engine itself backtracks with
//     AddArc/RemoveArc (exact.Search through its own undo log).
//
// Why:
//
//   - Vertices and edges are small dense integer ranges (n <= 128,
//     m = 3n/2 <= 192), so array-of-bitset adjacency gives O(1) membership
//     and O(1) amortized iteration without map overhead.
//   - The exact engine re-derives a strong-connectivity and deletable-edge
//     verdict for every one of up to 2^m partial/complete orientations, so
//     the digraph is updated one arc at a time in place rather than
//     rebuilt per orientation.
//
// Complexity: Finalize is O(n^2) (it fills an n×n edge-index table);
// Snapshot/Restore are O(n).
//
// Errors:
//
//   - ErrTooManyVertices   n is not in 1..128.
//   - ErrNotCubic          some vertex does not have exactly 3 neighbors.
//   - ErrSelfLoop          an edge connects a vertex to itself.
//   - ErrParallelEdge      the same unordered pair was added twice.
package graph
