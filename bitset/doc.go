// Package bitset implements fixed-width sets of small non-negative integers
// (vertex indices, edge indices) backed by one to three machine words.
//
// What:
//
//   - Set: the opaque operation surface (Add, Remove, Has, Union, Intersect,
//     Difference, Complement, Next, ForEach, Len, Empty, Equal, Clone).
//   - Three concrete widths: one word for capacities up to 64, two words up
//     to 128, three words up to 192 — wide enough for an edge-indexed set
//     on the largest graph spec.md supports (n = 128, m = 3n/2 = 192).
//   - New(capacity) picks the narrowest width that can hold capacity bits.
//
// Why:
//
//   - The decision procedures in graph/, scc/, deletable/, exact/, and
//     heuristic/ represent vertex and edge subsets as bit patterns so that
//     membership, union, and "next member" scans are O(1) word operations
//     instead of map or slice lookups.
//   - Choosing width per instance (by the capacity actually requested) rather
//     than via a single global build tag means a 50-vertex graph's 75-edge
//     EdgeSet still gets the 128-bit word while its 50-bit VertexSet stays on
//     the faster 64-bit word; a 128-vertex graph's 192-edge EdgeSet steps up
//     to the three-word set192 instead of silently losing bits 128-191.
//
// Complexity: every operation is O(1) word ops, bounded by 3 for set192;
// Next is O(1) amortized via math/bits.TrailingZeros64.
//
// Errors: none. Capacities and indices are caller-guaranteed invariants
// (n <= 128 is validated once, at graph6 decode time, which bounds every
// edge-indexed set's capacity at 3*128/2 = 192); bitset itself trusts its
// caller and never allocates beyond construction.
package bitset
