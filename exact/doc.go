// Package exact implements the exact engine of spec.md §4.3-§4.5: an
// edge-by-edge branch-and-bound orientation enumerator, a constraint-
// propagation ("smart") search for a complementary orientation, and a
// brute-force comparator pool, tied together by Decide.
//
// What:
//
//   - Decide(g, opts): enumerates orientations of g, filters to the
//     strongly connected ones, and for each tries to find a complementary
//     orientation (one whose deletable-edge set, unioned with the current
//     orientation's, covers every edge). Returns true the instant any pair
//     is found — Frank number 2 is witnessed.
//   - The "smart" path (default) calls Search (constraint.go) once per
//     strongly connected orientation.
//   - The brute-force path (Options.BruteForce) maintains a Pool (pool.go)
//     of previously seen deletable-edge sets and looks for a complementary
//     pair across the whole stream of orientations.
//
// Why two strategies: the constraint search is typically far faster per
// orientation (it builds one candidate complement directly instead of
// comparing against everything seen so far) but the brute-force pool is a
// useful correctness cross-check (§8's scenario 3) and a fallback when a
// caller wants certainty the constraint search's local pruning rules never
// hide a valid complement.
//
// Complexity: the enumerator visits up to 2^m partial states (m = 3n/2),
// pruned by the out/in-degree-3 check at every edge; each surviving full
// orientation costs one scc.Tester call (O(n+m)), one deletable.Oracle
// call (O(m*(n+m))), and one Search or Pool.Try call.
package exact
