package heuristic

import (
	"github.com/jrenders/frank2/bitset"
	"github.com/jrenders/frank2/graph"
)

// enumerateMatchings implements §4.6: recursively builds a perfect
// matching F by picking the lowest-index unmatched vertex and trying
// each still-unmatched neighbor. try is called once per completed
// perfect matching; enumeration stops the instant try returns true.
//
// remaining tracks unmatched vertices. It is mutated and restored
// in-place across branches (rather than cloned per recursive call) so
// the whole enumeration, across however many of the 2^(n/2)-ish
// matchings it visits, performs no allocation beyond the single bitset
// and F slice the caller provides.
func enumerateMatchings(g *graph.UndirectedGraph, F []int, remaining bitset.Set, try func(F []int) bool) bool {
	u, ok := remaining.Next(-1)
	if !ok {
		return try(F)
	}

	remaining.Remove(u)
	for w, ok := g.Adj[u].Next(-1); ok; w, ok = g.Adj[u].Next(w) {
		if !remaining.Has(w) {
			continue
		}
		remaining.Remove(w)
		F[u], F[w] = w, u

		if enumerateMatchings(g, F, remaining, try) {
			return true
		}

		F[u], F[w] = -1, -1
		remaining.Add(w)
	}
	remaining.Add(u)

	return false
}
