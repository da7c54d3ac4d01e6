package exact

import (
	"github.com/jrenders/frank2/bitset"
	"github.com/jrenders/frank2/graph"
)

// poolEntry pairs a previously seen deletable-edge set with the
// orientation that produced it, so a later match can hand back a witness.
type poolEntry struct {
	deletable   bitset.Set
	orientation *graph.DiGraph
	live        bool
}

// Pool implements the brute-force comparator of spec.md §4.5: a
// subset-domination structure over deletable-edge sets. Two orientations
// are complementary iff the union of their deletable sets covers every
// edge; Pool.Try compares each new candidate against every live entry
// seen so far for this graph.
type Pool struct {
	m       int
	entries []poolEntry
	maxLen  int
}

// NewPool allocates a Pool for a graph with m edges. m may be 0 if the
// pool will always be Reset with the right edge count before use (e.g.
// a driver reusing one Pool across graphs of varying size).
func NewPool(m int) *Pool {
	return &Pool{m: m}
}

// Reset clears the pool for reuse on a graph with m edges, keeping its
// backing array. Pass the new graph's edge count every time a Pool is
// reused across graphs, since m can vary from one graph to the next.
func (p *Pool) Reset(m int) {
	p.m = m
	p.entries = p.entries[:0]
	p.maxLen = 0
}

// MaxLen reports the largest number of live entries the pool has held at
// once, since the last Reset.
func (p *Pool) MaxLen() int { return p.maxLen }

// Try compares delta against every live entry. It returns (partner,
// true) the instant some live entry's deletable set, unioned with delta,
// covers all m edges — partner is that entry's stored orientation (nil
// if the caller never requested witnesses). Otherwise delta is inserted
// (into a dead slot if one exists, else appended) and Try returns (nil,
// false).
//
// An entry whose own deletable set is a subset of delta's can never
// beat delta at dominating future candidates, so it is marked dead and
// its slot is recycled; an entry that dominates delta (delta ⊆
// entry.deletable) makes delta itself redundant, and Try returns early
// without inserting it.
func (p *Pool) Try(delta bitset.Set, orientation *graph.DiGraph) (*graph.DiGraph, bool) {
	deadSlot := -1

	for i := range p.entries {
		e := &p.entries[i]
		if !e.live {
			if deadSlot < 0 {
				deadSlot = i
			}
			continue
		}

		if coversAll(e.deletable, delta, p.m) {
			return e.orientation, true
		}

		if isSubset(delta, e.deletable) {
			// delta is dominated by an existing entry; nothing new to add.
			return nil, false
		}

		if isSubset(e.deletable, delta) {
			e.live = false
			if deadSlot < 0 {
				deadSlot = i
			}
		}
	}

	entry := poolEntry{deletable: delta, orientation: orientation, live: true}
	if deadSlot >= 0 {
		p.entries[deadSlot] = entry
	} else {
		p.entries = append(p.entries, entry)
	}

	live := 0
	for _, e := range p.entries {
		if e.live {
			live++
		}
	}
	if live > p.maxLen {
		p.maxLen = live
	}

	return nil, false
}

func coversAll(a, b bitset.Set, m int) bool {
	union := a.Clone()
	union.Union(b)

	return union.Len() == m
}

func isSubset(a, b bitset.Set) bool {
	inter := a.Clone()
	inter.Intersect(b)

	return inter.Len() == a.Len()
}
