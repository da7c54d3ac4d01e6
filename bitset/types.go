package bitset

// Set is a fixed-width set of integers in [0, Cap()).
//
// Implementations are value-like in spirit (Clone gives an independent copy)
// but are handed around as pointers so that Add/Remove/Union/Intersect/
// Difference/Complement can mutate in place without the caller re-assigning
// a return value — the hot paths in exact/ and scc/ call these millions of
// times per graph and cannot afford to reallocate or re-box on every call.
type Set interface {
	// Add puts i into the set. i must be in [0, Cap()).
	Add(i int)

	// Remove takes i out of the set. No-op if i is absent.
	Remove(i int)

	// Has reports whether i is a member.
	Has(i int) bool

	// Next returns the smallest member strictly greater than after, and
	// true. If after < 0 it returns the smallest member overall. Returns
	// (0, false) if no such member exists.
	Next(after int) (int, bool)

	// Len reports the number of members.
	Len() int

	// Empty reports whether the set has no members.
	Empty() bool

	// Equal reports whether s and other contain exactly the same members.
	// other must have been built with the same Cap().
	Equal(other Set) bool

	// Clone returns an independent copy of s.
	Clone() Set

	// Union mutates s to s ∪ other.
	Union(other Set)

	// Intersect mutates s to s ∩ other.
	Intersect(other Set)

	// Difference mutates s to s \ other (remove every member of other).
	Difference(other Set)

	// Complement mutates s to univ \ s for a universe of size universe,
	// where universe <= Cap().
	Complement(universe int)

	// ForEach calls fn(i) once per member, in ascending order. fn must not
	// mutate s.
	ForEach(fn func(i int))

	// Cap reports the fixed capacity (word width) this set was built with.
	Cap() int

	// Raw exposes the backing words verbatim, least-significant word
	// first; a set64 returns one word, set128 two, set192 three. Paired
	// with SetRaw, it lets a caller save/restore many sets into a
	// preallocated scratch buffer without any heap allocation — see
	// graph.DiGraph's Snapshot/Restore.
	Raw() []uint64

	// SetRaw overwrites the backing words verbatim, in the same order
	// Raw returns them. words must have come from a Raw call on a Set of
	// the same Cap().
	SetRaw(words []uint64)
}

// New returns an empty Set able to hold integers in [0, capacity). It
// selects the narrowest backing width (64, 128, or 192 bits) that fits
// capacity. 192 covers the widest edge-indexed set this package's callers
// ever request: 3n/2 edges for spec.md's n <= 128 vertex cap.
func New(capacity int) Set {
	switch {
	case capacity <= 64:
		return &set64{}
	case capacity <= 128:
		return &set128{}
	default:
		return &set192{}
	}
}
