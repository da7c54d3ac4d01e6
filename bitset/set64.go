package bitset

import "math/bits"

// set64 is the 64-bit backed Set, used whenever capacity <= 64.
type set64 struct {
	words uint64
}

func (s *set64) Add(i int) { s.words |= 1 << uint(i) }

func (s *set64) Remove(i int) { s.words &^= 1 << uint(i) }

func (s *set64) Has(i int) bool { return s.words&(1<<uint(i)) != 0 }

func (s *set64) Next(after int) (int, bool) {
	var shifted uint64
	if after < -1 {
		after = -1
	}
	if after >= 63 {
		return 0, false
	}
	shifted = s.words >> uint(after+1)
	if shifted == 0 {
		return 0, false
	}

	return after + 1 + bits.TrailingZeros64(shifted), true
}

func (s *set64) Len() int { return bits.OnesCount64(s.words) }

func (s *set64) Empty() bool { return s.words == 0 }

func (s *set64) Equal(other Set) bool {
	o, ok := other.(*set64)
	if !ok {
		return false
	}

	return s.words == o.words
}

func (s *set64) Clone() Set { return &set64{words: s.words} }

func (s *set64) Union(other Set) { s.words |= other.(*set64).words }

func (s *set64) Intersect(other Set) { s.words &= other.(*set64).words }

func (s *set64) Difference(other Set) { s.words &^= other.(*set64).words }

func (s *set64) Complement(universe int) {
	var mask uint64
	if universe >= 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << uint(universe)) - 1
	}
	s.words = ^s.words & mask
}

func (s *set64) ForEach(fn func(i int)) {
	var i int
	var ok bool
	for i, ok = s.Next(-1); ok; i, ok = s.Next(i) {
		fn(i)
	}
}

func (s *set64) Cap() int { return 64 }

func (s *set64) Raw() []uint64 { return []uint64{s.words} }

func (s *set64) SetRaw(words []uint64) { s.words = words[0] }
