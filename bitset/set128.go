package bitset

import "math/bits"

// set128 is the 128-bit backed Set (two words), used whenever capacity > 64.
// lo holds bits [0,64), hi holds bits [64,128).
type set128 struct {
	lo, hi uint64
}

func (s *set128) Add(i int) {
	if i < 64 {
		s.lo |= 1 << uint(i)
	} else {
		s.hi |= 1 << uint(i-64)
	}
}

func (s *set128) Remove(i int) {
	if i < 64 {
		s.lo &^= 1 << uint(i)
	} else {
		s.hi &^= 1 << uint(i-64)
	}
}

func (s *set128) Has(i int) bool {
	if i < 64 {
		return s.lo&(1<<uint(i)) != 0
	}

	return s.hi&(1<<uint(i-64)) != 0
}

func (s *set128) Next(after int) (int, bool) {
	if after < -1 {
		after = -1
	}
	if after < 63 {
		shifted := s.lo >> uint(after+1)
		if shifted != 0 {
			return after + 1 + bits.TrailingZeros64(shifted), true
		}
		// Nothing left in lo; fall through and scan all of hi.
		if s.hi != 0 {
			return 64 + bits.TrailingZeros64(s.hi), true
		}

		return 0, false
	}

	// after >= 63: only hi can contain a candidate.
	hiAfter := after - 64 // index within hi, may be >= 63
	if hiAfter >= 63 {
		return 0, false
	}
	shifted := s.hi >> uint(hiAfter+1)
	if shifted == 0 {
		return 0, false
	}

	return 64 + hiAfter + 1 + bits.TrailingZeros64(shifted), true
}

func (s *set128) Len() int { return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi) }

func (s *set128) Empty() bool { return s.lo == 0 && s.hi == 0 }

func (s *set128) Equal(other Set) bool {
	o, ok := other.(*set128)
	if !ok {
		return false
	}

	return s.lo == o.lo && s.hi == o.hi
}

func (s *set128) Clone() Set { return &set128{lo: s.lo, hi: s.hi} }

func (s *set128) Union(other Set) {
	o := other.(*set128)
	s.lo |= o.lo
	s.hi |= o.hi
}

func (s *set128) Intersect(other Set) {
	o := other.(*set128)
	s.lo &= o.lo
	s.hi &= o.hi
}

func (s *set128) Difference(other Set) {
	o := other.(*set128)
	s.lo &^= o.lo
	s.hi &^= o.hi
}

func (s *set128) Complement(universe int) {
	if universe >= 64 {
		s.lo = ^s.lo
		if universe >= 128 {
			s.hi = ^s.hi
		} else {
			mask := (uint64(1) << uint(universe-64)) - 1
			s.hi = ^s.hi & mask
		}
	} else {
		mask := (uint64(1) << uint(universe)) - 1
		s.lo = ^s.lo & mask
		s.hi = 0
	}
}

func (s *set128) ForEach(fn func(i int)) {
	var i int
	var ok bool
	for i, ok = s.Next(-1); ok; i, ok = s.Next(i) {
		fn(i)
	}
}

func (s *set128) Cap() int { return 128 }

func (s *set128) Raw() []uint64 { return []uint64{s.lo, s.hi} }

func (s *set128) SetRaw(words []uint64) {
	s.lo = words[0]
	s.hi = words[1]
}
