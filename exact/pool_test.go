package exact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrenders/frank2/bitset"
)

func setOf(m int, members ...int) bitset.Set {
	s := bitset.New(m)
	for _, i := range members {
		s.Add(i)
	}

	return s
}

func TestPool_FirstInsertNeverMatches(t *testing.T) {
	p := NewPool(4)
	_, ok := p.Try(setOf(4, 0, 1), nil)
	assert.False(t, ok)
	assert.Equal(t, 1, p.MaxLen())
}

func TestPool_ComplementaryPairMatches(t *testing.T) {
	p := NewPool(4)
	p.Try(setOf(4, 0, 1), nil)
	partner, ok := p.Try(setOf(4, 2, 3), nil)
	assert.True(t, ok)
	assert.Nil(t, partner) // no orientation supplied
}

func TestPool_SubsetCandidateIsDominated(t *testing.T) {
	p := NewPool(4)
	p.Try(setOf(4, 0, 1, 2), nil)
	_, ok := p.Try(setOf(4, 0, 1), nil)
	assert.False(t, ok)
}

func TestPool_SupersetCandidateKillsOldEntry(t *testing.T) {
	p := NewPool(4)
	p.Try(setOf(4, 0), nil)
	_, ok := p.Try(setOf(4, 0, 1), nil)
	assert.False(t, ok)
	// {0} is dead and {0,1} took its slot, so only one entry is live.
	assert.Equal(t, 1, p.MaxLen())

	// {1,2,3} complements the live {0,1} entry (union covers 0..3).
	_, ok = p.Try(setOf(4, 1, 2, 3), nil)
	assert.True(t, ok)
}

func TestPool_Reset_ClearsEntries(t *testing.T) {
	p := NewPool(4)
	p.Try(setOf(4, 0, 1), nil)
	assert.Equal(t, 1, p.MaxLen())

	p.Reset(6)
	assert.Equal(t, 0, p.MaxLen())
	_, ok := p.Try(setOf(6, 0, 1), nil)
	assert.False(t, ok)
}
