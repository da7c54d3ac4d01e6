package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrenders/frank2/exact"
	"github.com/jrenders/frank2/graph"
)

// buildK4 returns K4, the complete graph on 4 vertices.
func buildK4(t *testing.T) *graph.UndirectedGraph {
	t.Helper()
	g, err := graph.NewUndirectedGraph(4)
	require.NoError(t, err)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}
	require.NoError(t, g.Finalize())

	return g
}

// buildPrism returns the triangular prism Y3 (two triangles {0,1,2} and
// {3,4,5} joined by the matching 0-3, 1-4, 2-5).
func buildPrism(t *testing.T) *graph.UndirectedGraph {
	t.Helper()
	g, err := graph.NewUndirectedGraph(6)
	require.NoError(t, err)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {0, 3}, {1, 4}, {2, 5}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Finalize())

	return g
}

func TestDecide_K4_SmartSearch(t *testing.T) {
	g := buildK4(t)
	found, stats, _ := exact.Decide(g, exact.Options{})
	assert.True(t, found)
	assert.Greater(t, stats.StronglyConnected, 0)
}

func TestDecide_K4_BruteForcePool(t *testing.T) {
	g := buildK4(t)
	found, stats, _ := exact.Decide(g, exact.Options{BruteForce: true})
	assert.True(t, found)
	assert.Greater(t, stats.PoolHighWaterMark, 0)
}

func TestDecide_K4_WitnessPopulated(t *testing.T) {
	g := buildK4(t)
	found, _, witness := exact.Decide(g, exact.Options{WantWitness: true})
	require.True(t, found)
	require.NotNil(t, witness.D1)
	require.NotNil(t, witness.D2)
	assert.True(t, witness.D1.IsFullOrientationOf(g))
	assert.True(t, witness.D2.IsFullOrientationOf(g))
}

func TestDecide_Prism_SmartAndBruteForceAgree(t *testing.T) {
	g := buildPrism(t)
	smart, _, _ := exact.Decide(g, exact.Options{})
	brute, _, _ := exact.Decide(g, exact.Options{BruteForce: true})
	assert.Equal(t, smart, brute)
}

func TestDecide_Sharding_SubsetsOfFullRun(t *testing.T) {
	g := buildK4(t)
	full, _, _ := exact.Decide(g, exact.Options{})

	// Run every shard of a 4-way split; at least one must agree with the
	// unsharded outcome on graphs small enough that a witness exists in
	// every residue class's share of the search space.
	anyFound := false
	for r := 0; r < 4; r++ {
		found, _, _ := exact.Decide(g, exact.Options{ShardM: 4, ShardR: r})
		anyFound = anyFound || found
	}
	assert.Equal(t, full, anyFound)
}
