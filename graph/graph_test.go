package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrenders/frank2/graph"
)

// k4 returns K4, the complete graph on 4 vertices (cubic: each vertex has
// the other three as neighbors).
func k4(t *testing.T) *graph.UndirectedGraph {
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

func TestFinalize_CanonicalNumbering(t *testing.T) {
	g := k4(t)
	assert.Equal(t, 6, g.M())

	seen := make(map[int]bool)
	for e := 0; e < g.M(); e++ {
		u, v := g.Num.Endpoints(e)
		assert.Less(t, u, v)
		assert.Equal(t, e, g.Num.Index(u, v))
		assert.Equal(t, e, g.Num.Index(v, u))
		seen[e] = true
	}
	assert.Len(t, seen, 6)
}

func TestFinalize_RejectsNonCubic(t *testing.T) {
	g, err := graph.NewUndirectedGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	assert.ErrorIs(t, g.Finalize(), graph.ErrNotCubic)
}

func TestAddEdge_RejectsLoopsAndParallels(t *testing.T) {
	g, err := graph.NewUndirectedGraph(4)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(0, 0), graph.ErrSelfLoop)
	require.NoError(t, g.AddEdge(0, 1))
	assert.ErrorIs(t, g.AddEdge(0, 1), graph.ErrParallelEdge)
}

func TestDiGraph_SnapshotRestore(t *testing.T) {
	d := graph.NewDiGraph(4)
	d.AddArc(0, 1)
	d.AddArc(1, 2)

	snap := graph.NewSnapshot(4)
	d.Save(snap)

	d.AddArc(2, 3)
	d.AddArc(3, 0)
	assert.Equal(t, 4, d.ArcCount)

	d.Restore(snap)
	assert.Equal(t, 2, d.ArcCount)
	assert.True(t, d.HasArc(0, 1))
	assert.True(t, d.HasArc(1, 2))
	assert.False(t, d.HasArc(2, 3))
	assert.False(t, d.HasArc(3, 0))
}

func TestDiGraph_Clone_IsIndependent(t *testing.T) {
	d := graph.NewDiGraph(4)
	d.AddArc(0, 1)
	d.AddArc(1, 2)

	clone := d.Clone()
	d.AddArc(2, 3)

	assert.Equal(t, 3, d.ArcCount)
	assert.Equal(t, 2, clone.ArcCount)
	assert.False(t, clone.HasArc(2, 3))
}

func TestDiGraph_IsFullOrientationOf(t *testing.T) {
	g := k4(t)
	d := graph.NewDiGraph(4)
	// Orient every K4 edge from smaller to larger endpoint: a valid full
	// orientation (not necessarily strongly connected, but fully oriented).
	for e := 0; e < g.M(); e++ {
		u, v := g.Num.Endpoints(e)
		d.AddArc(u, v)
	}
	assert.True(t, d.IsFullOrientationOf(g))

	d.RemoveArc(0, 1)
	assert.False(t, d.IsFullOrientationOf(g))
}
