package deletable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrenders/frank2/deletable"
	"github.com/jrenders/frank2/graph"
)

// buildK4 returns K4, the complete graph on 4 vertices, with a finalized
// edge numbering.
func buildK4(t *testing.T) *graph.UndirectedGraph {
	t.Helper()
	g, err := graph.NewUndirectedGraph(4)
	assert.NoError(t, err)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			assert.NoError(t, g.AddEdge(u, v))
		}
	}
	assert.NoError(t, g.Finalize())

	return g
}

func TestDeletable_ChordsMakeCycleEdgesDeletable(t *testing.T) {
	k4 := buildK4(t)
	d := graph.NewDiGraph(4)
	// Orient K4 as a strongly connected tournament: 0->1->2->3->0 cycle,
	// plus chords 0->2, 1->3.
	d.AddArc(0, 1)
	d.AddArc(1, 2)
	d.AddArc(2, 3)
	d.AddArc(3, 0)
	d.AddArc(0, 2)
	d.AddArc(1, 3)

	oracle := deletable.NewOracle(4)
	del := oracle.Deletable(d, k4.Num)

	// Every arc of the 4-cycle has an alternate 2-hop path via a chord, so
	// all four cycle arcs should be deletable.
	assert.True(t, del.Has(k4.Num.Index(0, 1)))
	assert.True(t, del.Has(k4.Num.Index(1, 2)))
	assert.True(t, del.Has(k4.Num.Index(2, 3)))
	assert.True(t, del.Has(k4.Num.Index(3, 0)))
}

func TestDeletable_PureCycle_NothingDeletable(t *testing.T) {
	k4 := buildK4(t)
	d := graph.NewDiGraph(4)
	d.AddArc(0, 1)
	d.AddArc(1, 2)
	d.AddArc(2, 3)
	d.AddArc(3, 0)

	oracle := deletable.NewOracle(4)
	del := oracle.Deletable(d, k4.Num)
	assert.True(t, del.Empty())
}
