package frank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrenders/frank2/frank"
	"github.com/jrenders/frank2/graph"
	"github.com/jrenders/frank2/graph6"
)

func decodeGraph(t *testing.T, payload string) *graph.UndirectedGraph {
	t.Helper()
	g, err := graph6.Decode(payload)
	require.NoError(t, err)

	return g
}

func TestNewRunOptions_RejectsConflictingEngines(t *testing.T) {
	_, err := frank.NewRunOptions(frank.WithHeuristicOnly(), frank.WithExactOnly())
	assert.ErrorIs(t, err, frank.ErrConflictingEngineSelection)
}

func TestNewRunOptions_RejectsInvalidShard(t *testing.T) {
	_, err := frank.NewRunOptions(frank.WithSingleGraphShard(3, 2))
	assert.ErrorIs(t, err, frank.ErrInvalidShard)
}

func TestRunOptions_ShouldEmit_DefaultAndComplement(t *testing.T) {
	opts, err := frank.NewRunOptions()
	require.NoError(t, err)
	assert.True(t, opts.ShouldEmit(false))
	assert.False(t, opts.ShouldEmit(true))

	opts, err = frank.NewRunOptions(frank.WithComplement())
	require.NoError(t, err)
	assert.False(t, opts.ShouldEmit(false))
	assert.True(t, opts.ShouldEmit(true))
}

func TestDecide_K4_FindsFrank2ViaExact(t *testing.T) {
	g := decodeGraph(t, "C~")

	opts, err := frank.NewRunOptions()
	require.NoError(t, err)

	d, err := frank.Decide(g, opts, nil)
	require.NoError(t, err)
	assert.True(t, d.FrankIs2)
	assert.True(t, d.Stats.ExactAttempted)
}

func TestDecide_HeuristicOnly_K4_FailsSufficientCondition(t *testing.T) {
	g := decodeGraph(t, "C~")

	opts, err := frank.NewRunOptions(frank.WithHeuristicOnly())
	require.NoError(t, err)

	d, err := frank.Decide(g, opts, nil)
	require.NoError(t, err)
	assert.False(t, d.FrankIs2)
	assert.False(t, d.Stats.ExactAttempted)
}

func TestDecide_SetsGraphsRead(t *testing.T) {
	g := decodeGraph(t, "C~")

	opts, err := frank.NewRunOptions()
	require.NoError(t, err)

	d, err := frank.Decide(g, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Stats.GraphsRead)
	assert.Equal(t, 0, d.Stats.Skipped)
}

// The prism's rungs form a cyclic 3-edge cut, so the heuristic's
// strong-2-edge test rejects it and the exact engine decides it.
func TestDecide_Prism_FrankIs2ViaExact(t *testing.T) {
	g := decodeGraph(t, "E{Sw")

	opts, err := frank.NewRunOptions(frank.WithPrintWitness())
	require.NoError(t, err)

	d, err := frank.Decide(g, opts, nil)
	require.NoError(t, err)
	assert.True(t, d.FrankIs2)
	assert.False(t, d.Stats.HeuristicSucceeded)
	require.NotNil(t, d.Witness)
}
