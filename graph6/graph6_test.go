package graph6_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrenders/frank2/graph6"
)

func TestDecode_K4(t *testing.T) {
	g, err := graph6.Decode("C~")
	require.NoError(t, err)
	assert.Equal(t, 4, g.N)
	assert.Equal(t, 6, g.M())
}

func TestDecode_Prism(t *testing.T) {
	g, err := graph6.Decode("E{Sw")
	require.NoError(t, err)
	assert.Equal(t, 6, g.N)
	assert.Equal(t, 9, g.M())
}

func TestDecode_Petersen(t *testing.T) {
	g, err := graph6.Decode("IsP@OkWHG")
	require.NoError(t, err)
	assert.Equal(t, 10, g.N)
	assert.Equal(t, 15, g.M())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, payload := range []string{"C~", "E{Sw", "IsP@OkWHG"} {
		g, err := graph6.Decode(payload)
		require.NoError(t, err)
		assert.Equal(t, payload, graph6.Encode(g))
	}
}

func TestStripHeader(t *testing.T) {
	payload, had := graph6.StripHeader(graph6.HeaderPrefix + "C~")
	assert.True(t, had)
	assert.Equal(t, "C~", payload)

	payload, had = graph6.StripHeader("C~")
	assert.False(t, had)
	assert.Equal(t, "C~", payload)
}

func TestDecode_MalformedPayload(t *testing.T) {
	_, err := graph6.Decode("C")
	assert.ErrorIs(t, err, graph6.ErrMalformed)
}
