package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeyArgo/TerraTracer/internal/lib/geodesic"
)

func closedSquare(t *testing.T) *Polygon {
	t.Helper()
	b := NewBuilder(geodesic.MethodKarney, nil)
	require.NoError(t, b.Start(45, -100))
	for _, spec := range []string{"N 0", "E 0", "S 0", "W 0"} {
		_, err := b.AddLeg(spec, 100)
		require.NoError(t, err)
	}
	_, err := b.BeginReview()
	require.NoError(t, err)
	p, err := b.Close(false)
	require.NoError(t, err)
	return p
}

func TestSummarize_Square(t *testing.T) {
	s := Summarize(closedSquare(t))

	assert.InDelta(t, 400, s.PerimeterFt, 0.1, "four 100 ft sides")
	// 10,000 sq ft is 0.2296 acres; the mean-radius sphere reads a WGS84
	// figure at 45°N a fraction of a percent small.
	assert.InDelta(t, 0.2296, s.AreaAcres, 0.002)
}

func TestSummarize_WindingDoesNotFlipArea(t *testing.T) {
	// The same square walked clockwise and counter-clockwise encloses the
	// same area.
	b := NewBuilder(geodesic.MethodKarney, nil)
	require.NoError(t, b.Start(45, -100))
	for _, spec := range []string{"E 0", "N 0", "W 0", "S 0"} {
		_, err := b.AddLeg(spec, 100)
		require.NoError(t, err)
	}
	_, err := b.BeginReview()
	require.NoError(t, err)
	ccw, err := b.Close(false)
	require.NoError(t, err)

	assert.InDelta(t, Summarize(closedSquare(t)).AreaAcres, Summarize(ccw).AreaAcres, 1e-6)
}

func TestSummarize_DegenerateRing(t *testing.T) {
	p := &Polygon{Vertices: []Vertex{
		{ID: "P1", Lat: 45, Lon: -100},
		{ID: "P2", Lat: 45.001, Lon: -100},
	}}
	s := Summarize(p)
	assert.Greater(t, s.PerimeterFt, 0.0, "an open line still has a length")
	assert.Equal(t, 0.0, s.AreaAcres, "area needs at least three distinct vertices")
}
