package bearing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_QuadrantDecimal(t *testing.T) {
	tests := []struct {
		spec string
		want float64
	}{
		{"N 10", 10},
		{"E 10", 100},
		{"S 45", 225},
		{"W 10", 280},
		{"n 0", 0},
		{"10 W", 280}, // trailing letter form
		{"W 10.5", 280.5},
		{"45", 45}, // bare number reads as offset from north
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		require.NoError(t, err, "spec %q", tt.spec)
		assert.InDelta(t, tt.want, got, 1e-9, "spec %q", tt.spec)
	}
}

func TestParse_QuadrantDMS(t *testing.T) {
	tests := []struct {
		spec string
		want float64
	}{
		{`N 68° 00' 38"`, 68 + 38.0/3600},
		{"N 68 0 38", 68 + 38.0/3600},
		{`S 10° 30' 00"`, 190.5},
		{`W 0° 30'`, 270.5},
		{"E 45 15", 135.25},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		require.NoError(t, err, "spec %q", tt.spec)
		assert.InDelta(t, tt.want, got, 1e-9, "spec %q", tt.spec)
	}
}

func TestParse_LandSurvey(t *testing.T) {
	tests := []struct {
		spec string
		want float64
	}{
		{"N 45 0 0 E", 45},
		{`N 45° 30' 00" E`, 45.5},
		{"S 45 0 0 E", 135},
		{"S 45 0 0 W", 225},
		{"N 45 0 0 W", 315},
		{"N 90 0 0 W", 270},
		{"N 0 0 0 E", 0},
		{"s 30 e", 150}, // degrees only, lowercase
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		require.NoError(t, err, "spec %q", tt.spec)
		assert.InDelta(t, tt.want, got, 1e-9, "spec %q", tt.spec)
	}
}

func TestParse_Normalization(t *testing.T) {
	// Offsets past the quadrant still fold into [0, 360).
	got, err := Parse("W 100")
	require.NoError(t, err)
	assert.InDelta(t, 10, got, 1e-9, "270 + 100 wraps past north")

	got, err = Parse("N 370")
	require.NoError(t, err)
	assert.InDelta(t, 10, got, 1e-9)

	// 360 itself folds to 0.
	got, err = Parse("N 360")
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-9)
}

func TestParse_Invalid(t *testing.T) {
	for _, spec := range []string{
		"",
		"north 10",
		"NE 45",     // two letters without a separating magnitude
		"N 45 E 10", // trailing digits after the turn letter
		"N 10 10 E W",
		"N 10 75 0", // minutes must be below 60
		"bearing",
	} {
		_, err := Parse(spec)
		assert.ErrorIs(t, err, ErrInvalidBearingFormat, "spec %q", spec)
	}
}

func TestParse_SurveyGrammarWinsOverQuadrant(t *testing.T) {
	// "S 45 ... W" must read as a land-survey bearing, never as quadrant
	// S with a stray letter.
	got, err := Parse("S 45 W")
	require.NoError(t, err)
	assert.InDelta(t, 225, got, 1e-9)
}
