package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	got, err := ParseDecimal("45.1234", RoleLatitude)
	require.NoError(t, err)
	assert.InDelta(t, 45.1234, got, 1e-9)

	got, err = ParseDecimal("-110.5", RoleLongitude)
	require.NoError(t, err)
	assert.InDelta(t, -110.5, got, 1e-9)

	// 179.9 is a legal longitude but not a legal latitude.
	got, err = ParseDecimal("179.9", RoleLongitude)
	require.NoError(t, err)
	assert.InDelta(t, 179.9, got, 1e-9)

	_, err = ParseDecimal("95", RoleLatitude)
	assert.ErrorIs(t, err, ErrCoordinateRange)

	_, err = ParseDecimal("-200", RoleLongitude)
	assert.ErrorIs(t, err, ErrCoordinateRange)
}

func TestParseDecimal_RejectsDMSNotation(t *testing.T) {
	// Decimal mode was explicitly selected, so DMS punctuation is an error
	// rather than a silent fallback.
	for _, raw := range []string{`68° 00' 38"`, "N 45", "45 degrees"} {
		_, err := ParseDecimal(raw, RoleLatitude)
		assert.ErrorIs(t, err, ErrInvalidCoordinateFormat, "raw %q", raw)
	}
}

func TestParseDMS(t *testing.T) {
	tests := []struct {
		raw  string
		role Role
		want float64
	}{
		{`68° 00' 38"N`, RoleLatitude, 68 + 38.0/3600},
		{"N 68 0 38", RoleLatitude, 68 + 38.0/3600},
		{`110° 00' 38" W`, RoleLongitude, -(110 + 38.0/3600)},
		{`S 10° 30'`, RoleLatitude, -10.5},
		{"45", RoleLatitude, 45}, // hemisphere defaults to positive
	}
	for _, tt := range tests {
		got, err := ParseDMS(tt.raw, tt.role)
		require.NoError(t, err, "raw %q", tt.raw)
		assert.InDelta(t, tt.want, got, 1e-9, "raw %q", tt.raw)
	}
}

func TestParseDMS_Invalid(t *testing.T) {
	_, err := ParseDMS("N 45 0 0 E", RoleLatitude)
	assert.ErrorIs(t, err, ErrInvalidCoordinateFormat, "two hemisphere letters")

	_, err = ParseDMS("10 75 0", RoleLatitude)
	assert.ErrorIs(t, err, ErrInvalidCoordinateFormat, "minutes above 59")

	_, err = ParseDMS("", RoleLatitude)
	assert.ErrorIs(t, err, ErrInvalidCoordinateFormat)

	_, err = ParseDMS("95 0 0 N", RoleLatitude)
	assert.ErrorIs(t, err, ErrCoordinateRange, "latitude degrees above 90")

	// 95 degrees is fine for longitude.
	got, err := ParseDMS("95 0 0 E", RoleLongitude)
	require.NoError(t, err)
	assert.InDelta(t, 95, got, 1e-9)
}

func TestParse_Dispatch(t *testing.T) {
	// Plain decimals go through the decimal path, DMS punctuation through
	// the sexagesimal path.
	got, err := Parse("45.5", RoleLatitude)
	require.NoError(t, err)
	assert.InDelta(t, 45.5, got, 1e-9)

	got, err = Parse(`45° 30' 00" S`, RoleLatitude)
	require.NoError(t, err)
	assert.InDelta(t, -45.5, got, 1e-9)
}
