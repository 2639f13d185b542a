package geodesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_ZeroDistance(t *testing.T) {
	// Zero distance is the identity for every earth model.
	for _, m := range []Method{MethodKarney, MethodVincenty, MethodSpherical, MethodAverage} {
		lat, lon, err := Project(m, 38.0675, -120.5436, 123.4, 0)
		require.NoError(t, err, m.String())
		assert.InDelta(t, 38.0675, lat, 1e-9, m.String())
		assert.InDelta(t, -120.5436, lon, 1e-9, m.String())
	}
}

func TestProject_EastwardLeg(t *testing.T) {
	// 1000 ft due east from the equator moves longitude, not latitude.
	for _, m := range []Method{MethodKarney, MethodVincenty, MethodSpherical} {
		lat, lon, err := Project(m, 0, 0, 90, 1000)
		require.NoError(t, err, m.String())
		assert.InDelta(t, 0, lat, 1e-6, m.String())
		assert.Greater(t, lon, 0.0, m.String())
		// 1000 ft is about 0.00274 degrees of longitude at the equator.
		assert.InDelta(t, 0.00274, lon, 0.0002, m.String())
	}
}

func TestProject_MethodsAgreeAtShortRange(t *testing.T) {
	// Over a quarter mile the ellipsoidal solutions agree to well under a
	// foot, and the sphere stays within a few feet of them.
	latK, lonK := Karney(38.0675, -120.5436, 45, 1320)
	latV, lonV := Vincenty(38.0675, -120.5436, 45, 1320)
	latS, lonS := Spherical(38.0675, -120.5436, 45, 1320)

	assert.Less(t, DistanceFeet(latK, lonK, latV, lonV), 0.1, "karney vs vincenty")
	assert.Less(t, DistanceFeet(latK, lonK, latS, lonS), 10.0, "karney vs spherical")
}

func TestAverage_IsArithmeticMean(t *testing.T) {
	latS, lonS := Spherical(45, -100, 90, 1000)
	latV, lonV := Vincenty(45, -100, 90, 1000)
	latK, lonK := Karney(45, -100, 90, 1000)

	lat, lon := Average(45, -100, 90, 1000)
	assert.InDelta(t, (latS+latV+latK)/3, lat, 1e-12)
	assert.InDelta(t, (lonS+lonV+lonK)/3, lon, 1e-12)
}

func TestProject_UnknownMethod(t *testing.T) {
	_, _, err := Project(Method(0), 45, -100, 90, 1000)
	assert.ErrorIs(t, err, ErrUnknownProjectionMethod)

	_, _, err = Project(Method(5), 45, -100, 90, 1000)
	assert.ErrorIs(t, err, ErrUnknownProjectionMethod)
}

func TestDistanceFeet_RoundTrip(t *testing.T) {
	// The inverse solution recovers the distance the direct solution used.
	lat, lon := Karney(38.0675, -120.5436, 270, 5280)
	got := DistanceFeet(38.0675, -120.5436, lat, lon)
	assert.InDelta(t, 5280, got, 0.01)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "Karney", MethodKarney.String())
	assert.Equal(t, "Vincenty", MethodVincenty.String())
	assert.Equal(t, "Spherical", MethodSpherical.String())
	assert.Equal(t, "Average", MethodAverage.String())
}
