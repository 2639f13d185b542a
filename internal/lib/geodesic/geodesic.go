// Package geodesic projects geographic points along an azimuth and distance
// using interchangeable earth models, and measures the inverse distance used
// by closure checks. Distances cross this package boundary in feet; all
// geodesic math runs in meters.
package geodesic

import (
	"errors"
	"fmt"
	"math"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
	geographiclib "github.com/pymaxion/geographiclib-go/geodesic"
)

// ErrUnknownProjectionMethod reports a method enum outside 1..4. The menu
// normally prevents it; when it occurs the current leg is aborted, never the
// session.
var ErrUnknownProjectionMethod = errors.New("unknown projection method")

// Method selects the earth model used to project a leg.
type Method int

const (
	MethodKarney    Method = 1 // high-precision geodesic on WGS84
	MethodVincenty  Method = 2 // ellipsoidal direct solution
	MethodSpherical Method = 3 // closed-form sphere, fastest
	MethodAverage   Method = 4 // arithmetic mean of the other three
)

// String returns the menu label for the method.
func (m Method) String() string {
	switch m {
	case MethodKarney:
		return "Karney"
	case MethodVincenty:
		return "Vincenty"
	case MethodSpherical:
		return "Spherical"
	case MethodAverage:
		return "Average"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

const (
	// MetersPerFoot converts survey distances to meters before any math.
	MetersPerFoot = 0.3048

	// sphericalRadiusM is the sphere radius for the spherical model.
	sphericalRadiusM = 6378137.0
)

// wgs84 backs the Vincenty strategy. Longitudes come back in [-180, 180] and
// bearings are accepted in compass degrees.
var wgs84 = ellipsoid.Init("WGS84", ellipsoid.Degrees, ellipsoid.Meter, ellipsoid.LongitudeIsSymmetric, ellipsoid.BearingIsSymmetric)

// Project returns the point reached from (lat, lon) by traveling distanceFt
// feet along azimuthDeg using the selected method.
func Project(method Method, lat, lon, azimuthDeg, distanceFt float64) (float64, float64, error) {
	switch method {
	case MethodKarney:
		lat2, lon2 := Karney(lat, lon, azimuthDeg, distanceFt)
		return lat2, lon2, nil
	case MethodVincenty:
		lat2, lon2 := Vincenty(lat, lon, azimuthDeg, distanceFt)
		return lat2, lon2, nil
	case MethodSpherical:
		lat2, lon2 := Spherical(lat, lon, azimuthDeg, distanceFt)
		return lat2, lon2, nil
	case MethodAverage:
		lat2, lon2 := Average(lat, lon, azimuthDeg, distanceFt)
		return lat2, lon2, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownProjectionMethod, int(method))
	}
}

// Spherical projects on a sphere of radius 6,378,137 m with the closed-form
// forward formula. Least accurate over long distances.
func Spherical(lat, lon, azimuthDeg, distanceFt float64) (float64, float64) {
	d := distanceFt * MetersPerFoot
	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180
	azRad := azimuthDeg * math.Pi / 180

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(d/sphericalRadiusM) +
		math.Cos(latRad)*math.Sin(d/sphericalRadiusM)*math.Cos(azRad))
	lon2 := lonRad + math.Atan2(math.Sin(azRad)*math.Sin(d/sphericalRadiusM)*math.Cos(latRad),
		math.Cos(d/sphericalRadiusM)-math.Sin(latRad)*math.Sin(lat2))

	return lat2 * 180 / math.Pi, lon2 * 180 / math.Pi
}

// Vincenty projects with the direct ellipsoidal solution on WGS84.
func Vincenty(lat, lon, azimuthDeg, distanceFt float64) (float64, float64) {
	return wgs84.At(lat, lon, distanceFt*MetersPerFoot, azimuthDeg)
}

// Karney projects with the numerically robust direct geodesic solution on
// WGS84, accurate at all distances and near-antipodal azimuths.
func Karney(lat, lon, azimuthDeg, distanceFt float64) (float64, float64) {
	r := geographiclib.WGS84.Direct(lat, lon, azimuthDeg, distanceFt*MetersPerFoot)
	return r.Lat2, r.Lon2
}

// Average runs all three strategies and returns the arithmetic mean of the
// three latitudes and of the three longitudes independently. This is a crude
// ensemble, kept exactly as the historical behavior downstream tests expect.
func Average(lat, lon, azimuthDeg, distanceFt float64) (float64, float64) {
	latSph, lonSph := Spherical(lat, lon, azimuthDeg, distanceFt)
	latVin, lonVin := Vincenty(lat, lon, azimuthDeg, distanceFt)
	latKar, lonKar := Karney(lat, lon, azimuthDeg, distanceFt)

	return (latSph + latVin + latKar) / 3, (lonSph + lonVin + lonKar) / 3
}

// DistanceFeet returns the geodesic distance between two points in feet,
// solved on the WGS84 ellipsoid.
func DistanceFeet(lat1, lon1, lat2, lon2 float64) float64 {
	r := geographiclib.WGS84.Inverse(lat1, lon1, lat2, lon2)
	return r.S12 / MetersPerFoot
}
