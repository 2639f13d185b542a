package polygon

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/KeyArgo/TerraTracer/internal/lib/geodesic"
)

const (
	meanEarthRadiusM = 6371008.8
	sqFeetPerAcre    = 43560.0
	sqFeetPerSqMeter = 1 / (geodesic.MetersPerFoot * geodesic.MetersPerFoot)
)

// Summary describes the finished boundary in the units a metes-and-bounds
// description is written in.
type Summary struct {
	PerimeterFt float64
	AreaAcres   float64
}

// Summarize measures the ring's perimeter along its construction path and
// its enclosed area by spherical excess. A ring that never closed still gets
// a perimeter; area needs at least three distinct vertices.
func Summarize(p *Polygon) Summary {
	var s Summary
	vs := p.Vertices
	for i := 1; i < len(vs); i++ {
		s.PerimeterFt += geodesic.DistanceFeet(vs[i-1].Lat, vs[i-1].Lon, vs[i].Lat, vs[i].Lon)
	}

	ring := distinctRing(vs)
	if len(ring) < 3 {
		return s
	}
	pts := make([]s2.Point, len(ring))
	for i, v := range ring {
		pts[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle(v.Lat) * s1.Degree,
			Lng: s1.Angle(v.Lon) * s1.Degree,
		})
	}
	loop := s2.LoopFromPoints(pts)
	loop.Normalize() // interior is the small side regardless of winding
	areaM2 := loop.Area() * meanEarthRadiusM * meanEarthRadiusM
	s.AreaAcres = areaM2 * sqFeetPerSqMeter / sqFeetPerAcre
	return s
}

// distinctRing drops the duplicated closing vertex a snapped ring carries.
func distinctRing(vs []Vertex) []Vertex {
	if len(vs) < 2 {
		return vs
	}
	first, last := vs[0], vs[len(vs)-1]
	if first.Lat == last.Lat && first.Lon == last.Lon {
		return vs[:len(vs)-1]
	}
	return vs
}
