package polygon

import "github.com/KeyArgo/TerraTracer/internal/lib/geodesic"

const (
	// ClosureEpsilonFt is the hard closure tolerance: a ring whose last
	// vertex lies within this distance of its first is closed.
	ClosureEpsilonFt = 0.1

	// NearClosureFt is the looser warning tolerance used only to decide
	// whether to offer an auto-snap instead of merely warning.
	NearClosureFt = 10.0

	// MonumentClosureFt is the alternate anchor tolerance: a ring may close
	// back to the monument rather than to its own first vertex.
	MonumentClosureFt = 10.0
)

// IsClosed reports whether the ring has returned to its origin. Below three
// vertices closure is undefined and therefore false. When a monument is
// supplied, a last vertex within MonumentClosureFt of it also closes the ring.
func IsClosed(vertices []Vertex, monument *Monument) bool {
	if len(vertices) < 3 {
		return false
	}
	first, last := vertices[0], vertices[len(vertices)-1]
	if geodesic.DistanceFeet(first.Lat, first.Lon, last.Lat, last.Lon) < ClosureEpsilonFt {
		return true
	}
	if monument != nil {
		return geodesic.DistanceFeet(monument.Lat, monument.Lon, last.Lat, last.Lon) < MonumentClosureFt
	}
	return false
}

// IsNearlyClosed reports whether the last vertex is within NearClosureFt of
// the first. Two vertices are enough to measure, though never enough to close.
func IsNearlyClosed(vertices []Vertex) bool {
	if len(vertices) < 2 {
		return false
	}
	first, last := vertices[0], vertices[len(vertices)-1]
	return geodesic.DistanceFeet(first.Lat, first.Lon, last.Lat, last.Lon) < NearClosureFt
}

// SnapClosed overwrites the last vertex's coordinates and id with the first
// vertex's and collapses the trailing construction-sequence entry to match.
// Callers confirm closure (exact or good enough) before snapping.
func SnapClosed(p *Polygon) {
	if len(p.Vertices) < 2 {
		return
	}
	first := p.Vertices[0]
	last := &p.Vertices[len(p.Vertices)-1]
	last.ID = first.ID
	last.Lat = first.Lat
	last.Lon = first.Lon

	if n := len(p.ConstructionSequence); n > 0 {
		p.ConstructionSequence[n-1] = first.ID
	}
}
