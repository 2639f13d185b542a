// Package polygon holds the survey data model and the build session that
// turns bearing/distance legs into a closed boundary ring.
package polygon

import "fmt"

// Vertex is one point of the boundary ring. The first vertex of a session
// has no incoming leg, so its bearing and distance are nil. A vertex is
// immutable once appended except for the closing snap, which rewrites the
// last vertex to match the first.
type Vertex struct {
	ID               string
	Lat              float64
	Lon              float64
	BearingFromPrev  *float64 // degrees, clockwise from true north
	DistanceFromPrev *float64 // feet
}

// TiePoint is the known reference coordinate a survey starts from. It is not
// part of the enclosed boundary.
type TiePoint struct {
	Lat float64
	Lon float64
}

// Monument is a single physical reference marker placed exactly one leg from
// the tie point. It is exported as a point placemark and may serve as the
// anchor the ring closes back to.
type Monument struct {
	Label            string
	Lat              float64
	Lon              float64
	BearingFromPrev  float64
	DistanceFromPrev float64
}

// Construction-sequence tokens for the non-vertex entities.
const (
	SeqTiePoint = "tie_point"
	SeqMonument = "monument"
)

// Polygon is the finished survey record handed to the export sinks. Vertex
// order is the ring order: it defines the boundary path.
type Polygon struct {
	Vertices             []Vertex
	TiePoint             *TiePoint
	Monument             *Monument
	ConstructionSequence []string
	Units                string
}

// vertexID names ring vertices P1, P2, ... in gathering order.
func vertexID(n int) string {
	return fmt.Sprintf("P%d", n)
}
