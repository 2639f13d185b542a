package export

import (
	"fmt"
	"strings"

	"github.com/KeyArgo/TerraTracer/internal/lib/polygon"
)

// WriteDataFile writes the line-oriented sectioned text form: [INITIAL],
// [MONUMENT] and [POLYGON] headers with Key: value lines. Coordinates carry
// six decimal places, bearings and distances two.
func WriteDataFile(path string, p *polygon.Polygon, name string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Units: %s\n\n", p.Units)

	if tp := p.TiePoint; tp != nil {
		b.WriteString("[INITIAL]\n")
		fmt.Fprintf(&b, "Latitude: %.6f\n", tp.Lat)
		fmt.Fprintf(&b, "Longitude: %.6f\n\n", tp.Lon)
	} else if len(p.Vertices) > 0 {
		b.WriteString("[INITIAL]\n")
		fmt.Fprintf(&b, "Latitude: %.6f\n", p.Vertices[0].Lat)
		fmt.Fprintf(&b, "Longitude: %.6f\n\n", p.Vertices[0].Lon)
	}

	if m := p.Monument; m != nil {
		b.WriteString("[MONUMENT]\n")
		fmt.Fprintf(&b, "Label: %s\n", m.Label)
		fmt.Fprintf(&b, "Latitude: %.6f\n", m.Lat)
		fmt.Fprintf(&b, "Longitude: %.6f\n", m.Lon)
		fmt.Fprintf(&b, "Bearing: %.2f\n", m.BearingFromPrev)
		fmt.Fprintf(&b, "Distance: %.2f\n\n", m.DistanceFromPrev)
	}

	b.WriteString("[POLYGON]\n")
	for _, v := range p.Vertices {
		fmt.Fprintf(&b, "Point: %s\n", v.ID)
		fmt.Fprintf(&b, "Latitude: %.6f\n", v.Lat)
		fmt.Fprintf(&b, "Longitude: %.6f\n", v.Lon)
		if v.BearingFromPrev != nil {
			fmt.Fprintf(&b, "Bearing: %.2f\n", *v.BearingFromPrev)
		}
		if v.DistanceFromPrev != nil {
			fmt.Fprintf(&b, "Distance: %.2f\n", *v.DistanceFromPrev)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Sequence: %s\n", strings.Join(p.ConstructionSequence, ", "))

	return writeNewFile(path, []byte(b.String()))
}
