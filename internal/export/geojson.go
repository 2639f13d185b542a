package export

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/KeyArgo/TerraTracer/internal/lib/polygon"
)

// WriteGeoJSON writes a FeatureCollection with one Polygon feature for the
// boundary ring and, when present, one Point feature for the monument.
func WriteGeoJSON(path string, p *polygon.Polygon, name string) error {
	fc := geojson.NewFeatureCollection()

	ring := make(orb.Ring, 0, len(p.Vertices)+1)
	for _, c := range ringCoordinates(p) {
		ring = append(ring, orb.Point{c[1], c[0]}) // GeoJSON positions are lon,lat
	}
	boundary := geojson.NewFeature(orb.Polygon{ring})
	boundary.Properties["name"] = name
	boundary.Properties["units"] = p.Units
	boundary.Properties["construction_sequence"] = p.ConstructionSequence
	fc.Append(boundary)

	if m := p.Monument; m != nil {
		marker := geojson.NewFeature(orb.Point{m.Lon, m.Lat})
		marker.Properties["label"] = m.Label
		marker.Properties["bearing_from_prev"] = m.BearingFromPrev
		marker.Properties["distance_from_prev"] = m.DistanceFromPrev
		fc.Append(marker)
	}

	content, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding geojson: %w", err)
	}
	return writeNewFile(path, append(content, '\n'))
}
