package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/twpayne/go-polyline"

	"github.com/KeyArgo/TerraTracer/internal/lib/polygon"
)

// Document mirrors the polygon data model on disk. Nullable leg fields stay
// pointers so the first vertex serializes its bearing and distance as null.
type Document struct {
	Name                 string         `json:"name"`
	Units                string         `json:"units"`
	TiePoint             *TiePointJSON  `json:"tie_point"`
	Monument             *MonumentJSON  `json:"monument"`
	Polygon              []VertexJSON   `json:"polygon"`
	ConstructionSequence []string       `json:"construction_sequence"`
	EncodedPolyline      string         `json:"encoded_polyline"`
}

type TiePointJSON struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MonumentJSON struct {
	Label            string  `json:"label"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	BearingFromPrev  float64 `json:"bearing_from_prev"`
	DistanceFromPrev float64 `json:"distance_from_prev"`
}

type VertexJSON struct {
	ID               string   `json:"id"`
	Lat              float64  `json:"lat"`
	Lon              float64  `json:"lon"`
	BearingFromPrev  *float64 `json:"bearing_from_prev"`
	DistanceFromPrev *float64 `json:"distance_from_prev"`
}

// NewDocument converts the in-memory polygon to its serialized form,
// including the Google-encoded polyline of the ring path.
func NewDocument(p *polygon.Polygon, name string) Document {
	doc := Document{
		Name:                 name,
		Units:                p.Units,
		ConstructionSequence: p.ConstructionSequence,
	}
	if tp := p.TiePoint; tp != nil {
		doc.TiePoint = &TiePointJSON{Lat: tp.Lat, Lon: tp.Lon}
	}
	if m := p.Monument; m != nil {
		doc.Monument = &MonumentJSON{
			Label:            m.Label,
			Lat:              m.Lat,
			Lon:              m.Lon,
			BearingFromPrev:  m.BearingFromPrev,
			DistanceFromPrev: m.DistanceFromPrev,
		}
	}
	coords := make([][]float64, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		doc.Polygon = append(doc.Polygon, VertexJSON{
			ID:               v.ID,
			Lat:              v.Lat,
			Lon:              v.Lon,
			BearingFromPrev:  v.BearingFromPrev,
			DistanceFromPrev: v.DistanceFromPrev,
		})
		coords = append(coords, []float64{v.Lat, v.Lon})
	}
	doc.EncodedPolyline = string(polyline.EncodeCoords(coords))
	return doc
}

// WriteJSON writes the structured JSON form of the polygon.
func WriteJSON(path string, p *polygon.Polygon, name string) error {
	content, err := json.MarshalIndent(NewDocument(p, name), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return writeNewFile(path, append(content, '\n'))
}

// ReadJSON loads a previously exported document and reconstructs the polygon
// record, for re-export in another format.
func ReadJSON(path string) (*polygon.Polygon, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}

	p := &polygon.Polygon{
		Units:                doc.Units,
		ConstructionSequence: doc.ConstructionSequence,
	}
	if p.Units == "" {
		p.Units = "imperial"
	}
	if doc.TiePoint != nil {
		p.TiePoint = &polygon.TiePoint{Lat: doc.TiePoint.Lat, Lon: doc.TiePoint.Lon}
	}
	if doc.Monument != nil {
		p.Monument = &polygon.Monument{
			Label:            doc.Monument.Label,
			Lat:              doc.Monument.Lat,
			Lon:              doc.Monument.Lon,
			BearingFromPrev:  doc.Monument.BearingFromPrev,
			DistanceFromPrev: doc.Monument.DistanceFromPrev,
		}
	}
	for _, v := range doc.Polygon {
		p.Vertices = append(p.Vertices, polygon.Vertex{
			ID:               v.ID,
			Lat:              v.Lat,
			Lon:              v.Lon,
			BearingFromPrev:  v.BearingFromPrev,
			DistanceFromPrev: v.DistanceFromPrev,
		})
	}
	return p, doc.Name, nil
}
