package export

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	kml "github.com/twpayne/go-kml/v2"

	"github.com/KeyArgo/TerraTracer/internal/lib/polygon"
)

// KMLOptions controls the generated document. FillColor is the polygon's
// semi-transparent interior; the 2px black outline is fixed.
type KMLOptions struct {
	Name      string
	FillColor color.RGBA
}

// DefaultFillColor is a one-third-opaque green, the historical default.
const DefaultFillColor = "3300FF00"

// ParseKMLColor reads KML's aabbggrr-order hex (alpha, blue, green, red —
// not the conventional rrggbb). A leading '#' is tolerated.
func ParseKMLColor(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("kml color must be 8 hex digits (aabbggrr), got %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("kml color %q: %w", hex, err)
	}
	return color.RGBA{
		A: uint8(v >> 24),
		B: uint8(v >> 16),
		G: uint8(v >> 8),
		R: uint8(v),
	}, nil
}

// WriteKML writes the polygon as a single KML document: at most one point
// placemark for the monument and exactly one polygon placemark whose outer
// ring repeats the first coordinate at the end.
func WriteKML(path string, p *polygon.Polygon, opts KMLOptions) error {
	content, err := RenderKML(p, opts)
	if err != nil {
		return err
	}
	return writeNewFile(path, content)
}

// RenderKML produces the KML document bytes without touching the filesystem.
func RenderKML(p *polygon.Polygon, opts KMLOptions) ([]byte, error) {
	children := []kml.Element{
		kml.Name(opts.Name),
		kml.Description("Polygon from the computed GPS points with reference point"),
	}

	if m := p.Monument; m != nil {
		label := m.Label
		if label == "" {
			label = "Monument"
		}
		children = append(children, kml.Placemark(
			kml.Name(label),
			kml.Description("Initial Reference Point"),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: m.Lon, Lat: m.Lat})),
		))
	}

	ring := ringCoordinates(p)
	coords := make([]kml.Coordinate, len(ring))
	for i, c := range ring {
		coords[i] = kml.Coordinate{Lon: c[1], Lat: c[0]}
	}

	children = append(children, kml.Placemark(
		kml.Name(opts.Name),
		kml.Style(
			kml.LineStyle(
				kml.Color(color.RGBA{A: 0xff}),
				kml.Width(2),
			),
			kml.PolyStyle(
				kml.Color(opts.FillColor),
			),
		),
		kml.Polygon(
			kml.OuterBoundaryIs(
				kml.LinearRing(kml.Coordinates(coords...)),
			),
		),
	))

	var buf bytes.Buffer
	if err := kml.KML(kml.Document(children...)).WriteIndent(&buf, "", "  "); err != nil {
		return nil, fmt.Errorf("rendering kml: %w", err)
	}
	return buf.Bytes(), nil
}
