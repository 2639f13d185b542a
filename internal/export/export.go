// Package export writes a finished survey polygon to flat files: KML for
// visualization, JSON or a sectioned data file for structured re-use, and
// GeoJSON for GIS tooling. Writes are one-shot whole-buffer writes with no
// partial-write recovery; a failed write leaves the in-memory polygon intact
// so the caller can retry with a different path.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KeyArgo/TerraTracer/internal/lib/polygon"
)

var (
	// ErrFileExists refuses to silently overwrite an existing target. The
	// caller prompts for a new name.
	ErrFileExists = errors.New("file already exists")

	// ErrIncompletePolygon flags an export attempted with fewer than three
	// vertices. Callers may still export the degenerate shape once the user
	// has been told the polygon is not closed.
	ErrIncompletePolygon = errors.New("polygon has fewer than 3 vertices")
)

// NormalizeFilename trims the name and appends ext (e.g. ".kml") when the
// canonical extension is missing.
func NormalizeFilename(name, ext string) string {
	name = strings.TrimSpace(name)
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}

// CheckVertexCount returns ErrIncompletePolygon for rings below three
// vertices. The export sinks do not call it themselves: the decision to
// export a degenerate shape belongs to the user.
func CheckVertexCount(p *polygon.Polygon) error {
	if len(p.Vertices) < 3 {
		return fmt.Errorf("%w: have %d", ErrIncompletePolygon, len(p.Vertices))
	}
	return nil
}

// writeNewFile creates the parent directory as needed and writes content in
// one shot, refusing to replace an existing file.
func writeNewFile(path string, content []byte) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ringCoordinates returns the boundary path with the first coordinate
// repeated at the end. A snapped ring already carries the repeat; an open
// ring gets it appended so the file is closed even when the survey was not.
func ringCoordinates(p *polygon.Polygon) [][2]float64 {
	coords := make([][2]float64, 0, len(p.Vertices)+1)
	for _, v := range p.Vertices {
		coords = append(coords, [2]float64{v.Lat, v.Lon})
	}
	if len(coords) > 0 && coords[0] != coords[len(coords)-1] {
		coords = append(coords, coords[0])
	}
	return coords
}
