package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/KeyArgo/TerraTracer/internal/config"
	"github.com/KeyArgo/TerraTracer/internal/display"
	"github.com/KeyArgo/TerraTracer/internal/export"
	"github.com/KeyArgo/TerraTracer/internal/input"
	"github.com/KeyArgo/TerraTracer/internal/lib/polygon"
	"github.com/KeyArgo/TerraTracer/internal/session"
)

func testSession(t *testing.T) (*session.Session, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Saves: config.SavesConfig{
			KMLDir:     filepath.Join(dir, "kml"),
			JSONDir:    filepath.Join(dir, "json"),
			GeoJSONDir: filepath.Join(dir, "geojson"),
		},
		Logs:     config.LogsConfig{Dir: filepath.Join(dir, "logs")},
		KML:      config.KMLConfig{FillColor: export.DefaultFillColor},
		Defaults: config.DefaultsConfig{ProjectionMethod: 1},
	}
	return &session.Session{Config: cfg, Log: zap.NewNop()}, dir
}

func TestRunCreatePolygon_SquareExportedToAllFormats(t *testing.T) {
	sess, dir := testSession(t)
	var out bytes.Buffer
	pres := display.NewPresenter(&out)

	in := input.NewScript(
		"2",           // start from known coordinates
		"Test Claim",  // polygon name
		"1",           // Karney
		"1",           // decimal degrees
		"yes",         // same format for every point
		"45",          // latitude
		"-100",        // longitude
		"4",           // number of legs
		"N 0", "100",  // due north
		"E 0", "100",  // due east
		"S 0", "100",  // due south
		"W 0", "100",  // due west, back to the start
		"yes",         // export?
		"A",           // all formats
		"J",           // data file as JSON
		"",            // accept the default filename
	)

	runCreatePolygon(sess, in, pres)

	text := out.String()
	assert.Contains(t, text, "Your polygon is completed.")
	assert.Contains(t, text, "Perimeter: 400.00 ft")
	assert.Contains(t, text, "Enclosed area: 0.2", "a 100 ft square is roughly 0.23 acres")

	for _, path := range []string{
		filepath.Join(dir, "kml", "Test_Claim.kml"),
		filepath.Join(dir, "json", "Test_Claim.json"),
		filepath.Join(dir, "geojson", "Test_Claim.geojson"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "expected export at %s", path)
	}
}

func TestRunCreatePolygon_BadBearingReprompts(t *testing.T) {
	sess, _ := testSession(t)
	var out bytes.Buffer
	pres := display.NewPresenter(&out)

	in := input.NewScript(
		"2", "Claim", "1", "1", "yes",
		"45", "-100",
		"3",
		"NE 45", "100", // rejected, leg retried
		"N 0", "100",
		"E 0", "100",
		"S 45", "250", // overshoots well past the start
		"no", // decline another leg, force close the open ring
		"no", // decline export
	)

	runCreatePolygon(sess, in, pres)

	text := out.String()
	assert.Contains(t, text, "Error: invalid bearing format")
	assert.Contains(t, text, "Computed Point 4")
	assert.Contains(t, text, "Warning: Your polygon is not closed.")
	assert.Contains(t, text, "closing the polygon anyway")
}

func TestRunCreatePolygon_ExitMidSession(t *testing.T) {
	sess, _ := testSession(t)
	var out bytes.Buffer
	pres := display.NewPresenter(&out)

	in := input.NewScript("2", "Claim", "1", "1", "yes", "45", "exit")
	runCreatePolygon(sess, in, pres)

	assert.Contains(t, out.String(), "Exiting to main menu.")
}

func TestRunConvertJSONToKML(t *testing.T) {
	sess, dir := testSession(t)
	var out bytes.Buffer
	pres := display.NewPresenter(&out)

	// Build a saved JSON document the way a prior session would have.
	jsonPath := filepath.Join(dir, "saved.json")
	p := buildTestSquare(t, sess)
	require.NoError(t, export.WriteJSON(jsonPath, p, "Saved Claim"))

	in := input.NewScript(jsonPath, "")
	runConvertJSONToKML(sess, in, pres)

	kmlPath := filepath.Join(dir, "kml", "Saved_Claim.kml")
	content, err := os.ReadFile(kmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<name>Saved Claim</name>")
}

func TestRunConvertJSONToKML_MissingFile(t *testing.T) {
	sess, dir := testSession(t)
	var out bytes.Buffer
	pres := display.NewPresenter(&out)

	in := input.NewScript(filepath.Join(dir, "nope.json"))
	runConvertJSONToKML(sess, in, pres)

	assert.Contains(t, out.String(), "Error:")
}

func buildTestSquare(t *testing.T, sess *session.Session) *polygon.Polygon {
	t.Helper()
	var out bytes.Buffer
	pres := display.NewPresenter(&out)
	in := input.NewScript(
		"2", "ignored", "1", "1", "yes",
		"45", "-100",
		"4",
		"N 0", "100",
		"E 0", "100",
		"S 0", "100",
		"W 0", "100",
	)
	p, _ := gatherPolygon(sess, in, pres)
	require.NotNil(t, p)
	return p
}
