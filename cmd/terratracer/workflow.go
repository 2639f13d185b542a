package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/KeyArgo/TerraTracer/internal/display"
	"github.com/KeyArgo/TerraTracer/internal/export"
	"github.com/KeyArgo/TerraTracer/internal/input"
	"github.com/KeyArgo/TerraTracer/internal/lib/coords"
	"github.com/KeyArgo/TerraTracer/internal/lib/geodesic"
	"github.com/KeyArgo/TerraTracer/internal/lib/polygon"
	"github.com/KeyArgo/TerraTracer/internal/session"
)

const defaultPolygonName = "GPS Polygon and Reference Point"

var yesNo = []string{"yes", "no"}

// runCreatePolygon drives one full build session: gather the ring, review
// closure, show the summary, then offer export.
func runCreatePolygon(sess *session.Session, in input.Provider, pres *display.Presenter) {
	poly, name := gatherPolygon(sess, in, pres)
	if poly == nil {
		pres.Info("Exiting to main menu.")
		return
	}

	summary := polygon.Summarize(poly)
	pres.Summary(summary)
	sess.Log.Info("survey summary",
		zap.Float64("perimeter_ft", summary.PerimeterFt),
		zap.Float64("area_acres", summary.AreaAcres))

	runExport(sess, in, pres, poly, name)
}

// gatherPolygon walks the session state machine from start point to closed
// ring. It returns nil when the user abandons the session.
func gatherPolygon(sess *session.Session, in input.Provider, pres *display.Presenter) (*polygon.Polygon, string) {
	fmt.Println()
	fmt.Println("------------------ Create Custom Geometric Polygon ------------------")
	fmt.Println("Plot a polygon from sequential bearings and distances (metes and")
	fmt.Println("bounds). Begin with a Tie Point or specify the starting coordinates.")
	fmt.Println()
	fmt.Println("1) Use a Tie Point")
	fmt.Println("2) Specify the first point of the polygon")
	fmt.Println("3) Exit to Main Menu")

	mainChoice, ok := in.ReadChoice("Enter your choice (1/2/3): ", []string{"1", "2", "3"})
	if !ok || mainChoice == "3" {
		return nil, ""
	}

	name, ok := in.ReadText(fmt.Sprintf("Enter a name for the polygon [%s]: ", defaultPolygonName))
	if !ok {
		return nil, ""
	}
	if name == "" {
		name = defaultPolygonName
	}

	method, ok := readMethod(in, geodesic.Method(sess.Config.Defaults.ProjectionMethod))
	if !ok {
		return nil, ""
	}

	builder := polygon.NewBuilder(method, sess.Log)

	format, ok := readCoordinateFormat(in)
	if !ok {
		return nil, ""
	}
	useSameFormat, ok := in.ReadChoice("Do you want to use this format for all computed points? (yes/no): ", yesNo)
	if !ok {
		return nil, ""
	}

	switch mainChoice {
	case "1":
		if !startFromTiePoint(in, pres, builder, format) {
			builder.Abandon()
			return nil, ""
		}
	case "2":
		if !startFromCoordinates(in, pres, builder, format) {
			builder.Abandon()
			return nil, ""
		}
	}

	numLegs, ok := readLegCount(in)
	if !ok {
		builder.Abandon()
		return nil, ""
	}

	for added := 0; added < numLegs; {
		if useSameFormat == "no" {
			format, ok = readCoordinateFormat(in)
			if !ok {
				builder.Abandon()
				return nil, ""
			}
		}
		if !addOneLeg(in, pres, builder, format) {
			builder.Abandon()
			return nil, ""
		}
		added++
	}

	verdict, err := builder.BeginReview()
	if err != nil {
		pres.Error(err)
		builder.Abandon()
		return nil, ""
	}

	for verdict != polygon.ClosureExact {
		pres.ClosureStatus(verdict)
		answer, ok := in.ReadChoice("Would you like to enter another point before closing the polygon? (yes/no): ", yesNo)
		if !ok {
			builder.Abandon()
			return nil, ""
		}
		if answer == "no" {
			break
		}
		if err := builder.ContinueGathering(); err != nil {
			pres.Error(err)
			builder.Abandon()
			return nil, ""
		}
		if useSameFormat == "no" {
			format, ok = readCoordinateFormat(in)
			if !ok {
				builder.Abandon()
				return nil, ""
			}
		}
		if !addOneLeg(in, pres, builder, format) {
			builder.Abandon()
			return nil, ""
		}
		verdict, err = builder.BeginReview()
		if err != nil {
			pres.Error(err)
			builder.Abandon()
			return nil, ""
		}
	}

	force := verdict == polygon.ClosureOpen
	if force {
		pres.Warn("closing the polygon anyway; the result may be geometrically inaccurate")
	}
	poly, err := builder.Close(force)
	if err != nil {
		pres.Error(err)
		builder.Abandon()
		return nil, ""
	}
	pres.ClosureStatus(polygon.ClosureExact)
	return poly, name
}

// startFromTiePoint gathers the tie point, optionally a monument one leg
// away, then the first ring vertex.
func startFromTiePoint(in input.Provider, pres *display.Presenter, builder *polygon.Builder, format string) bool {
	pres.Info("\n--------------- Tie Point Entry ---------------")
	lat, ok := readCoordinate(in, pres, format, coords.RoleLatitude)
	if !ok {
		return false
	}
	lon, ok := readCoordinate(in, pres, format, coords.RoleLongitude)
	if !ok {
		return false
	}
	if err := builder.SetTiePoint(lat, lon); err != nil {
		pres.Error(err)
		return false
	}
	pres.StartingPoint(lat, lon)

	fmt.Println("1) Use initial point as Monument/Placemark")
	fmt.Println("2) Find and place the first point of the polygon")
	fmt.Println("3) Exit to Main Menu")
	choice, ok := in.ReadChoice("Enter your choice (1/2/3): ", []string{"1", "2", "3"})
	if !ok || choice == "3" {
		return false
	}

	if choice == "1" {
		for {
			spec, dist, ok := readLeg(in, format)
			if !ok {
				return false
			}
			label, ok := in.ReadText("Enter a label for the monument (e.g., Monument, Point A, etc.): ")
			if !ok {
				return false
			}
			if label == "" {
				label = "Monument"
			}
			m, err := builder.PlaceMonument(label, spec, dist)
			if err != nil {
				pres.Error(err)
				continue
			}
			pres.MonumentPoint(m.Label, m.Lat, m.Lon)
			break
		}
	}

	for {
		spec, dist, ok := readLeg(in, format)
		if !ok {
			return false
		}
		v, err := builder.StartFromLeg(spec, dist)
		if err != nil {
			pres.Error(err)
			continue
		}
		pres.StartingPoint(v.Lat, v.Lon)
		return true
	}
}

// startFromCoordinates establishes the first ring vertex directly.
func startFromCoordinates(in input.Provider, pres *display.Presenter, builder *polygon.Builder, format string) bool {
	pres.Info("\n--------------- Initial Polygon Point Entry ---------------")
	lat, ok := readCoordinate(in, pres, format, coords.RoleLatitude)
	if !ok {
		return false
	}
	lon, ok := readCoordinate(in, pres, format, coords.RoleLongitude)
	if !ok {
		return false
	}
	if err := builder.Start(lat, lon); err != nil {
		pres.Error(err)
		return false
	}
	pres.StartingPoint(lat, lon)
	return true
}

// addOneLeg reads bearing and distance and appends a vertex, re-prompting
// the same leg on any parse or projection failure.
func addOneLeg(in input.Provider, pres *display.Presenter, builder *polygon.Builder, format string) bool {
	for {
		spec, dist, ok := readLeg(in, format)
		if !ok {
			return false
		}
		v, err := builder.AddLeg(spec, dist)
		if err != nil {
			pres.Error(err)
			continue
		}
		pres.ComputedPoint(len(builder.Vertices()), v.Lat, v.Lon)
		return true
	}
}

// readCoordinateFormat asks whether angles are entered as decimal degrees or
// degrees-minutes-seconds.
func readCoordinateFormat(in input.Provider) (string, bool) {
	fmt.Println()
	fmt.Println("1. Decimal Degrees (DD)")
	fmt.Println("2. Degrees, Minutes, Seconds (DMS)")
	return in.ReadChoice("Enter your choice (1/2): ", []string{"1", "2"})
}

// readCoordinate prompts for one coordinate in the chosen format until it
// parses and passes range validation.
func readCoordinate(in input.Provider, pres *display.Presenter, format string, role coords.Role) (float64, bool) {
	example := "68.0106"
	if role == coords.RoleLongitude {
		example = "-110.0106"
	}
	if format == "2" {
		example = `68° 00' 38"N`
		if role == coords.RoleLongitude {
			example = `110° 00' 38"W`
		}
	}
	prompt := fmt.Sprintf("Enter %s (example: %s) or type 'exit': ", role, example)

	for {
		raw, ok := in.ReadText(prompt)
		if !ok {
			return 0, false
		}
		var value float64
		var err error
		if format == "1" {
			value, err = coords.ParseDecimal(raw, role)
		} else {
			value, err = coords.ParseDMS(raw, role)
		}
		if err != nil {
			pres.Error(err)
			continue
		}
		return value, true
	}
}

// readLeg reads one bearing spec and one distance in feet. Bearing syntax
// errors surface later, at the builder call, so the same leg can be
// re-prompted as a unit.
func readLeg(in input.Provider, format string) (string, float64, bool) {
	prompt := "Enter bearing (cardinal letter + decimal azimuth offset, e.g. N 68.0106): "
	if format == "2" {
		prompt = `Enter bearing in DMS (e.g. N 68° 00' 38" E, or n 68 0 38): `
	}
	spec, ok := in.ReadText(prompt)
	if !ok {
		return "", 0, false
	}
	dist, ok := in.ReadNumber("Enter distance in feet: ")
	if !ok {
		return "", 0, false
	}
	return spec, dist, true
}

// readLegCount asks how many legs to gather. A closed four-sided figure
// needs four legs: three sides plus the return to origin.
func readLegCount(in input.Provider) (int, bool) {
	for {
		n, ok := in.ReadNumber("Enter the number of points to compute for the polygon (at least 3): ")
		if !ok {
			return 0, false
		}
		if n != float64(int(n)) || int(n) < 3 {
			fmt.Println("A polygon must have at least 3 points. Please enter a valid number.")
			continue
		}
		return int(n), true
	}
}

// readMethod selects the projection strategy, defaulting to the configured
// method when the user just presses enter.
func readMethod(in input.Provider, fallback geodesic.Method) (geodesic.Method, bool) {
	fmt.Println()
	fmt.Println("Choose a method:")
	fmt.Println("1) Karney's Method")
	fmt.Println("2) Vincenty's Method")
	fmt.Println("3) Spherical Model")
	fmt.Println("4) Average all models/methods")

	for {
		choice, ok := in.ReadText(fmt.Sprintf("Enter choice (1/2/3/4) [%d]: ", int(fallback)))
		if !ok {
			return 0, false
		}
		switch choice {
		case "":
			return fallback, true
		case "1":
			return geodesic.MethodKarney, true
		case "2":
			return geodesic.MethodVincenty, true
		case "3":
			return geodesic.MethodSpherical, true
		case "4":
			return geodesic.MethodAverage, true
		default:
			fmt.Println("Invalid choice. Please select 1, 2, 3, or 4.")
		}
	}
}

// runExport offers the finished polygon to the chosen sinks. A failed write
// keeps the in-memory polygon so the user can retry with another name.
func runExport(sess *session.Session, in input.Provider, pres *display.Presenter, poly *polygon.Polygon, name string) {
	answer, ok := in.ReadChoice("\nDo you want to export the polygon to a KML file or Data File? (yes/no): ", yesNo)
	if !ok || answer == "no" {
		pres.Info("Export cancelled by the user.")
		return
	}

	if err := export.CheckVertexCount(poly); err != nil {
		pres.Warn("your polygon is not closed: %v", err)
		insist, ok := in.ReadChoice("Export the open shape anyway? (yes/no): ", yesNo)
		if !ok || insist == "no" {
			return
		}
	}

	fileType, ok := in.ReadChoice("Would you like to save as (K)ML, (D)ata File, (G)eoJSON, or (A)ll? ", []string{"K", "D", "G", "A"})
	if !ok {
		return
	}

	dataAsText := false
	if fileType == "D" || fileType == "A" {
		choice, ok := in.ReadChoice("Data file format: (J)SON or (T)ext sections? ", []string{"J", "T"})
		if !ok {
			return
		}
		dataAsText = choice == "T"
	}

	fill, err := export.ParseKMLColor(sess.Config.KML.FillColor)
	if err != nil {
		pres.Warn("invalid kml.fill_color %q, using default", sess.Config.KML.FillColor)
		fill, _ = export.ParseKMLColor(export.DefaultFillColor)
	}

	cfg := sess.Config
	defaultName := strings.ReplaceAll(name, " ", "_")
	for {
		filename, ok := in.ReadText(fmt.Sprintf("Enter the filename for the file (without extension) [%s]: ", defaultName))
		if !ok {
			return
		}
		if filename == "" {
			filename = defaultName
		}

		type target struct {
			label string
			write func() error
		}
		var targets []target
		if fileType == "K" || fileType == "A" {
			path := filepath.Join(cfg.Saves.KMLDir, export.NormalizeFilename(filename, ".kml"))
			targets = append(targets, target{path, func() error {
				return export.WriteKML(path, poly, export.KMLOptions{Name: name, FillColor: fill})
			}})
		}
		if fileType == "D" || fileType == "A" {
			if dataAsText {
				path := filepath.Join(cfg.Saves.JSONDir, export.NormalizeFilename(filename, ".txt"))
				targets = append(targets, target{path, func() error {
					return export.WriteDataFile(path, poly, name)
				}})
			} else {
				path := filepath.Join(cfg.Saves.JSONDir, export.NormalizeFilename(filename, ".json"))
				targets = append(targets, target{path, func() error {
					return export.WriteJSON(path, poly, name)
				}})
			}
		}
		if fileType == "G" || fileType == "A" {
			path := filepath.Join(cfg.Saves.GeoJSONDir, export.NormalizeFilename(filename, ".geojson"))
			targets = append(targets, target{path, func() error {
				return export.WriteGeoJSON(path, poly, name)
			}})
		}

		retry := false
		for _, t := range targets {
			if err := t.write(); err != nil {
				if errors.Is(err, export.ErrFileExists) {
					pres.Info("A file with that name already exists. Please choose a different filename.")
					retry = true
					break
				}
				pres.Error(err)
				sess.Log.Error("export failed", zap.String("path", t.label), zap.Error(err))
				retry = true
				break
			}
			pres.Info("File saved at %s", t.label)
			sess.Log.Info("export written", zap.String("path", t.label))
		}
		if !retry {
			return
		}
	}
}

// runConvertJSONToKML re-exports a previously saved JSON document as KML.
func runConvertJSONToKML(sess *session.Session, in input.Provider, pres *display.Presenter) {
	path, ok := in.ReadText("Please enter the path to the JSON file you want to convert: ")
	if !ok || path == "" {
		return
	}
	poly, name, err := export.ReadJSON(path)
	if err != nil {
		pres.Error(err)
		return
	}
	if name == "" {
		name = defaultPolygonName
	}
	if err := export.CheckVertexCount(poly); err != nil {
		pres.Warn("your polygon is not closed: %v", err)
	}
	runExportKMLOnly(sess, in, pres, poly, name)
}

func runExportKMLOnly(sess *session.Session, in input.Provider, pres *display.Presenter, poly *polygon.Polygon, name string) {
	fill, err := export.ParseKMLColor(sess.Config.KML.FillColor)
	if err != nil {
		fill, _ = export.ParseKMLColor(export.DefaultFillColor)
	}
	defaultName := strings.ReplaceAll(name, " ", "_")
	for {
		filename, ok := in.ReadText(fmt.Sprintf("Enter the filename for the KML file [%s]: ", defaultName))
		if !ok {
			return
		}
		if filename == "" {
			filename = defaultName
		}
		path := filepath.Join(sess.Config.Saves.KMLDir, export.NormalizeFilename(filename, ".kml"))
		err := export.WriteKML(path, poly, export.KMLOptions{Name: name, FillColor: fill})
		if err == nil {
			pres.Info("KML file saved at %s", path)
			sess.Log.Info("export written", zap.String("path", path))
			return
		}
		if errors.Is(err, export.ErrFileExists) {
			pres.Info("A file with that name already exists. Please choose a different filename.")
			continue
		}
		pres.Error(err)
		sess.Log.Error("export failed", zap.String("path", path), zap.Error(err))
		return
	}
}
