// Package display prints session status to the operator. Coordinates are
// fixed at six decimal places, bearings and distances at two, matching the
// exported data formats.
package display

import (
	"fmt"
	"io"

	"github.com/KeyArgo/TerraTracer/internal/lib/polygon"
)

// Presenter formats user-facing output. It is the only component that talks
// to the terminal; the session logger never does.
type Presenter struct {
	out io.Writer
}

// NewPresenter writes to out, normally os.Stdout.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// StartingPoint announces the first ring vertex.
func (p *Presenter) StartingPoint(lat, lon float64) {
	fmt.Fprintf(p.out, "Starting Point: Latitude: %.6f, Longitude: %.6f\n\n", lat, lon)
}

// ComputedPoint announces a newly resolved vertex by its ring position.
func (p *Presenter) ComputedPoint(n int, lat, lon float64) {
	fmt.Fprintf(p.out, "Computed Point %d: Latitude: %.6f, Longitude: %.6f\n\n", n, lat, lon)
}

// MonumentPoint announces the placed reference marker.
func (p *Presenter) MonumentPoint(label string, lat, lon float64) {
	fmt.Fprintf(p.out, "Monument %q: Latitude: %.6f, Longitude: %.6f\n\n", label, lat, lon)
}

// ClosureStatus reports the verdict of a closure review.
func (p *Presenter) ClosureStatus(c polygon.Closure) {
	switch c {
	case polygon.ClosureExact:
		fmt.Fprintln(p.out, "Your polygon is completed.")
	case polygon.ClosureNear:
		fmt.Fprintln(p.out, "Warning: Your polygon is not closed.")
		fmt.Fprintln(p.out, "Your polygon is close enough to being closed.")
	default:
		fmt.Fprintln(p.out, "Warning: Your polygon is not closed.")
	}
}

// Summary reports perimeter and enclosed area for the finished ring.
func (p *Presenter) Summary(s polygon.Summary) {
	fmt.Fprintf(p.out, "Perimeter: %.2f ft\n", s.PerimeterFt)
	if s.AreaAcres > 0 {
		fmt.Fprintf(p.out, "Enclosed area: %.3f acres\n", s.AreaAcres)
	}
	fmt.Fprintln(p.out)
}

// Info prints a plain status line.
func (p *Presenter) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warn prints a warning the operator should read before continuing.
func (p *Presenter) Warn(format string, args ...any) {
	fmt.Fprintf(p.out, "Warning: "+format+"\n", args...)
}

// Error reports a recoverable problem in plain language. Stack traces never
// reach the user.
func (p *Presenter) Error(err error) {
	fmt.Fprintf(p.out, "Error: %v. Please try again.\n", err)
}
