package polygon

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KeyArgo/TerraTracer/internal/lib/bearing"
	"github.com/KeyArgo/TerraTracer/internal/lib/geodesic"
)

// State tracks a build session through its lifecycle.
type State int

const (
	StateGatheringInitial State = iota // no start point yet
	StateGatheringLegs                 // accepting bearing/distance legs
	StateClosureReview                 // deciding whether the ring is done
	StateClosed                        // terminal: ring finalized
	StateAbandoned                     // terminal: user exited without a polygon
)

func (s State) String() string {
	switch s {
	case StateGatheringInitial:
		return "gathering-initial"
	case StateGatheringLegs:
		return "gathering-legs"
	case StateClosureReview:
		return "closure-review"
	case StateClosed:
		return "closed"
	case StateAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrIncompletePolygon reports fewer than three vertices where a closure
	// judgment or export was attempted. Surfaced as a warning, not a hard
	// failure.
	ErrIncompletePolygon = errors.New("polygon has fewer than 3 vertices")

	errWrongState = errors.New("operation not valid in current state")
)

// Closure is the verdict of a closure review.
type Closure int

const (
	ClosureOpen Closure = iota
	ClosureNear
	ClosureExact
)

// Builder is the orchestrating state machine of a survey session. It owns
// the single in-progress Polygon, resolves each leg through the bearing
// parser and the selected projection method, and evaluates closure after
// every appended vertex.
type Builder struct {
	poly   Polygon
	state  State
	method geodesic.Method
	log    *zap.Logger
}

// NewBuilder starts an empty session using the given projection method.
// A nil logger disables session logging.
func NewBuilder(method geodesic.Method, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		poly:   Polygon{Units: "imperial"},
		state:  StateGatheringInitial,
		method: method,
		log:    log,
	}
}

// State returns the session's current lifecycle state.
func (b *Builder) State() State { return b.state }

// Method returns the projection method legs are resolved with.
func (b *Builder) Method() geodesic.Method { return b.method }

// Vertices returns the ring gathered so far, in construction order.
func (b *Builder) Vertices() []Vertex { return b.poly.Vertices }

// Monument returns the reference marker, or nil when none was placed.
func (b *Builder) Monument() *Monument { return b.poly.Monument }

// SetTiePoint records the reference coordinate the survey is offset from.
// Valid only before the first ring vertex exists.
func (b *Builder) SetTiePoint(lat, lon float64) error {
	if b.state != StateGatheringInitial {
		return fmt.Errorf("%w: tie point after %s", errWrongState, b.state)
	}
	b.poly.TiePoint = &TiePoint{Lat: lat, Lon: lon}
	b.poly.ConstructionSequence = append(b.poly.ConstructionSequence, SeqTiePoint)
	b.log.Info("tie point set", zap.Float64("lat", lat), zap.Float64("lon", lon))
	return nil
}

// PlaceMonument derives the monument from the tie point by exactly one leg.
// Monument placement always uses the high-precision geodesic, independent of
// the session method.
func (b *Builder) PlaceMonument(label, bearingSpec string, distanceFt float64) (Monument, error) {
	if b.state != StateGatheringInitial || b.poly.TiePoint == nil {
		return Monument{}, fmt.Errorf("%w: monument requires a tie point and no ring vertices", errWrongState)
	}
	azimuth, err := bearing.Parse(bearingSpec)
	if err != nil {
		return Monument{}, err
	}
	lat, lon := geodesic.Karney(b.poly.TiePoint.Lat, b.poly.TiePoint.Lon, azimuth, distanceFt)
	m := Monument{
		Label:            label,
		Lat:              lat,
		Lon:              lon,
		BearingFromPrev:  azimuth,
		DistanceFromPrev: distanceFt,
	}
	b.poly.Monument = &m
	b.poly.ConstructionSequence = append(b.poly.ConstructionSequence, SeqMonument)
	b.log.Info("monument placed",
		zap.String("label", label),
		zap.Float64("lat", lat), zap.Float64("lon", lon),
		zap.Float64("bearing", azimuth), zap.Float64("distance_ft", distanceFt))
	return m, nil
}

// Start establishes the first ring vertex directly from known coordinates
// and moves the session to leg gathering.
func (b *Builder) Start(lat, lon float64) error {
	if b.state != StateGatheringInitial {
		return fmt.Errorf("%w: start after %s", errWrongState, b.state)
	}
	b.appendVertex(lat, lon, nil, nil)
	b.state = StateGatheringLegs
	b.log.Info("start point set", zap.Float64("lat", lat), zap.Float64("lon", lon))
	return nil
}

// StartFromLeg establishes the first ring vertex by one leg from the
// monument when present, otherwise from the tie point.
func (b *Builder) StartFromLeg(bearingSpec string, distanceFt float64) (Vertex, error) {
	if b.state != StateGatheringInitial {
		return Vertex{}, fmt.Errorf("%w: start after %s", errWrongState, b.state)
	}
	var anchorLat, anchorLon float64
	switch {
	case b.poly.Monument != nil:
		anchorLat, anchorLon = b.poly.Monument.Lat, b.poly.Monument.Lon
	case b.poly.TiePoint != nil:
		anchorLat, anchorLon = b.poly.TiePoint.Lat, b.poly.TiePoint.Lon
	default:
		return Vertex{}, fmt.Errorf("%w: no tie point or monument to start from", errWrongState)
	}

	azimuth, err := bearing.Parse(bearingSpec)
	if err != nil {
		return Vertex{}, err
	}
	lat, lon, err := geodesic.Project(b.method, anchorLat, anchorLon, azimuth, distanceFt)
	if err != nil {
		return Vertex{}, err
	}
	v := b.appendVertex(lat, lon, &azimuth, &distanceFt)
	b.state = StateGatheringLegs
	b.log.Info("start point projected from anchor",
		zap.String("id", v.ID), zap.Float64("lat", lat), zap.Float64("lon", lon))
	return v, nil
}

// AddLeg resolves one bearing/distance instruction into a new vertex. A parse
// or projection failure leaves the session state untouched so the caller can
// re-prompt the same leg.
func (b *Builder) AddLeg(bearingSpec string, distanceFt float64) (Vertex, error) {
	if b.state != StateGatheringLegs {
		return Vertex{}, fmt.Errorf("%w: leg in %s", errWrongState, b.state)
	}
	azimuth, err := bearing.Parse(bearingSpec)
	if err != nil {
		return Vertex{}, err
	}
	prev := b.poly.Vertices[len(b.poly.Vertices)-1]
	lat, lon, err := geodesic.Project(b.method, prev.Lat, prev.Lon, azimuth, distanceFt)
	if err != nil {
		return Vertex{}, err
	}
	v := b.appendVertex(lat, lon, &azimuth, &distanceFt)
	b.log.Info("leg resolved",
		zap.String("id", v.ID),
		zap.Float64("bearing", azimuth), zap.Float64("distance_ft", distanceFt),
		zap.Float64("lat", lat), zap.Float64("lon", lon))
	return v, nil
}

// BeginReview moves the session from leg gathering to closure review and
// returns the verdict for the ring as it stands.
func (b *Builder) BeginReview() (Closure, error) {
	if b.state != StateGatheringLegs {
		return ClosureOpen, fmt.Errorf("%w: review in %s", errWrongState, b.state)
	}
	b.state = StateClosureReview
	return b.Evaluate(), nil
}

// Evaluate returns the current closure verdict without changing state.
func (b *Builder) Evaluate() Closure {
	switch {
	case IsClosed(b.poly.Vertices, b.poly.Monument):
		return ClosureExact
	case IsNearlyClosed(b.poly.Vertices):
		return ClosureNear
	default:
		return ClosureOpen
	}
}

// ContinueGathering returns from closure review to leg gathering so the user
// can add one more leg.
func (b *Builder) ContinueGathering() error {
	if b.state != StateClosureReview {
		return fmt.Errorf("%w: continue in %s", errWrongState, b.state)
	}
	b.state = StateGatheringLegs
	return nil
}

// Close finalizes the ring. Exact or near closure snaps the last vertex onto
// the first; an open ring is only snapped when force is set, in which case
// the caller warns that the result may be geometrically inaccurate. The
// returned polygon is read-only from here on.
func (b *Builder) Close(force bool) (*Polygon, error) {
	if b.state != StateClosureReview {
		return nil, fmt.Errorf("%w: close in %s", errWrongState, b.state)
	}
	if len(b.poly.Vertices) < 3 {
		return nil, ErrIncompletePolygon
	}

	verdict := b.Evaluate()
	if verdict == ClosureOpen && !force {
		return nil, fmt.Errorf("ring is open beyond %g ft tolerance", NearClosureFt)
	}
	SnapClosed(&b.poly)
	b.state = StateClosed
	b.log.Info("polygon closed",
		zap.Int("vertices", len(b.poly.Vertices)),
		zap.Bool("forced", verdict == ClosureOpen))
	return &b.poly, nil
}

// Abandon ends the session without a polygon. Data gathered so far stays in
// memory until the session is discarded.
func (b *Builder) Abandon() {
	b.state = StateAbandoned
	b.log.Info("session abandoned", zap.Int("vertices", len(b.poly.Vertices)))
}

func (b *Builder) appendVertex(lat, lon float64, az, dist *float64) Vertex {
	v := Vertex{
		ID:               vertexID(len(b.poly.Vertices) + 1),
		Lat:              lat,
		Lon:              lon,
		BearingFromPrev:  az,
		DistanceFromPrev: dist,
	}
	b.poly.Vertices = append(b.poly.Vertices, v)
	b.poly.ConstructionSequence = append(b.poly.ConstructionSequence, v.ID)
	return v
}
