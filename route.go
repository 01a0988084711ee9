package autobus

// Endpoint supplies a point's live coordinates. Start and goal points
// are read on every routing pass, so a route follows its endpoints as
// they move. PointEndpoint adapts a fixed Point; EndpointFunc adapts a
// pair of closures.
type Endpoint interface {
	X() float64
	Y() float64
}

// PointEndpoint is a fixed Endpoint backed by a Point value.
type PointEndpoint struct {
	Point Point
}

// NewPointEndpoint returns an Endpoint fixed at p.
func NewPointEndpoint(p Point) PointEndpoint {
	return PointEndpoint{Point: p}
}

// X returns the fixed X coordinate.
func (e PointEndpoint) X() float64 { return e.Point.X }

// Y returns the fixed Y coordinate.
func (e PointEndpoint) Y() float64 { return e.Point.Y }

// EndpointFunc adapts a pair of accessor closures to Endpoint.
type EndpointFunc struct {
	XFunc func() float64
	YFunc func() float64
}

// X returns f.XFunc().
func (f EndpointFunc) X() float64 { return f.XFunc() }

// Y returns f.YFunc().
func (f EndpointFunc) Y() float64 { return f.YFunc() }

func endpointPoint(e Endpoint) Point {
	return Point{X: e.X(), Y: e.Y()}
}

// OnChangeFunc is called once per routing pass with the route whose
// path changed (including its GroupID) and the fresh polyline. It
// must not mutate router state.
type OnChangeFunc func(route *Route, path []Point)

// Route is a single wire: a live start point, a live goal point, and
// a callback invoked with its computed path.
type Route struct {
	Start    Endpoint
	Goal     Endpoint
	OnChange OnChangeFunc

	// GroupID is assigned by the router on the first routing pass
	// where it is absent (groupAssigned is false); it then persists
	// for the route's lifetime (spec §9).
	GroupID       int
	groupAssigned bool
}
