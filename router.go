package autobus

import (
	"fmt"
	"io"
	"sort"

	"github.com/aumouvantsillage/autobus/internal/grid"
)

// Router accumulates obstacles and routes and computes every route's
// path with a single call to Route. It is a plain value; multiple
// Routers are fully independent (spec §9, no global state).
type Router struct {
	options Options

	limits      Rectangle
	initialized bool

	obstacles    []Rectangle
	obstacleCost float64

	routes []*Route

	grid     *grid.Grid
	allocate bool
}

// NewRouter returns a Router configured with opts, or an error if
// opts fails validation (spec §7, misconfiguration rejected at
// construction).
func NewRouter(opts Options) (*Router, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Router{options: opts}, nil
}

// AddObstacle registers rect as an obstacle, extends the exploration
// limits to keep clear of it, and recomputes obstacleCost (spec
// §4.4).
func (r *Router) AddObstacle(rect Rectangle) {
	r.obstacles = append(r.obstacles, rect)
	r.ExtendLimits(rect)
	r.updateObstacleCost()
}

// AddRoute registers a new route between start and goal. onChange is
// invoked once per Route call with the computed path.
func (r *Router) AddRoute(start, goal Endpoint, onChange OnChangeFunc) *Route {
	route := &Route{Start: start, Goal: goal, OnChange: onChange}
	r.routes = append(r.routes, route)
	r.ExtendLimits(rectAroundPoint(endpointPoint(start)))
	r.ExtendLimits(rectAroundPoint(endpointPoint(goal)))
	return route
}

// ExtendLimits enlarges the exploration rectangle to cover rect, per
// spec §4.4: an edge that rect comes within options.Margin of is moved
// to options.GridStep beyond rect on the left edge and to
// options.Margin beyond it on the other three. The first call
// initializes the limits outright, with the same headroom; later calls
// are a no-op unless
// rect actually comes within margin of an edge (spec §8 property 6,
// idempotence).
func (r *Router) ExtendLimits(rect Rectangle) {
	margin := r.options.Margin
	step := r.options.GridStep

	if !r.initialized {
		r.limits = Rectangle{
			Left:   rect.Left - step,
			Top:    rect.Top - margin,
			Right:  rect.Right + margin,
			Bottom: rect.Bottom + margin,
		}
		r.initialized = true
		r.allocate = true
		return
	}

	grew := false
	if rect.Left-margin < r.limits.Left {
		r.limits.Left = rect.Left - step
		grew = true
	}
	if rect.Top-margin < r.limits.Top {
		r.limits.Top = rect.Top - margin
		grew = true
	}
	if rect.Right+margin > r.limits.Right {
		r.limits.Right = rect.Right + margin
		grew = true
	}
	if rect.Bottom+margin > r.limits.Bottom {
		r.limits.Bottom = rect.Bottom + margin
		grew = true
	}

	if grew {
		r.allocate = true
	}
}

// updateObstacleCost recomputes the cost of traversing an obstacle
// cell, large enough that it always exceeds the cost of any
// obstacle-free detour within the current limits (spec §4.4).
func (r *Router) updateObstacleCost() {
	w, h := r.limits.Width(), r.limits.Height()
	r.obstacleCost = w*h/r.options.GridStep + w + h
}

// Route performs a full reroute pass: rebuild the grid (reallocating
// its backing array when needed), assign group ids, sort routes by endpoint distance, then run A*
// for each route in turn and deliver its path to OnChange (spec §2,
// §4.8).
func (r *Router) Route() {
	if !r.initialized {
		return
	}

	if r.grid == nil {
		r.grid = &grid.Grid{}
	}

	gridObstacles := make([]grid.Rect, len(r.obstacles))
	for i, o := range r.obstacles {
		gridObstacles[i] = toGridRect(o)
	}
	r.grid.Rebuild(toGridRect(r.limits), r.options.GridStep, gridObstacles, r.allocate)
	r.allocate = false

	assignGroups(r.routes)

	ordered := append([]*Route(nil), r.routes...)
	dist := r.options.distanceFunc()
	sort.SliceStable(ordered, func(i, j int) bool {
		di := dist(endpointPoint(ordered[i].Start), endpointPoint(ordered[i].Goal))
		dj := dist(endpointPoint(ordered[j].Start), endpointPoint(ordered[j].Goal))
		return di < dj
	})

	for _, route := range ordered {
		path := r.findPath(route)
		path = postprocess(path, route)
		if route.OnChange != nil {
			route.OnChange(route, path)
		}
	}
}

// DumpPath writes path to w in a human-readable form, one arrow per
// segment. It is a debugging aid only, not part of the routing
// contract.
func DumpPath(w io.Writer, path []Point) {
	if len(path) == 0 {
		fmt.Fprintln(w, "empty")
		return
	}
	for i, p := range path {
		if i == 0 {
			fmt.Fprintf(w, "[%d] (%g,%g)", i, p.X, p.Y)
		} else {
			fmt.Fprintf(w, " -> [%d] (%g,%g)", i, p.X, p.Y)
		}
	}
	fmt.Fprintln(w)
}

func toGridRect(rect Rectangle) grid.Rect {
	return grid.Rect{Left: rect.Left, Top: rect.Top, Right: rect.Right, Bottom: rect.Bottom}
}
