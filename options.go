package autobus

import "errors"

// Options configures a Router. Construct one with NewOptions, which
// fills in the formula-based defaults from spec §6; a bare struct
// literal leaves every numeric field at its zero value, which is not
// equivalent to "use the default."
type Options struct {
	// GridStep is the lattice spacing of the search grid. Must be > 0.
	GridStep float64
	// Diagonal permits 45-degree moves.
	Diagonal bool
	// Bus rewards routes for sharing cells with same-group routes
	// instead of treating every overlap as a crossing.
	Bus bool
	// Distance is the admissible heuristic, also used to sort routes
	// before routing. Defaults to ManhattanDistance, or
	// DiagonalDistance if Diagonal is set.
	Distance DistanceFunc

	// Margin is the buffer kept between geometry and the exploration
	// edge.
	Margin float64
	// TurnCost penalizes introducing a corner.
	TurnCost float64
	// BusGain rewards extending along a same-group trail when Bus is
	// enabled.
	BusGain float64
	// CrossCost penalizes, per foreign group, crossing a node another
	// group has already routed through.
	CrossCost float64
	// ProximityCost penalizes, per foreign-group or obstacle
	// neighbour, running adjacent to another group's trail or an
	// obstacle surface.
	ProximityCost float64
}

// NewOptions returns the default Options for the given grid spacing,
// following the table in spec §6.
func NewOptions(gridStep float64) Options {
	return Options{
		GridStep: gridStep,
		Diagonal: false,
		Bus:      false,
		// Distance is left nil: distanceFunc resolves it against the
		// current value of Diagonal each time it's needed, so toggling
		// Diagonal after construction picks the right heuristic without
		// requiring the caller to also reassign Distance.
		Distance:      nil,
		Margin:        2 * gridStep,
		TurnCost:      1.5 * gridStep,
		BusGain:       0.5 * gridStep,
		CrossCost:     3 * gridStep,
		ProximityCost: 2 * gridStep,
	}
}

// ErrInvalidGridStep is returned by NewRouter when GridStep <= 0.
var ErrInvalidGridStep = errors.New("autobus: gridStep must be positive")

// Validate checks for misconfiguration that must be rejected at
// construction time (spec §7).
func (o Options) Validate() error {
	if o.GridStep <= 0 {
		return ErrInvalidGridStep
	}
	return nil
}

// distanceFunc returns o.Distance, falling back to the
// diagonal-vs-Manhattan default if the caller left it nil.
func (o Options) distanceFunc() DistanceFunc {
	if o.Distance != nil {
		return o.Distance
	}
	if o.Diagonal {
		return DiagonalDistance
	}
	return ManhattanDistance
}
