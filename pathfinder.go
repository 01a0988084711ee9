package autobus

import (
	"github.com/aumouvantsillage/autobus/internal/grid"
	"github.com/aumouvantsillage/autobus/internal/pq"
)

// searchLimit caps the number of nodes popped from the open set in a
// single A* search, guarding against an unreachable goal exhausting
// the grid pathologically. In practice the search always converges
// long before this.
const searchLimit = 1 << 20

// nodePoint returns the world-coordinate Point of a grid node.
func nodePoint(n *grid.Node) Point {
	return Point{X: n.X, Y: n.Y}
}

// findPath runs the A* search of spec §4.5 for one route against the
// current grid state and returns the resulting grid-aligned polyline,
// anchored at nothing yet (postprocess does the anchoring). It always
// returns at least one point.
func (r *Router) findPath(route *Route) []Point {
	g := r.grid
	opts := r.options
	dist := opts.distanceFunc()

	g.ResetSearchState()

	startPt := endpointPoint(route.Start)
	goalPt := endpointPoint(route.Goal)

	startNode := g.Nearest(startPt.X, startPt.Y)
	goalNode := g.Nearest(goalPt.X, goalPt.Y)

	open := pq.New(func(n *grid.Node) float64 { return n.F })

	startNode.G = 0
	startNode.F = dist(nodePoint(startNode), nodePoint(goalNode))
	startNode.Visited = true
	open.Push(startNode)

	current := startNode

	for i := 0; open.Size() > 0 && i < searchLimit; i++ {
		current = open.Pop()
		if current == goalNode {
			break
		}
		current.Closed = true

		g.Neighbours(current, opts.Diagonal, func(n *grid.Node) {
			newG := current.G + dist(nodePoint(current), nodePoint(n))

			if turn := current.Parent != nil && cross(nodePoint(current.Parent), nodePoint(current), nodePoint(n)) != 0; turn {
				newG += opts.TurnCost
			}
			if n.Obstacle {
				newG += opts.obstacleCost(r)
			}

			g.Neighbours(n, opts.Diagonal, func(m *grid.Node) {
				if !opts.Bus || !m.HasGroup(route.GroupID) {
					newG += opts.ProximityCost * float64(m.GroupCount)
				}
				if m.Obstacle {
					newG += opts.ProximityCost
				}
			})

			if opts.Bus && n.HasGroup(route.GroupID) {
				newG -= opts.BusGain
			} else {
				newG += opts.CrossCost * float64(n.GroupCount)
			}

			if !n.Visited || newG < n.G {
				n.Parent = current
				n.G = newG
				n.F = newG + dist(nodePoint(n), nodePoint(goalNode))

				if !n.Visited {
					n.Visited = true
					open.Push(n)
				} else {
					open.Rescore(n)
				}
			}
		})
	}

	path := buildPath(current)
	markGroup(path.nodes, route.GroupID)
	return path.points
}

// obstacleCost is a method on Options only for readability at the
// call site above; the real value lives on Router since it depends
// on the current limits, which Options doesn't know about.
func (o Options) obstacleCost(r *Router) float64 {
	return r.obstacleCost
}

// pathBuild bundles the point polyline and the node chain it was
// built from, since the caller needs both: the points for the result,
// the nodes to update group-sharing state.
type pathBuild struct {
	points []Point
	nodes  []*grid.Node
}

// buildPath walks the parent chain back from last (the goal node if
// it was reached, otherwise the last node popped off the open set
// when the search ran out, per spec §4.5 step 5) to the start,
// producing the chain in start-to-goal order.
func buildPath(last *grid.Node) pathBuild {
	var nodes []*grid.Node
	for n := last; n != nil; n = n.Parent {
		nodes = append(nodes, n)
	}
	// nodes is goal-to-start; reverse it in place.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	points := make([]Point, len(nodes))
	for i, n := range nodes {
		points[i] = nodePoint(n)
	}
	return pathBuild{points: points, nodes: nodes}
}

// markGroup records groupID on every node the path passed through,
// so later routes in the same routing pass see this route's
// footprint (spec §4.5 step 5).
func markGroup(nodes []*grid.Node, groupID int) {
	for _, n := range nodes {
		n.AddGroup(groupID)
	}
}
