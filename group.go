package autobus

// assignGroups gives every route in routes a GroupID, in the order
// routes currently appear (append order), per spec §4.3: a route
// without a group becomes the representative of a new group (its
// GroupID is its own index), and that id is propagated to every
// later route that shares a start or goal coordinate with it,
// recursing into each newly-tagged route to continue the closure.
// Routes already carrying a GroupID from an earlier pass are left
// untouched (group ids are sticky, spec §9).
func assignGroups(routes []*Route) {
	for i, r := range routes {
		if r.groupAssigned {
			continue
		}
		r.GroupID = i
		r.groupAssigned = true
		propagateGroup(routes, i, r)
	}
}

// propagateGroup tags every route after index repIdx that shares an
// endpoint with r (or with a route already tagged in this closure)
// with group id repIdx. Scanning only the suffix is safe because
// every earlier route already has a group id assigned by the
// assignGroups loop that called us.
func propagateGroup(routes []*Route, repIdx int, r *Route) {
	for j := repIdx + 1; j < len(routes); j++ {
		other := routes[j]
		if other.groupAssigned {
			continue
		}
		if sharesEndpoint(r, other) {
			other.GroupID = repIdx
			other.groupAssigned = true
			propagateGroup(routes, repIdx, other)
		}
	}
}

// sharesEndpoint reports whether a and b have any start/goal
// coordinate in common, using exact equality of live coordinates.
func sharesEndpoint(a, b *Route) bool {
	aStart, aGoal := endpointPoint(a.Start), endpointPoint(a.Goal)
	bStart, bGoal := endpointPoint(b.Start), endpointPoint(b.Goal)

	return aStart == bStart || aStart == bGoal || aGoal == bStart || aGoal == bGoal
}
