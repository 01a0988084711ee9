package autobus

import "testing"

func newTestRoute(startX, startY, goalX, goalY float64) *Route {
	return &Route{
		Start: NewPointEndpoint(Point{X: startX, Y: startY}),
		Goal:  NewPointEndpoint(Point{X: goalX, Y: goalY}),
	}
}

func TestAssignGroupsSharedEndpoint(t *testing.T) {
	r1 := newTestRoute(0, 0, 100, 0)
	r2 := newTestRoute(0, 0, 100, 50)
	r3 := newTestRoute(200, 200, 300, 300)

	routes := []*Route{r1, r2, r3}
	assignGroups(routes)

	if r1.GroupID != 0 || r2.GroupID != 0 {
		t.Errorf("routes sharing an endpoint should share a group, got %d and %d", r1.GroupID, r2.GroupID)
	}
	if r3.GroupID != 2 {
		t.Errorf("isolated route's group id should be its own index, got %d", r3.GroupID)
	}
}

func TestAssignGroupsTransitiveClosure(t *testing.T) {
	a := newTestRoute(0, 0, 10, 0)
	b := newTestRoute(10, 0, 20, 0)
	c := newTestRoute(20, 0, 30, 0)

	routes := []*Route{a, b, c}
	assignGroups(routes)

	if a.GroupID != b.GroupID || b.GroupID != c.GroupID {
		t.Errorf("chained shared endpoints should all land in one group, got %d %d %d", a.GroupID, b.GroupID, c.GroupID)
	}
	if a.GroupID != 0 {
		t.Errorf("the first route in the chain should be the representative, got %d", a.GroupID)
	}
}

func TestAssignGroupsStickyAcrossPasses(t *testing.T) {
	a := newTestRoute(0, 0, 10, 0)
	b := newTestRoute(0, 0, 20, 0)
	routes := []*Route{a, b}
	assignGroups(routes)

	// Move b's shared endpoint away and reassign: the group id must
	// not change, per the sticky-group design note.
	b.Start = NewPointEndpoint(Point{X: 999, Y: 999})
	assignGroups(routes)

	if b.GroupID != a.GroupID {
		t.Errorf("group id should stay sticky once assigned, got %d want %d", b.GroupID, a.GroupID)
	}
}

func TestSharesEndpoint(t *testing.T) {
	a := newTestRoute(0, 0, 10, 10)
	b := newTestRoute(10, 10, 20, 20)
	c := newTestRoute(30, 30, 40, 40)

	if !sharesEndpoint(a, b) {
		t.Error("a and b share a.goal == b.start, expected true")
	}
	if sharesEndpoint(a, c) {
		t.Error("a and c share no endpoint, expected false")
	}
}
