package autobus

// simplify removes points that lie exactly on the segment between
// their neighbours, per spec §4.7 step 1: sweep from index 1:
// whenever three consecutive points are collinear, drop the middle
// one and retry at the same index, since the point that slid into
// its place might now also be collinear with its new neighbours.
func simplify(path []Point) []Point {
	if len(path) < 3 {
		return path
	}

	out := append([]Point(nil), path...)
	i := 1
	for i < len(out)-1 {
		if cross(out[i-1], out[i], out[i+1]) == 0 {
			out = append(out[:i], out[i+1:]...)
			continue
		}
		i++
	}
	return out
}

// alignEndpoints nudges the inner vertex next to each endpoint along
// whichever axis it shares with that endpoint, so the endpoint can be
// moved to its exact live coordinate without introducing a diagonal
// jog (spec §4.7 step 2).
func alignEndpoints(path []Point, route *Route) []Point {
	if len(path) < 2 {
		return path
	}

	start := endpointPoint(route.Start)
	if path[1].X == path[0].X {
		path[1].X = start.X
	} else if path[1].Y == path[0].Y {
		path[1].Y = start.Y
	}

	last := len(path) - 1
	goal := endpointPoint(route.Goal)
	if path[last-1].X == path[last].X {
		path[last-1].X = goal.X
	} else if path[last-1].Y == path[last].Y {
		path[last-1].Y = goal.Y
	}

	return path
}

// anchor overwrites the first and last points of path with the
// route's live start and goal coordinates (spec §4.7 step 3).
func anchor(path []Point, route *Route) []Point {
	if len(path) == 0 {
		return path
	}
	path[0] = endpointPoint(route.Start)
	path[len(path)-1] = endpointPoint(route.Goal)
	return path
}

// postprocess runs the full spec §4.7 pipeline over a raw search
// result.
func postprocess(path []Point, route *Route) []Point {
	path = simplify(path)
	path = alignEndpoints(path, route)
	path = anchor(path, route)
	return path
}
