// Package autobus routes polyline paths for a set of wires ("routes")
// between fixed or moving endpoints through a field of rectangular
// obstacles.
//
// A [Router] accumulates obstacles and routes, then computes every
// route's path with a single call to [Router.Route]. Routes that share
// an endpoint are grouped together automatically; in bus mode,
// grouped routes are rewarded for running along the same grid cells
// instead of being treated as ordinary traffic to avoid.
//
// The router performs no I/O and draws nothing; it is meant to sit
// behind a rendering surface that supplies obstacle rectangles and
// endpoint coordinates and consumes the resulting polylines through a
// callback.
package autobus
