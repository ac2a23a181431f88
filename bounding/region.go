// Package bounding provides 2D regions that can contain positions, for
// overlap testing and clamping.
package bounding

import "github.com/leafgrove/planar/coord"

// Region is a 2D region that could contain a Position.
//
// Intersection tests are defined per concrete region kind, since they only
// make sense between regions of the same kind.
type Region[C coord.Coordinate[C]] interface {
	// Vertices lists the corners of the region, clockwise from the top right.
	Vertices() []coord.Position[C]
	// Contains reports whether the position lies inside the region,
	// boundary included.
	Contains(coord.Position[C]) bool
	// Clamp moves the position the shortest distance needed to lie inside
	// the region.
	Clamp(coord.Position[C]) coord.Position[C]
}
