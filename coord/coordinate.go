// Package coord provides 2D positions over pluggable coordinate kinds:
// continuous float64 coordinates for games that move freely, and discrete
// grid coordinates (square and hexagonal) for tile-based games.
package coord

import (
	"github.com/leafgrove/planar/geometry"
)

// Coordinate is the constraint for types usable as a Position axis.
//
// A coordinate kind is closed under basic arithmetic, ordered, and
// convertible to and from host transform units (the float64 space used by
// the engine's transform component). Discrete kinds must round-trip through
// transform units exactly for every representable cell; continuous kinds
// round-trip approximately.
type Coordinate[C any] interface {
	comparable
	Add(C) C
	Sub(C) C
	Mul(C) C
	Div(C) C
	Mod(C) C
	Less(C) bool
	// Transform converts one coordinate unit into host transform units.
	Transform() float64
	// FromTransform converts host transform units back into a coordinate.
	// It is callable on the zero value.
	FromTransform(float64) C
}

// Discrete is a Coordinate with distinct, enumerable values.
type Discrete[C any] interface {
	Coordinate[C]
	// Next returns the adjacent higher value.
	Next() C
	// Prev returns the adjacent lower value.
	Prev() C
}

// Grid is a Discrete coordinate kind that knows the adjacency structure of
// its cells.
type Grid[C Coordinate[C]] interface {
	Discrete[C]
	// GridNeighbors enumerates the neighbors of a cell, clockwise starting
	// from north.
	GridNeighbors(Position[C]) []Position[C]
	// GridPartitioning is the direction partitioning that maps analog input
	// onto this grid's neighbors.
	GridPartitioning() geometry.Partitioning
}

// Neighbors enumerates the neighboring cells of p, clockwise starting from
// north.
func Neighbors[C Grid[C]](p Position[C]) []Position[C] {
	var kind C
	return kind.GridNeighbors(p)
}

// NeighborDirections returns the direction toward each neighbor of the grid
// kind C, clockwise starting from north.
func NeighborDirections[C Grid[C]]() []geometry.Direction {
	var kind C
	origin := Position[C]{}
	neighbors := kind.GridNeighbors(origin)
	directions := make([]geometry.Direction, 0, len(neighbors))
	for _, n := range neighbors {
		d, err := origin.DirectionTo(n)
		if err != nil {
			// A cell is never its own neighbor.
			panic("coord: grid kind returned the origin as its own neighbor")
		}
		directions = append(directions, d)
	}
	return directions
}

// Partitioning returns the direction partitioning of the grid kind C.
func Partitioning[C Grid[C]]() geometry.Partitioning {
	var kind C
	return kind.GridPartitioning()
}
