// Package components declares the donburi component types carried by planar
// entities.
package components

import (
	"github.com/yohamta/donburi"

	"github.com/leafgrove/planar/bounding"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/kinematics"
)

// Set groups the component types that are generic over a coordinate kind.
// donburi component identity is per-created-type, so a Set must be created
// exactly once per coordinate kind and shared from there.
type Set[C coord.Coordinate[C]] struct {
	Position     *donburi.ComponentType[coord.Position[C]]
	Velocity     *donburi.ComponentType[kinematics.Velocity[C]]
	Acceleration *donburi.ComponentType[kinematics.Acceleration[C]]
	Bounds       *donburi.ComponentType[bounding.AABB[C]]
}

// NewSet creates the component types for the coordinate kind C.
func NewSet[C coord.Coordinate[C]]() Set[C] {
	return Set[C]{
		Position:     donburi.NewComponentType[coord.Position[C]](),
		Velocity:     donburi.NewComponentType[kinematics.Velocity[C]](),
		Acceleration: donburi.NewComponentType[kinematics.Acceleration[C]](),
		Bounds:       donburi.NewComponentType[bounding.AABB[C]](),
	}
}

// Continuous is the predeclared set for float64 coordinates, the kind most
// games use.
var Continuous = NewSet[coord.Continuous]()

var (
	Position     = Continuous.Position
	Velocity     = Continuous.Velocity
	Acceleration = Continuous.Acceleration
	Bounds       = Continuous.Bounds
)
