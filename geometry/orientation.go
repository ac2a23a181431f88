// Package geometry provides direction and rotation primitives for spinning
// around in two dimensions, plus tools to partition analog directions into
// discrete regions.
//
// Rotations are measured clockwise from north (x=0, y=+1) so that the zero
// Rotation, the zero Direction and an untouched transform all agree.
package geometry

import dmath "github.com/yohamta/donburi/features/math"

// RotationDirection is a direction that a Rotation can be applied in.
// Clockwise corresponds to positive rotation and is the zero value.
type RotationDirection int

const (
	// Clockwise is a positive rotation.
	Clockwise RotationDirection = iota
	// CounterClockwise is a negative rotation.
	CounterClockwise
)

// Reverse flips the spin direction.
func (rd RotationDirection) Reverse() RotationDirection {
	if rd == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

// Sign returns +1 for Clockwise and -1 for CounterClockwise.
func (rd RotationDirection) Sign() int {
	if rd == CounterClockwise {
		return -1
	}
	return 1
}

func (rd RotationDirection) String() string {
	if rd == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// Between computes the rotation pointing from one point toward another.
// Returns ErrNearlySingular when the points coincide.
func Between(from, to dmath.Vec2) (Rotation, error) {
	return RotationFromVec2(dmath.Vec2{X: to.X - from.X, Y: to.Y - from.Y})
}

// DirectionBetween computes the direction pointing from one point toward
// another. Returns ErrNearlySingular when the points coincide.
func DirectionBetween(from, to dmath.Vec2) (Direction, error) {
	return NewDirection(dmath.Vec2{X: to.X - from.X, Y: to.Y - from.Y})
}
