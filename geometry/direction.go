package geometry

import (
	stdmath "math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Direction is a 2D unit vector. The zero value reads as north, consistent
// with the zero Rotation.
type Direction struct {
	unit dmath.Vec2
}

// NewDirection normalizes v into a Direction.
// Returns ErrNearlySingular when v is (nearly) zero length.
func NewDirection(v dmath.Vec2) (Direction, error) {
	lengthSq := v.X*v.X + v.Y*v.Y
	if lengthSq < nearZeroSq {
		return Direction{}, ErrNearlySingular
	}
	length := stdmath.Sqrt(lengthSq)
	return Direction{unit: dmath.Vec2{X: v.X / length, Y: v.Y / length}}, nil
}

// MustDirection is NewDirection for statically known non-zero vectors.
// It panics when v has zero length.
func MustDirection(v dmath.Vec2) Direction {
	d, err := NewDirection(v)
	if err != nil {
		panic("geometry: zero-length vector supplied to MustDirection")
	}
	return d
}

// Vec2 returns the underlying unit vector.
func (d Direction) Vec2() dmath.Vec2 {
	if d.unit.X == 0 && d.unit.Y == 0 {
		return dmath.Vec2{X: 0, Y: 1}
	}
	return d.unit
}

// Rotation converts the direction into its angle-from-north form.
func (d Direction) Rotation() Rotation {
	v := d.Vec2()
	return RotationFromRadians(stdmath.Atan2(v.X, v.Y))
}

// Neg returns the opposite direction.
func (d Direction) Neg() Direction {
	v := d.Vec2()
	return Direction{unit: dmath.Vec2{X: -v.X, Y: -v.Y}}
}

// MulScalar scales the unit vector by f, returning a plain vector.
func (d Direction) MulScalar(f float64) dmath.Vec2 {
	v := d.Vec2()
	return dmath.Vec2{X: v.X * f, Y: v.Y * f}
}

// Distance returns the absolute rotation separating two directions,
// taking the shortest path.
func (d Direction) Distance(other Direction) Rotation {
	return d.Rotation().Distance(other.Rotation())
}

// RotateToward steps d toward target by at most maxStep, spinning the
// shortest way.
func (d Direction) RotateToward(target Direction, maxStep Rotation) Direction {
	return d.Rotation().RotateToward(target.Rotation(), maxStep).Direction()
}
