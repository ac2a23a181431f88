package coord

import (
	"github.com/leafgrove/planar/geometry"
	dmath "github.com/yohamta/donburi/features/math"
)

// Position is a 2D coordinate over the coordinate kind C.
//
// The kind controls whether the coordinate system is continuous or discrete,
// square or hexagonal, and how values map onto host transform units.
type Position[C Coordinate[C]] struct {
	X, Y C
}

// NewPosition creates a Position from its two coordinates.
func NewPosition[C Coordinate[C]](x, y C) Position[C] {
	return Position[C]{X: x, Y: y}
}

// PositionFromVec2 converts a point in host transform units into the nearest
// representable Position.
func PositionFromVec2[C Coordinate[C]](v dmath.Vec2) Position[C] {
	var kind C
	return Position[C]{X: kind.FromTransform(v.X), Y: kind.FromTransform(v.Y)}
}

// Vec2 converts the position into host transform units.
func (p Position[C]) Vec2() dmath.Vec2 {
	return dmath.Vec2{X: p.X.Transform(), Y: p.Y.Transform()}
}

// Add returns the componentwise sum of two positions.
func (p Position[C]) Add(other Position[C]) Position[C] {
	return Position[C]{X: p.X.Add(other.X), Y: p.Y.Add(other.Y)}
}

// Sub returns the componentwise difference of two positions.
func (p Position[C]) Sub(other Position[C]) Position[C] {
	return Position[C]{X: p.X.Sub(other.X), Y: p.Y.Sub(other.Y)}
}

// Mul scales both coordinates by f.
func (p Position[C]) Mul(f C) Position[C] {
	return Position[C]{X: p.X.Mul(f), Y: p.Y.Mul(f)}
}

// Div divides both coordinates by f.
func (p Position[C]) Div(f C) Position[C] {
	return Position[C]{X: p.X.Div(f), Y: p.Y.Div(f)}
}

// Mod reduces both coordinates modulo f.
func (p Position[C]) Mod(f C) Position[C] {
	return Position[C]{X: p.X.Mod(f), Y: p.Y.Mod(f)}
}

// Rotation treats the position as a vector from the origin and computes the
// rotation it points along. Returns ErrNearlySingular for the origin itself.
func (p Position[C]) Rotation() (geometry.Rotation, error) {
	return geometry.RotationFromVec2(p.Vec2())
}

// Direction treats the position as a vector from the origin and computes the
// direction it points along. Returns ErrNearlySingular for the origin itself.
func (p Position[C]) Direction() (geometry.Direction, error) {
	return geometry.NewDirection(p.Vec2())
}

// OrientationTo computes the rotation pointing away from p toward other.
func (p Position[C]) OrientationTo(other Position[C]) (geometry.Rotation, error) {
	return other.Sub(p).Rotation()
}

// OrientationFrom computes the rotation pointing toward p from other.
func (p Position[C]) OrientationFrom(other Position[C]) (geometry.Rotation, error) {
	return p.Sub(other).Rotation()
}

// DirectionTo computes the direction pointing away from p toward other.
func (p Position[C]) DirectionTo(other Position[C]) (geometry.Direction, error) {
	return other.Sub(p).Direction()
}

// DirectionFrom computes the direction pointing toward p from other.
func (p Position[C]) DirectionFrom(other Position[C]) (geometry.Direction, error) {
	return p.Sub(other).Direction()
}

// FaceToward steps the rotation current toward the target position by at most
// maxStep. When the two positions coincide the rotation is left unchanged.
func FaceToward[C Coordinate[C]](current geometry.Rotation, at, target Position[C], maxStep geometry.Rotation) geometry.Rotation {
	goal, err := at.OrientationTo(target)
	if err != nil {
		return current
	}
	return current.RotateToward(goal, maxStep)
}
