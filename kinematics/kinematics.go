// Package kinematics provides linear and angular rates of change for
// positions and rotations, plus semi-implicit Euler integration helpers.
package kinematics

import (
	stdmath "math"
	"time"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/geometry"
)

// Velocity is a rate of change of position, in coordinate units per second.
type Velocity[C coord.Coordinate[C]] struct {
	X C
	Y C
}

// NewVelocity creates a velocity from per-axis rates.
func NewVelocity[C coord.Coordinate[C]](x, y C) Velocity[C] {
	return Velocity[C]{X: x, Y: y}
}

// VelocityToward creates a velocity of the given magnitude pointing along
// direction. Discrete coordinate kinds round each axis to the nearest unit.
func VelocityToward[C coord.Coordinate[C]](magnitude C, direction geometry.Direction) Velocity[C] {
	var kind C
	v := direction.Vec2()
	m := magnitude.Transform()
	return Velocity[C]{
		X: kind.FromTransform(m * v.X),
		Y: kind.FromTransform(m * v.Y),
	}
}

// Vec2 returns the velocity in transform units per second.
func (v Velocity[C]) Vec2() dmath.Vec2 {
	return dmath.Vec2{X: v.X.Transform(), Y: v.Y.Transform()}
}

// Magnitude returns the speed in transform units per second.
func (v Velocity[C]) Magnitude() float64 {
	return stdmath.Hypot(v.X.Transform(), v.Y.Transform())
}

// Direction returns the direction of travel.
// Returns ErrNearlySingular for a (nearly) zero velocity.
func (v Velocity[C]) Direction() (geometry.Direction, error) {
	return geometry.NewDirection(v.Vec2())
}

// Add returns the per-axis sum of two velocities.
func (v Velocity[C]) Add(other Velocity[C]) Velocity[C] {
	return Velocity[C]{X: v.X.Add(other.X), Y: v.Y.Add(other.Y)}
}

// Sub returns the per-axis difference of two velocities.
func (v Velocity[C]) Sub(other Velocity[C]) Velocity[C] {
	return Velocity[C]{X: v.X.Sub(other.X), Y: v.Y.Sub(other.Y)}
}

// Scale multiplies both axes by f.
func (v Velocity[C]) Scale(f float64) Velocity[C] {
	var kind C
	return Velocity[C]{
		X: kind.FromTransform(v.X.Transform() * f),
		Y: kind.FromTransform(v.Y.Transform() * f),
	}
}

// Over returns the displacement accumulated over dt.
func (v Velocity[C]) Over(dt time.Duration) coord.Position[C] {
	scaled := v.Scale(dt.Seconds())
	return coord.Position[C]{X: scaled.X, Y: scaled.Y}
}

// Acceleration is a rate of change of velocity, in coordinate units per
// second squared.
type Acceleration[C coord.Coordinate[C]] struct {
	X C
	Y C
}

// NewAcceleration creates an acceleration from per-axis rates.
func NewAcceleration[C coord.Coordinate[C]](x, y C) Acceleration[C] {
	return Acceleration[C]{X: x, Y: y}
}

// AccelerationToward creates an acceleration of the given magnitude pointing
// along direction.
func AccelerationToward[C coord.Coordinate[C]](magnitude C, direction geometry.Direction) Acceleration[C] {
	v := VelocityToward(magnitude, direction)
	return Acceleration[C]{X: v.X, Y: v.Y}
}

// Magnitude returns the size of the acceleration in transform units per
// second squared.
func (a Acceleration[C]) Magnitude() float64 {
	return stdmath.Hypot(a.X.Transform(), a.Y.Transform())
}

// Direction returns the direction the acceleration pushes in.
// Returns ErrNearlySingular for a (nearly) zero acceleration.
func (a Acceleration[C]) Direction() (geometry.Direction, error) {
	return geometry.NewDirection(dmath.Vec2{X: a.X.Transform(), Y: a.Y.Transform()})
}

// Add returns the per-axis sum of two accelerations.
func (a Acceleration[C]) Add(other Acceleration[C]) Acceleration[C] {
	return Acceleration[C]{X: a.X.Add(other.X), Y: a.Y.Add(other.Y)}
}

// Over returns the velocity gained over dt.
func (a Acceleration[C]) Over(dt time.Duration) Velocity[C] {
	var kind C
	s := dt.Seconds()
	return Velocity[C]{
		X: kind.FromTransform(a.X.Transform() * s),
		Y: kind.FromTransform(a.Y.Transform() * s),
	}
}

// Integrate advances a position by one semi-implicit Euler step: velocity
// absorbs the acceleration first, then the updated velocity moves the
// position. Returns the new position and velocity.
func Integrate[C coord.Coordinate[C]](pos coord.Position[C], vel Velocity[C], acc Acceleration[C], dt time.Duration) (coord.Position[C], Velocity[C]) {
	vel = vel.Add(acc.Over(dt))
	return pos.Add(vel.Over(dt)), vel
}
