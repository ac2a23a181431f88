package geometry

import (
	stdmath "math"

	dmath "github.com/yohamta/donburi/features/math"
)

// FullCircle is the number of deci-degrees that make up a full rotation.
const FullCircle uint16 = 3600

// nearZeroSq is the squared length below which a vector cannot be trusted to
// point anywhere in particular.
const nearZeroSq = 1e-12

// Rotation is a discretized 2D rotation, stored in tenths of a degree measured
// clockwise from north (x=0, y=+1).
//
// Because the representation is integral, rotations can be added and reversed
// without accumulating floating point error.
type Rotation struct {
	deciDegrees uint16
}

// NewRotation creates a Rotation from a whole number of deci-degrees,
// normalized into [0, 3600).
func NewRotation(deciDegrees uint16) Rotation {
	return Rotation{deciDegrees: deciDegrees % FullCircle}
}

// RotationFromDegrees creates a Rotation from degrees measured clockwise from
// north. Values outside [0, 360) wrap around.
func RotationFromDegrees(degrees float64) Rotation {
	normalized := stdmath.Mod(degrees, 360.0)
	if normalized < 0 {
		normalized += 360.0
	}
	return NewRotation(uint16(stdmath.Round(normalized * 10.0)))
}

// RotationFromRadians creates a Rotation from radians measured clockwise from
// north. Values outside [0, 2pi) wrap around.
func RotationFromRadians(radians float64) Rotation {
	const tau = 2 * stdmath.Pi
	normalized := stdmath.Mod(radians, tau)
	if normalized < 0 {
		normalized += tau
	}
	return NewRotation(uint16(stdmath.Round(normalized * float64(FullCircle) / tau)))
}

// RotationFromVec2 computes the rotation that points along v.
// Returns ErrNearlySingular when v is (nearly) zero length.
func RotationFromVec2(v dmath.Vec2) (Rotation, error) {
	if v.X*v.X+v.Y*v.Y < nearZeroSq {
		return Rotation{}, ErrNearlySingular
	}
	return RotationFromRadians(stdmath.Atan2(v.X, v.Y)), nil
}

// DeciDegrees returns the exact internal measurement in tenths of a degree.
func (r Rotation) DeciDegrees() uint16 { return r.deciDegrees }

// Degrees returns the rotation in degrees, in [0, 360).
func (r Rotation) Degrees() float64 { return float64(r.deciDegrees) / 10.0 }

// Radians returns the rotation in radians, in [0, 2pi).
func (r Rotation) Radians() float64 {
	return float64(r.deciDegrees) * 2 * stdmath.Pi / float64(FullCircle)
}

// Vec2 returns the unit vector pointing along this rotation.
// The four cardinal rotations map to exact unit vectors.
func (r Rotation) Vec2() dmath.Vec2 {
	switch r.deciDegrees {
	case 0:
		return dmath.Vec2{X: 0, Y: 1}
	case FullCircle / 4:
		return dmath.Vec2{X: 1, Y: 0}
	case FullCircle / 2:
		return dmath.Vec2{X: 0, Y: -1}
	case 3 * FullCircle / 4:
		return dmath.Vec2{X: -1, Y: 0}
	}
	radians := r.Radians()
	return dmath.Vec2{X: stdmath.Sin(radians), Y: stdmath.Cos(radians)}
}

// Direction returns the unit-vector form of this rotation.
func (r Rotation) Direction() Direction {
	return Direction{unit: r.Vec2()}
}

// Add returns the wrapped sum of two rotations.
func (r Rotation) Add(other Rotation) Rotation {
	return NewRotation(r.deciDegrees + other.deciDegrees)
}

// Sub returns the wrapped difference of two rotations.
func (r Rotation) Sub(other Rotation) Rotation {
	if r.deciDegrees >= other.deciDegrees {
		return NewRotation(r.deciDegrees - other.deciDegrees)
	}
	return NewRotation(r.deciDegrees + FullCircle - other.deciDegrees)
}

// Neg returns the mirrored rotation: 90 degrees becomes 270 degrees.
func (r Rotation) Neg() Rotation {
	return NewRotation(FullCircle - r.deciDegrees)
}

// MulScalar scales the rotation by f, wrapping the result.
func (r Rotation) MulScalar(f float64) Rotation {
	return RotationFromDegrees(r.Degrees() * f)
}

// DivScalar divides the rotation by f, wrapping the result.
func (r Rotation) DivScalar(f float64) Rotation {
	return RotationFromDegrees(r.Degrees() / f)
}

// Distance returns the absolute separation between two rotations, taking the
// shortest path. The result is always at most 180 degrees. Subtract the two
// rotations instead if a signed value is needed.
func (r Rotation) Distance(other Rotation) Rotation {
	var initial uint16
	if r.deciDegrees >= other.deciDegrees {
		initial = r.deciDegrees - other.deciDegrees
	} else {
		initial = other.deciDegrees - r.deciDegrees
	}
	if initial <= FullCircle/2 {
		return Rotation{deciDegrees: initial}
	}
	return Rotation{deciDegrees: FullCircle - initial}
}

// RotationDirectionTo reports which way is shortest to spin to reach target.
// Ties resolve to Clockwise.
func (r Rotation) RotationDirectionTo(target Rotation) RotationDirection {
	if target.Sub(r).deciDegrees <= FullCircle/2 {
		return Clockwise
	}
	return CounterClockwise
}

// DeltaTo computes the magnitude of rotation separating r from target,
// measured along the shortest spin direction (see RotationDirectionTo).
// Ties resolve to the clockwise arc.
func (r Rotation) DeltaTo(target Rotation) Rotation {
	delta := target.Sub(r)
	if delta.deciDegrees <= FullCircle/2 {
		return delta
	}
	return delta.Neg()
}

// DeltaToIn computes the rotation that must be applied to r to reach target,
// spinning in the given direction.
func (r Rotation) DeltaToIn(target Rotation, spin RotationDirection) Rotation {
	delta := target.Sub(r)
	if spin == CounterClockwise {
		return delta.Neg()
	}
	return delta
}

// RotateToward steps r toward target by at most maxStep, spinning the
// shortest way. When target is within maxStep it is reached exactly.
func (r Rotation) RotateToward(target Rotation, maxStep Rotation) Rotation {
	if r.Distance(target).deciDegrees <= maxStep.deciDegrees {
		return target
	}
	if r.RotationDirectionTo(target) == Clockwise {
		return r.Add(maxStep)
	}
	return r.Sub(maxStep)
}
