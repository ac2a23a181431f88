package kinematics

import (
	stdmath "math"
	"time"

	"github.com/leafgrove/planar/geometry"
)

// AngularVelocity is a rate of spin in deci-degrees per second.
// Positive values spin clockwise, negative values counterclockwise.
type AngularVelocity float64

// AngularVelocityFromDegrees creates an angular velocity from degrees per
// second.
func AngularVelocityFromDegrees(degreesPerSecond float64) AngularVelocity {
	return AngularVelocity(degreesPerSecond * 10)
}

// DeciDegrees returns the spin rate in deci-degrees per second.
func (w AngularVelocity) DeciDegrees() float64 { return float64(w) }

// Degrees returns the spin rate in degrees per second.
func (w AngularVelocity) Degrees() float64 { return float64(w) / 10 }

// RotationDirection reports which way the spin goes. A zero rate reports
// Clockwise.
func (w AngularVelocity) RotationDirection() geometry.RotationDirection {
	if w < 0 {
		return geometry.CounterClockwise
	}
	return geometry.Clockwise
}

// Over returns the unsigned arc covered during dt, along with the spin
// direction to apply it in. Fractional deci-degrees accumulate correctly
// through rounding rather than truncation.
func (w AngularVelocity) Over(dt time.Duration) (geometry.Rotation, geometry.RotationDirection) {
	arc := stdmath.Abs(float64(w)) * dt.Seconds()
	return geometry.RotationFromDegrees(arc / 10), w.RotationDirection()
}

// Rotate advances r by the arc covered during dt.
func (w AngularVelocity) Rotate(r geometry.Rotation, dt time.Duration) geometry.Rotation {
	arc, spin := w.Over(dt)
	if spin == geometry.CounterClockwise {
		return r.Sub(arc)
	}
	return r.Add(arc)
}

// AngularAcceleration is a rate of change of spin, in deci-degrees per second
// squared. The sign convention matches AngularVelocity.
type AngularAcceleration float64

// DeciDegrees returns the rate in deci-degrees per second squared.
func (a AngularAcceleration) DeciDegrees() float64 { return float64(a) }

// Over returns the angular velocity gained during dt.
func (a AngularAcceleration) Over(dt time.Duration) AngularVelocity {
	return AngularVelocity(float64(a) * dt.Seconds())
}

// IntegrateAngular advances a rotation by one semi-implicit Euler step, in
// the same shape as Integrate. Returns the new rotation and angular velocity.
func IntegrateAngular(r geometry.Rotation, w AngularVelocity, a AngularAcceleration, dt time.Duration) (geometry.Rotation, AngularVelocity) {
	w += a.Over(dt)
	return w.Rotate(r, dt), w
}
