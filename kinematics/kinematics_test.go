package kinematics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/geometry"
)

func TestVelocityToward(t *testing.T) {
	v := VelocityToward(coord.Continuous(5), geometry.East.Direction())
	assert.Equal(t, NewVelocity[coord.Continuous](5, 0), v)

	v = VelocityToward(coord.Continuous(5), geometry.South.Direction())
	assert.Equal(t, NewVelocity[coord.Continuous](0, -5), v)

	// Discrete kinds round each axis: 3 * cos(45) is a hair over 2.12.
	cells := VelocityToward(coord.Orthogonal(3), geometry.NorthEast.Direction())
	assert.Equal(t, NewVelocity[coord.Orthogonal](2, 2), cells)
}

func TestVelocityMagnitudeAndDirection(t *testing.T) {
	v := NewVelocity[coord.Continuous](3, 4)
	assert.InDelta(t, 5, v.Magnitude(), 1e-12)

	d, err := v.Direction()
	require.NoError(t, err)
	assert.InDelta(t, 3.0/5.0, d.Vec2().X, 1e-12)
	assert.InDelta(t, 4.0/5.0, d.Vec2().Y, 1e-12)

	_, err = Velocity[coord.Continuous]{}.Direction()
	assert.ErrorIs(t, err, geometry.ErrNearlySingular)
}

func TestVelocityOver(t *testing.T) {
	v := NewVelocity[coord.Continuous](3, -2)
	assert.Equal(t, coord.NewPosition[coord.Continuous](1.5, -1), v.Over(500*time.Millisecond))
	assert.Equal(t, coord.Position[coord.Continuous]{}, v.Over(0))
}

func TestIntegrate(t *testing.T) {
	pos := coord.Position[coord.Continuous]{}
	vel := Velocity[coord.Continuous]{}
	acc := NewAcceleration[coord.Continuous](2, 0)

	// Semi-implicit Euler: the new velocity moves the position.
	pos, vel = Integrate(pos, vel, acc, time.Second)
	assert.Equal(t, NewVelocity[coord.Continuous](2, 0), vel)
	assert.Equal(t, coord.NewPosition[coord.Continuous](2, 0), pos)

	pos, vel = Integrate(pos, vel, acc, time.Second)
	assert.Equal(t, NewVelocity[coord.Continuous](4, 0), vel)
	assert.Equal(t, coord.NewPosition[coord.Continuous](6, 0), pos)
}

func TestAngularVelocityOver(t *testing.T) {
	w := AngularVelocityFromDegrees(90)
	assert.Equal(t, 900.0, w.DeciDegrees())

	arc, spin := w.Over(500 * time.Millisecond)
	assert.Equal(t, geometry.NewRotation(450), arc)
	assert.Equal(t, geometry.Clockwise, spin)

	_, spin = AngularVelocity(-1).Over(time.Second)
	assert.Equal(t, geometry.CounterClockwise, spin)

	// Fractional arcs round to the nearest deci-degree.
	arc, _ = AngularVelocity(15).Over(100 * time.Millisecond)
	assert.Equal(t, geometry.NewRotation(2), arc)
}

func TestAngularVelocityRotate(t *testing.T) {
	north := geometry.North.Rotation()

	assert.Equal(t, geometry.East.Rotation(),
		AngularVelocityFromDegrees(90).Rotate(north, time.Second))
	assert.Equal(t, geometry.West.Rotation(),
		AngularVelocityFromDegrees(-90).Rotate(north, time.Second))
	assert.Equal(t, north, AngularVelocity(0).Rotate(north, time.Hour))
}

func TestIntegrateAngular(t *testing.T) {
	r := geometry.North.Rotation()
	w := AngularVelocity(0)
	a := AngularAcceleration(900)

	r, w = IntegrateAngular(r, w, a, time.Second)
	assert.Equal(t, AngularVelocity(900), w)
	assert.Equal(t, geometry.East.Rotation(), r)
}
