// Package planar keeps 2D game entities' positions, orientations and motion
// consistent: typed coordinates over continuous and grid spaces, discretized
// rotations, bounding regions, kinematics, and donburi systems that mirror
// it all into the host transform, collision space and camera.
package planar

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/components"
	cfg "github.com/leafgrove/planar/config"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/systems"
)

// Options tunes what a Plugin registers.
type Options struct {
	// Kinematics registers the integration systems when true.
	Kinematics bool
	// FixedDelta is the integration timestep. Zero means config.FixedDelta.
	FixedDelta time.Duration
	// Paused suspends kinematics while it returns true. Nil never pauses.
	Paused func() bool
}

// Plugin wires the planar systems for one coordinate kind into an ECS.
// Register one plugin per world.
type Plugin[C coord.Coordinate[C]] struct {
	Set  components.Set[C]
	Opts Options
}

// New creates a plugin over a component set.
func New[C coord.Coordinate[C]](set components.Set[C], opts Options) Plugin[C] {
	return Plugin[C]{Set: set, Opts: opts}
}

// NewContinuous creates the plugin most games want: float64 coordinates with
// kinematics on.
func NewContinuous() Plugin[coord.Continuous] {
	return New(components.Continuous, Options{Kinematics: true})
}

// Register adds the planar systems to the ECS, in dependency order:
// kinematics, orientation sync, transform sync, tweens, collision, camera.
func (p Plugin[C]) Register(e *ecs.ECS) {
	delta := p.Opts.FixedDelta
	if delta <= 0 {
		delta = cfg.FixedDelta
	}
	if p.Opts.Kinematics {
		e.AddSystem(systems.Kinematics(p.Set, delta, p.Opts.Paused))
		e.AddSystem(systems.AngularKinematics(delta, p.Opts.Paused))
	}
	e.AddSystem(systems.UpdateOrientation)
	e.AddSystem(systems.TransformSync(p.Set))
	e.AddSystem(systems.Tweens(p.Set))
	e.AddSystem(systems.Collision(p.Set))
	e.AddSystem(systems.UpdateCamera)
}
