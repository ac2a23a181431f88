// Package netsync replicates an entity's pose over necs/esync: a compact
// snapshot component, its registration, and systems copying local components
// into and out of snapshots.
package netsync

import (
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"

	"github.com/leafgrove/planar/geometry"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPose uint = 10
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPose uint8 = 10
)

// NetPoseData is the wire snapshot of an entity's pose: position in
// transform units, rotation in deci-degrees, and a uniform scale factor.
type NetPoseData struct {
	X, Y         float64
	RotationDeci uint16
	Scale        float64
}

var NetPose = donburi.NewComponentType[NetPoseData]()

// LerpNetPose interpolates between two pose snapshots. Positions and scale
// interpolate linearly; the rotation travels along the shortest arc, so a
// pose crossing north never swings the long way around.
func LerpNetPose(from, to NetPoseData, t float64) *NetPoseData {
	fromRot := geometry.NewRotation(from.RotationDeci)
	toRot := geometry.NewRotation(to.RotationDeci)
	step := fromRot.Distance(toRot).MulScalar(t)

	var rot geometry.Rotation
	if fromRot.RotationDirectionTo(toRot) == geometry.Clockwise {
		rot = fromRot.Add(step)
	} else {
		rot = fromRot.Sub(step)
	}

	return &NetPoseData{
		X:            from.X + (to.X-from.X)*t,
		Y:            from.Y + (to.Y-from.Y)*t,
		RotationDeci: rot.DeciDegrees(),
		Scale:        from.Scale + (to.Scale-from.Scale)*t,
	}
}

// Register registers the pose snapshot with necs for serialization. Both
// server and client must call it before any network operations.
func Register() error {
	return esync.RegisterComponent(
		SyncIDNetPose,
		NetPoseData{},
		NetPose,
		esync.WithInterpFn(InterpIDNetPose, LerpNetPose),
	)
}
