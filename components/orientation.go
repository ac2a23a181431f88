package components

import (
	"github.com/yohamta/donburi"

	"github.com/leafgrove/planar/geometry"
	"github.com/leafgrove/planar/kinematics"
)

// ScaleData is a uniform scale factor applied around an entity's position.
type ScaleData struct {
	Factor float64
}

// AngularVelocityData carries an entity's spin rate.
type AngularVelocityData struct {
	kinematics.AngularVelocity
}

// AngularAccelerationData carries an entity's change of spin rate.
type AngularAccelerationData struct {
	kinematics.AngularAcceleration
}

var (
	Rotation            = donburi.NewComponentType[geometry.Rotation]()
	Direction           = donburi.NewComponentType[geometry.Direction]()
	Scale               = donburi.NewComponentType[ScaleData](ScaleData{Factor: 1})
	AngularVelocity     = donburi.NewComponentType[AngularVelocityData]()
	AngularAcceleration = donburi.NewComponentType[AngularAccelerationData]()
)
