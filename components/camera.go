package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is a smoothed follow camera. Position is the world point at the
// center of the viewport.
type CameraData struct {
	Position math.Vec2
	Zoom     float64
	// Smoothing is the fraction of the remaining distance to the target
	// covered each frame, in (0, 1]. 1 snaps immediately.
	Smoothing      float64
	ViewportWidth  float64
	ViewportHeight float64
	// Target names the entity the camera follows, if any.
	Target *donburi.Entry
}

var Camera = donburi.NewComponentType[CameraData](CameraData{Zoom: 1, Smoothing: 1})
