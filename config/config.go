// Package config holds shared tuning values for planar worlds and the demo
// binaries.
package config

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer planar entities spawn into.
const Default ecs.LayerID = 0

// TPS is the fixed simulation rate the kinematics system integrates at.
const TPS = 60

// FixedDelta is the timestep matching TPS.
const FixedDelta = time.Second / TPS

// Camera tuning shared by the demos.
const (
	CameraSmoothing = 0.15
	CameraZoom      = 1.0
)
