package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/leafgrove/planar/archetypes"
	"github.com/leafgrove/planar/components"
	cfg "github.com/leafgrove/planar/config"
)

// CreateCamera spawns the follow camera. A nil target holds the camera
// still until one is assigned.
func CreateCamera(ecs *ecs.ECS, viewportWidth, viewportHeight float64, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Zoom:           cfg.CameraZoom,
		Smoothing:      cfg.CameraSmoothing,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		Target:         target,
	})
	return camera
}
