package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"

	"github.com/leafgrove/planar/components"
)

// UpdateCamera eases the camera toward its target entity's transform
// position. Cameras with no target, or whose target is gone, hold still.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	target := camera.Target
	if target == nil || !target.Valid() || !target.HasComponent(transform.Transform) {
		return
	}
	goal := transform.Transform.Get(target).LocalPosition

	s := camera.Smoothing
	if s <= 0 || s > 1 {
		s = 1
	}
	camera.Position.X += (goal.X - camera.Position.X) * s
	camera.Position.Y += (goal.Y - camera.Position.Y) * s
}

// WorldMatrix returns the GeoM mapping world space onto the screen for this
// camera. World y grows north, screen y grows down, so the y axis flips.
func WorldMatrix(camera *components.CameraData) ebiten.GeoM {
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	var m ebiten.GeoM
	m.Translate(-camera.Position.X, -camera.Position.Y)
	m.Scale(zoom, -zoom)
	m.Translate(camera.ViewportWidth/2, camera.ViewportHeight/2)
	return m
}

// ScreenToWorld converts a screen point (a cursor position, usually) into
// world coordinates.
func ScreenToWorld(camera *components.CameraData, screenX, screenY float64) dmath.Vec2 {
	m := WorldMatrix(camera)
	m.Invert()
	x, y := m.Apply(screenX, screenY)
	return dmath.Vec2{X: x, Y: y}
}
