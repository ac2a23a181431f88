package systems

import (
	"testing"
	"time"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"

	"github.com/leafgrove/planar/archetypes"
	"github.com/leafgrove/planar/bounding"
	"github.com/leafgrove/planar/components"
	"github.com/leafgrove/planar/coord"
	"github.com/leafgrove/planar/geometry"
	"github.com/leafgrove/planar/kinematics"
)

func newWorld() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestKinematicsIntegrates(t *testing.T) {
	e := newWorld()
	entry := archetypes.Mobile.Spawn(e, components.Acceleration)
	components.Velocity.SetValue(entry, kinematics.NewVelocity[coord.Continuous](1, 0))
	components.Acceleration.SetValue(entry, kinematics.NewAcceleration[coord.Continuous](0, 2))

	Kinematics(components.Continuous, time.Second, nil)(e)

	assert.Equal(t, kinematics.NewVelocity[coord.Continuous](1, 2), *components.Velocity.Get(entry))
	assert.Equal(t, coord.NewPosition[coord.Continuous](1, 2), *components.Position.Get(entry))
}

func TestKinematicsPauses(t *testing.T) {
	e := newWorld()
	entry := archetypes.Mobile.Spawn(e)
	components.Velocity.SetValue(entry, kinematics.NewVelocity[coord.Continuous](1, 0))

	Kinematics(components.Continuous, time.Second, func() bool { return true })(e)

	assert.Equal(t, coord.Position[coord.Continuous]{}, *components.Position.Get(entry))
}

func TestAngularKinematics(t *testing.T) {
	e := newWorld()
	entry := e.World.Entry(e.World.Create(components.Rotation, components.AngularVelocity))
	components.AngularVelocity.SetValue(entry, components.AngularVelocityData{
		AngularVelocity: kinematics.AngularVelocityFromDegrees(90),
	})

	AngularKinematics(time.Second, nil)(e)

	assert.Equal(t, geometry.East.Rotation(), *components.Rotation.Get(entry))
}

func TestOrientationSyncRotationWins(t *testing.T) {
	e := newWorld()
	entry := e.World.Entry(e.World.Create(
		components.Rotation, components.Direction, components.SyncCache))

	// First frame: rotation is authoritative and seeds the cache.
	components.Rotation.SetValue(entry, geometry.East.Rotation())
	UpdateOrientation(e)
	assert.Equal(t, geometry.East.Rotation(), components.Direction.Get(entry).Rotation())

	// Direction alone moved: rotation follows.
	components.Direction.SetValue(entry, geometry.South.Direction())
	UpdateOrientation(e)
	assert.Equal(t, geometry.South.Rotation(), *components.Rotation.Get(entry))

	// Both moved: rotation wins.
	components.Rotation.SetValue(entry, geometry.West.Rotation())
	components.Direction.SetValue(entry, geometry.North.Direction())
	UpdateOrientation(e)
	assert.Equal(t, geometry.West.Rotation(), *components.Rotation.Get(entry))
	assert.Equal(t, geometry.West.Rotation(), components.Direction.Get(entry).Rotation())
}

func TestTransformSyncSeedsFromComponents(t *testing.T) {
	e := newWorld()
	entry := archetypes.Mobile.Spawn(e)
	components.Position.SetValue(entry, coord.NewPosition[coord.Continuous](5, 3))
	components.Rotation.SetValue(entry, geometry.East.Rotation())

	TransformSync(components.Continuous)(e)

	td := transform.Transform.Get(entry)
	assert.Equal(t, dmath.Vec2{X: 5, Y: 3}, td.LocalPosition)
	assert.Equal(t, 90.0, td.LocalRotation)
}

func TestTransformSyncHostChangesFlowBack(t *testing.T) {
	e := newWorld()
	entry := archetypes.Mobile.Spawn(e)
	components.Position.SetValue(entry, coord.NewPosition[coord.Continuous](5, 3))
	sync := TransformSync(components.Continuous)
	sync(e)

	// Only the host transform moved: the 2D side follows.
	td := transform.Transform.Get(entry)
	td.LocalPosition = dmath.Vec2{X: 8, Y: 3}
	td.LocalRotation = 180
	sync(e)
	assert.Equal(t, coord.NewPosition[coord.Continuous](8, 3), *components.Position.Get(entry))
	assert.Equal(t, geometry.South.Rotation(), *components.Rotation.Get(entry))
	assert.Equal(t, geometry.South.Rotation(), components.Direction.Get(entry).Rotation())

	// Both sides moved: the 2D components win.
	components.Position.SetValue(entry, coord.NewPosition[coord.Continuous](1, 1))
	td.LocalPosition = dmath.Vec2{X: 9, Y: 9}
	sync(e)
	assert.Equal(t, dmath.Vec2{X: 1, Y: 1}, td.LocalPosition)
	assert.Equal(t, coord.NewPosition[coord.Continuous](1, 1), *components.Position.Get(entry))
}

func TestTransformSyncScale(t *testing.T) {
	e := newWorld()
	entry := archetypes.Mobile.Spawn(e)
	sync := TransformSync(components.Continuous)
	sync(e)

	components.Scale.SetValue(entry, components.ScaleData{Factor: 2})
	sync(e)
	td := transform.Transform.Get(entry)
	assert.Equal(t, dmath.Vec2{X: 2, Y: 2}, td.LocalScale)

	td.LocalScale = dmath.Vec2{X: 3, Y: 3}
	sync(e)
	assert.Equal(t, 3.0, components.Scale.Get(entry).Factor)
}

func TestCollisionMaintainsObjects(t *testing.T) {
	e := newWorld()
	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.Set(spaceEntry, resolv.NewSpace(640, 480, 16, 16))

	wall := archetypes.Static.Spawn(e)
	components.Position.SetValue(wall, coord.NewPosition[coord.Continuous](10, 5))
	components.Bounds.SetValue(wall, bounds(-1, -1, 1, 1))

	sys := Collision(components.Continuous)
	sys(e)
	// Second pass runs once the object exists.
	sys(e)

	obj := components.Object.Get(wall)
	require.NotNil(t, obj.Object)
	assert.Equal(t, 9.0, obj.X)
	assert.Equal(t, -6.0, obj.Y)
	assert.Equal(t, 2.0, obj.W)
	assert.Equal(t, 2.0, obj.H)

	components.Position.SetValue(wall, coord.NewPosition[coord.Continuous](12, 5))
	sys(e)
	assert.Equal(t, 11.0, obj.X)
}

func TestCollisionAddsObjectComponent(t *testing.T) {
	e := newWorld()
	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.Set(spaceEntry, resolv.NewSpace(640, 480, 16, 16))

	// A bare entity with just position and bounds gains an Object.
	entry := e.World.Entry(e.World.Create(components.Position, components.Bounds))
	components.Bounds.SetValue(entry, bounds(0, 0, 4, 4))

	Collision(components.Continuous)(e)

	require.True(t, entry.HasComponent(components.Object))
	assert.NotNil(t, components.Object.Get(entry).Object)
}

func TestTweensDrivePosition(t *testing.T) {
	e := newWorld()
	entry := e.World.Entry(e.World.Create(components.Position, components.Tween))
	components.Tween.SetValue(entry, components.TweenData{
		PositionY: gween.NewSequence(gween.New(0, -128, 2, ease.Linear)),
	})

	Tweens(components.Continuous)(e)

	// One tick at 60 TPS covers 1/120th of the 2 second tween.
	pos := components.Position.Get(entry)
	assert.InDelta(t, -128.0/120.0, float64(pos.Y), 1e-3)
}

func TestCameraFollowsTarget(t *testing.T) {
	e := newWorld()
	target := archetypes.Mobile.Spawn(e)
	transform.Transform.Get(target).LocalPosition = dmath.Vec2{X: 10, Y: 0}

	cameraEntry := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(cameraEntry, components.CameraData{
		Zoom:      1,
		Smoothing: 0.5,
		Target:    target,
	})

	UpdateCamera(e)
	camera := components.Camera.Get(cameraEntry)
	assert.Equal(t, dmath.Vec2{X: 5, Y: 0}, camera.Position)

	UpdateCamera(e)
	assert.Equal(t, dmath.Vec2{X: 7.5, Y: 0}, camera.Position)
}

func TestWorldScreenRoundTrip(t *testing.T) {
	camera := &components.CameraData{
		Position:       dmath.Vec2{X: 5, Y: 0},
		Zoom:           2,
		ViewportWidth:  200,
		ViewportHeight: 100,
	}

	m := WorldMatrix(camera)
	x, y := m.Apply(5, 0)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)

	// North of the camera lands higher on screen.
	_, y = m.Apply(5, 10)
	assert.InDelta(t, 30, y, 1e-9)

	back := ScreenToWorld(camera, 100, 50)
	assert.InDelta(t, 5, back.X, 1e-9)
	assert.InDelta(t, 0, back.Y, 1e-9)
}

func bounds(left, bottom, right, top coord.Continuous) bounding.AABB[coord.Continuous] {
	return bounding.NewAABB(left, bottom, right, top)
}
