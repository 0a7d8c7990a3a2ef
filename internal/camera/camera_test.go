package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"platformer/internal/engine"
)

func setup() (*engine.Scene, *engine.GameObject) {
	scene := engine.NewScene("test")
	player := engine.NewGameObject("player")
	scene.AddGameObject(player)
	return scene, player
}

func TestFollowCameraDeadZone(t *testing.T) {
	scene, player := setup()
	c := New(player)
	c.Smoothing = 0
	start := c.Position

	player.Transform.Position.X = 0.5
	c.Update(scene, 1.0/60)
	assert.Equal(t, start, c.Position, "inside the dead zone")

	player.Transform.Position.X = 3
	c.Update(scene, 1.0/60)
	assert.InDelta(t, 2, c.Position.X, 1e-5)
}

func TestFollowCameraSmoothing(t *testing.T) {
	scene, player := setup()
	c := New(player)
	c.DeadZone = rl.Vector2{}
	c.Smoothing = 0.5

	player.Transform.Position.X = 4
	c.Update(scene, 1)
	assert.InDelta(t, 2, c.Position.X, 1e-5)
}

func TestFollowCameraLostTarget(t *testing.T) {
	scene, player := setup()
	c := New(player)
	scene.RemoveGameObject(player)

	before := c.Position
	player.Transform.Position.X = 10
	c.Update(scene, 1)
	c.Snap(scene)
	assert.Equal(t, before, c.Position)
}

func TestGetRaylibCameraFlipsY(t *testing.T) {
	c := &FollowCamera{Position: rl.NewVector2(3, 4), Zoom: 10}
	cam := c.GetRaylibCamera(800, 600)

	assert.Equal(t, rl.NewVector2(400, 300), cam.Offset)
	assert.Equal(t, rl.NewVector2(3, -4), cam.Target)
	assert.Equal(t, float32(10), cam.Zoom)
}
