// Package camera follows a GameObject around a 2D level.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/engine"
)

type FollowCamera struct {
	Target engine.GameObjectRef
	// Position is the point looked at, in simulation space (Y up).
	Position rl.Vector2
	Offset   rl.Vector2 // added to the target position
	Zoom     float32    // pixels per world unit
	// Smoothing is the fraction of the remaining distance still left after
	// one second. 0 snaps straight to the target.
	Smoothing float32
	// DeadZone is the half-size of the box the target can move in without
	// the camera following.
	DeadZone rl.Vector2
}

func New(target *engine.GameObject) *FollowCamera {
	c := &FollowCamera{
		Target:    engine.RefTo(target),
		Offset:    rl.Vector2{X: 0, Y: 1.5},
		Zoom:      48,
		Smoothing: 0.02,
		DeadZone:  rl.Vector2{X: 1, Y: 1.5},
	}
	if target != nil {
		c.Position = rl.Vector2Add(target.WorldPosition(), c.Offset)
	}
	return c
}

func (c *FollowCamera) Update(scene *engine.Scene, deltaTime float32) {
	g := c.Target.Get(scene)
	if g == nil || deltaTime <= 0 {
		return
	}
	goal := rl.Vector2Add(g.WorldPosition(), c.Offset)

	// Only chase the part of the offset outside the dead zone.
	diff := rl.Vector2Subtract(goal, c.Position)
	diff.X = outside(diff.X, c.DeadZone.X)
	diff.Y = outside(diff.Y, c.DeadZone.Y)

	t := float32(1)
	if c.Smoothing > 0 {
		t = 1 - float32(math.Pow(float64(c.Smoothing), float64(deltaTime)))
	}
	c.Position = rl.Vector2Add(c.Position, rl.Vector2Scale(diff, t))
}

func outside(d, half float32) float32 {
	switch {
	case d > half:
		return d - half
	case d < -half:
		return d + half
	}
	return 0
}

// Snap jumps straight to the target.
func (c *FollowCamera) Snap(scene *engine.Scene) {
	if g := c.Target.Get(scene); g != nil {
		c.Position = rl.Vector2Add(g.WorldPosition(), c.Offset)
	}
}

// GetRaylibCamera centres Position on a screen of the given size. The
// returned camera works in draw space, where Y points down.
func (c *FollowCamera) GetRaylibCamera(screenWidth, screenHeight int32) rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.Vector2{X: float32(screenWidth) / 2, Y: float32(screenHeight) / 2},
		Target: rl.Vector2{X: c.Position.X, Y: -c.Position.Y},
		Zoom:   c.Zoom,
	}
}
