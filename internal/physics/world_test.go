package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platformer/internal/kinematics"
)

func testWorld() *World {
	return NewWorld(AABB{Min: rl.NewVector2(-50, -20), Max: rl.NewVector2(50, 50)}, 4)
}

type constMotion rl.Vector2

func (m constMotion) DisplacementThisFrame() (rl.Vector2, bool) { return rl.Vector2(m), true }

func TestRaycastBox(t *testing.T) {
	box := NewAABBFromCenter(rl.NewVector2(0, -1), rl.NewVector2(4, 2))

	h, ok := raycastBox(rl.NewVector2(0, 0.05), rl.NewVector2(0, -1), box, 0.1)
	require.True(t, ok)
	assert.InDelta(t, 0.05, h.Distance, 1e-6)
	assert.Equal(t, rl.Vector2{Y: 1}, h.Normal)

	_, ok = raycastBox(rl.NewVector2(0, 0.2), rl.NewVector2(0, -1), box, 0.1)
	assert.False(t, ok, "out of reach")

	h, ok = raycastBox(rl.NewVector2(0, -1), rl.NewVector2(1, 0), box, 0.1)
	require.True(t, ok, "origin inside")
	assert.Equal(t, float32(0), h.Distance)

	_, ok = raycastBox(rl.NewVector2(0, 0.05), rl.NewVector2(0, 1), box, 1)
	assert.False(t, ok, "pointing away")

	_, ok = raycastBox(rl.NewVector2(3, 0.5), rl.NewVector2(0, -1), box, 1)
	assert.False(t, ok, "beside the box")
}

func TestAABBOverlapIsStrict(t *testing.T) {
	a := NewAABBFromCenter(rl.NewVector2(0, 0), rl.NewVector2(2, 2))
	touching := NewAABBFromCenter(rl.NewVector2(2, 0), rl.NewVector2(2, 2))
	inside := NewAABBFromCenter(rl.NewVector2(1.5, 0), rl.NewVector2(2, 2))

	assert.False(t, a.Overlaps(touching))
	assert.True(t, a.Overlaps(inside))
	assert.True(t, a.Expand(1).Contains(a))
	assert.Equal(t, AABB{Min: rl.NewVector2(-1, -1), Max: rl.NewVector2(3, 1)}, a.Union(touching))
}

func TestWorldRaycastPicksClosestInMask(t *testing.T) {
	w := testWorld()
	floor := NewBody("floor", kinematics.LayerGround, rl.NewVector2(0, -1), rl.NewVector2(40, 2))
	spikes := NewBody("spikes", kinematics.LayerDeath, rl.NewVector2(0, 1), rl.NewVector2(2, 2))
	ledge := NewBody("ledge", kinematics.LayerGround, rl.NewVector2(0, 4), rl.NewVector2(2, 1))
	w.Add(floor)
	w.Add(spikes)
	w.Add(ledge)

	hit, ok := w.Raycast(rl.NewVector2(0, 10), rl.NewVector2(0, -1), 20, kinematics.LayerGround)
	require.True(t, ok)
	assert.Same(t, ledge, hit.Entity)
	assert.InDelta(t, 5.5, hit.Distance, 1e-5)

	hit, ok = w.Raycast(rl.NewVector2(0, 3), rl.NewVector2(0, -1), 20, kinematics.LayerGround|kinematics.LayerDeath)
	require.True(t, ok)
	assert.Same(t, spikes, hit.Entity)

	_, ok = w.Raycast(rl.NewVector2(0, 3), rl.NewVector2(0, -1), 20, kinematics.LayerMovingPlatform)
	assert.False(t, ok)
}

func TestWorldOverlapAndMove(t *testing.T) {
	w := testWorld()
	wall := NewBody("wall", kinematics.LayerGround, rl.NewVector2(10, 1), rl.NewVector2(2, 2))
	w.Add(wall)

	size := rl.NewVector2(1, 1)
	_, ok := w.OverlapBox(rl.NewVector2(8.5, 1), size, kinematics.LayerGround)
	assert.False(t, ok, "touching is not overlapping")

	e, ok := w.OverlapBox(rl.NewVector2(8.6, 1), size, kinematics.LayerGround)
	require.True(t, ok)
	assert.Same(t, wall, e)

	_, ok = w.OverlapBox(rl.NewVector2(8.6, 1), size, kinematics.LayerDeath)
	assert.False(t, ok)

	// Far across several cells.
	w.Move(wall, rl.NewVector2(-30, 20))
	_, ok = w.OverlapBox(rl.NewVector2(8.6, 1), size, kinematics.LayerGround)
	assert.False(t, ok)
	e, ok = w.OverlapBox(rl.NewVector2(-30, 20), size, kinematics.LayerGround)
	require.True(t, ok)
	assert.Same(t, wall, e)
	assert.Equal(t, rl.NewVector2(-30, 20), wall.Center())
}

func TestWorldRemove(t *testing.T) {
	w := testWorld()
	a := NewBody("a", kinematics.LayerGround, rl.NewVector2(0, 0), rl.NewVector2(1, 1))
	b := NewBody("b", kinematics.LayerGround, rl.NewVector2(5, 0), rl.NewVector2(1, 1))
	w.Add(a)
	w.Add(b)

	w.Remove(a)
	assert.Equal(t, []*Body{b}, w.Bodies())
	_, ok := w.OverlapBox(rl.NewVector2(0, 0), rl.NewVector2(1, 1), kinematics.LayerGround)
	assert.False(t, ok)

	// Moving a removed body only updates its bounds.
	w.Move(a, rl.NewVector2(5, 0))
	e, ok := w.OverlapBox(rl.NewVector2(5, 0), rl.NewVector2(1, 1), kinematics.LayerGround)
	require.True(t, ok)
	assert.Same(t, b, e)
}

func TestWorldBodiesOutsideRegion(t *testing.T) {
	w := testWorld()
	far := NewBody("far", kinematics.LayerGround, rl.NewVector2(500, -300), rl.NewVector2(4, 4))
	edge := NewBody("edge", kinematics.LayerGround, rl.NewVector2(-50, 0), rl.NewVector2(4, 4))
	w.Add(far)
	w.Add(edge)

	e, ok := w.OverlapBox(rl.NewVector2(500, -300), rl.NewVector2(1, 1), kinematics.LayerGround)
	require.True(t, ok)
	assert.Same(t, far, e)

	hit, ok := w.Raycast(rl.NewVector2(-51, 5), rl.NewVector2(0, -1), 10, kinematics.LayerGround)
	require.True(t, ok)
	assert.Same(t, edge, hit.Entity)
	assert.InDelta(t, 3, hit.Distance, 1e-5)

	w.Move(far, rl.NewVector2(0, 0))
	e, ok = w.OverlapBox(rl.NewVector2(0, 0), rl.NewVector2(1, 1), kinematics.LayerGround)
	require.True(t, ok)
	assert.Same(t, far, e)
}

func TestBodyDisplacement(t *testing.T) {
	static := NewBody("static", kinematics.LayerGround, rl.Vector2{}, rl.NewVector2(1, 1))
	_, ok := kinematics.Displacement(static)
	assert.False(t, ok)

	lift := NewBody("lift", kinematics.LayerGround|kinematics.LayerMovingPlatform, rl.Vector2{}, rl.NewVector2(1, 1))
	lift.Motion = constMotion{X: 0.5}
	d, ok := kinematics.Displacement(lift)
	require.True(t, ok)
	assert.Equal(t, rl.NewVector2(0.5, 0), d)
}

// The controller resting on broad-phase geometry must not drift.
func TestControllerRestsOnWorldFloor(t *testing.T) {
	w := testWorld()
	w.Add(NewBody("floor", kinematics.LayerGround, rl.NewVector2(0, -1), rl.NewVector2(40, 2)))

	cfg := kinematics.DefaultConfig()
	cfg.ActivationDelay = 0
	start := rl.NewVector2(0, 0.625)
	c, err := kinematics.NewController(w, cfg, start, nil)
	require.NoError(t, err)

	for i := 0; i < 120; i++ {
		f := c.Update(kinematics.FrameInput{}, 1.0/60)
		require.True(t, f.Grounded)
	}
	assert.Equal(t, start, c.Position())
}

func TestControllerRidesLift(t *testing.T) {
	w := testWorld()
	lift := NewBody("lift", kinematics.LayerGround|kinematics.LayerMovingPlatform, rl.NewVector2(0, -0.5), rl.NewVector2(4, 1))
	lift.Motion = constMotion{X: 0.05}
	w.Add(lift)

	cfg := kinematics.DefaultConfig()
	cfg.ActivationDelay = 0
	c, err := kinematics.NewController(w, cfg, rl.NewVector2(0, 0.625), nil)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		w.Move(lift, rl.Vector2Add(lift.Center(), rl.Vector2(lift.Motion.(constMotion))))
		c.Update(kinematics.FrameInput{}, 1.0/60)
	}
	assert.InDelta(t, 1.0, c.Position().X, 1e-3)
	assert.InDelta(t, lift.Center().X, c.Position().X, 1e-3)
}
