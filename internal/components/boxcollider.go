package components

import (
	"platformer/internal/engine"
	"platformer/internal/kinematics"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider registers an axis-aligned box with the physics world while its
// GameObject is in a scene.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector2
	Offset rl.Vector2
	Layer  kinematics.Layer

	body *physics.Body
}

func NewBoxCollider(size rl.Vector2, layer kinematics.Layer) *BoxCollider {
	return &BoxCollider{
		Size:  size,
		Layer: layer,
	}
}

func (b *BoxCollider) Start() {
	w := b.World()
	if w == nil || w.Physics() == nil || b.body != nil {
		return
	}
	g := b.GetGameObject()
	b.body = physics.NewBody(g.Name, b.Layer, b.center(), b.Size)
	b.body.Data = g
	w.Physics().Add(b.body)
}

func (b *BoxCollider) OnDestroy() {
	if b.body == nil {
		return
	}
	if w := b.World(); w != nil && w.Physics() != nil {
		w.Physics().Remove(b.body)
	}
	b.body = nil
}

// Body is nil until the collider has started inside a world.
func (b *BoxCollider) Body() *physics.Body {
	return b.body
}

// Sync moves the body to follow the transform.
func (b *BoxCollider) Sync() {
	if b.body == nil {
		return
	}
	if w := b.World(); w != nil && w.Physics() != nil {
		w.Physics().Move(b.body, b.center())
	}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.center(), b.Size)
}

func (b *BoxCollider) center() rl.Vector2 {
	return rl.Vector2Add(b.GetGameObject().WorldPosition(), b.Offset)
}
