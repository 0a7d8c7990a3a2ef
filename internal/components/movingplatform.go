package components

import (
	"platformer/internal/engine"
	"platformer/internal/platform"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MovingPlatform drives its GameObject along a platform profile. It steps in
// EarlyUpdate so actors updating later in the frame see where it went.
type MovingPlatform struct {
	engine.BaseComponent
	Profile platform.Profile

	collider *BoxCollider
	delta    rl.Vector2
	moved    bool
}

func NewMovingPlatform(p platform.Profile) *MovingPlatform {
	return &MovingPlatform{Profile: p}
}

func (m *MovingPlatform) Start() {
	if m.Profile != nil {
		m.GetGameObject().Transform.Position = m.Profile.Position()
	}
	m.bind()
}

// bind hooks the collider's body up to this component. The collider may
// start after us, so it is retried each frame until it succeeds.
func (m *MovingPlatform) bind() {
	if m.collider == nil {
		m.collider = engine.GetComponent[*BoxCollider](m.GetGameObject())
	}
	if m.collider == nil {
		return
	}
	body := m.collider.Body()
	if body == nil || body.Motion == m {
		return
	}
	m.collider.Sync()
	body.Motion = m
}

func (m *MovingPlatform) EarlyUpdate(deltaTime float32) {
	if m.Profile == nil || deltaTime <= 0 {
		m.delta, m.moved = rl.Vector2{}, false
		return
	}
	m.bind()

	m.delta = m.Profile.Step(deltaTime)
	m.moved = true
	m.GetGameObject().Transform.Position = m.Profile.Position()
	if m.collider != nil {
		m.collider.Sync()
	}
}

// DisplacementThisFrame reports how far the platform moved in the current
// frame.
func (m *MovingPlatform) DisplacementThisFrame() (rl.Vector2, bool) {
	return m.delta, m.moved
}
