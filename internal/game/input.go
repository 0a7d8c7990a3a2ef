package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/kinematics"
)

// Bindings maps actions to keys. Any key in a list triggers the action.
type Bindings struct {
	Left  []int32
	Right []int32
	Jump  []int32
	Dash  []int32
}

func DefaultBindings() Bindings {
	return Bindings{
		Left:  []int32{rl.KeyA, rl.KeyLeft},
		Right: []int32{rl.KeyD, rl.KeyRight},
		Jump:  []int32{rl.KeySpace, rl.KeyW, rl.KeyUp},
		Dash:  []int32{rl.KeyLeftShift, rl.KeyX},
	}
}

// KeyState is the part of the keyboard the input source reads.
type KeyState interface {
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
	IsKeyReleased(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) IsKeyDown(key int32) bool     { return rl.IsKeyDown(key) }
func (raylibKeys) IsKeyPressed(key int32) bool  { return rl.IsKeyPressed(key) }
func (raylibKeys) IsKeyReleased(key int32) bool { return rl.IsKeyReleased(key) }

// KeyboardInput samples the keyboard once per frame.
type KeyboardInput struct {
	Bindings Bindings
	keys     KeyState
}

func NewKeyboardInput(b Bindings) *KeyboardInput {
	return &KeyboardInput{Bindings: b, keys: raylibKeys{}}
}

var _ kinematics.InputSource = (*KeyboardInput)(nil)

func (k *KeyboardInput) Sample() kinematics.FrameInput {
	var in kinematics.FrameInput
	if k.any(k.Bindings.Left, k.keys.IsKeyDown) {
		in.X--
	}
	if k.any(k.Bindings.Right, k.keys.IsKeyDown) {
		in.X++
	}
	in.JumpDown = k.any(k.Bindings.Jump, k.keys.IsKeyPressed)
	in.JumpUp = k.any(k.Bindings.Jump, k.keys.IsKeyReleased)
	in.DashDown = k.any(k.Bindings.Dash, k.keys.IsKeyPressed)
	in.DashUp = k.any(k.Bindings.Dash, k.keys.IsKeyReleased)
	return in
}

func (k *KeyboardInput) any(keys []int32, check func(int32) bool) bool {
	for _, key := range keys {
		if check(key) {
			return true
		}
	}
	return false
}
