package kinematics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FrameInput is sampled once per tick. The button fields are edges: they are
// true only on the frame the button went down or up.
type FrameInput struct {
	X        float32
	JumpDown bool
	JumpUp   bool
	DashDown bool
	DashUp   bool
}

// InputSource produces one FrameInput per tick.
type InputSource interface {
	Sample() FrameInput
}

// Clamped returns the input with X limited to [-1, 1].
func (in FrameInput) Clamped() FrameInput {
	in.X = rl.Clamp(in.X, -1, 1)
	return in
}
