package kinematics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tick is the per-frame context handed to every pass.
type Tick struct {
	Input     FrameInput
	Collision CollisionState
	DeltaTime float32

	// Jumping is set by the jump pass when a jump fired this tick.
	Jumping bool
}

// Pass is one stage of the kinematics pipeline.
type Pass struct {
	Name string
	Run  func(k *Kinematics, t *Tick)
}

// Pipeline is the evaluation order. Later passes override earlier ones:
// apex must run before gravity, gravity before jump, jump before dash.
var Pipeline = []Pass{
	{Name: "walk", Run: (*Kinematics).walk},
	{Name: "apex", Run: (*Kinematics).apex},
	{Name: "gravity", Run: (*Kinematics).gravity},
	{Name: "jump", Run: (*Kinematics).jump},
	{Name: "dash", Run: (*Kinematics).dash},
}

// Kinematics owns the speeds and the walk/gravity/jump/dash state.
type Kinematics struct {
	Config Config
	State  ActorState
}

func NewKinematics(cfg Config, start rl.Vector2) *Kinematics {
	return &Kinematics{
		Config: cfg,
		State:  NewActorState(start, cfg),
	}
}

// BeginFrame advances the clock and folds this frame's probe result into the
// state. It must run before Evaluate. Returns true on the landing frame.
func (k *Kinematics) BeginFrame(in FrameInput, col CollisionState, dt float32) bool {
	st := &k.State
	st.Time += dt

	// Grounded here is still last frame's value.
	if st.Grounded {
		st.Dash.Available = true
	}

	if in.JumpDown {
		st.Jump.LastPressed = st.Time
	}

	tr := GroundTransition(st.Grounded, col.Grounded())
	if tr.Left {
		st.Jump.TimeLeftGrounded = st.Time
	}
	if tr.Landed {
		st.Jump.CoyoteUsable = true
	}
	st.Grounded = col.Grounded()

	return tr.Landed
}

// Evaluate runs the pipeline over t and returns the raw movement vector.
func (k *Kinematics) Evaluate(t *Tick) rl.Vector2 {
	for _, p := range Pipeline {
		p.Run(k, t)
	}
	return k.RawMovement(t.DeltaTime)
}

// RawMovement is the frame displacement before collision correction.
func (k *Kinematics) RawMovement(dt float32) rl.Vector2 {
	return rl.NewVector2(k.State.HorizontalSpeed*dt, k.State.VerticalSpeed*dt)
}

// StopAtWalls zeroes horizontal speed pointing into a blocked side.
func (k *Kinematics) StopAtWalls(col CollisionState) {
	h := k.State.HorizontalSpeed
	if h > 0 && col.Blocked(EdgeRight) || h < 0 && col.Blocked(EdgeLeft) {
		k.State.HorizontalSpeed = 0
	}
}

func (k *Kinematics) canUseCoyote() bool {
	st := &k.State
	return st.Jump.CoyoteUsable && !st.Grounded && st.Jump.TimeLeftGrounded+k.Config.CoyoteTimeThreshold > st.Time
}

func (k *Kinematics) hasBufferedJump() bool {
	st := &k.State
	return st.Grounded && st.Jump.LastPressed+k.Config.JumpBuffer > st.Time
}
