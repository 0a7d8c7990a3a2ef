package kinematics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// never is a timestamp older than any simulation time.
var never = float32(math.Inf(-1))

// EdgeFlags holds one contact flag per edge.
type EdgeFlags struct {
	Up, Down, Left, Right bool
}

func (f EdgeFlags) Get(e Edge) bool {
	switch e {
	case EdgeUp:
		return f.Up
	case EdgeDown:
		return f.Down
	case EdgeLeft:
		return f.Left
	case EdgeRight:
		return f.Right
	}
	return false
}

func (f *EdgeFlags) Set(e Edge, v bool) {
	switch e {
	case EdgeUp:
		f.Up = v
	case EdgeDown:
		f.Down = v
	case EdgeLeft:
		f.Left = v
	case EdgeRight:
		f.Right = v
	}
}

func (f EdgeFlags) Any() bool {
	return f.Up || f.Down || f.Left || f.Right
}

// CollisionState is the fresh per-frame result of the prober.
type CollisionState struct {
	Solid    EdgeFlags
	Death    EdgeFlags
	Platform EdgeFlags
}

// Blocked reports a solid or moving-platform contact on edge e.
func (c CollisionState) Blocked(e Edge) bool {
	return c.Solid.Get(e) || c.Platform.Get(e)
}

// Grounded reports whether anything stands under the actor.
func (c CollisionState) Grounded() bool {
	return c.Blocked(EdgeDown)
}

type DashState struct {
	Active    bool
	Timer     float32
	Available bool
}

type JumpState struct {
	CoyoteUsable     bool
	TimeLeftGrounded float32
	LastPressed      float32
	EndedEarly       bool
	// Apex is 1 at the top of a jump and falls to 0 away from it.
	Apex float32
}

// ActorState is everything the controller mutates for one actor.
type ActorState struct {
	Position        rl.Vector2
	Velocity        rl.Vector2
	HorizontalSpeed float32
	VerticalSpeed   float32
	FallSpeed       float32
	Facing          float32
	Grounded        bool
	Dash            DashState
	Jump            JumpState

	// Time is simulation seconds since activation; all timestamps use it.
	Time float32
}

// NewActorState returns a fresh state at start.
func NewActorState(start rl.Vector2, cfg Config) ActorState {
	return ActorState{
		Position:  start,
		FallSpeed: cfg.MinFallSpeed,
		Facing:    1,
		Jump: JumpState{
			TimeLeftGrounded: never,
			LastPressed:      never,
			EndedEarly:       true,
		},
	}
}

// Reset moves the actor back to start and clears its motion. The clock and
// facing direction survive.
func (s *ActorState) Reset(start rl.Vector2, cfg Config) {
	clock, facing := s.Time, s.Facing
	*s = NewActorState(start, cfg)
	s.Time = clock
	s.Facing = facing
}
