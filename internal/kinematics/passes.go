package kinematics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (k *Kinematics) walk(t *Tick) {
	st, cfg := &k.State, &k.Config
	if st.Dash.Active {
		return
	}

	if t.Input.X != 0 {
		st.HorizontalSpeed += t.Input.X * cfg.Acceleration * t.DeltaTime
		st.HorizontalSpeed = rl.Clamp(st.HorizontalSpeed, -cfg.MoveClamp, cfg.MoveClamp)

		// Extra air control near the top of a jump.
		st.HorizontalSpeed += sign(t.Input.X) * cfg.ApexBonus * st.Jump.Apex * t.DeltaTime
	} else {
		st.HorizontalSpeed = moveTowards(st.HorizontalSpeed, 0, cfg.DeAcceleration*t.DeltaTime)
	}
	st.HorizontalSpeed = rl.Clamp(st.HorizontalSpeed, -cfg.MoveClamp, cfg.MoveClamp)

	k.StopAtWalls(t.Collision)
}

func (k *Kinematics) apex(t *Tick) {
	st, cfg := &k.State, &k.Config
	if st.Grounded {
		st.Jump.Apex = 0
		return
	}

	st.Jump.Apex = inverseLerp(cfg.JumpApexThreshold, 0, abs(st.VerticalSpeed))
	// Gravity is weakest at the apex.
	st.FallSpeed = rl.Lerp(cfg.MaxFallSpeed, cfg.MinFallSpeed, st.Jump.Apex)
}

func (k *Kinematics) gravity(t *Tick) {
	st, cfg := &k.State, &k.Config
	if st.Grounded {
		if st.VerticalSpeed < 0 {
			st.VerticalSpeed = 0
		}
		return
	}

	fall := st.FallSpeed
	if st.Jump.EndedEarly && st.VerticalSpeed > 0 {
		fall *= cfg.JumpEndEarlyGravityModifier
	}
	st.VerticalSpeed -= fall * t.DeltaTime
	if st.VerticalSpeed < cfg.FallClamp {
		st.VerticalSpeed = cfg.FallClamp
	}
}

func (k *Kinematics) jump(t *Tick) {
	st, cfg := &k.State, &k.Config

	if t.Input.JumpDown && k.canUseCoyote() || k.hasBufferedJump() {
		st.VerticalSpeed = cfg.JumpHeight
		st.Jump.EndedEarly = false
		st.Jump.CoyoteUsable = false
		st.Jump.TimeLeftGrounded = never
		st.Jump.LastPressed = never
		t.Jumping = true
	}

	// Releasing early only strengthens gravity on the next gravity pass.
	if !st.Grounded && t.Input.JumpUp && !st.Jump.EndedEarly && st.VerticalSpeed > 0 {
		st.Jump.EndedEarly = true
	}

	if t.Collision.Blocked(EdgeUp) && st.VerticalSpeed > 0 {
		st.VerticalSpeed = 0
	}
}

func (k *Kinematics) dash(t *Tick) {
	st, cfg := &k.State, &k.Config

	if t.Input.X > 0 {
		st.Facing = 1
	} else if t.Input.X < 0 {
		st.Facing = -1
	}

	if t.Input.DashDown && st.Dash.Available {
		st.Dash.Timer = cfg.DashLength
		// Grounded dashes keep the walk pass running.
		if !st.Grounded {
			st.Dash.Active = true
		}
		st.Dash.Available = false
		st.HorizontalSpeed = st.Facing * cfg.DashSpeed
	}

	if st.Dash.Timer > 0 {
		st.VerticalSpeed = 0
		st.Dash.Timer -= t.DeltaTime
		if st.Dash.Timer <= 0 {
			st.Dash.Timer = 0
			st.Dash.Active = false
		}
	} else {
		st.Dash.Active = false
	}
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// moveTowards steps current toward target by at most maxDelta.
func moveTowards(current, target, maxDelta float32) float32 {
	if abs(target-current) <= maxDelta {
		return target
	}
	return current + sign(target-current)*maxDelta
}

// inverseLerp maps v from [a, b] to [0, 1], clamped.
func inverseLerp(a, b, v float32) float32 {
	if a == b {
		return 0
	}
	return rl.Clamp(rl.Normalize(v, a, b), 0, 1)
}
