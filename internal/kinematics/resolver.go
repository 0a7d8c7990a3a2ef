package kinematics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Outcome says how a move was committed.
type Outcome int

const (
	// MoveFree: the destination was clear and was taken as is.
	MoveFree Outcome = iota
	// MoveClipped: stopped at the last clear sample before the obstacle.
	MoveClipped
	// MoveNudged: the first sample was already blocked; pushed off the obstacle.
	MoveNudged
	// MoveExhausted: the destination was blocked but no sample was; took the furthest sample.
	MoveExhausted
	// MoveBlocked: the destination was blocked and there were no samples to try.
	MoveBlocked
)

func (o Outcome) String() string {
	switch o {
	case MoveFree:
		return "free"
	case MoveClipped:
		return "clipped"
	case MoveNudged:
		return "nudged"
	case MoveExhausted:
		return "exhausted"
	case MoveBlocked:
		return "blocked"
	}
	return "unknown"
}

// Resolution is the committed result of a move.
type Resolution struct {
	Position rl.Vector2
	Outcome  Outcome
	Obstacle Entity
	// StopFalling asks the caller to clear negative vertical speed.
	StopFalling bool
}

// Resolver applies movement with discrete overlap checks. It does not
// sweep: geometry thinner than one frame of travel can be skipped.
type Resolver struct {
	space       Space
	bounds      Bounds
	solid       Layer
	platform    Layer
	iterations  int
	probeOffset float32
	probeLength float32
}

func NewResolver(space Space, cfg Config) *Resolver {
	return &Resolver{
		space:       space,
		bounds:      cfg.Bounds,
		solid:       cfg.Layers.Solid,
		platform:    cfg.Layers.Solid | cfg.Layers.Platform,
		iterations:  cfg.FreeColliderIterations,
		probeOffset: cfg.PlatformProbeOffset,
		probeLength: cfg.PlatformProbeLength,
	}
}

// Resolve moves an actor at pos by move.
func (r *Resolver) Resolve(pos, move rl.Vector2) Resolution {
	center := r.bounds.WorldCenter(pos)
	furthest := rl.Vector2Add(center, move)

	obstacle, blocked := r.space.OverlapBox(furthest, r.bounds.Size, r.solid)
	if !blocked {
		return Resolution{Position: rl.Vector2Add(pos, move), Outcome: MoveFree}
	}

	free := pos
	for i := 1; i < r.iterations; i++ {
		t := float32(i) / float32(r.iterations)
		try := rl.Vector2Lerp(center, furthest, t)

		if _, hit := r.space.OverlapBox(try, r.bounds.Size, r.solid); hit {
			if i > 1 {
				return Resolution{Position: free, Outcome: MoveClipped, Obstacle: obstacle}
			}

			// Landed on a corner or clipped a ledge with the head.
			away := rl.Vector2Normalize(rl.Vector2Subtract(free, obstacle.Center()))
			return Resolution{
				Position:    rl.Vector2Add(free, rl.Vector2Scale(away, rl.Vector2Length(move))),
				Outcome:     MoveNudged,
				Obstacle:    obstacle,
				StopFalling: true,
			}
		}

		free = rl.Vector2Subtract(try, r.bounds.Center)
	}

	if r.iterations < 2 {
		return Resolution{Position: pos, Outcome: MoveBlocked, Obstacle: obstacle}
	}
	return Resolution{Position: free, Outcome: MoveExhausted, Obstacle: obstacle}
}

// PlatformDisplacement probes down from the left, centre and right of the
// actor and returns the displacement of the first platform found that
// reports one.
func (r *Resolver) PlatformDisplacement(pos rl.Vector2) (rl.Vector2, bool) {
	down := rl.NewVector2(0, -1)
	for _, dx := range [3]float32{-r.probeOffset, 0, r.probeOffset} {
		hit, ok := r.space.Raycast(rl.NewVector2(pos.X+dx, pos.Y), down, r.probeLength, r.platform)
		if !ok {
			continue
		}
		if d, ok := Displacement(hit.Entity); ok {
			return d, true
		}
	}
	return rl.Vector2{}, false
}
