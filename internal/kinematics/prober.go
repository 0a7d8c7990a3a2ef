package kinematics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prober casts edge-sampled rays around the actor's bounds.
type Prober struct {
	space     Space
	layers    Layers
	count     int
	length    float32
	rayBuffer float32
}

// NewProber builds a prober over space. Layer masks are fixed here.
func NewProber(space Space, layers Layers, detectorCount int, rayLength, rayBuffer float32) *Prober {
	return &Prober{
		space:     space,
		layers:    layers,
		count:     detectorCount,
		length:    rayLength,
		rayBuffer: rayBuffer,
	}
}

// Probe reports whether any detector along r hits geometry in mask.
func (p *Prober) Probe(r Ray, mask Layer) bool {
	return ProbeLine(p.space, r, p.count, p.length, mask)
}

// Run probes all four edges for every category the kinematics consume.
func (p *Prober) Run(pos rl.Vector2, b Bounds) CollisionState {
	rays := b.Rays(pos, p.rayBuffer)

	var col CollisionState
	for _, e := range Edges {
		col.Solid.Set(e, p.Probe(rays[e], p.layers.Solid))
		col.Death.Set(e, p.Probe(rays[e], p.layers.Death))
		col.Platform.Set(e, p.Probe(rays[e], p.layers.Platform))
	}
	return col
}

// Transition describes how the grounded flag changed between two frames.
type Transition struct {
	Landed bool
	Left   bool
}

func GroundTransition(wasGrounded, grounded bool) Transition {
	return Transition{
		Landed: !wasGrounded && grounded,
		Left:   wasGrounded && !grounded,
	}
}
