package kinematics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bounds is the actor's axis-aligned box relative to its position.
type Bounds struct {
	Center rl.Vector2 `yaml:"center"`
	Size   rl.Vector2 `yaml:"size"`
}

// Min returns the lower-left corner of the box placed at pos.
func (b Bounds) Min(pos rl.Vector2) rl.Vector2 {
	return rl.NewVector2(pos.X+b.Center.X-b.Size.X/2, pos.Y+b.Center.Y-b.Size.Y/2)
}

// Max returns the upper-right corner of the box placed at pos.
func (b Bounds) Max(pos rl.Vector2) rl.Vector2 {
	return rl.NewVector2(pos.X+b.Center.X+b.Size.X/2, pos.Y+b.Center.Y+b.Size.Y/2)
}

// WorldCenter returns the box centre placed at pos.
func (b Bounds) WorldCenter(pos rl.Vector2) rl.Vector2 {
	return rl.Vector2Add(pos, b.Center)
}

type Edge int

const (
	EdgeUp Edge = iota
	EdgeDown
	EdgeLeft
	EdgeRight
)

// Edges lists every edge in probe order.
var Edges = [4]Edge{EdgeUp, EdgeDown, EdgeLeft, EdgeRight}

func (e Edge) String() string {
	switch e {
	case EdgeUp:
		return "up"
	case EdgeDown:
		return "down"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return "unknown"
}

// Ray is an edge segment plus the outward direction its probes are cast in.
type Ray struct {
	Start rl.Vector2
	End   rl.Vector2
	Dir   rl.Vector2
}

// Sample returns the i-th of count points spread evenly from Start to End,
// both ends included. A single detector sits on the segment midpoint.
func (r Ray) Sample(i, count int) rl.Vector2 {
	if count <= 1 {
		return rl.Vector2Lerp(r.Start, r.End, 0.5)
	}
	t := float32(i) / float32(count-1)
	return rl.Vector2Lerp(r.Start, r.End, t)
}

// Samples returns all detector origins for count detectors; nil when count < 1.
func (r Ray) Samples(count int) []rl.Vector2 {
	if count < 1 {
		return nil
	}
	points := make([]rl.Vector2, count)
	for i := range points {
		points[i] = r.Sample(i, count)
	}
	return points
}

// RaySet holds one Ray per edge, indexed by Edge.
type RaySet [4]Ray

// Rays builds the probe segments around the box at pos. Segments are inset
// by buffer so side detectors do not graze the floor or ceiling.
func (b Bounds) Rays(pos rl.Vector2, buffer float32) RaySet {
	lo, hi := b.Min(pos), b.Max(pos)

	var rs RaySet
	rs[EdgeUp] = Ray{
		Start: rl.NewVector2(lo.X+buffer, hi.Y),
		End:   rl.NewVector2(hi.X-buffer, hi.Y),
		Dir:   rl.NewVector2(0, 1),
	}
	rs[EdgeDown] = Ray{
		Start: rl.NewVector2(lo.X+buffer, lo.Y),
		End:   rl.NewVector2(hi.X-buffer, lo.Y),
		Dir:   rl.NewVector2(0, -1),
	}
	rs[EdgeLeft] = Ray{
		Start: rl.NewVector2(lo.X, lo.Y+buffer),
		End:   rl.NewVector2(lo.X, hi.Y-buffer),
		Dir:   rl.NewVector2(-1, 0),
	}
	rs[EdgeRight] = Ray{
		Start: rl.NewVector2(hi.X, lo.Y+buffer),
		End:   rl.NewVector2(hi.X, hi.Y-buffer),
		Dir:   rl.NewVector2(1, 0),
	}
	return rs
}
