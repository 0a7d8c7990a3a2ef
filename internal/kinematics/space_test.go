package kinematics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// box is static geometry for the fake space.
type box struct {
	name   string
	center rl.Vector2
	size   rl.Vector2
	layer  Layer
}

func (b *box) Layer() Layer       { return b.layer }
func (b *box) Center() rl.Vector2 { return b.center }

// platformBox reports a fixed displacement every frame.
type platformBox struct {
	box
	delta rl.Vector2
}

func (p *platformBox) DisplacementThisFrame() (rl.Vector2, bool) { return p.delta, true }

type geometry interface {
	Entity
	bounds() (lo, hi rl.Vector2)
}

func (b *box) bounds() (rl.Vector2, rl.Vector2) {
	half := rl.Vector2Scale(b.size, 0.5)
	return rl.Vector2Subtract(b.center, half), rl.Vector2Add(b.center, half)
}

// fakeSpace is a brute-force Space with query counters.
type fakeSpace struct {
	items    []geometry
	raycasts int
	overlaps int

	// overlapFn, when set, replaces the geometric overlap test.
	overlapFn func(center rl.Vector2) (Entity, bool)
}

func (s *fakeSpace) add(g geometry) { s.items = append(s.items, g) }

func (s *fakeSpace) Raycast(origin, dir rl.Vector2, length float32, mask Layer) (Hit, bool) {
	s.raycasts++
	best := Hit{Distance: length}
	found := false
	for _, g := range s.items {
		if !g.Layer().Has(mask) {
			continue
		}
		lo, hi := g.bounds()
		tmin, tmax := float32(0), length
		miss := false
		for _, axis := range [2][4]float32{
			{origin.X, dir.X, lo.X, hi.X},
			{origin.Y, dir.Y, lo.Y, hi.Y},
		} {
			o, d, l, h := axis[0], axis[1], axis[2], axis[3]
			if d == 0 {
				if o < l || o > h {
					miss = true
					break
				}
				continue
			}
			t1, t2 := (l-o)/d, (h-o)/d
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
			if tmin > tmax {
				miss = true
				break
			}
		}
		if miss || tmin > best.Distance || (found && tmin == best.Distance) {
			continue
		}
		best = Hit{Entity: g, Point: rl.Vector2Add(origin, rl.Vector2Scale(dir, tmin)), Distance: tmin}
		found = true
	}
	return best, found
}

func (s *fakeSpace) OverlapBox(center, size rl.Vector2, mask Layer) (Entity, bool) {
	s.overlaps++
	if s.overlapFn != nil {
		return s.overlapFn(center)
	}
	for _, g := range s.items {
		if !g.Layer().Has(mask) {
			continue
		}
		lo, hi := g.bounds()
		if center.X-size.X/2 < hi.X && center.X+size.X/2 > lo.X &&
			center.Y-size.Y/2 < hi.Y && center.Y+size.Y/2 > lo.Y {
			return g, true
		}
	}
	return nil, false
}

func newBox(name string, cx, cy, w, h float32, layer Layer) *box {
	return &box{name: name, center: rl.NewVector2(cx, cy), size: rl.NewVector2(w, h), layer: layer}
}

// floorSpace has a wide floor whose top surface sits at y = 0.
func floorSpace() *fakeSpace {
	s := &fakeSpace{}
	s.add(newBox("floor", 0, -1, 40, 2, LayerGround))
	return s
}

// restY is the actor position that puts default bounds exactly on y = 0.
const restY = 0.625

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ActivationDelay = 0
	return cfg
}
