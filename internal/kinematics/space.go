package kinematics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Entity is a piece of tagged geometry returned by a Space query.
type Entity interface {
	Layer() Layer
	Center() rl.Vector2
}

// Mover is implemented by geometry that moves by itself every frame.
// The bool is false when the entity has no displacement to report.
type Mover interface {
	DisplacementThisFrame() (rl.Vector2, bool)
}

// Hit describes the closest intersection of a ray cast.
type Hit struct {
	Entity   Entity
	Point    rl.Vector2
	Distance float32
}

// Space answers ray and overlap queries against tagged geometry.
// Only geometry whose layer shares a bit with mask is considered.
type Space interface {
	Raycast(origin, dir rl.Vector2, length float32, mask Layer) (Hit, bool)
	OverlapBox(center, size rl.Vector2, mask Layer) (Entity, bool)
}

// Displacement returns what e moved this frame. The second result is false
// when e is not a Mover or has nothing to report.
func Displacement(e Entity) (rl.Vector2, bool) {
	if e == nil {
		return rl.Vector2{}, false
	}
	m, ok := e.(Mover)
	if !ok {
		return rl.Vector2{}, false
	}
	return m.DisplacementThisFrame()
}

// ProbeLine casts count rays of the given length from points spread along r
// and reports whether any of them hit geometry in mask.
func ProbeLine(space Space, r Ray, count int, length float32, mask Layer) bool {
	if count < 1 || mask == LayerNone {
		return false
	}
	for i := 0; i < count; i++ {
		if _, ok := space.Raycast(r.Sample(i, count), r.Dir, length, mask); ok {
			return true
		}
	}
	return false
}
