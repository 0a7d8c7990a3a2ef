package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Body     *Body
	Point    rl.Vector2
	Normal   rl.Vector2
	Distance float32
}

// raycastBox is a slab test. A ray starting inside the box hits it at
// distance 0; a ray grazing an edge counts as a hit.
func raycastBox(origin, direction rl.Vector2, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max

	tmin := float32(0)
	tmax := maxDistance

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	point := rl.Vector2Add(origin, rl.Vector2Scale(direction, tmin))

	// Calculate normal based on which face was hit
	var normal rl.Vector2
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector2{X: -1}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector2{X: 1}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector2{Y: -1}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector2{Y: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: tmin}, true
}
