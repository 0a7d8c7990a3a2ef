package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector2
	Max rl.Vector2
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector2) AABB {
	half := rl.Vector2{X: abs(size.X) / 2, Y: abs(size.Y) / 2}
	return AABB{
		Min: rl.Vector2Subtract(center, half),
		Max: rl.Vector2Add(center, half),
	}
}

func (a AABB) Center() rl.Vector2 {
	return rl.Vector2Scale(rl.Vector2Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector2 {
	return rl.Vector2Subtract(a.Max, a.Min)
}

// Overlaps is the strict test: boxes that only share an edge do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// Contains reports whether b lies fully inside a.
func (a AABB) Contains(b AABB) bool {
	return b.Min.X >= a.Min.X && b.Max.X <= a.Max.X &&
		b.Min.Y >= a.Min.Y && b.Max.Y <= a.Max.Y
}

// Union returns the smallest box holding both.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: rl.Vector2{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y)},
		Max: rl.Vector2{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y)},
	}
}

// Expand grows the box by margin on every side.
func (a AABB) Expand(margin float32) AABB {
	m := rl.Vector2{X: margin, Y: margin}
	return AABB{Min: rl.Vector2Subtract(a.Min, m), Max: rl.Vector2Add(a.Max, m)}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
