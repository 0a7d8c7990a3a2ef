package physics

import (
	"math"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/solarlune/resolv"

	"platformer/internal/kinematics"
)

// Space units per world unit. resolv sizes its cells in whole units, so
// geometry is scaled up before it reaches the hash.
const spaceScale = 100

// Padding added around every broad-phase box, in space units. It absorbs
// float truncation at cell edges.
const spacePad = 2

// DefaultCellSize is the broad-phase cell edge in world units.
const DefaultCellSize = 4

const bodyTag = "body"

// Motion is implemented by whatever drives a moving body.
type Motion interface {
	DisplacementThisFrame() (rl.Vector2, bool)
}

// Body is a tagged axis-aligned box registered with a World.
type Body struct {
	Name string
	// Data is owner-defined; the engine stores the GameObject here.
	Data   any
	Motion Motion

	id     uint64
	layer  kinematics.Layer
	bounds AABB
	obj    *resolv.Object
	world  *World
}

func NewBody(name string, layer kinematics.Layer, center, size rl.Vector2) *Body {
	return &Body{
		Name:   name,
		layer:  layer,
		bounds: NewAABBFromCenter(center, size),
	}
}

func (b *Body) Layer() kinematics.Layer { return b.layer }
func (b *Body) Center() rl.Vector2      { return b.bounds.Center() }
func (b *Body) Size() rl.Vector2        { return b.bounds.Size() }
func (b *Body) Bounds() AABB            { return b.bounds }

// DisplacementThisFrame forwards to Motion; static bodies report nothing.
func (b *Body) DisplacementThisFrame() (rl.Vector2, bool) {
	if b.Motion == nil {
		return rl.Vector2{}, false
	}
	return b.Motion.DisplacementThisFrame()
}

var (
	_ kinematics.Entity = (*Body)(nil)
	_ kinematics.Mover  = (*Body)(nil)
	_ kinematics.Space  = (*World)(nil)
)

// World answers the controller's ray and overlap queries. A resolv spatial
// hash does the broad phase; exact box math does the rest.
type World struct {
	space  *resolv.Space
	region AABB
	query  *resolv.Object

	bodies  []*Body
	outside map[*Body]bool
	nextID  uint64
}

// NewWorld covers region with a spatial hash of cellSize world units.
// Bodies outside region still work but are checked linearly.
func NewWorld(region AABB, cellSize float32) *World {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	cell := int(math.Ceil(float64(cellSize * spaceScale)))
	size := region.Size()
	width := int(math.Ceil(float64(size.X*spaceScale))) + cell
	height := int(math.Ceil(float64(size.Y*spaceScale))) + cell

	w := &World{
		space:   resolv.NewSpace(width, height, cell, cell),
		region:  region,
		outside: make(map[*Body]bool),
	}
	w.query = resolv.NewObject(0, 0, 1, 1, "query")
	w.space.Add(w.query)
	return w
}

func (w *World) Region() AABB { return w.region }

// Bodies returns every registered body in insertion order.
func (w *World) Bodies() []*Body { return w.bodies }

func (w *World) Add(b *Body) {
	if b.world != nil {
		return
	}
	w.nextID++
	b.id = w.nextID
	b.world = w
	b.obj = resolv.NewObject(0, 0, 1, 1, bodyTag, b.layer.String())
	b.obj.Data = b
	w.bodies = append(w.bodies, b)

	w.place(b.obj, b.bounds)
	w.space.Add(b.obj)
	w.track(b)
}

func (w *World) Remove(b *Body) {
	if b.world != w {
		return
	}
	w.space.Remove(b.obj)
	delete(w.outside, b)
	if i := slices.Index(w.bodies, b); i >= 0 {
		w.bodies = slices.Delete(w.bodies, i, i+1)
	}
	b.world = nil
	b.obj = nil
}

// Move places b's centre at center.
func (w *World) Move(b *Body, center rl.Vector2) {
	b.bounds = NewAABBFromCenter(center, b.bounds.Size())
	if b.world != w {
		return
	}
	w.place(b.obj, b.bounds)
	b.obj.Update()
	w.track(b)
}

func (w *World) track(b *Body) {
	if w.region.Contains(b.bounds) {
		delete(w.outside, b)
	} else {
		w.outside[b] = true
	}
}

// place maps a world box onto a resolv object.
func (w *World) place(obj *resolv.Object, box AABB) {
	obj.X = float64(box.Min.X-w.region.Min.X)*spaceScale - spacePad
	obj.Y = float64(box.Min.Y-w.region.Min.Y)*spaceScale - spacePad
	obj.W = float64(box.Max.X-box.Min.X)*spaceScale + 2*spacePad
	obj.H = float64(box.Max.Y-box.Min.Y)*spaceScale + 2*spacePad
}

// candidates returns bodies whose cells touch box, ordered by insertion.
func (w *World) candidates(box AABB, mask kinematics.Layer) []*Body {
	var out []*Body
	if mask == kinematics.LayerNone {
		return out
	}

	w.place(w.query, box)
	w.query.Update()
	if col := w.query.Check(0, 0, bodyTag); col != nil {
		for _, obj := range col.Objects {
			if b, ok := obj.Data.(*Body); ok && b.layer.Has(mask) {
				out = append(out, b)
			}
		}
	}
	for b := range w.outside {
		if b.layer.Has(mask) && !slices.Contains(out, b) {
			out = append(out, b)
		}
	}

	slices.SortFunc(out, func(a, b *Body) int {
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	})
	return out
}

// RaycastBody returns the closest body in mask hit by the ray. dir is
// normalised first.
func (w *World) RaycastBody(origin, dir rl.Vector2, length float32, mask kinematics.Layer) (RaycastHit, bool) {
	dir = rl.Vector2Normalize(dir)
	end := rl.Vector2Add(origin, rl.Vector2Scale(dir, length))
	sweep := AABB{Min: origin, Max: origin}.Union(AABB{Min: end, Max: end})

	closest := RaycastHit{Distance: length}
	hit := false
	for _, b := range w.candidates(sweep, mask) {
		h, ok := raycastBox(origin, dir, b.bounds, length)
		if !ok {
			continue
		}
		// Ties keep the earlier body.
		if !hit || h.Distance < closest.Distance {
			closest = h
			closest.Body = b
			hit = true
		}
	}
	return closest, hit
}

func (w *World) Raycast(origin, dir rl.Vector2, length float32, mask kinematics.Layer) (kinematics.Hit, bool) {
	h, ok := w.RaycastBody(origin, dir, length, mask)
	if !ok {
		return kinematics.Hit{}, false
	}
	return kinematics.Hit{Entity: h.Body, Point: h.Point, Distance: h.Distance}, true
}

// OverlapBody returns the first body in mask whose box strictly overlaps
// the query box.
func (w *World) OverlapBody(center, size rl.Vector2, mask kinematics.Layer) (*Body, bool) {
	box := NewAABBFromCenter(center, size)
	for _, b := range w.candidates(box, mask) {
		if box.Overlaps(b.bounds) {
			return b, true
		}
	}
	return nil, false
}

func (w *World) OverlapBox(center, size rl.Vector2, mask kinematics.Layer) (kinematics.Entity, bool) {
	b, ok := w.OverlapBody(center, size, mask)
	if !ok {
		return nil, false
	}
	return b, true
}
