package engine

import (
	"math"
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is in simulation space: Y points up.
type Transform struct {
	Position rl.Vector2
	Rotation float32 // degrees, counter-clockwise
	Scale    rl.Vector2
}

var uidCounter atomic.Uint64

// NextUID hands out process-unique GameObject ids. 0 is never returned.
func NextUID() uint64 {
	return uidCounter.Add(1)
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    NextUID(),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector2{X: 1, Y: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// AddComponent attaches c. If the object has already started, c starts
// immediately.
func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T on g.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) EarlyUpdate(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if e, ok := c.(EarlyUpdater); ok {
			e.EarlyUpdate(deltaTime)
		}
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) destroy() {
	for _, c := range g.components {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector2 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale, then rotate.
	scaled := rl.Vector2{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
	}
	angle := float32(float64(g.Parent.WorldRotation()) * math.Pi / 180)
	return rl.Vector2Add(parentPos, rl.Vector2Rotate(scaled, angle))
}

func (g *GameObject) WorldRotation() float32 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation() + g.Transform.Rotation
}

func (g *GameObject) WorldScale() rl.Vector2 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector2{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
	}
}
