package components

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RectRenderer draws a filled rectangle around its GameObject.
type RectRenderer struct {
	engine.BaseComponent
	Color rl.Color
	Size  rl.Vector2
	// Offset moves the rectangle off the GameObject's position.
	Offset rl.Vector2
}

func NewRectRenderer(color rl.Color, size rl.Vector2) *RectRenderer {
	return &RectRenderer{
		Color: color,
		Size:  size,
	}
}

// DrawRect is the rectangle in draw space, where Y points down.
func (r *RectRenderer) DrawRect() rl.Rectangle {
	pos := rl.Vector2Add(r.GetGameObject().WorldPosition(), r.Offset)
	return rl.Rectangle{
		X:      pos.X - r.Size.X/2,
		Y:      -(pos.Y + r.Size.Y/2),
		Width:  r.Size.X,
		Height: r.Size.Y,
	}
}

// Draw must be called inside a 2D camera mode.
func (r *RectRenderer) Draw() {
	g := r.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	rl.DrawRectangleRec(r.DrawRect(), r.Color)
}
