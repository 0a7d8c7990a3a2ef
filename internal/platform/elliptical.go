package platform

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fullTurn = 2 * math.Pi

// Elliptical moves around an ellipse centred on Center with semi-axes A and B.
type Elliptical struct {
	Center    rl.Vector2
	A, B      float32
	Direction int
	Speed     float32

	angle float64
	prev  rl.Vector2
}

// NewElliptical starts the platform at phase radians along the ellipse.
func NewElliptical(center rl.Vector2, a, b float32, direction int, speed, phase float32) *Elliptical {
	e := &Elliptical{
		Center:    center,
		A:         a,
		B:         b,
		Direction: direction,
		Speed:     speed,
		angle:     float64(phase),
	}
	e.prev = e.at(e.angle)
	return e
}

func (e *Elliptical) at(angle float64) rl.Vector2 {
	return rl.NewVector2(
		e.A*float32(math.Cos(angle))+e.Center.X,
		e.B*float32(math.Sin(angle))+e.Center.Y,
	)
}

func (e *Elliptical) Step(dt float32) rl.Vector2 {
	e.angle = math.Mod(e.angle+float64(float32(e.Direction)*e.Speed*dt), fullTurn)
	next := e.at(e.angle)
	d := rl.Vector2Subtract(next, e.prev)
	e.prev = next
	return d
}

func (e *Elliptical) Position() rl.Vector2 { return e.prev }
