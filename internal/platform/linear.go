package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Linear shuttles between From and To. It turns around once it is at or past
// an endpoint, so it may overshoot by up to one frame of travel.
type Linear struct {
	From, To rl.Vector2
	Speed    float32

	pos     rl.Vector2
	dir     rl.Vector2
	length  float32
	forward bool
}

func NewLinear(from, to rl.Vector2, speed float32) *Linear {
	return &Linear{
		From:    from,
		To:      to,
		Speed:   speed,
		pos:     from,
		dir:     rl.Vector2Normalize(rl.Vector2Subtract(to, from)),
		length:  rl.Vector2Distance(from, to),
		forward: true,
	}
}

// progress is the distance travelled from From, measured along the path.
func (l *Linear) progress() float32 {
	return rl.Vector2DotProduct(rl.Vector2Subtract(l.pos, l.From), l.dir)
}

func (l *Linear) Step(dt float32) rl.Vector2 {
	s := l.progress()
	if s >= l.length {
		l.forward = false
	}
	if s <= 0 {
		l.forward = true
	}

	d := rl.Vector2Scale(l.dir, l.Speed*dt)
	if !l.forward {
		d = rl.Vector2Negate(d)
	}
	l.pos = rl.Vector2Add(l.pos, d)
	return d
}

func (l *Linear) Position() rl.Vector2 { return l.pos }

// Forward reports whether the platform is heading towards To.
func (l *Linear) Forward() bool { return l.forward }
