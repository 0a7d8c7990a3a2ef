package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/kinematics"
)

type tuningField struct {
	label    string
	min, max float32
	field    func(c *kinematics.Config) *float32
}

var tuningFields = []tuningField{
	{"Acceleration", 0, 200, func(c *kinematics.Config) *float32 { return &c.Acceleration }},
	{"Move clamp", 1, 40, func(c *kinematics.Config) *float32 { return &c.MoveClamp }},
	{"Deceleration", 0, 200, func(c *kinematics.Config) *float32 { return &c.DeAcceleration }},
	{"Apex bonus", 0, 10, func(c *kinematics.Config) *float32 { return &c.ApexBonus }},
	{"Fall clamp", -100, -1, func(c *kinematics.Config) *float32 { return &c.FallClamp }},
	{"Min fall", 1, 300, func(c *kinematics.Config) *float32 { return &c.MinFallSpeed }},
	{"Max fall", 1, 300, func(c *kinematics.Config) *float32 { return &c.MaxFallSpeed }},
	{"Jump height", 1, 80, func(c *kinematics.Config) *float32 { return &c.JumpHeight }},
	{"Apex threshold", 0.5, 40, func(c *kinematics.Config) *float32 { return &c.JumpApexThreshold }},
	{"Coyote time", 0, 0.5, func(c *kinematics.Config) *float32 { return &c.CoyoteTimeThreshold }},
	{"Jump buffer", 0, 0.5, func(c *kinematics.Config) *float32 { return &c.JumpBuffer }},
	{"Early end", 1, 10, func(c *kinematics.Config) *float32 { return &c.JumpEndEarlyGravityModifier }},
	{"Dash speed", 0, 80, func(c *kinematics.Config) *float32 { return &c.DashSpeed }},
	{"Dash length", 0, 1, func(c *kinematics.Config) *float32 { return &c.DashLength }},
}

// TuningPanel edits a copy of the actor config with raygui sliders.
type TuningPanel struct {
	Visible   bool
	ShowProbe bool
	Bounds    rl.Rectangle
}

func NewTuningPanel() *TuningPanel {
	return &TuningPanel{
		Bounds: rl.Rectangle{X: 10, Y: 90, Width: 330, Height: float32(len(tuningFields))*24 + 70},
	}
}

// Draw returns the edited config and whether anything changed.
func (p *TuningPanel) Draw(cfg kinematics.Config) (kinematics.Config, bool) {
	if !p.Visible {
		return cfg, false
	}
	rl.DrawRectangleRec(p.Bounds, colorBgPanel)
	rl.DrawRectangleLinesEx(p.Bounds, 1, colorAccent)
	rl.DrawText("Tuning (F2)", int32(p.Bounds.X)+10, int32(p.Bounds.Y)+8, 16, colorTextPrimary)

	out := cfg
	labelW := float32(110)
	y := p.Bounds.Y + 32
	for _, f := range tuningFields {
		v := f.field(&out)
		rl.DrawText(f.label, int32(p.Bounds.X)+10, int32(y)+4, 14, colorTextMuted)
		bounds := rl.Rectangle{X: p.Bounds.X + 10 + labelW, Y: y, Width: p.Bounds.Width - labelW - 70, Height: 18}
		*v = gui.Slider(bounds, "", fmt.Sprintf("%.2f", *v), *v, f.min, f.max)
		y += 24
	}

	probeBounds := rl.Rectangle{X: p.Bounds.X + 10, Y: y + 6, Width: 18, Height: 18}
	p.ShowProbe = gui.CheckBox(probeBounds, "Show probes", p.ShowProbe)

	return out, out != cfg
}
