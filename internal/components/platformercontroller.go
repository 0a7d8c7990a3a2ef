package components

import (
	"go.uber.org/zap"

	"platformer/internal/engine"
	"platformer/internal/kinematics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlatformerController moves its GameObject with a kinematic platformer
// controller. It does not register a collider of its own; the actor only
// queries the world.
type PlatformerController struct {
	engine.BaseComponent
	Config kinematics.Config
	Input  kinematics.InputSource

	Jumped engine.Event
	Landed engine.Event
	// Died fires with the position the actor died at, before it respawns.
	Died engine.EventWithArg[rl.Vector2]

	ctrl  *kinematics.Controller
	frame kinematics.Frame
}

func NewPlatformerController(cfg kinematics.Config, input kinematics.InputSource) *PlatformerController {
	return &PlatformerController{
		Config: cfg,
		Input:  input,
	}
}

func (p *PlatformerController) Start() {
	w := p.World()
	if w == nil || w.Physics() == nil {
		return
	}
	log := w.Logger()
	if log == nil {
		log = zap.NewNop()
	}
	g := p.GetGameObject()
	log = log.Named("controller").With(zap.String("actor", g.Name))

	ctrl, err := kinematics.NewController(w.Physics(), p.Config, g.Transform.Position, log)
	if err != nil {
		log.Error("controller disabled", zap.Error(err))
		return
	}
	p.ctrl = ctrl
}

func (p *PlatformerController) Update(deltaTime float32) {
	if p.ctrl == nil {
		return
	}
	var in kinematics.FrameInput
	if p.Input != nil {
		in = p.Input.Sample()
	}

	g := p.GetGameObject()
	before := g.Transform.Position
	p.frame = p.ctrl.Update(in, deltaTime)
	g.Transform.Position = p.ctrl.Position()

	switch {
	case p.frame.Died:
		p.Died.Invoke(before)
	case p.frame.Landing:
		p.Landed.Invoke()
	}
	if p.frame.Jumping {
		p.Jumped.Invoke()
	}
}

// Configure retunes a running controller. Before Start it only replaces
// Config.
func (p *PlatformerController) Configure(cfg kinematics.Config) error {
	if p.ctrl != nil {
		if err := p.ctrl.Configure(cfg); err != nil {
			return err
		}
	} else if err := cfg.Validate(); err != nil {
		return err
	}
	p.Config = cfg
	return nil
}

// Respawn sends the actor back to where it started.
func (p *PlatformerController) Respawn() {
	if p.ctrl == nil {
		return
	}
	p.ctrl.Respawn()
	p.GetGameObject().Transform.Position = p.ctrl.Position()
}

// Controller is nil if the component never started or its config was
// rejected.
func (p *PlatformerController) Controller() *kinematics.Controller { return p.ctrl }

// Frame returns the result of the last Update.
func (p *PlatformerController) Frame() kinematics.Frame { return p.frame }
