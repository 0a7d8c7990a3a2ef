package kinematics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Frame is what one Update exposes to presentation layers.
type Frame struct {
	Velocity    rl.Vector2
	RawMovement rl.Vector2
	Platform    rl.Vector2
	Jumping     bool
	Landing     bool
	Grounded    bool
	Died        bool
	Outcome     Outcome
	Collision   CollisionState
}

// Controller runs the per-frame pipeline for a single actor:
// probe, kinematics, then move resolution.
type Controller struct {
	cfg      Config
	start    rl.Vector2
	space    Space
	kin      *Kinematics
	prober   *Prober
	resolver *Resolver
	log      *zap.Logger

	active       bool
	warmup       float32
	lastPosition rl.Vector2
	last         Frame
}

// NewController validates cfg and places a new actor at start.
// A nil logger disables logging.
func NewController(space Space, cfg Config, start rl.Vector2, log *zap.Logger) (*Controller, error) {
	if space == nil {
		return nil, errors.New("new controller: nil space")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := &Controller{
		start:        start,
		space:        space,
		log:          log,
		lastPosition: start,
	}
	c.apply(cfg)
	c.kin = NewKinematics(cfg, start)
	return c, nil
}

func (c *Controller) apply(cfg Config) {
	c.cfg = cfg
	c.prober = NewProber(c.space, cfg.Layers, cfg.DetectorCount, cfg.DetectionRayLength, cfg.RayBuffer)
	c.resolver = NewResolver(c.space, cfg)
	if c.kin != nil {
		c.kin.Config = cfg
	}
}

// Configure swaps the tuning between frames.
func (c *Controller) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configure controller: %w", err)
	}
	c.apply(cfg)
	return nil
}

func (c *Controller) Config() Config            { return c.cfg }
func (c *Controller) State() ActorState         { return c.kin.State }
func (c *Controller) Position() rl.Vector2      { return c.kin.State.Position }
func (c *Controller) StartPosition() rl.Vector2 { return c.start }
func (c *Controller) Active() bool              { return c.active }
func (c *Controller) Last() Frame               { return c.last }

// Respawn puts the actor back at its start position with no motion.
func (c *Controller) Respawn() {
	c.kin.State.Reset(c.start, c.cfg)
	c.lastPosition = c.start
}

// Update advances the actor by one tick.
func (c *Controller) Update(in FrameInput, dt float32) Frame {
	if dt <= 0 {
		return c.last
	}
	if !c.active {
		c.warmup += dt
		if c.warmup < c.cfg.ActivationDelay {
			return Frame{}
		}
		c.active = true
		c.log.Debug("controller active", zap.Float32("x", c.Position().X), zap.Float32("y", c.Position().Y))
	}

	in = in.Clamped()
	st := &c.kin.State

	st.Velocity = rl.Vector2Scale(rl.Vector2Subtract(st.Position, c.lastPosition), 1/dt)
	c.lastPosition = st.Position

	col := c.prober.Run(st.Position, c.cfg.Bounds)
	landing := c.kin.BeginFrame(in, col, dt)

	if col.Death.Any() {
		c.log.Debug("death contact, respawning",
			zap.Float32("x", st.Position.X),
			zap.Float32("y", st.Position.Y),
			zap.Float32("time", st.Time))
		vel := st.Velocity
		c.Respawn()
		c.last = Frame{Velocity: vel, Died: true, Collision: col}
		return c.last
	}

	tick := Tick{Input: in, Collision: col, DeltaTime: dt}
	c.kin.Evaluate(&tick)

	// A dash started this tick may point into a wall the walk pass never saw.
	c.kin.StopAtWalls(col)
	raw := c.kin.RawMovement(dt)

	platform, _ := c.resolver.PlatformDisplacement(st.Position)
	res := c.resolver.Resolve(st.Position, rl.Vector2Add(raw, platform))
	if res.StopFalling && st.VerticalSpeed < 0 {
		st.VerticalSpeed = 0
	}
	if res.Outcome == MoveExhausted {
		c.log.Debug("no blocked sample along move, committing furthest sample",
			zap.Float32("dx", raw.X+platform.X),
			zap.Float32("dy", raw.Y+platform.Y))
	}
	st.Position = res.Position

	c.last = Frame{
		Velocity:    st.Velocity,
		RawMovement: raw,
		Platform:    platform,
		Jumping:     tick.Jumping,
		Landing:     landing,
		Grounded:    st.Grounded,
		Outcome:     res.Outcome,
		Collision:   col,
	}
	return c.last
}
