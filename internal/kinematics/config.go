package kinematics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid controller config")

// Config is the per-actor tuning. Core logic never mutates it.
type Config struct {
	// Walking
	Acceleration   float32 `yaml:"acceleration"`
	MoveClamp      float32 `yaml:"moveClamp"`
	DeAcceleration float32 `yaml:"deAcceleration"`
	ApexBonus      float32 `yaml:"apexBonus"`

	// Gravity. FallClamp is the most negative vertical speed allowed.
	FallClamp    float32 `yaml:"fallClamp"`
	MinFallSpeed float32 `yaml:"minFallSpeed"`
	MaxFallSpeed float32 `yaml:"maxFallSpeed"`

	// Jumping. JumpHeight is the initial upward speed of a jump.
	JumpHeight                  float32 `yaml:"jumpHeight"`
	JumpApexThreshold           float32 `yaml:"jumpApexThreshold"`
	CoyoteTimeThreshold         float32 `yaml:"coyoteTimeThreshold"`
	JumpBuffer                  float32 `yaml:"jumpBuffer"`
	JumpEndEarlyGravityModifier float32 `yaml:"jumpEndEarlyGravityModifier"`

	// Dash
	DashSpeed  float32 `yaml:"dashSpeed"`
	DashLength float32 `yaml:"dashLength"`

	// Collision
	Bounds             Bounds  `yaml:"bounds"`
	Layers             Layers  `yaml:"layers"`
	DetectorCount      int     `yaml:"detectorCount"`
	DetectionRayLength float32 `yaml:"detectionRayLength"`
	RayBuffer          float32 `yaml:"rayBuffer"`

	// Move
	FreeColliderIterations int     `yaml:"freeColliderIterations"`
	PlatformProbeOffset    float32 `yaml:"platformProbeOffset"`
	PlatformProbeLength    float32 `yaml:"platformProbeLength"`

	// ActivationDelay is how long after spawn the controller stays idle so
	// surrounding geometry can settle.
	ActivationDelay float32 `yaml:"activationDelay"`
}

// DefaultConfig returns the stock platformer tuning.
func DefaultConfig() Config {
	return Config{
		Acceleration:   90,
		MoveClamp:      13,
		DeAcceleration: 60,
		ApexBonus:      2,

		FallClamp:    -40,
		MinFallSpeed: 80,
		MaxFallSpeed: 120,

		JumpHeight:                  30,
		JumpApexThreshold:           10,
		CoyoteTimeThreshold:         0.1,
		JumpBuffer:                  0.1,
		JumpEndEarlyGravityModifier: 3,

		DashSpeed:  30,
		DashLength: 0.2,

		Bounds: Bounds{
			Center: rl.NewVector2(0, 0),
			Size:   rl.NewVector2(0.75, 1.25),
		},
		Layers:             DefaultLayers(),
		DetectorCount:      3,
		DetectionRayLength: 0.1,
		RayBuffer:          0.1,

		FreeColliderIterations: 10,
		PlatformProbeOffset:    0.375,
		PlatformProbeLength:    0.8,

		ActivationDelay: 0.5,
	}
}

// Validate reports every problem found, joined.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.MoveClamp >= 0, "moveClamp must be >= 0, got %v", c.MoveClamp)
	check(c.Acceleration >= 0, "acceleration must be >= 0, got %v", c.Acceleration)
	check(c.DeAcceleration >= 0, "deAcceleration must be >= 0, got %v", c.DeAcceleration)
	check(c.FallClamp <= 0, "fallClamp must be <= 0, got %v", c.FallClamp)
	check(c.MinFallSpeed >= 0, "minFallSpeed must be >= 0, got %v", c.MinFallSpeed)
	check(c.MinFallSpeed <= c.MaxFallSpeed, "minFallSpeed %v exceeds maxFallSpeed %v", c.MinFallSpeed, c.MaxFallSpeed)
	check(c.JumpApexThreshold > 0, "jumpApexThreshold must be > 0, got %v", c.JumpApexThreshold)
	check(c.CoyoteTimeThreshold >= 0, "coyoteTimeThreshold must be >= 0, got %v", c.CoyoteTimeThreshold)
	check(c.JumpBuffer >= 0, "jumpBuffer must be >= 0, got %v", c.JumpBuffer)
	check(c.DashLength >= 0, "dashLength must be >= 0, got %v", c.DashLength)
	check(c.Bounds.Size.X > 0 && c.Bounds.Size.Y > 0, "bounds size must be positive, got %vx%v", c.Bounds.Size.X, c.Bounds.Size.Y)
	check(c.DetectorCount >= 1, "detectorCount must be >= 1, got %d", c.DetectorCount)
	check(c.DetectionRayLength > 0, "detectionRayLength must be > 0, got %v", c.DetectionRayLength)
	check(c.RayBuffer >= 0 && 2*c.RayBuffer < c.Bounds.Size.X && 2*c.RayBuffer < c.Bounds.Size.Y,
		"rayBuffer %v must be >= 0 and smaller than half the bounds", c.RayBuffer)
	check(c.FreeColliderIterations >= 1, "freeColliderIterations must be >= 1, got %d", c.FreeColliderIterations)
	check(c.PlatformProbeLength >= 0, "platformProbeLength must be >= 0, got %v", c.PlatformProbeLength)
	check(c.ActivationDelay >= 0, "activationDelay must be >= 0, got %v", c.ActivationDelay)
	check(c.Layers.Solid != LayerNone, "layers.solid must not be empty")

	return errors.Join(errs...)
}
