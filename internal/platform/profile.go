// Package platform holds the motion profiles that drive moving platforms.
package platform

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Profile advances a platform along its path. Step returns the displacement
// for this frame; Position is where the platform is after the last Step.
type Profile interface {
	Step(dt float32) rl.Vector2
	Position() rl.Vector2
}

// Spec is the level-file description of a platform path. Which fields are
// read depends on Kind.
type Spec struct {
	Kind  string  `yaml:"kind"`
	Speed float32 `yaml:"speed"`

	// elliptical
	Center    rl.Vector2 `yaml:"center"`
	Radii     rl.Vector2 `yaml:"radii"`
	Direction int        `yaml:"direction"` // 1 anti-clockwise, -1 clockwise
	Phase     float32    `yaml:"phase"`

	// linear
	From rl.Vector2 `yaml:"from"`
	To   rl.Vector2 `yaml:"to"`
}

var ErrUnknownKind = errors.New("unknown platform kind")

// Factory builds a Profile from its Spec.
type Factory func(s Spec) (Profile, error)

var registry = map[string]Factory{}

// Register makes a profile kind available to New.
func Register(kind string, f Factory) {
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("platform kind %q already registered", kind))
	}
	registry[kind] = f
}

// New builds the profile named by s.Kind.
func New(s Spec) (Profile, error) {
	f, ok := registry[s.Kind]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownKind, s.Kind, strings.Join(Kinds(), ", "))
	}
	p, err := f(s)
	if err != nil {
		return nil, fmt.Errorf("%s platform: %w", s.Kind, err)
	}
	return p, nil
}

// Kinds returns the registered kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

func init() {
	Register("elliptical", func(s Spec) (Profile, error) {
		if s.Radii.X < 0 || s.Radii.Y < 0 {
			return nil, fmt.Errorf("radii must be >= 0, got %vx%v", s.Radii.X, s.Radii.Y)
		}
		dir := s.Direction
		switch dir {
		case 0:
			dir = 1
		case 1, -1:
		default:
			return nil, fmt.Errorf("direction must be 1 or -1, got %d", s.Direction)
		}
		return NewElliptical(s.Center, s.Radii.X, s.Radii.Y, dir, s.Speed, s.Phase), nil
	})
	Register("linear", func(s Spec) (Profile, error) {
		if s.From == s.To {
			return nil, errors.New("from and to must differ")
		}
		return NewLinear(s.From, s.To, s.Speed), nil
	})
}
