package world

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"platformer/internal/kinematics"
	"platformer/internal/physics"
	"platformer/internal/platform"
)

// --- YAML types ---

// Level is a level file: static blocks, moving platforms and one actor.
type Level struct {
	Name string `yaml:"name"`
	// CellSize is the broad-phase cell edge; 0 uses the physics default.
	CellSize float32 `yaml:"cellSize,omitempty"`
	// Margin pads the level bounds when sizing the broad phase.
	Margin    float32       `yaml:"margin,omitempty"`
	Spawn     rl.Vector2    `yaml:"spawn"`
	Actor     ActorDef      `yaml:"actor"`
	Blocks    []BlockDef    `yaml:"blocks"`
	Platforms []PlatformDef `yaml:"platforms,omitempty"`
}

type ActorDef struct {
	Color string `yaml:"color,omitempty"`
	// Config overlays kinematics.DefaultConfig.
	Config kinematics.Config `yaml:",inline"`
}

type BlockDef struct {
	Name   string           `yaml:"name"`
	Center rl.Vector2       `yaml:"center"`
	Size   rl.Vector2       `yaml:"size"`
	Layer  kinematics.Layer `yaml:"layer"`
	Color  string           `yaml:"color,omitempty"`
}

type PlatformDef struct {
	Name  string           `yaml:"name"`
	Size  rl.Vector2       `yaml:"size"`
	Layer kinematics.Layer `yaml:"layer,omitempty"`
	Color string           `yaml:"color,omitempty"`
	Path  platform.Spec    `yaml:"path"`
}

const defaultMargin = 10

var ErrInvalidLevel = errors.New("invalid level")

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// lookupColor falls back to a colour picked from the layer when name is
// empty or unknown.
func lookupColor(name string, layer kinematics.Layer) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	switch {
	case layer.Has(kinematics.LayerDeath):
		return rl.Red
	case layer.Has(kinematics.LayerMovingPlatform):
		return rl.Orange
	}
	return rl.DarkGray
}

// --- Loading ---

func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel decodes and validates a level. Unset actor keys keep their
// defaults.
func ParseLevel(data []byte) (*Level, error) {
	lvl := &Level{
		Actor: ActorDef{Config: kinematics.DefaultConfig()},
	}
	if err := yaml.Unmarshal(data, lvl); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	for i := range lvl.Platforms {
		if lvl.Platforms[i].Layer == kinematics.LayerNone {
			lvl.Platforms[i].Layer = kinematics.LayerGround | kinematics.LayerMovingPlatform
		}
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func (l *Level) Validate() error {
	var errs []error
	if err := l.Actor.Config.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("actor: %w", err))
	}
	for i, b := range l.Blocks {
		if b.Size.X <= 0 || b.Size.Y <= 0 {
			errs = append(errs, fmt.Errorf("%w: block %d (%s): size must be positive", ErrInvalidLevel, i, b.Name))
		}
		if b.Layer == kinematics.LayerNone {
			errs = append(errs, fmt.Errorf("%w: block %d (%s): no layer", ErrInvalidLevel, i, b.Name))
		}
	}
	for i, p := range l.Platforms {
		if p.Size.X <= 0 || p.Size.Y <= 0 {
			errs = append(errs, fmt.Errorf("%w: platform %d (%s): size must be positive", ErrInvalidLevel, i, p.Name))
		}
		if _, err := platform.New(p.Path); err != nil {
			errs = append(errs, fmt.Errorf("%w: platform %d (%s): %w", ErrInvalidLevel, i, p.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Bounds covers the spawn point, every block and every platform path,
// padded by the level margin.
func (l *Level) Bounds() physics.AABB {
	box := physics.AABB{Min: l.Spawn, Max: l.Spawn}
	for _, b := range l.Blocks {
		box = box.Union(physics.NewAABBFromCenter(b.Center, b.Size))
	}
	for _, p := range l.Platforms {
		box = box.Union(pathExtent(p.Path).Expand(max(p.Size.X, p.Size.Y) / 2))
	}
	margin := l.Margin
	if margin <= 0 {
		margin = defaultMargin
	}
	return box.Expand(margin)
}

func pathExtent(s platform.Spec) physics.AABB {
	switch s.Kind {
	case "elliptical":
		return physics.NewAABBFromCenter(s.Center, rl.Vector2Scale(s.Radii, 2))
	case "linear":
		return physics.AABB{Min: s.From, Max: s.From}.Union(physics.AABB{Min: s.To, Max: s.To})
	}
	return physics.AABB{}
}

// --- Saving ---

func (l *Level) Save(path string) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}
