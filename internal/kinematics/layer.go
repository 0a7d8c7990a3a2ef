package kinematics

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layer is a bit mask of geometry categories. A geometry entity may carry
// several bits (a moving platform is usually ground and moving-platform).
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerDeath
	LayerMovingPlatform

	LayerNone Layer = 0
)

var layerNames = []struct {
	name  string
	layer Layer
}{
	{"ground", LayerGround},
	{"death", LayerDeath},
	{"moving-platform", LayerMovingPlatform},
}

// Has reports whether l shares at least one bit with mask.
func (l Layer) Has(mask Layer) bool {
	return l&mask != 0
}

func (l Layer) String() string {
	if l == LayerNone {
		return "none"
	}
	var parts []string
	for _, n := range layerNames {
		if l&n.layer != 0 {
			parts = append(parts, n.name)
		}
	}
	if rest := l &^ (LayerGround | LayerDeath | LayerMovingPlatform); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseLayer parses names joined by '|' or ',' ("ground|moving-platform").
func ParseLayer(s string) (Layer, error) {
	var l Layer
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(part)
		if part == "" || part == "none" {
			continue
		}
		found := false
		for _, n := range layerNames {
			if n.name == part {
				l |= n.layer
				found = true
				break
			}
		}
		if !found {
			return LayerNone, fmt.Errorf("unknown layer %q", part)
		}
	}
	return l, nil
}

// UnmarshalYAML accepts either a scalar ("ground|death") or a list of names.
func (l *Layer) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseLayer(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*l = parsed
	case yaml.SequenceNode:
		var mask Layer
		for _, item := range value.Content {
			parsed, err := ParseLayer(item.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", item.Line, err)
			}
			mask |= parsed
		}
		*l = mask
	default:
		return fmt.Errorf("line %d: layer must be a name or a list of names", value.Line)
	}
	return nil
}

func (l Layer) MarshalYAML() (any, error) {
	return l.String(), nil
}

// Layers holds the masks the prober and resolver query with. They are
// handed to the controller explicitly instead of living in global state.
type Layers struct {
	Solid    Layer `yaml:"solid"`
	Death    Layer `yaml:"death"`
	Platform Layer `yaml:"platform"`
}

func DefaultLayers() Layers {
	return Layers{
		Solid:    LayerGround,
		Death:    LayerDeath,
		Platform: LayerMovingPlatform,
	}
}
