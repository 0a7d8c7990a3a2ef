package kinematics

import (
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DetectorCount = 0
	cfg.MinFallSpeed = 200
	cfg.Layers.Solid = LayerNone

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	msg := err.Error()
	assert.Contains(t, msg, "detectorCount")
	assert.Contains(t, msg, "maxFallSpeed")
	assert.Contains(t, msg, "layers.solid")
	assert.Len(t, strings.Split(msg, "\n"), 3)
}

func TestValidateRayBufferAgainstBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RayBuffer = 0.4
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestConfigYAMLOverlay(t *testing.T) {
	src := `
moveClamp: 20
jumpHeight: 24.5
bounds:
  size: {x: 1, y: 2}
layers:
  solid: ground|moving-platform
  death: [death]
`
	cfg := DefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))

	assert.Equal(t, float32(20), cfg.MoveClamp)
	assert.Equal(t, float32(24.5), cfg.JumpHeight)
	assert.Equal(t, rl.NewVector2(1, 2), cfg.Bounds.Size)
	assert.Equal(t, LayerGround|LayerMovingPlatform, cfg.Layers.Solid)
	assert.Equal(t, LayerDeath, cfg.Layers.Death)
	assert.Equal(t, LayerMovingPlatform, cfg.Layers.Platform, "unset keys keep their defaults")
	assert.Equal(t, float32(90), cfg.Acceleration)
	assert.NoError(t, cfg.Validate())
}

func TestLayerParsing(t *testing.T) {
	l, err := ParseLayer("ground, death")
	require.NoError(t, err)
	assert.Equal(t, LayerGround|LayerDeath, l)
	assert.Equal(t, "ground|death", l.String())

	l, err = ParseLayer("none")
	require.NoError(t, err)
	assert.Equal(t, LayerNone, l)
	assert.Equal(t, "none", l.String())

	_, err = ParseLayer("lava")
	assert.ErrorContains(t, err, "lava")

	assert.True(t, (LayerGround | LayerMovingPlatform).Has(LayerMovingPlatform))
	assert.False(t, LayerDeath.Has(LayerGround|LayerMovingPlatform))
}

func TestLayerYAML(t *testing.T) {
	out, err := yaml.Marshal(LayerGround | LayerMovingPlatform)
	require.NoError(t, err)
	assert.Contains(t, string(out), "ground|moving-platform")

	var l Layer
	require.NoError(t, yaml.Unmarshal(out, &l))
	assert.Equal(t, LayerGround|LayerMovingPlatform, l)

	err = yaml.Unmarshal([]byte("[ground, lava]"), &l)
	assert.ErrorContains(t, err, "unknown layer")
}
