package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"platformer/internal/kinematics"
)

func TestTuningFieldsCoverDefaults(t *testing.T) {
	cfg := kinematics.DefaultConfig()
	seen := map[*float32]string{}

	for _, f := range tuningFields {
		v := f.field(&cfg)
		assert.GreaterOrEqual(t, *v, f.min, f.label)
		assert.LessOrEqual(t, *v, f.max, f.label)

		other, dup := seen[v]
		assert.False(t, dup, "%s and %s edit the same field", f.label, other)
		seen[v] = f.label
	}
}

func TestHiddenPanelLeavesConfigAlone(t *testing.T) {
	p := NewTuningPanel()
	cfg := kinematics.DefaultConfig()

	out, changed := p.Draw(cfg)
	assert.False(t, changed)
	assert.Equal(t, cfg, out)
}
