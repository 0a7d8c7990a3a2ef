// Package replay drives a world from a recorded input script without a
// window.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"platformer/internal/kinematics"
)

const DefaultDeltaTime = 1.0 / 60

// Step holds one input for Frames consecutive frames. Button edges fire on
// the first of those frames only.
type Step struct {
	X        float32 `yaml:"x,omitempty"`
	JumpDown bool    `yaml:"jumpDown,omitempty"`
	JumpUp   bool    `yaml:"jumpUp,omitempty"`
	DashDown bool    `yaml:"dashDown,omitempty"`
	DashUp   bool    `yaml:"dashUp,omitempty"`
	Frames   int     `yaml:"frames,omitempty"`
}

type Script struct {
	DeltaTime float32 `yaml:"dt,omitempty"`
	Steps     []Step  `yaml:"steps"`
}

var ErrInvalidScript = errors.New("invalid input script")

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a script. Steps without a frame count last one frame.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if s.DeltaTime == 0 {
		s.DeltaTime = DefaultDeltaTime
	}
	if s.DeltaTime < 0 {
		return nil, fmt.Errorf("%w: dt must be positive, got %v", ErrInvalidScript, s.DeltaTime)
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		if st.Frames == 0 {
			st.Frames = 1
		}
		if st.Frames < 0 {
			return nil, fmt.Errorf("%w: step %d: frames must be positive, got %d", ErrInvalidScript, i, st.Frames)
		}
		if st.X < -1 || st.X > 1 {
			return nil, fmt.Errorf("%w: step %d: x must be within [-1, 1], got %v", ErrInvalidScript, i, st.X)
		}
	}
	return &s, nil
}

// Frames is the total length of the script.
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Frames
	}
	return n
}

// Player feeds a script to a controller one frame at a time. Once the script
// runs out it reports no input.
type Player struct {
	script *Script
	step   int
	frame  int
}

func NewPlayer(s *Script) *Player {
	return &Player{script: s}
}

var _ kinematics.InputSource = (*Player)(nil)

func (p *Player) Sample() kinematics.FrameInput {
	if p.Done() {
		return kinematics.FrameInput{}
	}
	st := p.script.Steps[p.step]
	in := kinematics.FrameInput{X: st.X}
	if p.frame == 0 {
		in.JumpDown, in.JumpUp = st.JumpDown, st.JumpUp
		in.DashDown, in.DashUp = st.DashDown, st.DashUp
	}

	p.frame++
	if p.frame >= st.Frames {
		p.step++
		p.frame = 0
	}
	return in
}

func (p *Player) Done() bool {
	return p.step >= len(p.script.Steps)
}
