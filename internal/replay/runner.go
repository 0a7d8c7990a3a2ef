package replay

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"platformer/internal/world"
)

// Sample is the player's state after one frame.
type Sample struct {
	Frame    int        `yaml:"frame"`
	Time     float32    `yaml:"time"`
	Position rl.Vector2 `yaml:"position"`
	Velocity rl.Vector2 `yaml:"velocity"`
	Grounded bool       `yaml:"grounded"`
	Jumping  bool       `yaml:"jumping,omitempty"`
	Landing  bool       `yaml:"landing,omitempty"`
	Died     bool       `yaml:"died,omitempty"`
	Outcome  string     `yaml:"outcome"`
}

type Summary struct {
	Frames   int        `yaml:"frames"`
	Jumps    int        `yaml:"jumps"`
	Landings int        `yaml:"landings"`
	Deaths   int        `yaml:"deaths"`
	Final    rl.Vector2 `yaml:"final"`
}

type Trajectory struct {
	Summary Summary  `yaml:"summary"`
	Samples []Sample `yaml:"samples"`
}

// Runner steps a world with a fixed time step.
type Runner struct {
	World     *world.World
	DeltaTime float32
	// Every keeps one sample out of Every frames; frames with an event are
	// always kept. 0 or 1 keeps them all.
	Every int

	log *zap.Logger
}

func NewRunner(w *world.World, dt float32, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if dt <= 0 {
		dt = DefaultDeltaTime
	}
	return &Runner{World: w, DeltaTime: dt, log: log.Named("replay")}
}

// Run advances the world frames times.
func (r *Runner) Run(frames int) Trajectory {
	var tr Trajectory
	pc := r.World.Controller()

	for i := 1; i <= frames; i++ {
		r.World.Update(r.DeltaTime)
		f := pc.Frame()
		pos := r.World.Player.Transform.Position

		s := Sample{
			Frame:    i,
			Time:     float32(i) * r.DeltaTime,
			Position: pos,
			Velocity: f.Velocity,
			Grounded: f.Grounded,
			Jumping:  f.Jumping,
			Landing:  f.Landing,
			Died:     f.Died,
			Outcome:  f.Outcome.String(),
		}
		if f.Jumping {
			tr.Summary.Jumps++
		}
		if f.Landing {
			tr.Summary.Landings++
		}
		if f.Died {
			tr.Summary.Deaths++
		}

		event := f.Jumping || f.Landing || f.Died
		if event {
			r.log.Debug("event",
				zap.Int("frame", i),
				zap.Bool("jump", f.Jumping),
				zap.Bool("land", f.Landing),
				zap.Bool("died", f.Died),
				zap.Float32("x", pos.X),
				zap.Float32("y", pos.Y))
		}
		if event || r.Every <= 1 || i%r.Every == 0 {
			tr.Samples = append(tr.Samples, s)
		}
	}

	tr.Summary.Frames = frames
	tr.Summary.Final = r.World.Player.Transform.Position
	r.log.Info("replay finished",
		zap.Int("frames", frames),
		zap.Int("jumps", tr.Summary.Jumps),
		zap.Int("landings", tr.Summary.Landings),
		zap.Int("deaths", tr.Summary.Deaths),
		zap.Float32("x", tr.Summary.Final.X),
		zap.Float32("y", tr.Summary.Final.Y))
	return tr
}

func (t Trajectory) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode trajectory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write trajectory: %w", err)
	}
	return nil
}
