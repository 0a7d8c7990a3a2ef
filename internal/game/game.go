package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"platformer/internal/audio"
	"platformer/internal/camera"
	"platformer/internal/components"
	"platformer/internal/engine"
	"platformer/internal/kinematics"
	"platformer/internal/world"
)

// Frames longer than this are simulated as this long, so a stalled window
// does not tunnel the actor through the floor.
const maxFrameTime = 1.0 / 20

type Game struct {
	World     *world.World
	Camera    *camera.FollowCamera
	Input     *KeyboardInput
	Panel     *TuningPanel
	DebugMode bool

	log    *zap.Logger
	sounds map[string]uint64

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(lvl *world.Level, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	input := NewKeyboardInput(DefaultBindings())
	w, err := world.New(lvl, input, log)
	if err != nil {
		return nil, err
	}
	return &Game{
		World:  w,
		Camera: camera.New(w.Player),
		Input:  input,
		Panel:  NewTuningPanel(),
		log:    log,
	}, nil
}

func (g *Game) Run(width, height int32) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(width, height, "Platformer - "+g.World.Level.Name)
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initRayguiStyle()

	audio.Init()
	defer audio.Close()
	g.loadSounds()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := min(rl.GetFrameTime(), maxFrameTime)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.Panel.Visible = !g.Panel.Visible
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.World.Controller().Respawn()
		g.Camera.Snap(g.World.Scene)
	}

	g.World.Update(deltaTime)
	g.Camera.Update(g.World.Scene, deltaTime)
	audio.SetListener(g.Camera.Position)
	audio.Update()

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// loadSounds hooks the player's events up to whatever sounds exist in
// assets/sounds. Missing files are skipped.
func (g *Game) loadSounds() {
	g.sounds = make(map[string]uint64)
	for _, name := range []string{"jump", "land", "die"} {
		path := "assets/sounds/" + name + ".wav"
		if id, ok := audio.LoadSound(path); ok {
			g.sounds[name] = id
		} else {
			g.log.Debug("sound not loaded", zap.String("path", path))
		}
	}

	pc := g.World.Controller()
	player := g.World.Player
	pc.Jumped.AddListener(func() { g.play("jump", player.Transform.Position) })
	pc.Landed.AddListener(func() { g.play("land", player.Transform.Position) })
	pc.Died.AddListener(func(at rl.Vector2) { g.play("die", at) })
}

func (g *Game) play(name string, at rl.Vector2) {
	if id, ok := g.sounds[name]; ok {
		audio.PlayAt(id, at)
	}
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	drawStart := time.Now()
	rl.BeginMode2D(cam)
	for _, obj := range g.World.Scene.GameObjects {
		if r := engine.GetComponent[*components.RectRenderer](obj); r != nil {
			r.Draw()
		}
	}
	if g.Panel.ShowProbe {
		g.drawProbes()
	}
	rl.EndMode2D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

// drawProbes shows the detector rays, red where they touch something.
func (g *Game) drawProbes() {
	ctrl := g.World.Controller().Controller()
	if ctrl == nil {
		return
	}
	cfg := ctrl.Config()
	col := ctrl.Last().Collision
	rays := cfg.Bounds.Rays(ctrl.Position(), cfg.RayBuffer)

	for _, e := range kinematics.Edges {
		color := rl.Lime
		switch {
		case col.Death.Get(e):
			color = rl.Red
		case col.Blocked(e):
			color = rl.Yellow
		}
		r := rays[e]
		for _, p := range r.Samples(cfg.DetectorCount) {
			end := rl.Vector2Add(p, rl.Vector2Scale(r.Dir, cfg.DetectionRayLength))
			rl.DrawLineV(flipY(p), flipY(end), color)
		}
	}
}

func flipY(v rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: -v.Y}
}

func (g *Game) DrawUI() {
	rl.DrawText("A/D to move, Space to jump, Shift to dash, R to respawn", 10, 10, 20, colorTextSecondary)
	rl.DrawText("F1 debug view, F2 tuning", 10, 35, 20, colorTextSecondary)
	rl.DrawFPS(10, 60)

	pc := g.World.Controller()
	if cfg, changed := g.Panel.Draw(pc.Config); changed {
		if err := pc.Configure(cfg); err != nil {
			g.log.Warn("tuning rejected", zap.Error(err))
		}
	}

	if g.DebugMode {
		g.drawDebug(pc)
	}
}

func (g *Game) drawDebug(pc *components.PlatformerController) {
	ctrl := pc.Controller()
	if ctrl == nil {
		return
	}
	st := ctrl.State()
	f := pc.Frame()
	x := int32(rl.GetScreenWidth()) - 300

	lines := []string{
		fmt.Sprintf("Pos:      (%.2f, %.2f)", st.Position.X, st.Position.Y),
		fmt.Sprintf("Speed:    (%.2f, %.2f)", st.HorizontalSpeed, st.VerticalSpeed),
		fmt.Sprintf("Velocity: (%.2f, %.2f)", f.Velocity.X, f.Velocity.Y),
		fmt.Sprintf("Grounded: %v  Apex: %.2f", f.Grounded, st.Jump.Apex),
		fmt.Sprintf("Dashing:  %v  Move: %s", st.Dash.Active, f.Outcome),
		fmt.Sprintf("Update:   %.2f ms", g.updateMs),
		fmt.Sprintf("Draw:     %.2f ms", g.drawMs),
	}
	for i, line := range lines {
		rl.DrawText(line, x, 10+int32(i)*20, 16, rl.Green)
	}
}
