package world

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"platformer/internal/components"
	"platformer/internal/engine"
	"platformer/internal/kinematics"
	"platformer/internal/physics"
	"platformer/internal/platform"
)

const PlayerTag = "player"

// World owns the scene and the physics world it queries. It implements
// engine.WorldAccess for the components living in it.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.World
	Level        *Level
	Player       *engine.GameObject

	log *zap.Logger
}

var _ engine.WorldAccess = (*World)(nil)

// New builds a started world from lvl. The player reads from input, which
// may be nil for an idle actor.
func New(lvl *Level, input kinematics.InputSource, log *zap.Logger) (*World, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		Scene:        engine.NewScene(lvl.Name),
		PhysicsWorld: physics.NewWorld(lvl.Bounds(), lvl.CellSize),
		Level:        lvl,
		log:          log,
	}
	w.Scene.World = w

	for _, b := range lvl.Blocks {
		w.Scene.AddGameObject(w.newBlock(b))
	}
	for _, p := range lvl.Platforms {
		g, err := w.newPlatform(p)
		if err != nil {
			return nil, err
		}
		w.Scene.AddGameObject(g)
	}
	w.Player = w.newPlayer(lvl, input)
	w.Scene.AddGameObject(w.Player)

	w.Scene.Start()
	if engine.GetComponent[*components.PlatformerController](w.Player).Controller() == nil {
		return nil, fmt.Errorf("level %q: player controller did not start", lvl.Name)
	}

	region := w.PhysicsWorld.Region()
	log.Info("level loaded",
		zap.String("level", lvl.Name),
		zap.Int("blocks", len(lvl.Blocks)),
		zap.Int("platforms", len(lvl.Platforms)),
		zap.Float32("minX", region.Min.X),
		zap.Float32("minY", region.Min.Y),
		zap.Float32("maxX", region.Max.X),
		zap.Float32("maxY", region.Max.Y))
	return w, nil
}

func (w *World) newBlock(b BlockDef) *engine.GameObject {
	g := engine.NewGameObject(b.Name)
	g.Transform.Position = b.Center
	if b.Layer.Has(kinematics.LayerDeath) {
		g.Tags = append(g.Tags, "hazard")
	}
	g.AddComponent(components.NewBoxCollider(b.Size, b.Layer))
	g.AddComponent(components.NewRectRenderer(lookupColor(b.Color, b.Layer), b.Size))
	return g
}

func (w *World) newPlatform(p PlatformDef) (*engine.GameObject, error) {
	profile, err := platform.New(p.Path)
	if err != nil {
		return nil, fmt.Errorf("platform %s: %w", p.Name, err)
	}
	g := engine.NewGameObject(p.Name)
	g.Tags = append(g.Tags, "platform")
	g.AddComponent(components.NewBoxCollider(p.Size, p.Layer))
	g.AddComponent(components.NewMovingPlatform(profile))
	g.AddComponent(components.NewRectRenderer(lookupColor(p.Color, p.Layer), p.Size))
	return g, nil
}

func (w *World) newPlayer(lvl *Level, input kinematics.InputSource) *engine.GameObject {
	g := engine.NewGameObject("Player")
	g.Tags = append(g.Tags, PlayerTag)
	g.Transform.Position = lvl.Spawn

	cfg := lvl.Actor.Config
	pc := components.NewPlatformerController(cfg, input)
	pc.Died.AddListener(func(at rl.Vector2) {
		w.log.Info("player died", zap.Float32("x", at.X), zap.Float32("y", at.Y))
	})
	g.AddComponent(pc)

	color := rl.SkyBlue
	if c, ok := colorByName[lvl.Actor.Color]; ok {
		color = c
	}
	box := components.NewRectRenderer(color, cfg.Bounds.Size)
	box.Offset = cfg.Bounds.Center
	g.AddComponent(box)
	return g
}

// Controller is the player's controller.
func (w *World) Controller() *components.PlatformerController {
	return engine.GetComponent[*components.PlatformerController](w.Player)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// --- engine.WorldAccess ---

func (w *World) Physics() *physics.World { return w.PhysicsWorld }
func (w *World) Logger() *zap.Logger     { return w.log }

func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
}

func (w *World) Destroy(g *engine.GameObject) {
	w.Scene.RemoveGameObject(g)
}
