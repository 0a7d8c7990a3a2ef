package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	// World is set by the owner of the scene before Start.
	World WorldAccess

	uidMap  map[uint64]*GameObject
	started bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject adds g to the scene. Objects added after Start are started
// right away.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
	if s.started {
		g.Start()
	}
}

// RemoveGameObject removes g and all of its descendants.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			g.destroy()
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	s.started = true
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update runs every EarlyUpdate before any Update.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.EarlyUpdate(deltaTime)
	}
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
