package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// EarlyUpdater is implemented by components that must move before anything
// else in the frame. Moving platforms use it so riders see this frame's
// displacement.
type EarlyUpdater interface {
	EarlyUpdate(deltaTime float32)
}

// Destroyer is implemented by components holding world resources that must
// be released when their GameObject leaves the scene.
type Destroyer interface {
	OnDestroy()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// World returns the WorldAccess of the scene the component lives in, or nil.
func (b *BaseComponent) World() WorldAccess {
	if b.gameObject == nil || b.gameObject.Scene == nil {
		return nil
	}
	return b.gameObject.Scene.World
}
