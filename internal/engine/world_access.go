package engine

import (
	"go.uber.org/zap"

	"platformer/internal/physics"
)

// WorldAccess provides components with access to world-level operations
// without importing the world package.
type WorldAccess interface {
	Physics() *physics.World
	Logger() *zap.Logger
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
}
