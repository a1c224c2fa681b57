package component

import (
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/vmath"
)

// ChunkComponent resides on a chunk entity, tiles are its children
type ChunkComponent struct {
	Tilemap  core.Entity
	Index    vmath.IVec2 // Immutable after creation
	Position vmath.Vec2  // ChunkCenterOf(Index)
	Size     vmath.IVec2

	// Row-major tile slots, 0 is empty, len == Size.X*Size.Y
	Tiles []core.Entity

	Filled bool
}

// Slot returns the flat index of a local tile position
func (c *ChunkComponent) Slot(local vmath.IVec2) (int, bool) {
	if local.X < 0 || local.Y < 0 || local.X >= c.Size.X || local.Y >= c.Size.Y {
		return 0, false
	}
	return local.Y*c.Size.X + local.X, true
}
