package event

import (
	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/vmath"
)

// CenterUpdatePayload sets a new viewpoint, Tilemap 0 targets every tilemap
type CenterUpdatePayload struct {
	Tilemap  core.Entity
	Position vmath.Vec2
}

// CurrentChunkChangedPayload carries the previous and new current chunk
type CurrentChunkChangedPayload struct {
	Tilemap core.Entity
	From    vmath.IVec2
	To      vmath.IVec2
}

// MaterializeChunkPayload identifies a chunk to create
type MaterializeChunkPayload struct {
	Tilemap core.Entity
	Index   vmath.IVec2
}

// ChunkMaterializedPayload identifies a freshly created chunk
type ChunkMaterializedPayload struct {
	Tilemap core.Entity
	Index   vmath.IVec2
	Chunk   core.Entity
}

// FillChunkPayload carries tile contents for a chunk
type FillChunkPayload struct {
	Chunk core.Entity
	Index vmath.IVec2
	Tiles component.TileGrid
}

// ReleaseChunkPayload identifies a chunk being removed
type ReleaseChunkPayload struct {
	Tilemap core.Entity
	Index   vmath.IVec2
	Chunk   core.Entity
}
