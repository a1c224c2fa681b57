package component

import (
	"strings"

	"github.com/lixenwraith/tilestream/vmath"
)

// TilemapRole identifies which content a tilemap streams, resolved once at construction
type TilemapRole uint8

const (
	RoleCustom TilemapRole = iota
	RoleGround
	RoleTrees
)

var roleNames = map[TilemapRole]string{
	RoleCustom: "custom",
	RoleGround: "ground",
	RoleTrees:  "trees",
}

func (r TilemapRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseTilemapRole maps a config name to a role, unknown names are custom
func ParseTilemapRole(name string) TilemapRole {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ground":
		return RoleGround
	case "trees":
		return RoleTrees
	default:
		return RoleCustom
	}
}

// TilemapComponent resides on the tilemap root entity, chunks are its children
type TilemapComponent struct {
	Name    string
	Role    TilemapRole
	Texture string // Opaque atlas handle, passed through to renderers

	ChunkSize vmath.IVec2 // Tiles per chunk, both >= 1
	TileSize  vmath.Vec2  // World units per tile, both > 0
	Range     int         // Chunks kept around the current chunk on each axis

	Center       vmath.Vec2  // Viewpoint, driven externally
	CurrentChunk vmath.IVec2 // Cached ChunkIndexOf(Center)

	Chunks *ChunkRegistry
}

// ChunkIndexAt returns the chunk containing a world position for this tilemap's geometry
func (t *TilemapComponent) ChunkIndexAt(pos vmath.Vec2) vmath.IVec2 {
	return vmath.ChunkIndexOf(pos, t.ChunkSize, t.TileSize)
}
