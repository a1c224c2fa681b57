package component

import (
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/vmath"
)

// TileDescriptor is the content of one tile slot
type TileDescriptor struct {
	Texture uint32 // Index into the tilemap's atlas
	Visible bool
}

// TileComponent resides on a tile entity
type TileComponent struct {
	Chunk      core.Entity
	Local      vmath.IVec2
	Global     vmath.IVec2
	Descriptor TileDescriptor
}

// TileGrid is a row-major grid of tile descriptors, nil cells are empty
type TileGrid struct {
	Size  vmath.IVec2
	Cells []*TileDescriptor
}

// NewTileGrid allocates an empty grid
func NewTileGrid(size vmath.IVec2) TileGrid {
	return TileGrid{Size: size, Cells: make([]*TileDescriptor, size.X*size.Y)}
}

// Set places a descriptor at a local position, out of bounds is ignored
func (g *TileGrid) Set(local vmath.IVec2, d TileDescriptor) {
	if local.X < 0 || local.Y < 0 || local.X >= g.Size.X || local.Y >= g.Size.Y {
		return
	}
	g.Cells[local.Y*g.Size.X+local.X] = &d
}

// At returns the descriptor at a local position
func (g *TileGrid) At(local vmath.IVec2) (*TileDescriptor, bool) {
	if local.X < 0 || local.Y < 0 || local.X >= g.Size.X || local.Y >= g.Size.Y {
		return nil, false
	}
	return g.Cells[local.Y*g.Size.X+local.X], true
}

// Matches reports whether the grid is well formed for a chunk size
func (g *TileGrid) Matches(size vmath.IVec2) bool {
	return g.Size == size && len(g.Cells) == size.X*size.Y
}

// Occupied counts non-empty cells
func (g *TileGrid) Occupied() int {
	n := 0
	for _, c := range g.Cells {
		if c != nil {
			n++
		}
	}
	return n
}
