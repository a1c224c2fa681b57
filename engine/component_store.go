package engine

import "github.com/lixenwraith/tilestream/component"

// ComponentStore provides cached pointers to typed component stores
// Populated once at world creation; pointers stay valid for the world lifetime
type ComponentStore struct {
	Tilemap *Store[component.TilemapComponent]
	Chunk   *Store[component.ChunkComponent]
	Tile    *Store[component.TileComponent]

	// Hierarchy
	Parent   *Store[component.ParentComponent]
	Children *Store[component.ChildrenComponent]
}

func newComponentStore() (ComponentStore, []AnyStore) {
	cs := ComponentStore{
		Tilemap:  NewStore[component.TilemapComponent](),
		Chunk:    NewStore[component.ChunkComponent](),
		Tile:     NewStore[component.TileComponent](),
		Parent:   NewStore[component.ParentComponent](),
		Children: NewStore[component.ChildrenComponent](),
	}
	all := []AnyStore{cs.Tilemap, cs.Chunk, cs.Tile, cs.Parent, cs.Children}
	return cs, all
}
