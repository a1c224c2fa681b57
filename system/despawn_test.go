package system

import (
	"testing"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/vmath"
)

func placeChunk(w *engine.World, tilemap core.Entity, idx vmath.IVec2) core.Entity {
	spawner := NewChunkSpawnSystem(w).(*ChunkSpawnSystem)
	e, _ := spawner.Materialize(tilemap, idx)
	w.EventQueue().Clear()
	return e
}

// Test chunks at exactly range survive and one beyond on either axis are released
func TestDespawnBoundary(t *testing.T) {
	w := engine.NewWorld()
	const r = 2
	e, _ := engine.SpawnTilemap(w, engine.TilemapConfig{
		ChunkSize: vmath.IVec2{5, 5}, TileSize: vmath.Vec2{32, 32}, Range: r,
	})

	keep := placeChunk(w, e, vmath.IVec2{r, r})
	keepNeg := placeChunk(w, e, vmath.IVec2{-r, r})
	dropX := placeChunk(w, e, vmath.IVec2{r + 1, 0})
	dropY := placeChunk(w, e, vmath.IVec2{0, -(r + 1)})

	NewDespawnSystem(w).Update()

	if !w.Alive(keep) || !w.Alive(keepNeg) {
		t.Error("Expected chunks at range to survive")
	}
	if w.Alive(dropX) || w.Alive(dropY) {
		t.Error("Expected chunks beyond range to be released")
	}

	tm, _ := w.Components.Tilemap.Get(e)
	if tm.Chunks.Len() != 2 {
		t.Errorf("Expected 2 resident, got %d", tm.Chunks.Len())
	}
	if tm.Chunks.Has(vmath.IVec2{r + 1, 0}) {
		t.Error("Expected released index removed from registry")
	}

	released := map[vmath.IVec2]bool{}
	for _, ev := range w.EventQueue().Consume() {
		if p, ok := ev.Payload.(*event.ReleaseChunkPayload); ok && ev.Type == event.EventReleaseChunk {
			released[p.Index] = true
		}
	}
	if len(released) != 2 || !released[vmath.IVec2{r + 1, 0}] || !released[vmath.IVec2{0, -(r + 1)}] {
		t.Errorf("Expected release events for both dropped chunks, got %v", released)
	}
}

// Test tiles owned by a released chunk go with it
func TestDespawnDestroysTiles(t *testing.T) {
	w := engine.NewWorld()
	e, _ := engine.SpawnTilemap(w, engine.TilemapConfig{
		ChunkSize: vmath.IVec2{2, 2}, TileSize: vmath.Vec2{1, 1}, Range: 0,
	})
	far := placeChunk(w, e, vmath.IVec2{5, 5})

	grid := component.NewTileGrid(vmath.IVec2{2, 2})
	grid.Set(vmath.IVec2{0, 0}, component.TileDescriptor{Texture: 1, Visible: true})
	grid.Set(vmath.IVec2{1, 1}, component.TileDescriptor{Texture: 2, Visible: true})
	NewFillSystem(w).(*FillSystem).Fill(far, grid)
	if w.Components.Tile.Count() != 2 {
		t.Fatalf("Expected 2 tiles, got %d", w.Components.Tile.Count())
	}

	NewDespawnSystem(w).Update()
	if w.Components.Tile.Count() != 0 {
		t.Errorf("Expected tiles destroyed with chunk, got %d", w.Components.Tile.Count())
	}
}

// Test despawn with nothing resident changes nothing
func TestDespawnNoChunks(t *testing.T) {
	w := engine.NewWorld()
	engine.SpawnTilemap(w, engine.TilemapConfig{
		ChunkSize: vmath.IVec2{5, 5}, TileSize: vmath.Vec2{32, 32}, Range: 1,
	})
	NewDespawnSystem(w).Update()
	if w.EventQueue().Len() != 0 {
		t.Errorf("Expected no events, got %d", w.EventQueue().Len())
	}
}
