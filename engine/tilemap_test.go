package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/vmath"
)

func validConfig() TilemapConfig {
	return TilemapConfig{
		Name:      "ground",
		Role:      component.RoleGround,
		ChunkSize: vmath.IVec2{5, 5},
		TileSize:  vmath.Vec2{32, 32},
		Range:     1,
	}
}

func TestTilemapConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TilemapConfig)
		want   error
	}{
		{"valid", func(c *TilemapConfig) {}, nil},
		{"zero chunk x", func(c *TilemapConfig) { c.ChunkSize.X = 0 }, ErrInvalidChunkSize},
		{"negative chunk y", func(c *TilemapConfig) { c.ChunkSize.Y = -2 }, ErrInvalidChunkSize},
		{"zero tile", func(c *TilemapConfig) { c.TileSize.X = 0 }, ErrInvalidTileSize},
		{"nan tile", func(c *TilemapConfig) { c.TileSize.Y = math.NaN() }, ErrInvalidTileSize},
		{"inf tile", func(c *TilemapConfig) { c.TileSize.Y = math.Inf(1) }, ErrInvalidTileSize},
		{"negative range", func(c *TilemapConfig) { c.Range = -1 }, ErrInvalidRange},
		{"zero range", func(c *TilemapConfig) { c.Range = 0 }, nil},
		{"nan center", func(c *TilemapConfig) { c.Center.X = math.NaN() }, ErrInvalidCenter},
		{"inf center", func(c *TilemapConfig) { c.Center.Y = math.Inf(-1) }, ErrInvalidCenter},
		{"far center", func(c *TilemapConfig) { c.Center.X = 1e30 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSpawnTilemapRejectsInvalid(t *testing.T) {
	w := NewWorld()
	cfg := validConfig()
	cfg.ChunkSize = vmath.IVec2{0, 5}

	if _, err := SpawnTilemap(w, cfg); !errors.Is(err, ErrInvalidChunkSize) {
		t.Errorf("Expected ErrInvalidChunkSize, got %v", err)
	}
	if len(Tilemaps(w)) != 0 {
		t.Error("Expected no tilemap created")
	}
}

func TestSpawnTilemapComputesCurrentChunk(t *testing.T) {
	w := NewWorld()
	cfg := validConfig()
	cfg.Center = vmath.Vec2{320, -160}

	e, err := SpawnTilemap(w, cfg)
	if err != nil {
		t.Fatalf("Expected spawn, got %v", err)
	}
	tm, _ := w.Components.Tilemap.Get(e)
	if tm.CurrentChunk != (vmath.IVec2{2, 1}) {
		t.Errorf("Expected current chunk (2,1), got %v", tm.CurrentChunk)
	}
	if tm.Chunks == nil || tm.Chunks.Len() != 0 {
		t.Error("Expected empty registry")
	}
}

func TestSetRangeAndCenter(t *testing.T) {
	w := NewWorld()
	e, _ := SpawnTilemap(w, validConfig())

	if err := SetRange(w, e, -1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange, got %v", err)
	}
	if err := SetRange(w, e, 3); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := SetCenter(w, e, vmath.Vec2{1, 2}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	tm, _ := w.Components.Tilemap.Get(e)
	if tm.Range != 3 || tm.Center != (vmath.Vec2{1, 2}) {
		t.Errorf("Expected range 3 center (1,2), got %d %v", tm.Range, tm.Center)
	}

	if err := SetCenter(w, 999, vmath.Vec2{}); !errors.Is(err, ErrTilemapNotFound) {
		t.Errorf("Expected ErrTilemapNotFound, got %v", err)
	}
}

func TestSetGeometryReleasesChunks(t *testing.T) {
	w := NewWorld()
	e, _ := SpawnTilemap(w, validConfig())
	tm, _ := w.Components.Tilemap.Get(e)

	for _, idx := range []vmath.IVec2{{0, 0}, {1, 0}} {
		c := With(w.NewEntity(), w.Components.Chunk, component.ChunkComponent{Tilemap: e, Index: idx}).Build()
		AttachChild(w, e, c)
		tm.Chunks.Insert(idx, c)
	}
	tm.Chunks.MarkPending(vmath.IVec2{5, 5})

	if err := SetGeometry(w, e, vmath.IVec2{8, 8}, vmath.Vec2{16, 16}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tm, _ = w.Components.Tilemap.Get(e)
	if tm.Chunks.Len() != 0 || tm.Chunks.PendingLen() != 0 {
		t.Error("Expected registry cleared")
	}
	if w.Components.Chunk.Count() != 0 {
		t.Errorf("Expected chunks destroyed, got %d", w.Components.Chunk.Count())
	}

	released := 0
	for _, ev := range w.EventQueue().Consume() {
		if ev.Type == event.EventReleaseChunk {
			released++
		}
	}
	if released != 2 {
		t.Errorf("Expected 2 release events, got %d", released)
	}

	if err := SetGeometry(w, e, vmath.IVec2{0, 8}, vmath.Vec2{16, 16}); !errors.Is(err, ErrInvalidChunkSize) {
		t.Errorf("Expected ErrInvalidChunkSize, got %v", err)
	}
}

func TestDestroyTilemap(t *testing.T) {
	w := NewWorld()
	e, _ := SpawnTilemap(w, validConfig())
	tm, _ := w.Components.Tilemap.Get(e)
	c := With(w.NewEntity(), w.Components.Chunk, component.ChunkComponent{Tilemap: e}).Build()
	AttachChild(w, e, c)
	tm.Chunks.Insert(vmath.IVec2{}, c)

	if err := DestroyTilemap(w, e); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if w.Alive(e) || w.Alive(c) {
		t.Error("Expected tilemap and chunk destroyed")
	}
	if err := DestroyTilemap(w, e); !errors.Is(err, ErrTilemapNotFound) {
		t.Errorf("Expected ErrTilemapNotFound, got %v", err)
	}
}

func TestSetCenterRejectsNonFinite(t *testing.T) {
	w := NewWorld()
	e, err := SpawnTilemap(w, validConfig())
	if err != nil {
		t.Fatalf("Expected tilemap, got %v", err)
	}
	if err := SetCenter(w, e, vmath.Vec2{64, 32}); err != nil {
		t.Fatalf("Expected center set, got %v", err)
	}

	for _, pos := range []vmath.Vec2{{math.NaN(), 0}, {math.Inf(1), 0}, {0, math.Inf(-1)}} {
		if err := SetCenter(w, e, pos); !errors.Is(err, ErrInvalidCenter) {
			t.Errorf("SetCenter(%v): Expected ErrInvalidCenter, got %v", pos, err)
		}
	}
	tm, _ := w.Components.Tilemap.Get(e)
	if tm.Center != (vmath.Vec2{64, 32}) {
		t.Errorf("Expected center unchanged, got %v", tm.Center)
	}
}
