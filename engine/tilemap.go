package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/vmath"
)

var (
	ErrInvalidChunkSize = errors.New("chunk size must be at least 1 tile on each axis")
	ErrInvalidTileSize  = errors.New("tile size must be positive and finite on each axis")
	ErrInvalidRange     = errors.New("range must not be negative")
	ErrInvalidCenter    = errors.New("center must be finite on each axis")
	ErrTilemapNotFound  = errors.New("tilemap not found")
)

// TilemapConfig describes a streamed tilemap layer
type TilemapConfig struct {
	Name      string
	Role      component.TilemapRole
	ChunkSize vmath.IVec2
	TileSize  vmath.Vec2
	Range     int
	Center    vmath.Vec2
	Texture   string
}

// Validate rejects geometry the coordinate transform cannot handle
func (c TilemapConfig) Validate() error {
	if err := validateGeometry(c.ChunkSize, c.TileSize); err != nil {
		return fmt.Errorf("tilemap %q: %w", c.Name, err)
	}
	if c.Range < 0 {
		return fmt.Errorf("tilemap %q: %w (got %d)", c.Name, ErrInvalidRange, c.Range)
	}
	if !c.Center.Finite() {
		return fmt.Errorf("tilemap %q: %w (got %v)", c.Name, ErrInvalidCenter, c.Center)
	}
	return nil
}

func validateGeometry(chunkSize vmath.IVec2, tileSize vmath.Vec2) error {
	if chunkSize.X < 1 || chunkSize.Y < 1 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidChunkSize, chunkSize.X, chunkSize.Y)
	}
	if !positiveFinite(tileSize.X) || !positiveFinite(tileSize.Y) {
		return fmt.Errorf("%w (got %gx%g)", ErrInvalidTileSize, tileSize.X, tileSize.Y)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// SpawnTilemap creates a tilemap root entity with an empty registry
func SpawnTilemap(w *World, cfg TilemapConfig) (core.Entity, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	tm := component.TilemapComponent{
		Name:      cfg.Name,
		Role:      cfg.Role,
		Texture:   cfg.Texture,
		ChunkSize: cfg.ChunkSize,
		TileSize:  cfg.TileSize,
		Range:     cfg.Range,
		Center:    cfg.Center,
		Chunks:    component.NewChunkRegistry(),
	}
	tm.CurrentChunk = tm.ChunkIndexAt(cfg.Center)

	e := With(w.NewEntity(), w.Components.Tilemap, tm).Build()
	w.Logger().WithFields(logrus.Fields{
		"tilemap": cfg.Name,
		"entity":  e,
		"role":    cfg.Role.String(),
		"range":   cfg.Range,
	}).Info("tilemap spawned")
	return e, nil
}

// DestroyTilemap releases every chunk and removes the tilemap
func DestroyTilemap(w *World, e core.Entity) error {
	tm, ok := w.Components.Tilemap.Get(e)
	if !ok {
		return ErrTilemapNotFound
	}
	releaseAll(w, e, &tm)
	DestroyRecursive(w, e)
	return nil
}

// Tilemaps returns live tilemap entities in creation order
func Tilemaps(w *World) []core.Entity {
	return w.Components.Tilemap.All()
}

// SetCenter moves the viewpoint, the current chunk is recomputed on the next tick
// A NaN or infinite position is rejected and the center is left unchanged
func SetCenter(w *World, e core.Entity, pos vmath.Vec2) error {
	if !pos.Finite() {
		return fmt.Errorf("%w (got %v)", ErrInvalidCenter, pos)
	}
	tm, ok := w.Components.Tilemap.Get(e)
	if !ok {
		return ErrTilemapNotFound
	}
	tm.Center = pos
	w.Components.Tilemap.Set(e, tm)
	return nil
}

// SetRange changes the streaming radius
func SetRange(w *World, e core.Entity, r int) error {
	if r < 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidRange, r)
	}
	tm, ok := w.Components.Tilemap.Get(e)
	if !ok {
		return ErrTilemapNotFound
	}
	tm.Range = r
	w.Components.Tilemap.Set(e, tm)
	return nil
}

// SetGeometry changes chunk and tile size
// Resident chunks were laid out for the old geometry, so all of them are released
func SetGeometry(w *World, e core.Entity, chunkSize vmath.IVec2, tileSize vmath.Vec2) error {
	if err := validateGeometry(chunkSize, tileSize); err != nil {
		return err
	}
	tm, ok := w.Components.Tilemap.Get(e)
	if !ok {
		return ErrTilemapNotFound
	}
	if tm.ChunkSize == chunkSize && tm.TileSize == tileSize {
		return nil
	}

	releaseAll(w, e, &tm)
	tm.ChunkSize = chunkSize
	tm.TileSize = tileSize
	tm.CurrentChunk = tm.ChunkIndexAt(tm.Center)
	w.Components.Tilemap.Set(e, tm)
	return nil
}

// ResidentChunks lists the registered indices of a tilemap
func ResidentChunks(w *World, e core.Entity) []vmath.IVec2 {
	tm, ok := w.Components.Tilemap.Get(e)
	if !ok {
		return nil
	}
	return tm.Chunks.Indices()
}

// ReleaseChunk announces, unregisters and destroys one chunk of a tilemap
func ReleaseChunk(w *World, tilemap core.Entity, tm *component.TilemapComponent, chunk core.Entity, idx vmath.IVec2) {
	w.PushEvent(event.EventReleaseChunk, &event.ReleaseChunkPayload{
		Tilemap: tilemap,
		Index:   idx,
		Chunk:   chunk,
	})
	tm.Chunks.Remove(idx)
	DestroyRecursive(w, chunk)
}

func releaseAll(w *World, e core.Entity, tm *component.TilemapComponent) {
	for _, child := range Children(w, e) {
		chunk, ok := w.Components.Chunk.Get(child)
		if !ok {
			continue
		}
		ReleaseChunk(w, e, tm, child, chunk.Index)
	}
	tm.Chunks.Reset()
}
