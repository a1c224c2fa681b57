package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/constant"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/status"
	"github.com/lixenwraith/tilestream/vmath"
)

// FillSystem writes delivered tile contents into a chunk's slots
// Each cell replaces its slot: nil clears, a descriptor creates or updates the tile entity
type FillSystem struct {
	world *engine.World
	log   logrus.FieldLogger

	chunkStore *engine.Store[component.ChunkComponent]
	tileStore  *engine.Store[component.TileComponent]

	statFilled   *atomic.Int64
	statRejected *atomic.Int64
}

func NewFillSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	return &FillSystem{
		world:        world,
		log:          world.Logger().WithField("system", "fill"),
		chunkStore:   world.Components.Chunk,
		tileStore:    world.Components.Tile,
		statFilled:   reg.Ints.Get(status.KeyFilled),
		statRejected: reg.Ints.Get(status.KeyFillRejected),
	}
}

func (s *FillSystem) Init() {}

func (s *FillSystem) Priority() int {
	return constant.PriorityFill
}

func (s *FillSystem) Update() {}

func (s *FillSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventFillChunk}
}

func (s *FillSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.FillChunkPayload)
	if !ok {
		return
	}
	s.Fill(p.Chunk, p.Tiles)
}

// Fill applies grid to chunk, returns false if the chunk is gone or the grid does not fit
func (s *FillSystem) Fill(chunkEntity core.Entity, grid component.TileGrid) bool {
	chunk, ok := s.chunkStore.Get(chunkEntity)
	if !ok {
		s.log.WithField("chunk", chunkEntity).Debug("fill for missing chunk")
		return false
	}
	if !grid.Matches(chunk.Size) {
		s.log.WithFields(logrus.Fields{
			"chunk": chunkEntity,
			"index": chunk.Index,
			"want":  chunk.Size,
			"got":   grid.Size,
			"cells": len(grid.Cells),
		}).Warn("fill grid does not match chunk size")
		s.statRejected.Add(1)
		return false
	}

	for slot, cell := range grid.Cells {
		local := vmath.IVec2{X: slot % chunk.Size.X, Y: slot / chunk.Size.X}
		existing := chunk.Tiles[slot]

		if cell == nil {
			if existing != core.NoEntity {
				engine.DestroyRecursive(s.world, existing)
				chunk.Tiles[slot] = core.NoEntity
			}
			continue
		}

		if existing != core.NoEntity {
			if tile, ok := s.tileStore.Get(existing); ok {
				tile.Descriptor = *cell
				s.tileStore.Set(existing, tile)
				continue
			}
		}

		tile := engine.With(s.world.NewEntity(), s.tileStore, component.TileComponent{
			Chunk:      chunkEntity,
			Local:      local,
			Global:     vmath.LocalTileToGlobal(chunk.Index, chunk.Size, local),
			Descriptor: *cell,
		}).Build()
		engine.AttachChild(s.world, chunkEntity, tile)
		chunk.Tiles[slot] = tile
	}

	chunk.Filled = true
	s.chunkStore.Set(chunkEntity, chunk)
	s.statFilled.Add(1)
	return true
}
