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

// ChunkSpawnSystem creates chunk entities for materialize requests
// The chunk is registered in the same step it is created
type ChunkSpawnSystem struct {
	world *engine.World
	log   logrus.FieldLogger

	tilemapStore *engine.Store[component.TilemapComponent]
	chunkStore   *engine.Store[component.ChunkComponent]

	statSpawned *atomic.Int64
}

func NewChunkSpawnSystem(world *engine.World) engine.System {
	return &ChunkSpawnSystem{
		world:        world,
		log:          world.Logger().WithField("system", "chunk_spawn"),
		tilemapStore: world.Components.Tilemap,
		chunkStore:   world.Components.Chunk,
		statSpawned:  world.Resource.Status.Ints.Get(status.KeySpawned),
	}
}

func (s *ChunkSpawnSystem) Init() {}

func (s *ChunkSpawnSystem) Priority() int {
	return constant.PriorityChunkSpawn
}

func (s *ChunkSpawnSystem) Update() {}

func (s *ChunkSpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventMaterializeChunk}
}

func (s *ChunkSpawnSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.MaterializeChunkPayload)
	if !ok {
		return
	}
	s.Materialize(p.Tilemap, p.Index)
}

// Materialize creates the chunk at idx unless it is already resident
func (s *ChunkSpawnSystem) Materialize(tilemap core.Entity, idx vmath.IVec2) (core.Entity, bool) {
	fields := logrus.Fields{"tilemap": tilemap, "index": idx}

	tm, ok := s.tilemapStore.Get(tilemap)
	if !ok {
		s.log.WithFields(fields).Debug("materialize for missing tilemap")
		return 0, false
	}
	if existing, resident := tm.Chunks.Get(idx); resident {
		s.log.WithFields(fields).Debug("chunk already resident")
		return existing, false
	}

	chunk := engine.With(s.world.NewEntity(), s.chunkStore, component.ChunkComponent{
		Tilemap:  tilemap,
		Index:    idx,
		Position: vmath.ChunkCenterOf(tm.ChunkSize, tm.TileSize, idx),
		Size:     tm.ChunkSize,
		Tiles:    make([]core.Entity, tm.ChunkSize.Area()),
	}).Build()
	engine.AttachChild(s.world, tilemap, chunk)
	tm.Chunks.Insert(idx, chunk)
	s.statSpawned.Add(1)

	s.world.PushEvent(event.EventChunkMaterialized, &event.ChunkMaterializedPayload{
		Tilemap: tilemap,
		Index:   idx,
		Chunk:   chunk,
	})
	s.log.WithFields(fields).WithField("chunk", chunk).Debug("chunk materialized")
	return chunk, true
}
