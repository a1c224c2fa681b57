package system

import (
	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/constant"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/vmath"
)

// SpawnAroundSystem requests every chunk within range that is neither resident nor requested
// Marking the index pending before the request is consumed keeps requests unique
type SpawnAroundSystem struct {
	world *engine.World

	tilemapStore *engine.Store[component.TilemapComponent]
}

func NewSpawnAroundSystem(world *engine.World) engine.System {
	return &SpawnAroundSystem{
		world:        world,
		tilemapStore: world.Components.Tilemap,
	}
}

func (s *SpawnAroundSystem) Init() {}

func (s *SpawnAroundSystem) Priority() int {
	return constant.PrioritySpawnAround
}

func (s *SpawnAroundSystem) Update() {
	for _, e := range s.tilemapStore.All() {
		tm, _ := s.tilemapStore.Get(e)
		for _, idx := range vmath.EnumerateRange(tm.CurrentChunk, tm.Range) {
			if tm.Chunks.Known(idx) {
				continue
			}
			tm.Chunks.MarkPending(idx)
			s.world.PushEvent(event.EventMaterializeChunk, &event.MaterializeChunkPayload{
				Tilemap: e,
				Index:   idx,
			})
		}
	}
}
