package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/constant"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/status"
	"github.com/lixenwraith/tilestream/vmath"
)

// DespawnSystem releases chunks farther than range from the current chunk on either axis
type DespawnSystem struct {
	world *engine.World
	log   logrus.FieldLogger

	tilemapStore *engine.Store[component.TilemapComponent]
	chunkStore   *engine.Store[component.ChunkComponent]

	statReleased *atomic.Int64
}

func NewDespawnSystem(world *engine.World) engine.System {
	return &DespawnSystem{
		world:        world,
		log:          world.Logger().WithField("system", "despawn"),
		tilemapStore: world.Components.Tilemap,
		chunkStore:   world.Components.Chunk,
		statReleased: world.Resource.Status.Ints.Get(status.KeyReleased),
	}
}

func (s *DespawnSystem) Init() {}

func (s *DespawnSystem) Priority() int {
	return constant.PriorityDespawn
}

func (s *DespawnSystem) Update() {
	for _, e := range s.tilemapStore.All() {
		tm, _ := s.tilemapStore.Get(e)

		for _, child := range engine.Children(s.world, e) {
			chunk, ok := s.chunkStore.Get(child)
			if !ok {
				continue
			}
			if vmath.WithinRange(tm.CurrentChunk, chunk.Index, tm.Range) {
				continue
			}

			s.log.WithFields(logrus.Fields{
				"tilemap": tm.Name,
				"index":   chunk.Index,
				"chunk":   child,
			}).Debug("chunk out of range")
			engine.ReleaseChunk(s.world, e, &tm, child, chunk.Index)
			s.statReleased.Add(1)
		}
	}
}
