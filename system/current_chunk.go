package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/constant"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/event"
)

// CurrentChunkSystem keeps each tilemap's current chunk in step with its center
type CurrentChunkSystem struct {
	world *engine.World
	log   logrus.FieldLogger

	tilemapStore *engine.Store[component.TilemapComponent]
}

func NewCurrentChunkSystem(world *engine.World) engine.System {
	return &CurrentChunkSystem{
		world:        world,
		log:          world.Logger().WithField("system", "current_chunk"),
		tilemapStore: world.Components.Tilemap,
	}
}

func (s *CurrentChunkSystem) Init() {}

func (s *CurrentChunkSystem) Priority() int {
	return constant.PriorityCurrentChunk
}

func (s *CurrentChunkSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventCenterUpdate}
}

// HandleEvent applies a viewpoint move, Tilemap 0 moves every tilemap
func (s *CurrentChunkSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.CenterUpdatePayload)
	if !ok {
		return
	}
	if !p.Position.Finite() {
		s.log.WithFields(logrus.Fields{
			"tilemap":  p.Tilemap,
			"position": p.Position,
		}).Warn("non-finite center update skipped")
		return
	}

	if p.Tilemap == core.NoEntity {
		for _, e := range s.tilemapStore.All() {
			s.setCenter(e, p)
		}
		return
	}
	if !s.setCenter(p.Tilemap, p) {
		s.log.WithField("tilemap", p.Tilemap).Debug("center update for missing tilemap")
	}
}

func (s *CurrentChunkSystem) setCenter(e core.Entity, p *event.CenterUpdatePayload) bool {
	tm, ok := s.tilemapStore.Get(e)
	if !ok {
		return false
	}
	tm.Center = p.Position
	s.tilemapStore.Set(e, tm)
	return true
}

// Update recomputes the current chunk and reports transitions
func (s *CurrentChunkSystem) Update() {
	for _, e := range s.tilemapStore.All() {
		tm, _ := s.tilemapStore.Get(e)
		idx := tm.ChunkIndexAt(tm.Center)
		if idx == tm.CurrentChunk {
			continue
		}

		s.log.WithFields(logrus.Fields{
			"tilemap": tm.Name,
			"from":    tm.CurrentChunk,
			"to":      idx,
		}).Info("current chunk changed")

		s.world.PushEvent(event.EventCurrentChunkChanged, &event.CurrentChunkChangedPayload{
			Tilemap: e,
			From:    tm.CurrentChunk,
			To:      idx,
		})
		tm.CurrentChunk = idx
		s.tilemapStore.Set(e, tm)
	}
}
