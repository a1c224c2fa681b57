package system

import (
	"sync/atomic"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/constant"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/status"
)

// DiagnosticsSystem publishes registry totals after the pipeline settles
type DiagnosticsSystem struct {
	tilemapStore *engine.Store[component.TilemapComponent]

	statResident *atomic.Int64
	statPending  *atomic.Int64
}

func NewDiagnosticsSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	return &DiagnosticsSystem{
		tilemapStore: world.Components.Tilemap,
		statResident: reg.Ints.Get(status.KeyResident),
		statPending:  reg.Ints.Get(status.KeyPending),
	}
}

func (s *DiagnosticsSystem) Init() {}

func (s *DiagnosticsSystem) Priority() int {
	return constant.PriorityDiagnostics
}

func (s *DiagnosticsSystem) Update() {
	var resident, pending int
	for _, e := range s.tilemapStore.All() {
		tm, _ := s.tilemapStore.Get(e)
		resident += tm.Chunks.Len()
		pending += tm.Chunks.PendingLen()
	}
	s.statResident.Store(int64(resident))
	s.statPending.Store(int64(pending))
}
