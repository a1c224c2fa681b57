package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/vmath"
)

// eventRecorder collects routed events of the given types
type eventRecorder struct {
	types  []event.EventType
	events []event.GameEvent
}

func (r *eventRecorder) EventTypes() []event.EventType { return r.types }

func (r *eventRecorder) HandleEvent(ev event.GameEvent) { r.events = append(r.events, ev) }

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) reset() { r.events = r.events[:0] }

type harness struct {
	world     *engine.World
	scheduler *engine.ClockScheduler
	recorder  *eventRecorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	w := engine.NewWorld()
	InstallStreaming(w)
	cs := engine.NewClockScheduler(w, time.Millisecond)
	rec := &eventRecorder{types: []event.EventType{
		event.EventCurrentChunkChanged,
		event.EventChunkMaterialized,
		event.EventReleaseChunk,
	}}
	cs.RegisterEventHandler(rec)
	return &harness{world: w, scheduler: cs, recorder: rec}
}

func (h *harness) spawn(t *testing.T, chunk int, tile float64, r int) core.Entity {
	t.Helper()
	e, err := engine.SpawnTilemap(h.world, engine.TilemapConfig{
		Name:      "test",
		Role:      component.RoleGround,
		ChunkSize: vmath.IVec2{X: chunk, Y: chunk},
		TileSize:  vmath.Vec2{X: tile, Y: tile},
		Range:     r,
	})
	if err != nil {
		t.Fatalf("Expected tilemap, got %v", err)
	}
	return e
}

func (h *harness) tilemap(e core.Entity) component.TilemapComponent {
	tm, _ := h.world.Components.Tilemap.Get(e)
	return tm
}

func indexSet(indices []vmath.IVec2) map[vmath.IVec2]bool {
	out := make(map[vmath.IVec2]bool, len(indices))
	for _, idx := range indices {
		out[idx] = true
	}
	return out
}

// drainRequests consumes queued materialize requests without dispatching them
func drainRequests(w *engine.World) []vmath.IVec2 {
	var out []vmath.IVec2
	for _, ev := range w.EventQueue().Consume() {
		if p, ok := ev.Payload.(*event.MaterializeChunkPayload); ok {
			out = append(out, p.Index)
		}
	}
	return out
}
