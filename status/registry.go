package status

import "sync/atomic"

// Metric keys written by the engine and content service
const (
	KeyTicks         = "engine.ticks"
	KeyTickDuration  = "engine.tick_ms"
	KeyBacklog       = "engine.backlog"
	KeyRunning       = "engine.running"
	KeyTilemaps      = "tilemaps.count"
	KeyResident      = "chunks.resident"
	KeyPending       = "chunks.pending"
	KeySpawned       = "chunks.spawned"
	KeyReleased      = "chunks.released"
	KeyFilled        = "chunks.filled"
	KeyFillRejected  = "chunks.fill_rejected"
	KeyCacheHits     = "content.cache_hits"
	KeyCacheMisses   = "content.cache_misses"
	KeyContentQueued = "content.queued"
)

// Registry is the central metrics facade
// Systems cache pointers during construction and write atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every metric into a flat map
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	return out
}
