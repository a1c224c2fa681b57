package component

import (
	"sort"

	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/vmath"
)

// ChunkRegistry tracks which chunk indices of a tilemap exist
// Resident indices map one to one onto live chunk entities
// Pending indices have an outstanding materialize request and no entity yet
type ChunkRegistry struct {
	resident map[vmath.IVec2]core.Entity
	pending  map[vmath.IVec2]struct{}
}

func NewChunkRegistry() *ChunkRegistry {
	return &ChunkRegistry{
		resident: make(map[vmath.IVec2]core.Entity),
		pending:  make(map[vmath.IVec2]struct{}),
	}
}

// Has reports whether a chunk entity exists at idx
func (r *ChunkRegistry) Has(idx vmath.IVec2) bool {
	_, ok := r.resident[idx]
	return ok
}

// Get returns the chunk entity at idx
func (r *ChunkRegistry) Get(idx vmath.IVec2) (core.Entity, bool) {
	e, ok := r.resident[idx]
	return e, ok
}

// Known reports whether idx is resident or has a request in flight
func (r *ChunkRegistry) Known(idx vmath.IVec2) bool {
	if _, ok := r.resident[idx]; ok {
		return true
	}
	_, ok := r.pending[idx]
	return ok
}

// MarkPending records an outstanding request for idx
func (r *ChunkRegistry) MarkPending(idx vmath.IVec2) {
	r.pending[idx] = struct{}{}
}

// IsPending reports whether idx has an outstanding request
func (r *ChunkRegistry) IsPending(idx vmath.IVec2) bool {
	_, ok := r.pending[idx]
	return ok
}

// Insert registers the chunk entity for idx and clears its pending mark
func (r *ChunkRegistry) Insert(idx vmath.IVec2, e core.Entity) {
	delete(r.pending, idx)
	r.resident[idx] = e
}

// Remove unregisters idx and returns the entity it held
func (r *ChunkRegistry) Remove(idx vmath.IVec2) (core.Entity, bool) {
	e, ok := r.resident[idx]
	if ok {
		delete(r.resident, idx)
	}
	return e, ok
}

// Len returns the number of resident chunks
func (r *ChunkRegistry) Len() int { return len(r.resident) }

// PendingLen returns the number of outstanding requests
func (r *ChunkRegistry) PendingLen() int { return len(r.pending) }

// Indices returns resident indices, rows top to bottom then left to right
func (r *ChunkRegistry) Indices() []vmath.IVec2 {
	out := make([]vmath.IVec2, 0, len(r.resident))
	for idx := range r.resident {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y > out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Reset drops every resident and pending entry
func (r *ChunkRegistry) Reset() {
	clear(r.resident)
	clear(r.pending)
}
