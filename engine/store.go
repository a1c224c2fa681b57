package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/tilestream/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to strip every component of a destroyed entity
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// Store keeps components of one type densely packed
// index maps an entity to its slot in the parallel entities/values slices
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[core.Entity]int)}
}

// Set inserts or replaces the component of e
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot, ok := s.index[e]; ok {
		s.values[slot] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[slot], true
}

// Remove swaps the last slot into the removed one
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if slot != last {
		moved := s.entities[last]
		s.entities[slot] = moved
		s.values[slot] = s.values[last]
		s.index[moved] = slot
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All returns entities holding this component in ascending ID order
// IDs are allocated monotonically, so this is creation order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	result := slices.Clone(s.entities)
	s.mu.RUnlock()

	slices.Sort(result)
	return result
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.index)
	s.entities = s.entities[:0]
	clear(s.values)
	s.values = s.values[:0]
}
