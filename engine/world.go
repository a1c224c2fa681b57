package engine

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/status"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *ResourceStore
	Resource   Resource
	Components ComponentStore
	stores     []AnyStore

	eventQueue *event.EventQueue
	frame      atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// WorldOption configures a world at construction
type WorldOption func(*World)

// WithLogger installs the engine logger
func WithLogger(l logrus.FieldLogger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.Resource.Log.Logger = l
		}
	}
}

// WithStatus shares an existing metrics registry
func WithStatus(reg *status.Registry) WorldOption {
	return func(w *World) {
		if reg != nil {
			w.Resource.Status = reg
		}
	}
}

// NewWorld creates an empty world with its event queue and core resources
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		eventQueue:   event.NewEventQueue(),
		systems:      make([]System, 0),
		Resource: Resource{
			Time:   &TimeResource{},
			Log:    &LogResource{Logger: newDiscardLogger()},
			Status: status.NewRegistry(),
		},
	}
	w.Components, w.stores = newComponentStore()

	for _, opt := range opts {
		opt(w)
	}

	AddResource(w.Resources, w.Resource.Time)
	AddResource(w.Resources, w.Resource.Log)
	AddResource(w.Resources, w.Resource.Status)
	return w
}

// Logger returns the engine logger
func (w *World) Logger() logrus.FieldLogger {
	return w.Resource.Log.Logger
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components of an entity, children are left alone
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.stores {
		s.Remove(e)
	}
}

// Alive reports whether any store still holds the entity
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.stores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities, components and pending events
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.stores {
		s.Clear()
	}
	w.eventQueue.Clear()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	// Equal priorities keep insertion order
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
}

// Systems returns a copy of all registered systems in priority order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

func (w *World) advanceFrame() int64 {
	return w.frame.Add(1)
}

// EventQueue exposes the queue for routers and external producers
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}

// PushEvent queues an event stamped with the current frame, safe from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}
