package engine

import (
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/status"
)

// ResourceStore is a thread-safe container for world-global resources keyed by type
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{resources: make(map[reflect.Type]any)}
}

// AddResource registers or replaces a resource, pointer types are expected
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var zero T
		panic("engine: missing resource " + reflect.TypeOf(zero).String())
	}
	return res
}

// Resource holds the singletons every system reads, installed by NewWorld
type Resource struct {
	Time   *TimeResource
	Log    *LogResource
	Status *status.Registry
}

// TimeResource is updated by the scheduler at the start of each tick
type TimeResource struct {
	Now         time.Time
	DeltaTime   time.Duration
	FrameNumber int64
}

// Update modifies fields in place, called under the world lock
func (tr *TimeResource) Update(now time.Time, delta time.Duration, frame int64) {
	tr.Now = now
	tr.DeltaTime = delta
	tr.FrameNumber = frame
}

// LogResource carries the engine logger
type LogResource struct {
	Logger logrus.FieldLogger
}

func newDiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
