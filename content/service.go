package content

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/parameter"
	"github.com/lixenwraith/tilestream/status"
	"github.com/lixenwraith/tilestream/vmath"
)

// Config selects how chunk contents are produced
type Config struct {
	Seed    int64
	Async   bool
	Workers int
	Cache   CacheConfig
}

// DefaultConfig returns synchronous generation with a default-sized cache
func DefaultConfig() Config {
	return Config{
		Seed:    1,
		Workers: parameter.DefaultContentWorkers,
		Cache: CacheConfig{
			MaxCost:     parameter.DefaultCacheMaxCost,
			NumCounters: parameter.DefaultCacheCounters,
			TTL:         parameter.DefaultCacheTTL,
		},
	}
}

type job struct {
	chunk core.Entity
	index vmath.IVec2
	role  component.TilemapRole
	size  vmath.IVec2
}

// Service answers materialized chunks with fill requests
// Sync mode pushes the fill during dispatch so it lands in the same tick
// Async mode hands jobs to workers that push fills from their own goroutines
type Service struct {
	world *engine.World
	gen   Generator
	seed  int64
	cache *Cache
	log   logrus.FieldLogger

	async   bool
	workers int
	jobs    chan job
	stopCh  chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
	stopped sync.Once

	statQueued *atomic.Int64
}

// NewService builds a service, gen nil uses a NoiseGenerator seeded from cfg
func NewService(world *engine.World, gen Generator, cfg Config) (*Service, error) {
	cache, err := NewCache(cfg.Cache, world.Resource.Status)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		gen = NewNoiseGenerator(cfg.Seed)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &Service{
		world:      world,
		gen:        gen,
		seed:       cfg.Seed,
		cache:      cache,
		log:        world.Logger().WithField("service", "content"),
		async:      cfg.Async,
		workers:    workers,
		jobs:       make(chan job, parameter.ContentJobBuffer),
		stopCh:     make(chan struct{}),
		statQueued: world.Resource.Status.Ints.Get(status.KeyContentQueued),
	}, nil
}

func (s *Service) Name() string {
	return "content"
}

func (s *Service) Dependencies() []string {
	return nil
}

// Start launches the worker pool in async mode, sync mode needs no goroutines
func (s *Service) Start(ctx context.Context) error {
	if !s.async || !s.running.CompareAndSwap(false, true) {
		return nil
	}
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		core.Go(func() { s.worker(ctx) })
	}
	s.log.WithField("workers", s.workers).Info("content workers started")
	return nil
}

// Stop drains workers and releases the cache
func (s *Service) Stop() error {
	s.stopped.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
		s.running.Store(false)
		s.cache.Close()
	})
	return nil
}

func (s *Service) EventTypes() []event.EventType {
	return []event.EventType{event.EventChunkMaterialized}
}

// HandleEvent runs during dispatch under the world lock
func (s *Service) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ChunkMaterializedPayload)
	if !ok {
		return
	}
	tm, ok := s.world.Components.Tilemap.Get(p.Tilemap)
	if !ok {
		return
	}
	if tm.Role == component.RoleCustom {
		return
	}

	j := job{chunk: p.Chunk, index: p.Index, role: tm.Role, size: tm.ChunkSize}
	if !s.async || !s.running.Load() {
		s.process(j)
		return
	}

	// Never block the tick on a full pool, generate inline instead
	select {
	case s.jobs <- j:
		s.statQueued.Add(1)
	default:
		s.process(j)
	}
}

func (s *Service) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case j := <-s.jobs:
			s.statQueued.Add(-1)
			s.process(j)
		}
	}
}

// Grid returns the contents for a chunk, from cache when possible
func (s *Service) Grid(role component.TilemapRole, index, size vmath.IVec2) component.TileGrid {
	key := cacheKey(s.seed, role, index, size)
	if grid, ok := s.cache.Get(key); ok {
		return grid
	}
	grid := s.gen.Generate(role, index, size)
	s.cache.Set(key, grid)
	return grid
}

func (s *Service) process(j job) {
	grid := s.Grid(j.role, j.index, j.size)
	s.log.WithFields(logrus.Fields{
		"chunk": j.chunk,
		"index": j.index,
		"role":  j.role.String(),
		"tiles": grid.Occupied(),
	}).Debug("prepared chunk contents")

	s.world.PushEvent(event.EventFillChunk, &event.FillChunkPayload{
		Chunk: j.chunk,
		Index: j.index,
		Tiles: grid,
	})
}

// Cache exposes the content cache for diagnostics
func (s *Service) Cache() *Cache {
	return s.cache
}
