package content

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/status"
	"github.com/lixenwraith/tilestream/vmath"
)

// Cache keeps generated grids so chunks revisited within the TTL skip generation
// Cost is counted in tiles
type Cache struct {
	store *ristretto.Cache[string, component.TileGrid]
	ttl   time.Duration

	statHits   *atomic.Int64
	statMisses *atomic.Int64
}

// CacheConfig sizes the content cache
type CacheConfig struct {
	MaxCost     int64
	NumCounters int64
	TTL         time.Duration
}

func NewCache(cfg CacheConfig, reg *status.Registry) (*Cache, error) {
	store, err := ristretto.NewCache[string, component.TileGrid](&ristretto.Config[string, component.TileGrid]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("content cache: %w", err)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Cache{
		store:      store,
		ttl:        cfg.TTL,
		statHits:   reg.Ints.Get(status.KeyCacheHits),
		statMisses: reg.Ints.Get(status.KeyCacheMisses),
	}, nil
}

func cacheKey(seed int64, role component.TilemapRole, index, size vmath.IVec2) string {
	return fmt.Sprintf("%d|%s|%d,%d|%dx%d", seed, role, index.X, index.Y, size.X, size.Y)
}

// Get returns a cached grid
func (c *Cache) Get(key string) (component.TileGrid, bool) {
	grid, ok := c.store.Get(key)
	if ok {
		c.statHits.Add(1)
	} else {
		c.statMisses.Add(1)
	}
	return grid, ok
}

// Set stores a grid, admission is best effort
func (c *Cache) Set(key string, grid component.TileGrid) {
	cost := int64(len(grid.Cells))
	if cost == 0 {
		cost = 1
	}
	if c.ttl > 0 {
		c.store.SetWithTTL(key, grid, cost, c.ttl)
		return
	}
	c.store.Set(key, grid, cost)
}

// Wait blocks until buffered writes are applied
func (c *Cache) Wait() {
	c.store.Wait()
}

func (c *Cache) Close() {
	c.store.Close()
}
