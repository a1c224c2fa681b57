package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/content"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/logging"
	"github.com/lixenwraith/tilestream/parameter"
	"github.com/lixenwraith/tilestream/vmath"
)

// EnvPrefix prefixes environment overrides, TILESTREAM_ENGINE_TICK_INTERVAL=100ms
const EnvPrefix = "TILESTREAM"

var (
	ErrDuplicateTilemap = errors.New("duplicate tilemap name")
	ErrInvalidEngine    = errors.New("invalid engine settings")
	ErrInvalidContent   = errors.New("invalid content settings")
)

type Config struct {
	Engine   EngineConfig   `mapstructure:"engine"`
	Log      logging.Config `mapstructure:"log"`
	Content  ContentConfig  `mapstructure:"content"`
	Tilemaps []TilemapEntry `mapstructure:"tilemap"`
}

type EngineConfig struct {
	TickInterval     time.Duration `mapstructure:"tick_interval"`
	SettleIterations int           `mapstructure:"settle_iterations"`
}

type ContentConfig struct {
	Seed         int64         `mapstructure:"seed"`
	Async        bool          `mapstructure:"async"`
	Workers      int           `mapstructure:"workers"`
	CacheMaxCost int64         `mapstructure:"cache_max_cost"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

// TilemapEntry is one [[tilemap]] table, omitted geometry falls back to defaults
type TilemapEntry struct {
	Name      string    `mapstructure:"name"`
	Role      string    `mapstructure:"role"`
	ChunkSize []int     `mapstructure:"chunk_size"`
	TileSize  []float64 `mapstructure:"tile_size"`
	Range     *int      `mapstructure:"range"`
	Center    []float64 `mapstructure:"center"`
	Texture   string    `mapstructure:"texture"`
}

// Default returns a ground layer under a tree layer with default geometry
func Default() Config {
	return Config{
		Engine: EngineConfig{
			TickInterval:     parameter.TickInterval,
			SettleIterations: parameter.EventSettleIterations,
		},
		Log: logging.DefaultConfig(),
		Content: ContentConfig{
			Seed:         1,
			Workers:      parameter.DefaultContentWorkers,
			CacheMaxCost: parameter.DefaultCacheMaxCost,
			CacheTTL:     parameter.DefaultCacheTTL,
		},
		Tilemaps: []TilemapEntry{
			{Name: "ground", Role: "ground", Texture: "textures/ground.png"},
			{Name: "trees", Role: "trees", Texture: "textures/trees.png"},
		},
	}
}

// Load reads a config file, format follows the extension
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(v)
}

// LoadReader reads config of the given format ("toml", "yaml", "json")
func LoadReader(r io.Reader, format string) (Config, error) {
	v := newViper()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decode(v)
}

// FromEnv builds a config from defaults and environment overrides only
func FromEnv() (Config, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Env overrides only apply to keys viper knows about
	d := Default()
	v.SetDefault("engine.tick_interval", d.Engine.TickInterval)
	v.SetDefault("engine.settle_iterations", d.Engine.SettleIterations)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("content.seed", d.Content.Seed)
	v.SetDefault("content.async", d.Content.Async)
	v.SetDefault("content.workers", d.Content.Workers)
	v.SetDefault("content.cache_max_cost", d.Content.CacheMaxCost)
	v.SetDefault("content.cache_ttl", d.Content.CacheTTL)
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Tilemaps) == 0 {
		cfg.Tilemaps = Default().Tilemaps
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks engine and content settings and every tilemap entry
func (c Config) Validate() error {
	if c.Engine.TickInterval < parameter.MinTickInterval {
		return fmt.Errorf("%w: tick_interval %v below %v", ErrInvalidEngine, c.Engine.TickInterval, parameter.MinTickInterval)
	}
	if c.Engine.SettleIterations < 1 {
		return fmt.Errorf("%w: settle_iterations must be positive", ErrInvalidEngine)
	}
	if c.Content.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive", ErrInvalidContent)
	}
	if c.Content.CacheMaxCost < 1 {
		return fmt.Errorf("%w: cache_max_cost must be positive", ErrInvalidContent)
	}

	seen := make(map[string]struct{}, len(c.Tilemaps))
	for i, entry := range c.Tilemaps {
		tc, err := entry.TilemapConfig()
		if err != nil {
			return fmt.Errorf("tilemap[%d]: %w", i, err)
		}
		if err := tc.Validate(); err != nil {
			return fmt.Errorf("tilemap[%d]: %w", i, err)
		}
		if _, dup := seen[tc.Name]; dup {
			return fmt.Errorf("tilemap[%d]: %w %q", i, ErrDuplicateTilemap, tc.Name)
		}
		seen[tc.Name] = struct{}{}
	}
	return nil
}

// TilemapConfig converts the entry, filling omitted geometry with defaults
func (e TilemapEntry) TilemapConfig() (engine.TilemapConfig, error) {
	tc := engine.TilemapConfig{
		Name:      e.Name,
		Role:      component.ParseTilemapRole(e.Role),
		ChunkSize: vmath.IVec2{X: parameter.DefaultChunkSize, Y: parameter.DefaultChunkSize},
		TileSize:  vmath.Vec2{X: parameter.DefaultTileSize, Y: parameter.DefaultTileSize},
		Range:     parameter.DefaultRange,
		Texture:   e.Texture,
	}
	if tc.Name == "" {
		tc.Name = tc.Role.String()
	}

	switch len(e.ChunkSize) {
	case 0:
	case 2:
		tc.ChunkSize = vmath.IVec2{X: e.ChunkSize[0], Y: e.ChunkSize[1]}
	default:
		return tc, fmt.Errorf("%w: chunk_size needs 2 values, got %d", engine.ErrInvalidChunkSize, len(e.ChunkSize))
	}
	switch len(e.TileSize) {
	case 0:
	case 2:
		tc.TileSize = vmath.Vec2{X: e.TileSize[0], Y: e.TileSize[1]}
	default:
		return tc, fmt.Errorf("%w: tile_size needs 2 values, got %d", engine.ErrInvalidTileSize, len(e.TileSize))
	}
	if len(e.Center) == 2 {
		tc.Center = vmath.Vec2{X: e.Center[0], Y: e.Center[1]}
	}
	if e.Range != nil {
		tc.Range = *e.Range
	}
	return tc, nil
}

// TilemapConfigs converts every entry, call after Validate
func (c Config) TilemapConfigs() []engine.TilemapConfig {
	out := make([]engine.TilemapConfig, 0, len(c.Tilemaps))
	for _, entry := range c.Tilemaps {
		if tc, err := entry.TilemapConfig(); err == nil {
			out = append(out, tc)
		}
	}
	return out
}

// ContentServiceConfig maps the content section onto the service config
func (c Config) ContentServiceConfig() content.Config {
	cfg := content.DefaultConfig()
	cfg.Seed = c.Content.Seed
	cfg.Async = c.Content.Async
	cfg.Workers = c.Content.Workers
	cfg.Cache.MaxCost = c.Content.CacheMaxCost
	cfg.Cache.TTL = c.Content.CacheTTL
	return cfg
}
