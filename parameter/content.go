package parameter

import "time"

// Content Generation
const (
	// DefaultContentWorkers is the async generator pool size
	DefaultContentWorkers = 4

	// ContentJobBuffer is the async job channel capacity
	ContentJobBuffer = 256

	// DefaultCacheMaxCost bounds the content cache in tiles
	DefaultCacheMaxCost = 1 << 20

	// DefaultCacheCounters is the admission counter count, ~10x expected entries
	DefaultCacheCounters = 1 << 16

	// DefaultCacheTTL is how long a generated chunk stays reusable
	DefaultCacheTTL = 5 * time.Minute

	// Noise octave parameters: alpha is falloff, beta is frequency step
	NoiseAlpha   = 2.0
	NoiseBeta    = 2.0
	NoiseOctaves = 3

	// NoiseScale converts global tile coordinates into noise space
	NoiseScale = 0.08

	// Ground noise at or above this is grass, below is sand
	GroundGrassThreshold = -0.25

	// Trees noise above this places a tree
	TreeThreshold = 0.2

	// SandTexture is the single sand atlas slot
	SandTexture = 30

	// TreeTextures is the tree variant count, atlas slots 0..19
	TreeTextures = 20
)

// DarkGrassTextures are the grass atlas slots picked per tile
var DarkGrassTextures = [...]uint32{3, 5, 7, 11, 13, 15, 17, 19, 21, 23, 25, 27}
