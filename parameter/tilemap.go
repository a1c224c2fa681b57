package parameter

// Tilemap Defaults
const (
	DefaultChunkSize = 10
	DefaultTileSize  = 32.0
	DefaultRange     = 2
)
