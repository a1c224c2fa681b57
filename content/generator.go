package content

import (
	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/parameter"
	"github.com/lixenwraith/tilestream/vmath"
)

// Generator produces the tile contents of one chunk
// Implementations must be safe for concurrent use and deterministic per input
type Generator interface {
	Generate(role component.TilemapRole, index, chunkSize vmath.IVec2) component.TileGrid
}

// NoiseGenerator samples 2D perlin noise at global tile coordinates
// Neighbouring chunks line up because sampling never depends on the chunk index alone
type NoiseGenerator struct {
	seed  int64
	noise *perlin.Perlin
}

func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		seed:  seed,
		noise: perlin.NewPerlin(parameter.NoiseAlpha, parameter.NoiseBeta, parameter.NoiseOctaves, seed),
	}
}

// Seed returns the seed the generator was built with
func (g *NoiseGenerator) Seed() int64 {
	return g.seed
}

// Sample returns the noise value at a global tile
func (g *NoiseGenerator) Sample(global vmath.IVec2) float64 {
	return g.noise.Noise2D(float64(global.X)*parameter.NoiseScale, float64(global.Y)*parameter.NoiseScale)
}

func (g *NoiseGenerator) Generate(role component.TilemapRole, index, chunkSize vmath.IVec2) component.TileGrid {
	grid := component.NewTileGrid(chunkSize)

	for y := 0; y < chunkSize.Y; y++ {
		for x := 0; x < chunkSize.X; x++ {
			local := vmath.IVec2{X: x, Y: y}
			global := vmath.LocalTileToGlobal(index, chunkSize, local)

			switch role {
			case component.RoleGround:
				grid.Set(local, g.ground(global))
			case component.RoleTrees:
				if d, ok := g.tree(global); ok {
					grid.Set(local, d)
				}
			}
		}
	}
	return grid
}

func (g *NoiseGenerator) ground(global vmath.IVec2) component.TileDescriptor {
	if g.Sample(global) >= parameter.GroundGrassThreshold {
		pick := g.variant(global) % uint64(len(parameter.DarkGrassTextures))
		return component.TileDescriptor{Texture: parameter.DarkGrassTextures[pick], Visible: true}
	}
	return component.TileDescriptor{Texture: parameter.SandTexture, Visible: true}
}

func (g *NoiseGenerator) tree(global vmath.IVec2) (component.TileDescriptor, bool) {
	if g.Sample(global) <= parameter.TreeThreshold {
		return component.TileDescriptor{}, false
	}
	return component.TileDescriptor{
		Texture: uint32(g.variant(global) % parameter.TreeTextures),
		Visible: true,
	}, true
}

// variant hashes seed and tile into a stable per-tile choice (splitmix64 finalizer)
func (g *NoiseGenerator) variant(global vmath.IVec2) uint64 {
	z := uint64(g.seed) ^ uint64(int64(global.X))*0x9E3779B97F4A7C15 ^ uint64(int64(global.Y))*0xC2B2AE3D27D4EB4F
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
