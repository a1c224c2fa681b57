package vmath

import "math"

// Chunk coordinates grow right on X and down on Y, world coordinates grow up on Y

// MaxChunkIndex bounds chunk indices on each axis
// Positions beyond it saturate, leaving headroom for index+range arithmetic
const MaxChunkIndex = 1 << 40

// ChunkIndexOf returns the chunk containing a world position
// Ties on a chunk boundary round away from zero, NaN maps to 0
func ChunkIndexOf(position Vec2, chunkSize IVec2, tileSize Vec2) IVec2 {
	spanX := tileSize.X * float64(chunkSize.X)
	spanY := tileSize.Y * float64(chunkSize.Y)
	return IVec2{
		X: saturateIndex(math.Round(position.X / spanX)),
		Y: saturateIndex(math.Round(-position.Y / spanY)),
	}
}

func saturateIndex(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= MaxChunkIndex:
		return MaxChunkIndex
	case v <= -MaxChunkIndex:
		return -MaxChunkIndex
	}
	return int(v)
}

// ChunkCenterOf returns the world anchor of a chunk
// Half extents use integer division, so even chunk sizes anchor half a tile off center
func ChunkCenterOf(chunkSize IVec2, tileSize Vec2, index IVec2) Vec2 {
	halfX := float64((chunkSize.X - 1) / 2)
	halfY := float64((chunkSize.Y - 1) / 2)
	return Vec2{
		X: -tileSize.X*halfX + float64(index.X)*tileSize.X*float64(chunkSize.X),
		Y: -tileSize.Y*halfY + float64(-index.Y)*tileSize.Y*float64(chunkSize.Y),
	}
}

// LocalTileToGlobal maps a tile slot inside a chunk to global tile coordinates
// Local Y grows down the grid, global Y grows up
func LocalTileToGlobal(chunkIndex, chunkSize, local IVec2) IVec2 {
	return IVec2{
		X: local.X - chunkSize.X/2 + chunkIndex.X*chunkSize.X,
		Y: chunkSize.Y/2 - local.Y - chunkIndex.Y*chunkSize.Y,
	}
}

// ChunkSpan returns the world extent of one chunk
func ChunkSpan(chunkSize IVec2, tileSize Vec2) Vec2 {
	return Vec2{tileSize.X * float64(chunkSize.X), tileSize.Y * float64(chunkSize.Y)}
}
