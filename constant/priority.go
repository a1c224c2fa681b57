package constant

// System Execution Priorities (lower runs first)
// The order is the chunk streaming pipeline: track, request, create, fill, release
const (
	PriorityCurrentChunk = 10
	PrioritySpawnAround  = 20
	PriorityChunkSpawn   = 30 // Event-driven, no per-tick work
	PriorityFill         = 40 // Event-driven, no per-tick work
	PriorityDespawn      = 50
	PriorityDiagnostics  = 90 // After despawn, telemetry collection
)
