package event

// EventType represents the type of engine event
type EventType int

const (
	// === Viewpoint ===

	// EventCenterUpdate moves the viewpoint of one or all tilemaps
	// Trigger: Input, camera follow, tests
	// Consumer: CurrentChunkSystem | Payload: *CenterUpdatePayload
	EventCenterUpdate EventType = iota

	// EventCurrentChunkChanged reports the viewpoint crossed into another chunk
	// Trigger: CurrentChunkSystem
	// Consumer: observers (sandbox HUD) | Payload: *CurrentChunkChangedPayload
	EventCurrentChunkChanged

	// === Chunk Lifecycle ===

	// EventMaterializeChunk requests creation of a chunk at an index
	// Trigger: SpawnAroundSystem for each index missing from the registry
	// Consumer: ChunkSpawnSystem | Payload: *MaterializeChunkPayload
	EventMaterializeChunk

	// EventChunkMaterialized reports a chunk entity was created and registered
	// Trigger: ChunkSpawnSystem
	// Consumer: content.Service | Payload: *ChunkMaterializedPayload
	EventChunkMaterialized

	// EventFillChunk delivers tile contents for a resident chunk
	// Trigger: content.Service, sync or from worker goroutines
	// Consumer: FillSystem | Payload: *FillChunkPayload
	EventFillChunk

	// EventReleaseChunk reports a chunk left range and is being removed
	// Trigger: DespawnSystem, before the entity is destroyed
	// Consumer: observers, content.Service | Payload: *ReleaseChunkPayload
	EventReleaseChunk

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventCenterUpdate:        "center_update",
	EventCurrentChunkChanged: "current_chunk_changed",
	EventMaterializeChunk:    "materialize_chunk",
	EventChunkMaterialized:   "chunk_materialized",
	EventFillChunk:           "fill_chunk",
	EventReleaseChunk:        "release_chunk",
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// ParseEventType resolves an event name to its type
func ParseEventType(name string) (EventType, bool) {
	for i, n := range eventNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// GameEvent is a queued event stamped with the frame it was pushed in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
