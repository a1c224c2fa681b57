package core

// Entity is a unique identifier for an entity, 0 is never allocated
type Entity uint64

// NoEntity marks an empty slot or a broadcast target
const NoEntity Entity = 0
