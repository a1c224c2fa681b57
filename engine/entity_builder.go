package engine

import "github.com/lixenwraith/tilestream/core"

// EntityBuilder reserves an entity ID and collects components before Build
//
//	chunk := world.NewEntity().
//	    With(world.Components.Chunk, chunkComponent).
//	    Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a builder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{world: w, entity: w.CreateEntity()}
}

// With adds a component of type T to the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Entity returns the reserved ID without finishing the build
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
