package system

import "github.com/lixenwraith/tilestream/engine"

// InstallStreaming adds the chunk streaming pipeline to a world
func InstallStreaming(world *engine.World) {
	world.AddSystem(NewCurrentChunkSystem(world))
	world.AddSystem(NewSpawnAroundSystem(world))
	world.AddSystem(NewChunkSpawnSystem(world))
	world.AddSystem(NewFillSystem(world))
	world.AddSystem(NewDespawnSystem(world))
	world.AddSystem(NewDiagnosticsSystem(world))
}
