package engine

// System is a pipeline stage run once per tick in priority order
// Systems that also implement event.Handler are registered with the scheduler router
type System interface {
	// Init resets per-run state, called once by the scheduler
	Init()

	// Priority orders systems, lower runs first
	Priority() int

	// Update performs the stage's per-tick work under the world lock
	Update()
}
