package parameter

import "time"

// Engine Timing
const (
	// TickInterval is the default streaming update interval
	TickInterval = 50 * time.Millisecond

	// MinTickInterval bounds configured intervals from below
	MinTickInterval = time.Millisecond

	// EventSettleIterations is the dispatch rounds attempted after each system before rolling over
	EventSettleIterations = 16
)
