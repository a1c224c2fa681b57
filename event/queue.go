package event

import "sync"

// EventQueue is an unbounded FIFO of pending events
// Thread-Safety:
//   - Push: any goroutine
//   - Consume: single consumer (scheduler)
//
// Requests are never dropped, a chunk request lost to overflow would leave its index pending forever
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 64)}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	eq.mu.Lock()
	eq.events = eq.events[:0]
	eq.mu.Unlock()
}
