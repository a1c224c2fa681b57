package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/parameter"
	"github.com/lixenwraith/tilestream/status"
)

// ClockScheduler drives the streaming pipeline on a fixed tick
// Each tick settles external events, then runs every system followed by a settle pass
type ClockScheduler struct {
	world   *World
	timeRes *TimeResource

	tickInterval time.Duration
	settleRounds int
	lastTick     time.Time

	router *event.Router

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Called after every tick with the world lock released
	onTick func(frame int64)

	statTicks    *atomic.Int64
	statTickMs   *status.AtomicFloat
	statBacklog  *atomic.Int64
	statRunning  *atomic.Bool
	statTilemaps *atomic.Int64
}

// NewClockScheduler creates a scheduler, initializes systems and registers those that handle events
// Systems must be added to the world first
func NewClockScheduler(world *World, tickInterval time.Duration) *ClockScheduler {
	if tickInterval < parameter.MinTickInterval {
		tickInterval = parameter.TickInterval
	}
	reg := world.Resource.Status

	cs := &ClockScheduler{
		world:        world,
		timeRes:      world.Resource.Time,
		tickInterval: tickInterval,
		settleRounds: parameter.EventSettleIterations,
		router:       event.NewRouter(world.EventQueue()),
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statTickMs:   reg.Floats.Get(status.KeyTickDuration),
		statBacklog:  reg.Ints.Get(status.KeyBacklog),
		statRunning:  reg.Bools.Get(status.KeyRunning),
		statTilemaps: reg.Ints.Get(status.KeyTilemaps),
	}

	for _, sys := range world.Systems() {
		sys.Init()
		if h, ok := sys.(event.Handler); ok {
			cs.router.Register(h)
		}
	}
	return cs
}

// RegisterEventHandler adds an external handler, must be called before Start
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler) {
	cs.router.Register(handler)
}

// SetSettleRounds bounds dispatch rounds per phase, events beyond it roll over
func (cs *ClockScheduler) SetSettleRounds(n int) {
	if n < 1 {
		n = 1
	}
	cs.settleRounds = n
}

// OnTick installs a callback run after every tick outside the world lock
func (cs *ClockScheduler) OnTick(fn func(frame int64)) {
	cs.onTick = fn
}

// Tick runs one pipeline pass synchronously
func (cs *ClockScheduler) Tick() {
	var frame int64
	cs.world.RunSafe(func() {
		frame = cs.processTick()
	})
	if cs.onTick != nil {
		cs.onTick(frame)
	}
}

func (cs *ClockScheduler) processTick() int64 {
	start := time.Now()
	var delta time.Duration
	if !cs.lastTick.IsZero() {
		delta = start.Sub(cs.lastTick)
	}
	cs.lastTick = start

	frame := cs.world.advanceFrame()
	cs.timeRes.Update(start, delta, frame)

	// Center updates and async fills pushed since the last tick
	cs.router.Settle(cs.settleRounds)

	for _, sys := range cs.world.Systems() {
		sys.Update()
		cs.router.Settle(cs.settleRounds)
	}

	cs.statTicks.Add(1)
	cs.statTickMs.Set(float64(time.Since(start).Microseconds()) / 1000)
	cs.statBacklog.Store(int64(cs.world.EventQueue().Len()))
	cs.statTilemaps.Store(int64(cs.world.Components.Tilemap.Count()))
	return frame
}

// Start begins ticking on a background goroutine until Stop or ctx is done
func (cs *ClockScheduler) Start(ctx context.Context) {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}
	cs.statRunning.Store(true)
	cs.wg.Add(1)
	core.Go(func() { cs.loop(ctx) })
}

// Stop halts the loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		cs.wg.Wait()
		cs.running.Store(false)
		cs.statRunning.Store(false)
	})
}

// Running reports whether the loop is active
func (cs *ClockScheduler) Running() bool {
	return cs.running.Load()
}

func (cs *ClockScheduler) loop(ctx context.Context) {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ctx.Done():
			cs.running.Store(false)
			cs.statRunning.Store(false)
			return
		case <-ticker.C:
			cs.Tick()
		}
	}
}
