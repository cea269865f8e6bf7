package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/seltf/shape-game/event"
)

// Clock drives the simulation on a fixed tick
//
// Each tick:
//  1. Advance the time resource
//  2. Dispatch queued events to registered handlers
//  3. Run all systems in priority order
//
// Step is also callable directly for deterministic tests and
// shell-driven loops
type Clock struct {
	world        *World
	router       *event.Router
	tickInterval time.Duration

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClock creates a clock for the world with the given tick interval
func NewClock(world *World, router *event.Router, tickInterval time.Duration) *Clock {
	return &Clock{
		world:        world,
		router:       router,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// Step executes one simulation tick synchronously
func (c *Clock) Step() {
	c.world.Resource.Time.Update(time.Now(), c.tickInterval)
	c.router.DispatchAll()
	c.world.Update()
	c.tickCount.Add(1)
}

// Ticks returns the number of completed ticks
func (c *Clock) Ticks() uint64 {
	return c.tickCount.Load()
}

// Start begins the scheduler loop in its own goroutine
func (c *Clock) Start() {
	if !c.running.CompareAndSwap(false, true) {
		return
	}
	c.wg.Add(1)
	go c.loop()
}

// Stop halts the scheduler loop
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		if c.running.CompareAndSwap(true, false) {
			close(c.stopChan)
			c.wg.Wait()
		}
	})
}

// loop runs ticks against drift-corrected deadlines
// Falls back to a fresh deadline when more than two intervals behind
func (c *Clock) loop() {
	defer c.wg.Done()

	deadline := time.Now().Add(c.tickInterval)
	timer := time.NewTimer(c.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-timer.C:
		}

		c.Step()

		deadline = deadline.Add(c.tickInterval)
		now := time.Now()
		if now.Sub(deadline) > 2*c.tickInterval {
			deadline = now.Add(c.tickInterval)
		}

		sleep := deadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
