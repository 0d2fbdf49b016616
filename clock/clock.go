// Package clock provides the tick source that drives game scheduling.
//
// A tick is one unit of elapsed game time (one millisecond with the default
// Source). The counter is written by a single asynchronous goroutine and
// read by the game loop, so every access goes through sync/atomic.
package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Ticks is a 32-bit tick count. It wraps after ~49 days at 1ms per tick;
// Since is wrap safe.
type Ticks uint32

// Since returns the ticks elapsed from earlier to t, correct across one
// counter wrap.
func (t Ticks) Since(earlier Ticks) Ticks {
	return t - earlier
}

// Clock supplies the current tick count.
type Clock interface {
	Now() Ticks
}

// Counter is an atomically updated tick count.
type Counter struct {
	ticks atomic.Uint32
}

func (c *Counter) Now() Ticks {
	return Ticks(c.ticks.Load())
}

// Add advances the counter and returns the new value.
func (c *Counter) Add(n Ticks) Ticks {
	return Ticks(c.ticks.Add(uint32(n)))
}

func (c *Counter) store(t Ticks) {
	c.ticks.Store(uint32(t))
}

// Manual is a Clock that only moves when told to. Used by tests and
// headless simulation.
type Manual struct {
	Counter
}

// NewManual creates a manual clock starting at start.
func NewManual(start Ticks) *Manual {
	m := &Manual{}
	m.store(start)
	return m
}

// Advance moves the clock forward by d ticks.
func (m *Manual) Advance(d Ticks) {
	m.Add(d)
}

// Set jumps the clock to t.
func (m *Manual) Set(t Ticks) {
	m.store(t)
}

// DefaultInterval is the wall time of one tick.
const DefaultInterval = time.Millisecond

// Source increments a Counter in the background, once per interval of wall
// time. It is the only writer of its counter and never touches game state.
type Source struct {
	Counter

	interval time.Duration
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSource creates a stopped source. A non-positive interval uses
// DefaultInterval.
func NewSource(interval time.Duration) *Source {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Source{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (s *Source) Interval() time.Duration {
	return s.interval
}

// Start launches the counting goroutine. It runs until ctx is cancelled or
// Stop is called. Calling Start twice has no effect.
func (s *Source) Start(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.loop(ctx)
}

// Stop halts the goroutine and waits for it to exit.
func (s *Source) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
}

func (s *Source) loop(ctx context.Context) {
	defer s.wg.Done()

	start := time.Now()
	base := s.Now()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			// Derive the count from elapsed wall time so ticks the runtime
			// coalesced are not lost.
			target := base + Ticks(time.Since(start)/s.interval)
			if target != s.Now() {
				s.store(target)
			}
		}
	}
}
