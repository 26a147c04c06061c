package engine

import (
	"context"
	"sync/atomic"
	"time"
)

const (
	DefaultMovetime = 1200 * time.Millisecond

	MaxDepth = 255
)

type ClockMode uint8

const (
	ClockModeInfinite ClockMode = iota
	ClockModeMovetime
	ClockModeDepth
)

func (m ClockMode) String() string {
	switch m {
	case ClockModeInfinite:
		return "infinite"
	case ClockModeMovetime:
		return "movetime"
	case ClockModeDepth:
		return "depth"
	default:
		return ""
	}
}

// Clock tells a running search when to stop. Stopping is cooperative: the search polls
// DoneByMovetime and DoneByDepth, the Clock never interrupts it.
type Clock struct {
	mode           ClockMode
	targetMovetime time.Duration
	targetDepth    int

	done   *atomic.Bool
	cancel context.CancelFunc
}

func NewClock() *Clock {
	done := &atomic.Bool{}
	done.Store(true)
	return &Clock{
		done: done,
	}
}

// Start arms the clock. The clock runs out when ctx is done or the movetime elapses,
// whichever comes first. A zero Movetime and Depth searches until ctx is done.
func (c *Clock) Start(ctx context.Context, cfg *SearchConfig) {
	c.Stop()
	c.targetMovetime = 0
	c.targetDepth = MaxDepth

	switch {
	case cfg.Movetime > 0:
		c.mode = ClockModeMovetime
		c.targetMovetime = cfg.Movetime
	case cfg.Depth > 0:
		c.mode = ClockModeDepth
	default:
		c.mode = ClockModeInfinite
	}
	if cfg.Depth > 0 && cfg.Depth < MaxDepth {
		c.targetDepth = cfg.Depth
	}

	var cancel context.CancelFunc
	if c.targetMovetime != 0 {
		ctx, cancel = context.WithTimeout(ctx, c.targetMovetime)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	c.cancel = cancel

	// every run gets its own flag so a late signal from a previous run is harmless
	done := &atomic.Bool{}
	done.Store(ctx.Err() != nil)
	c.done = done
	go func() {
		<-ctx.Done()
		done.Store(true)
	}()
}

func (c *Clock) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Clock) Mode() ClockMode {
	return c.mode
}

// DoneByMovetime reports whether the time budget is spent or the search was cancelled.
func (c *Clock) DoneByMovetime() bool {
	return c.done.Load()
}

// DoneByDepth reports whether an iteration searching depth plies reached the depth cap.
func (c *Clock) DoneByDepth(depth int) bool {
	return depth >= c.targetDepth
}
