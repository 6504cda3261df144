package core

import (
	"context"
	"sync"
	"time"
)

// Clock is the frame clock. Tick advances the frame counter and wakes every
// goroutine blocked in AwaitNextTick.
type Clock struct {
	mu    sync.Mutex
	frame uint64
	ch    chan struct{}
}

func NewClock() *Clock { return &Clock{ch: make(chan struct{})} }

func (c *Clock) Tick() {
	c.mu.Lock()
	c.frame++
	close(c.ch)
	c.ch = make(chan struct{})
	c.mu.Unlock()
}

func (c *Clock) Frame() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// AwaitNextTick blocks until the next Tick after the call.
func (c *Clock) AwaitNextTick(ctx context.Context) error {
	c.mu.Lock()
	ch := c.ch
	c.mu.Unlock()
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drive ticks the clock at fps until ctx is cancelled.
func (c *Clock) Drive(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = 60
	}
	t := time.NewTicker(time.Second / time.Duration(fps))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Tick()
		}
	}
}
