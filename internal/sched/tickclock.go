// internal/sched/tickclock.go

package sched

import (
	"context"
	"time"
)

// TickClock paces a replay of simulated time in wall-clock time: one
// simulated time unit lasts Tick.
type TickClock struct {
	Tick time.Duration
}

// NewTickClock creates a clock from a per-unit duration in milliseconds.
func NewTickClock(tickMS int) *TickClock {
	if tickMS <= 0 {
		tickMS = DefaultConfig().TickMS
	}
	return &TickClock{Tick: time.Duration(tickMS) * time.Millisecond}
}

// delay converts a simulated interval into wall time.
func (c *TickClock) delay(units float64) time.Duration {
	if units <= 0 {
		return 0
	}
	return time.Duration(units * float64(c.Tick))
}

// Replay emits events in order, each one after the simulated time since the
// previous event has elapsed. The channel is closed when every event has been
// sent or ctx is done.
func (c *TickClock) Replay(ctx context.Context, events []StatusEvent) <-chan StatusEvent {
	ch := make(chan StatusEvent)
	go func() {
		defer close(ch)

		timer := time.NewTimer(0)
		defer timer.Stop()
		<-timer.C

		prev := 0.0
		for _, ev := range events {
			if d := c.delay(ev.Time - prev); d > 0 {
				timer.Reset(d)
				select {
				case <-ctx.Done():
					return
				case <-timer.C:
				}
			}
			prev = ev.Time

			select {
			case <-ctx.Done():
				return
			case ch <- ev:
			}
		}
	}()
	return ch
}
