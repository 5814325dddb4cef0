package sqlite

import (
	"sync"
	"time"
)

// MonotonicClock implements ports.LogicalClock from wall-clock milliseconds,
// guarded so successive reads never decrease.
type MonotonicClock struct {
	mu   sync.Mutex
	last uint64
}

func (c *MonotonicClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := uint64(time.Now().UTC().UnixMilli())
	if now <= c.last {
		c.last++
		return c.last
	}
	c.last = now
	return now
}
