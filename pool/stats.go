// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/slotpool/api"
)

// poolStats holds cumulative counters. Counters are atomics because the
// timeout path increments outside the pool mutex.
type poolStats struct {
	acquired atomic.Int64
	released atomic.Int64
	timeouts atomic.Int64
	handoffs atomic.Int64
}

// Stats returns a snapshot of pool accounting. Free/InUse are read under the
// pool mutex; the cumulative counters are monotonic.
func (p *Pool) Stats() api.SlotPoolStats {
	p.mu.Lock()
	free := int64(p.free.Length())
	p.mu.Unlock()

	return api.SlotPoolStats{
		Acquired: p.stats.acquired.Load(),
		Released: p.stats.released.Load(),
		Timeouts: p.stats.timeouts.Load(),
		Handoffs: p.stats.handoffs.Load(),
		Free:     free,
		InUse:    int64(p.capacity) - free,
	}
}
