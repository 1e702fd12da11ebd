// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Defines the abstract slot pool API: bounded, reusable fixed-size buffers
// shared across concurrent callers.

package api

import (
	"context"
	"time"
)

// Slot is a caller-held token for temporary, exclusive access to one
// fixed-size buffer owned by a pool. A slot must be returned via Release
// (or SlotPool.Release) and must not be used afterwards.
type Slot interface {
	// ID returns the slot's stable identity in [0, capacity).
	ID() int

	// Bytes returns the slot's buffer. The caller may read and write it
	// freely until the slot is released.
	Bytes() []byte

	// Release returns the slot to its owning pool.
	Release() error
}

// SlotPool manages a fixed set of pre-allocated, fixed-size buffers.
// All methods are safe for concurrent use.
type SlotPool interface {
	// Acquire blocks until a free slot exists or the pool's default
	// timeout elapses, whichever comes first.
	Acquire() (Slot, error)

	// AcquireTimeout is Acquire with a per-call wait bound.
	AcquireTimeout(d time.Duration) (Slot, error)

	// AcquireContext is Acquire whose wait is additionally bounded by ctx
	// cancellation. The pool's default timeout still applies.
	AcquireContext(ctx context.Context) (Slot, error)

	// Release returns a previously acquired slot to the pool and wakes one
	// waiter, if any. A nil slot is a no-op.
	Release(s Slot) error

	// Available returns the number of slots currently free. The value is a
	// point-in-time snapshot; concurrent callers may change it immediately.
	Available() int

	// Capacity returns the immutable construction-time slot count.
	Capacity() int

	// Stats exposes cumulative pool accounting for observability.
	Stats() SlotPoolStats

	// Close wakes all pending waiters with ErrPoolClosed, rejects further
	// operations, and releases the backing storage. Idempotent.
	Close() error
}

// SlotPoolStats aggregates pool accounting counters.
type SlotPoolStats struct {
	Acquired int64 // successful acquires, cumulative
	Released int64 // successful releases, cumulative
	Timeouts int64 // acquires that failed on the wait bound, cumulative
	Handoffs int64 // releases handed directly to a waiter, cumulative
	Free     int64 // slots currently on the free list
	InUse    int64 // slots currently checked out
}
