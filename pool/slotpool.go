// File: pool/slotpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded slot pool: mutex-guarded free list with direct handoff to waiting
// acquirers. Go's sync.Cond has no timed wait, so the bounded wait is built
// from per-waiter channels selected against a timer; a timed-out waiter
// deregisters itself under the mutex, which preserves the
// free-list/checked-out invariant without lost or spurious wakeups.

package pool

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/slotpool/api"
)

// Pool is a fixed-capacity pool of reusable fixed-size buffers.
//
// The free list is insertion-ordered and popped from the front, so a freed
// slot goes to the back and the oldest-freed slot is handed out first. That
// order is documented behavior, not a contract callers may rely on.
type Pool struct {
	capacity int
	timeout  time.Duration

	mu      sync.Mutex
	free    *queue.Queue // slot ids, insertion-ordered
	waiters *list.List   // *waiter, FIFO by arrival
	leased  []bool       // per-slot checked-out state
	closed  bool

	slots []*slot
	slab  *slab

	stats poolStats
}

var _ api.SlotPool = (*Pool)(nil)

// waiter is one parked acquirer. ready is buffered so a releasing goroutine
// never blocks on handoff. A waiter is either queued or delivered-to, never
// both: every queue removal happens under Pool.mu.
type waiter struct {
	ready chan *slot
}

// New constructs a Pool from cfg (DefaultConfig if nil). All slots are
// allocated up front in one slab and marked free. A zero Capacity yields a
// degenerate pool on which every acquire fails via the timeout path.
func New(cfg *Config) (*Pool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Capacity < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative capacity").
			WithContext("capacity", cfg.Capacity)
	}
	if cfg.SlotSize < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative slot size").
			WithContext("slot_size", cfg.SlotSize)
	}
	slotSize := cfg.SlotSize
	if slotSize == 0 {
		slotSize = DefaultSlotSize
	}
	timeout := cfg.AcquireTimeout
	if timeout == 0 {
		timeout = DefaultAcquireTimeout
	}

	p := &Pool{
		capacity: cfg.Capacity,
		timeout:  timeout,
		free:     queue.New(),
		waiters:  list.New(),
		leased:   make([]bool, cfg.Capacity),
		slots:    make([]*slot, cfg.Capacity),
		slab:     newSlab(cfg.Capacity * slotSize),
	}
	for i := 0; i < cfg.Capacity; i++ {
		p.slots[i] = &slot{id: i, data: p.slab.window(i, slotSize), pool: p}
		p.free.Add(i)
	}
	return p, nil
}

// Acquire blocks until a free slot exists or the pool's default timeout
// elapses, whichever comes first.
func (p *Pool) Acquire() (api.Slot, error) {
	return p.acquire(nil, p.timeout)
}

// AcquireTimeout is Acquire with a per-call wait bound. A non-positive d
// fails immediately when no slot is free.
func (p *Pool) AcquireTimeout(d time.Duration) (api.Slot, error) {
	return p.acquire(nil, d)
}

// AcquireContext is Acquire whose wait is additionally bounded by ctx; the
// pool's default timeout still applies. On cancellation the ctx error is
// returned.
func (p *Pool) AcquireContext(ctx context.Context) (api.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.acquire(ctx, p.timeout)
}

func (p *Pool) acquire(ctx context.Context, d time.Duration) (api.Slot, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, api.ErrPoolClosed
	}
	if p.free.Length() > 0 {
		id := p.free.Remove().(int)
		p.leased[id] = true
		p.stats.acquired.Add(1)
		s := p.slots[id]
		p.mu.Unlock()
		return s, nil
	}
	w := &waiter{ready: make(chan *slot, 1)}
	elem := p.waiters.PushBack(w)
	p.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var done <-chan struct{}
	if ctx != nil {
		done = ctx.Done()
	}

	select {
	case s := <-w.ready:
		if s == nil {
			return nil, api.ErrPoolClosed
		}
		return s, nil
	case <-timer.C:
		if s, err := p.cancelWait(w, elem); s != nil || err != nil {
			return s, err
		}
		p.stats.timeouts.Add(1)
		return nil, api.ErrAcquireTimeout
	case <-done:
		if s, err := p.cancelWait(w, elem); s != nil || err != nil {
			return s, err
		}
		return nil, ctx.Err()
	}
}

// cancelWait deregisters w from the waiter queue. If a handoff or close
// raced in before the removal, the delivered outcome wins and is returned;
// a nil, nil result means the wait was abandoned cleanly.
func (p *Pool) cancelWait(w *waiter, elem *list.Element) (api.Slot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case s := <-w.ready:
		if s == nil {
			return nil, api.ErrPoolClosed
		}
		return s, nil
	default:
	}
	p.waiters.Remove(elem)
	return nil, nil
}

// Release returns a previously acquired slot to the pool. A freed slot is
// handed directly to the oldest live waiter when one exists; otherwise its
// identity is appended to the free list. A nil slot is a no-op.
func (p *Pool) Release(s api.Slot) error {
	if s == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return api.ErrPoolClosed
	}
	sl, ok := s.(*slot)
	if !ok || sl.pool != p {
		return api.NewError(api.ErrCodeInvalidSlot, "slot was not issued by this pool")
	}
	id := sl.id
	if id < 0 || id >= p.capacity {
		return api.NewError(api.ErrCodeInvalidSlot, "slot id out of range").
			WithContext("id", id).
			WithContext("capacity", p.capacity)
	}
	if !p.leased[id] {
		return api.NewError(api.ErrCodeSlotNotAcquired, "double release").
			WithContext("id", id)
	}

	if elem := p.waiters.Front(); elem != nil {
		p.waiters.Remove(elem)
		w := elem.Value.(*waiter)
		// Slot stays leased: ownership moves to the waiter directly.
		w.ready <- p.slots[id]
		p.stats.acquired.Add(1)
		p.stats.handoffs.Add(1)
		p.stats.released.Add(1)
		return nil
	}

	p.leased[id] = false
	p.free.Add(id)
	p.stats.released.Add(1)
	return nil
}

// Available returns the number of slots currently free. Snapshot only;
// concurrent acquire/release may change it before the caller observes it.
func (p *Pool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Length()
}

// Capacity returns the immutable construction-time slot count.
func (p *Pool) Capacity() int { return p.capacity }

// Close wakes all pending waiters with ErrPoolClosed, rejects subsequent
// acquires and releases, and unmaps the slab. Outstanding slots become
// invalid: their buffers may reference released memory. Idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	for elem := p.waiters.Front(); elem != nil; elem = p.waiters.Front() {
		p.waiters.Remove(elem)
		elem.Value.(*waiter).ready <- nil
	}
	slab := p.slab
	p.mu.Unlock()
	return slab.release()
}
