// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity pool of reusable fixed-size buffers for high-intensity IO.
// All slots are allocated once, in a single contiguous slab, at construction;
// acquire and release only move slot identities between the free list and
// callers, so steady-state operation is allocation-free. Acquire blocks with
// a bounded wait; release hands freed slots directly to waiting acquirers.
// See slotpool.go and storage_linux.go for implementation details.
package pool
