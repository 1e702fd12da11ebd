// File: pool/slot.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/slotpool/api"

// slot implements api.Slot. The buffer is a fixed window into the pool's
// slab; identity and window never change after construction.
type slot struct {
	id   int
	data []byte
	pool *Pool
}

var _ api.Slot = (*slot)(nil)

func (s *slot) ID() int { return s.id }

// Bytes returns the slot's buffer window. Valid only while the slot is
// checked out.
func (s *slot) Bytes() []byte { return s.data }

// Release returns the slot to its owning pool.
func (s *slot) Release() error { return s.pool.Release(s) }
