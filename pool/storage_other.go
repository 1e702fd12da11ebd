//go:build !linux

// File: pool/storage_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable slab backing for non-Linux platforms.

package pool

func newSlab(size int) *slab {
	if size == 0 {
		return &slab{}
	}
	return &slab{data: make([]byte, size)}
}

func (s *slab) release() error {
	s.data = nil
	return nil
}
