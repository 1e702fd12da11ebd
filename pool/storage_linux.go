//go:build linux

// File: pool/storage_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux slab backing via anonymous private mmap, keeping the pool's one big
// allocation off the Go heap. Falls back to a heap slice when mmap fails.

package pool

import "golang.org/x/sys/unix"

func newSlab(size int) *slab {
	if size == 0 {
		return &slab{}
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		// Fallback: regular slice, GC handles memory.
		return &slab{data: make([]byte, size)}
	}
	return &slab{data: data, mapped: true}
}

// release unmaps the slab. Any outstanding window into it becomes invalid.
func (s *slab) release() error {
	if !s.mapped {
		s.data = nil
		return nil
	}
	data := s.data
	s.data = nil
	s.mapped = false
	return unix.Munmap(data)
}
