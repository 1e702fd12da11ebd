// File: pool/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slab storage shared by all slots of one pool. Platform-specific allocation
// lives in storage_linux.go / storage_other.go.

package pool

// slab is one contiguous allocation carved into fixed-size slot windows.
type slab struct {
	data   []byte
	mapped bool // true when backed by an anonymous mmap region
}

// window returns slot i's buffer: a full-slice so writes can never grow into
// the neighboring slot.
func (s *slab) window(i, size int) []byte {
	off := i * size
	return s.data[off : off+size : off+size]
}
