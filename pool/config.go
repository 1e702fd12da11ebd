// File: pool/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "time"

const (
	// DefaultSlotSize is the per-slot buffer size used when Config.SlotSize
	// is zero. Sized for small protocol messages.
	DefaultSlotSize = 256

	// DefaultAcquireTimeout bounds Acquire when Config.AcquireTimeout is
	// zero.
	DefaultAcquireTimeout = 100 * time.Millisecond
)

// Config holds construction parameters for a Pool.
type Config struct {
	Capacity       int           // Number of slots; immutable after construction
	SlotSize       int           // Fixed byte size of every slot buffer
	AcquireTimeout time.Duration // Default wait bound for Acquire
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Capacity:       64,
		SlotSize:       DefaultSlotSize,
		AcquireTimeout: DefaultAcquireTimeout,
	}
}
