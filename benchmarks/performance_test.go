// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for slotpool components.

package benchmarks

import (
	"runtime"
	"testing"
	"time"

	"github.com/momentics/slotpool/pool"
)

// BenchmarkAcquireRelease measures the uncontended acquire/release cycle.
func BenchmarkAcquireRelease(b *testing.B) {
	p, err := pool.New(&pool.Config{
		Capacity:       4 * runtime.GOMAXPROCS(0),
		AcquireTimeout: time.Second,
	})
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s, err := p.Acquire()
			if err != nil {
				b.Fatal(err)
			}
			if err := p.Release(s); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkAcquireReleaseContended forces waiter handoff by running far more
// goroutines than slots.
func BenchmarkAcquireReleaseContended(b *testing.B) {
	p, err := pool.New(&pool.Config{Capacity: 2, AcquireTimeout: 10 * time.Second})
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	b.SetParallelism(16)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s, err := p.Acquire()
			if err != nil {
				b.Fatal(err)
			}
			if err := p.Release(s); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkSlotWrite measures filling a checked-out slot buffer.
func BenchmarkSlotWrite(b *testing.B) {
	p, err := pool.New(&pool.Config{Capacity: 1, SlotSize: 256})
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	s, err := p.Acquire()
	if err != nil {
		b.Fatal(err)
	}
	defer p.Release(s)
	payload := make([]byte, 256)

	b.SetBytes(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(s.Bytes(), payload)
	}
}

// BenchmarkStats measures the stats snapshot path.
func BenchmarkStats(b *testing.B) {
	p, err := pool.New(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Stats()
	}
}
