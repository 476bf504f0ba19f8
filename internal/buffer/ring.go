// Package buffer provides bounded buffering for the filter pipeline.
package buffer

import (
	"sync"

	"github.com/seojun-lee/fob/pkg/record"
)

// Ring is a fixed-capacity circular buffer for records.
// When full, the oldest entries are silently evicted.
// All operations are goroutine-safe.
type Ring struct {
	mu       sync.RWMutex
	entries  []record.Record
	head     int // next write position
	count    int // current number of entries
	capacity int
	dropped  uint64 // total evicted entries
}

// NewRing creates a ring buffer with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Ring{
		entries:  make([]record.Record, capacity),
		capacity: capacity,
	}
}

// Push adds a record to the ring buffer. If full, the oldest entry is evicted.
func (r *Ring) Push(rec record.Record) {
	r.mu.Lock()
	r.entries[r.head] = rec
	r.head = (r.head + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	} else {
		r.dropped++
	}
	r.mu.Unlock()
}

// Snapshot returns a copy of all buffered records in arrival order.
func (r *Ring) Snapshot() []record.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]record.Record, r.count)
	if r.count < r.capacity {
		copy(result, r.entries[:r.count])
	} else {
		// Buffer is full: read from head (oldest) to end, then from start to head.
		start := r.head % r.capacity
		n := copy(result, r.entries[start:])
		copy(result[n:], r.entries[:start])
	}
	return result
}

// Len returns the current number of records in the buffer.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Dropped returns the number of records evicted because the buffer was full.
func (r *Ring) Dropped() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dropped
}
