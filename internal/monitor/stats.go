// Package monitor provides statistics collection for the filter pipeline.
package monitor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats collects pipeline processing metrics in a lock-free manner.
type Stats struct {
	totalObjects   atomic.Uint64
	matchedObjects atomic.Uint64
	startTime      time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return &Stats{
		startTime: time.Now(),
	}
}

// RecordObject increments the total object counter.
func (s *Stats) RecordObject() {
	s.totalObjects.Add(1)
}

// RecordMatch increments the matched object counter.
func (s *Stats) RecordMatch() {
	s.matchedObjects.Add(1)
}

// Total returns the total number of processed objects.
func (s *Stats) Total() uint64 {
	return s.totalObjects.Load()
}

// Matched returns the total number of matched objects.
func (s *Stats) Matched() uint64 {
	return s.matchedObjects.Load()
}

// Elapsed returns the time since monitoring started.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Rate returns the current objects per second.
func (s *Stats) Rate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(s.Total()) / elapsed
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	elapsed := s.Elapsed()
	total := s.Total()
	matched := s.Matched()

	matchRate := float64(0)
	if total > 0 {
		matchRate = float64(matched) / float64(total) * 100
	}

	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Total objects:   %d\n"+
			"  Matched objects: %d (%.1f%%)\n"+
			"  Duration:        %s\n"+
			"  Throughput:      %.0f objects/s\n"+
			"─────────────",
		total, matched, matchRate,
		elapsed.Round(time.Millisecond),
		s.Rate(),
	)
}
