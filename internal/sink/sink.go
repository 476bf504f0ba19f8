// Package sink defines the Sink interface for pipeline output.
package sink

import (
	"github.com/seojun-lee/fob/pkg/record"
)

// Sink receives filtered records and writes them to an output destination.
type Sink interface {
	// Write outputs a single record.
	Write(r *record.Record) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close releases resources held by the sink.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}
