package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/seojun-lee/fob/pkg/record"
)

// JSONSink writes records as JSON Lines (one JSON object per line).
// Raw-backed records are emitted verbatim; map-backed records are encoded
// from their attributes.
type JSONSink struct {
	w   io.Writer
	enc *json.Encoder
}

// NewJSONSink creates a JSON Lines sink writing to the given writer.
func NewJSONSink(w io.Writer) *JSONSink {
	if w == nil {
		w = os.Stdout
	}
	return &JSONSink{
		w:   w,
		enc: json.NewEncoder(w),
	}
}

// Write serializes a record as a single JSON line.
func (s *JSONSink) Write(r *record.Record) error {
	if len(r.Raw) > 0 {
		if _, err := s.w.Write(r.Raw); err != nil {
			return err
		}
		_, err := io.WriteString(s.w, "\n")
		return err
	}
	return s.enc.Encode(r.Attrs)
}

// Flush is a no-op for JSON sink.
func (s *JSONSink) Flush() error { return nil }

// Close is a no-op for JSON sink.
func (s *JSONSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *JSONSink) Name() string { return "json" }

// FileSink writes records to a file.
type FileSink struct {
	inner Sink
	file  *os.File
}

// NewFileSink creates a sink that writes to the given file path.
// The format parameter selects the inner formatter: "json" or "text" (default).
func NewFileSink(path string, format string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open output file %s: %w", path, err)
	}

	var inner Sink
	switch format {
	case "json":
		inner = NewJSONSink(f)
	default:
		inner = NewTerminalSink(f, false, nil)
	}

	return &FileSink{inner: inner, file: f}, nil
}

// Write delegates to the inner sink.
func (s *FileSink) Write(r *record.Record) error {
	return s.inner.Write(r)
}

// Flush syncs the file to disk.
func (s *FileSink) Flush() error {
	return s.file.Sync()
}

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	return s.file.Close()
}

// Name returns the sink identifier.
func (s *FileSink) Name() string {
	return "file:" + s.file.Name()
}
