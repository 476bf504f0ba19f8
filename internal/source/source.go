// Package source defines the Source interface and the built-in record producers.
package source

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/seojun-lee/fob/internal/parser"
	"github.com/seojun-lee/fob/pkg/record"
)

// Source produces records from an input and emits them on a channel.
// Implementations must close the returned channel when the source is
// exhausted or the context is cancelled.
type Source interface {
	// Start begins reading from the source. The returned channel receives
	// records until the source is exhausted or ctx is cancelled.
	// The implementation must close the channel when done.
	Start(ctx context.Context) (<-chan record.Record, error)

	// Name returns a human-readable identifier for this source.
	Name() string
}

// recordFromLine turns one input line into a record. JSON object lines
// become raw-backed records; plain lines go through the field extractor when
// one is configured, otherwise the whole line is the record's name.
func recordFromLine(line string, extract *parser.Extractor) record.Record {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "{") && gjson.Valid(trimmed) {
		raw := make([]byte, len(trimmed))
		copy(raw, trimmed)
		return record.Record{Raw: raw}
	}
	if extract != nil {
		if attrs, ok := extract.Extract(line); ok {
			return record.Record{Attrs: attrs}
		}
	}
	return record.Record{Attrs: map[string]any{"Name": line}}
}
