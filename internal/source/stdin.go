package source

import (
	"bufio"
	"context"
	"os"
	"sync/atomic"

	"github.com/seojun-lee/fob/internal/parser"
	"github.com/seojun-lee/fob/pkg/record"
)

// StdinSource reads records from os.Stdin, one per line (pipe mode).
type StdinSource struct {
	extract *parser.Extractor
	seq     atomic.Uint64
}

// NewStdinSource creates a source that reads from stdin. extract may be nil.
func NewStdinSource(extract *parser.Extractor) *StdinSource {
	return &StdinSource{extract: extract}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Start reads from stdin and returns a channel of records.
func (s *StdinSource) Start(ctx context.Context) (<-chan record.Record, error) {
	ch := make(chan record.Record, 256)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			r := recordFromLine(scanner.Text(), s.extract)
			r.Source = s.Name()
			r.Seq = s.seq.Add(1)
			ch <- r
		}
	}()

	return ch, nil
}
