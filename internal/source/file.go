package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/seojun-lee/fob/internal/parser"
	"github.com/seojun-lee/fob/pkg/record"
)

// FileSource reads records from a file, one per line.
// Lines may be JSON objects or plain text.
type FileSource struct {
	path    string
	extract *parser.Extractor
	seq     atomic.Uint64
}

// NewFileSource creates a source that reads from a file. extract may be nil.
func NewFileSource(path string, extract *parser.Extractor) *FileSource {
	return &FileSource{
		path:    path,
		extract: extract,
	}
}

// Name returns the source identifier.
func (s *FileSource) Name() string {
	return fmt.Sprintf("file:%s", s.path)
}

// Start opens the file and returns a channel of records.
func (s *FileSource) Start(ctx context.Context) (<-chan record.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", s.path, err)
	}

	ch := make(chan record.Record, 256)

	go func() {
		defer close(ch)
		defer f.Close()

		scanner := bufio.NewScanner(f)
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
