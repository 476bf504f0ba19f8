package source

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/seojun-lee/fob/pkg/record"
)

// DirSource lists a directory and emits one record per entry, with Name,
// Size, Mode, ModTime, and IsDir attributes. Entries are emitted in the
// order os.ReadDir returns them (sorted by filename).
type DirSource struct {
	path string
	seq  atomic.Uint64
}

// NewDirSource creates a source that lists the given directory.
func NewDirSource(path string) *DirSource {
	return &DirSource{path: path}
}

// Name returns the source identifier.
func (s *DirSource) Name() string {
	return fmt.Sprintf("dir:%s", s.path)
}

// Start lists the directory and returns a channel of records.
func (s *DirSource) Start(ctx context.Context) (<-chan record.Record, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.path, err)
	}

	ch := make(chan record.Record, 256)

	go func() {
		defer close(ch)

		for _, e := range entries {
			select {
			case <-ctx.Done():
				return
			default:
			}

			attrs := map[string]any{
				"Name":  e.Name(),
				"IsDir": e.IsDir(),
			}
			// Stat details are best-effort; a racing unlink is not an error.
			if info, err := e.Info(); err == nil {
				attrs["Size"] = info.Size()
				attrs["Mode"] = info.Mode().String()
				attrs["ModTime"] = info.ModTime()
			}

			ch <- record.Record{
				Attrs:  attrs,
				Source: s.Name(),
				Seq:    s.seq.Add(1),
			}
		}
	}()

	return ch, nil
}
