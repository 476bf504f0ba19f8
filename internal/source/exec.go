package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/seojun-lee/fob/internal/parser"
	"github.com/seojun-lee/fob/pkg/record"
)

// ExecSource executes a command and turns each stdout/stderr line into a
// record. This is how process lists, service lists, and similar catalogs
// flow into the filter (`fob --exec "ps -e" ...`).
type ExecSource struct {
	command string
	args    []string
	extract *parser.Extractor
	seq     atomic.Uint64
}

// NewExecSource creates a source that runs the given command with arguments.
// extract may be nil; without it each output line becomes the record's name.
func NewExecSource(command string, args []string, extract *parser.Extractor) *ExecSource {
	return &ExecSource{
		command: command,
		args:    args,
		extract: extract,
	}
}

// Name returns the source identifier.
func (s *ExecSource) Name() string {
	return fmt.Sprintf("exec:%s", s.command)
}

// Start executes the command and returns a channel of records.
// The channel is closed when the command exits or ctx is cancelled.
func (s *ExecSource) Start(ctx context.Context) (<-chan record.Record, error) {
	cmd := exec.CommandContext(ctx, s.command, s.args...)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start command: %w", err)
	}

	ch := make(chan record.Record, 256)
	var wg sync.WaitGroup
	wg.Add(2)

	go s.readStream(ctx, stdoutPipe, ch, &wg)
	go s.readStream(ctx, stderrPipe, ch, &wg)

	go func() {
		wg.Wait()
		_ = cmd.Wait()
		close(ch)
	}()

	return ch, nil
}

// readStream reads lines from a pipe and sends them to the channel.
func (s *ExecSource) readStream(ctx context.Context, r io.ReadCloser, ch chan<- record.Record, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	// Increase buffer size to 1MB for long lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		rec := recordFromLine(scanner.Text(), s.extract)
		rec.Source = s.Name()
		rec.Seq = s.seq.Add(1)
		ch <- rec
	}
}
