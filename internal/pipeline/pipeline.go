// Package pipeline orchestrates Source → KeywordFilter → Sink processing.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seojun-lee/fob/internal/buffer"
	"github.com/seojun-lee/fob/internal/monitor"
	"github.com/seojun-lee/fob/internal/sink"
	"github.com/seojun-lee/fob/internal/source"
	"github.com/seojun-lee/fob/pkg/filter"
)

// Config holds pipeline configuration for one filtering run.
// Match is scoped to this run; do not reuse it for a run with different terms.
type Config struct {
	Source    source.Source
	Match     *filter.Config
	Sinks     []sink.Sink
	Stats     *monitor.Stats
	RingBuf   *buffer.Ring // optional ring buffer for TUI search
	Logger    *slog.Logger
	ShowStats bool
}

// Run executes the pipeline: reads records from the source, applies the
// keyword filter, and writes matches to the sinks in input order.
// Blocks until the source is exhausted or ctx is cancelled.
//
// Records without a usable name are skipped, never errored; the only fatal
// conditions are wiring problems and sink write failures.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.Source == nil {
		return fmt.Errorf("pipeline: source is required")
	}
	if cfg.Match == nil {
		return fmt.Errorf("pipeline: filter config is required")
	}
	if len(cfg.Sinks) == 0 {
		return fmt.Errorf("pipeline: at least one sink is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("pipeline start",
		"source", cfg.Source.Name(),
		"filter", cfg.Match.Describe(),
	)

	ch, err := cfg.Source.Start(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: start source: %w", err)
	}

	// Sinks are flushed and closed on every exit path, including a failed
	// write partway through the stream.
	defer func() {
		for _, s := range cfg.Sinks {
			_ = s.Flush()
			_ = s.Close()
		}
	}()

	for r := range ch {
		cfg.Stats.RecordObject()

		// Store in ring buffer (if configured).
		if cfg.RingBuf != nil {
			cfg.RingBuf.Push(r)
		}

		if !cfg.Match.Match(&r) {
			if name, ok := r.NameValue(); ok {
				logger.Debug("no match", "name", name, "seq", r.Seq)
			} else {
				logger.Debug("skipped: no usable name", "seq", r.Seq, "source", r.Source)
			}
			continue
		}

		cfg.Stats.RecordMatch()

		for _, s := range cfg.Sinks {
			if err := s.Write(&r); err != nil {
				// Unblock the source goroutine before reporting the failure;
				// it would otherwise stay parked on the channel send.
				go func() {
					for range ch {
					}
				}()
				return fmt.Errorf("pipeline: write to %s: %w", s.Name(), err)
			}
		}
	}

	// Print summary if requested.
	if cfg.ShowStats {
		fmt.Println()
		fmt.Println(cfg.Stats.Summary())
	}

	return nil
}
