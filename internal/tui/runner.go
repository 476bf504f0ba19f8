package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seojun-lee/fob/internal/buffer"
	"github.com/seojun-lee/fob/internal/monitor"
	"github.com/seojun-lee/fob/internal/source"
	"github.com/seojun-lee/fob/pkg/filter"
)

// RunConfig holds configuration for the TUI pipeline.
type RunConfig struct {
	Source  source.Source
	Match   *filter.Config
	Stats   *monitor.Stats
	RingBuf *buffer.Ring
}

// Run starts the results browser with a live source pipeline.
// This function blocks until the user quits.
func Run(ctx context.Context, cfg *RunConfig) error {
	// Create a cancellable context to ensure the source is stopped when the TUI exits.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(cfg.Stats, cfg.RingBuf, cfg.Source.Name(), cfg.Match.Keywords)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Start the source and feed matches to the TUI via tea.Program.Send.
	ch, err := cfg.Source.Start(ctx)
	if err != nil {
		return fmt.Errorf("tui: start source: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for r := range ch {
			cfg.Stats.RecordObject()

			// Store in ring buffer.
			if cfg.RingBuf != nil {
				cfg.RingBuf.Push(r)
			}

			if !cfg.Match.Match(&r) {
				continue
			}

			cfg.Stats.RecordMatch()
			program.Send(MatchMsg(r))
		}

		program.Send(DoneMsg{})
	}()

	_, err = program.Run()

	// Ensure source is stopped and consumer finishes.
	cancel()
	wg.Wait()

	return err
}
