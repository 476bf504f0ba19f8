// Package cli implements the fob command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/seojun-lee/fob/internal/buffer"
	"github.com/seojun-lee/fob/internal/config"
	"github.com/seojun-lee/fob/internal/logging"
	"github.com/seojun-lee/fob/internal/monitor"
	"github.com/seojun-lee/fob/internal/parser"
	"github.com/seojun-lee/fob/internal/pipeline"
	"github.com/seojun-lee/fob/internal/sink"
	"github.com/seojun-lee/fob/internal/source"
	"github.com/seojun-lee/fob/internal/tui"
	"github.com/seojun-lee/fob/pkg/filter"
)

type rootOptions struct {
	// Input selection.
	dir      string
	file     string
	execCmd  string
	redisKey string
	pattern  string

	// Output control.
	jsonOut   bool
	output    string
	useTUI    bool
	showStats bool

	// Config plumbing.
	configFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fob <term>...",
		Short: "fob filters objects by name",
		Long: `fob (filter objects by name) narrows a stream of named objects down to
those whose name contains the given keywords.

Terms are matched as case-insensitive substrings. A literal "or" or "and"
term selects the logic combining multiple keywords; the first one wins and
OR is the default. Blank terms are ignored.

Records come from stdin by default (plain lines or JSON objects, one per
line); --dir, --file, --exec and --redis-key select other sources.

Examples:
  ls | fob test
  fob --dir /etc apple or cherry
  fob --exec "ps -e" and sys d`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.dir, "dir", "", "filter the entries of this directory")
	f.StringVar(&opts.file, "file", "", "read records from this file (one per line)")
	f.StringVar(&opts.execCmd, "exec", "", "run this command and filter its output lines")
	f.StringVar(&opts.redisKey, "redis-key", "", "read JSON records from this Redis list")
	f.StringVar(&opts.pattern, "pattern", "", "extract attributes from plain lines, e.g. \"%{INT:Pid} %{GREEDYDATA:Name}\"")

	f.BoolVar(&opts.jsonOut, "json", false, "emit matching records as JSON Lines")
	f.StringVarP(&opts.output, "output", "o", "", "also write matches to this file")
	f.BoolVar(&opts.useTUI, "tui", false, "browse results interactively")
	f.BoolVar(&opts.showStats, "stats", false, "print a processing summary on exit")

	f.StringVar(&opts.configFile, "config", "", "config file (default .fob.yaml)")
	f.String("log-level", config.LogLevelInfo, "diagnostics level: debug, info, warn, error")
	f.String("log-format", config.LogFormatText, "diagnostics format: text, json")
	f.Bool("no-color", false, "disable colored output")
	f.Int("buffer-size", 1024, "TUI ring buffer capacity")
	f.String("redis-addr", "localhost:6379", "Redis address for --redis-key")

	return cmd
}

func runFilter(cmd *cobra.Command, terms []string, opts *rootOptions) error {
	cfg, err := config.Load(cmd, opts.configFile)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg)

	// Parse terms first: a term list without keywords is a configuration
	// error and must fail before any record is read.
	match, err := filter.ParseTerms(terms)
	if err != nil {
		return err
	}
	logger.Debug("parsed terms", "filter", match.Describe())

	var extract *parser.Extractor
	if opts.pattern != "" {
		extract, err = parser.New(opts.pattern)
		if err != nil {
			return err
		}
	}

	src, err := selectSource(opts, cfg, extract)
	if err != nil {
		return err
	}

	stats := monitor.NewStats()

	if opts.useTUI {
		return tui.Run(cmd.Context(), &tui.RunConfig{
			Source:  src,
			Match:   match,
			Stats:   stats,
			RingBuf: buffer.NewRing(cfg.BufferSize),
		})
	}

	sinks, err := buildSinks(opts, cfg, match.Keywords)
	if err != nil {
		return err
	}

	return pipeline.Run(cmd.Context(), &pipeline.Config{
		Source:    src,
		Match:     match,
		Sinks:     sinks,
		Stats:     stats,
		Logger:    logger,
		ShowStats: opts.showStats,
	})
}

// selectSource picks the record source from the input flags.
// Exactly one source may be selected; stdin is the default.
func selectSource(opts *rootOptions, cfg *config.Config, extract *parser.Extractor) (source.Source, error) {
	selected := 0
	for _, s := range []string{opts.dir, opts.file, opts.execCmd, opts.redisKey} {
		if s != "" {
			selected++
		}
	}
	if selected > 1 {
		return nil, fmt.Errorf("only one of --dir, --file, --exec, --redis-key may be used")
	}

	switch {
	case opts.dir != "":
		return source.NewDirSource(opts.dir), nil
	case opts.file != "":
		return source.NewFileSource(opts.file, extract), nil
	case opts.execCmd != "":
		parts := strings.Fields(opts.execCmd)
		if len(parts) == 0 {
			return nil, fmt.Errorf("empty --exec command")
		}
		return source.NewExecSource(parts[0], parts[1:], extract), nil
	case opts.redisKey != "":
		return source.NewRedisSource(cfg.RedisAddr, opts.redisKey), nil
	default:
		return source.NewStdinSource(extract), nil
	}
}

// buildSinks assembles the output sinks from the output flags.
func buildSinks(opts *rootOptions, cfg *config.Config, keywords []string) ([]sink.Sink, error) {
	var sinks []sink.Sink

	if opts.jsonOut {
		sinks = append(sinks, sink.NewJSONSink(os.Stdout))
	} else {
		// Color only when stdout is a terminal; piped output stays plain.
		color := !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd())
		sinks = append(sinks, sink.NewTerminalSink(os.Stdout, color, keywords))
	}

	if opts.output != "" {
		format := "text"
		if opts.jsonOut {
			format = "json"
		}
		fs, err := sink.NewFileSink(opts.output, format)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}

	return sinks, nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
