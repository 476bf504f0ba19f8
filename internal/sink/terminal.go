package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seojun-lee/fob/pkg/record"
)

// color ANSI escape codes.
const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TerminalSink writes record names to a terminal, one per line, with
// optional ANSI color and keyword highlighting. Plain mode emits the bare
// name so the output composes with further pipeline stages.
type TerminalSink struct {
	w          io.Writer
	color      bool
	highlights []string
}

// NewTerminalSink creates a sink that writes to the given writer.
// If color is true, output includes the record source and highlights any of
// the given keywords inside the name.
func NewTerminalSink(w io.Writer, color bool, highlights []string) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{w: w, color: color, highlights: highlights}
}

// Write outputs a record's name.
func (s *TerminalSink) Write(r *record.Record) error {
	name, ok := r.NameValue()
	if !ok {
		return nil
	}

	if !s.color {
		_, err := fmt.Fprintln(s.w, name)
		return err
	}

	highlighted := highlightKeywords(name, s.highlights)
	if r.Source != "" {
		_, err := fmt.Fprintf(s.w, "%s[%s]%s %s\n", colorGray, r.Source, colorReset, highlighted)
		return err
	}
	_, err := fmt.Fprintln(s.w, highlighted)
	return err
}

// Flush is a no-op for terminal output.
func (s *TerminalSink) Flush() error { return nil }

// Close is a no-op for terminal output.
func (s *TerminalSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *TerminalSink) Name() string { return "terminal" }

// highlightKeywords wraps case-insensitive occurrences of each keyword in
// bold yellow, preserving the original casing of the name.
func highlightKeywords(name string, keywords []string) string {
	out := name
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		out = highlightOne(out, kw)
	}
	return out
}

func highlightOne(s, keyword string) string {
	kwLower := strings.ToLower(keyword)
	if kwLower == "" {
		return s
	}

	// Lowering can change rune byte widths ('Ⱥ' grows, 'İ' shrinks), so byte
	// offsets into the lowered text cannot index the original directly. Build
	// the lowered text rune by rune and record, for every lowered byte, the
	// offset of the original rune it came from.
	var lowered strings.Builder
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			offsets = append(offsets, i)
		}
		lowered.WriteRune(lr)
	}
	offsets = append(offsets, len(s))
	low := lowered.String()

	var sb strings.Builder
	pos := 0
	for {
		idx := strings.Index(low[pos:], kwLower)
		if idx < 0 {
			sb.WriteString(s[offsets[pos]:])
			break
		}
		start := pos + idx
		end := start + len(kwLower)
		sb.WriteString(s[offsets[pos]:offsets[start]])
		sb.WriteString(colorBold + colorYellow)
		sb.WriteString(s[offsets[start]:offsets[end]])
		sb.WriteString(colorReset)
		pos = end
	}
	return sb.String()
}
