// Package tui provides an interactive terminal browser for filter results.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seojun-lee/fob/internal/buffer"
	"github.com/seojun-lee/fob/internal/monitor"
	"github.com/seojun-lee/fob/pkg/record"
)

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(1).
			PaddingRight(1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#353533"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44AAFF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6600")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// --- Messages ---

// MatchMsg delivers a matched record to the TUI.
type MatchMsg record.Record

// TickMsg triggers periodic UI updates.
type TickMsg time.Time

// DoneMsg signals the source has finished.
type DoneMsg struct{}

// --- Model ---

// Model is the bubbletea model for the results browser.
type Model struct {
	// Display state.
	rows       []string
	maxRows    int
	width      int
	height     int
	scrollPos  int // 0 = bottom (auto-scroll), >0 = scrolled up
	paused     bool
	pauseQueue []string

	// Search state (within already-matched results).
	searching   bool
	searchQuery string

	// showAll switches the viewport from matched records to everything the
	// ring buffer has seen.
	showAll bool

	// Monitoring.
	Stats    *monitor.Stats
	RingBuf  *buffer.Ring
	Source   string
	Keywords []string

	// Done state.
	done bool
}

// NewModel creates a new TUI model.
func NewModel(stats *monitor.Stats, ringBuf *buffer.Ring, sourceName string, keywords []string) Model {
	return Model{
		maxRows:  1000,
		Stats:    stats,
		RingBuf:  ringBuf,
		Source:   sourceName,
		Keywords: keywords,
	}
}

// Init starts the tick timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.WindowSize())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MatchMsg:
		return m.handleMatch(msg)

	case TickMsg:
		return m, tickCmd()

	case DoneMsg:
		m.done = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search mode key handling.
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchQuery = ""
			return m, nil
		case "enter":
			m.searching = false
			return m, nil
		case "backspace":
			if len(m.searchQuery) > 0 {
				m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			}
			return m, nil
		default:
			if len(msg.String()) == 1 {
				m.searchQuery += msg.String()
			}
			return m, nil
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
		if !m.paused {
			m.rows = append(m.rows, m.pauseQueue...)
			m.pauseQueue = nil
			m.trimRows()
		}
		return m, nil
	case "/":
		m.searching = true
		m.searchQuery = ""
		return m, nil
	case "a":
		m.showAll = !m.showAll
		m.scrollPos = 0
		return m, nil
	case "up", "k":
		if m.scrollPos < m.displayedRowCount()-1 {
			m.scrollPos++
		}
		return m, nil
	case "down", "j":
		if m.scrollPos > 0 {
			m.scrollPos--
		}
		return m, nil
	case "g":
		m.scrollPos = 0 // jump to bottom (latest)
		return m, nil
	case "G":
		// jump to top (oldest)
		if n := m.displayedRowCount(); n > 0 {
			m.scrollPos = n - 1
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMatch(msg MatchMsg) (tea.Model, tea.Cmd) {
	r := record.Record(msg)
	row := m.formatRow(&r)

	if m.paused {
		m.pauseQueue = append(m.pauseQueue, row)
		return m, nil
	}

	m.rows = append(m.rows, row)
	m.trimRows()

	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sb strings.Builder

	// Title bar.
	title := titleStyle.Render(fmt.Sprintf(" fob — %s ", m.Source))
	status := "▶ RUNNING"
	if m.paused {
		status = "⏸ PAUSED"
	}
	if m.done {
		status = "✔ DONE"
	}
	statusText := statusBarStyle.Render(fmt.Sprintf(" %s  %d matched ", status, m.Stats.Matched()))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(statusText)
	if gap < 0 {
		gap = 0
	}
	titleBar := title + statusBarStyle.Render(strings.Repeat(" ", gap)) + statusText
	sb.WriteString(titleBar)
	sb.WriteString("\n")

	// Search bar (if searching).
	if m.searching {
		searchBar := fmt.Sprintf(" 🔍 Search: %s█", m.searchQuery)
		sb.WriteString(searchBar)
		sb.WriteString("\n")
	}

	// Calculate viewport height.
	headerLines := 1 // title bar
	if m.searching {
		headerLines++
	}
	footerLines := 2 // stats bar + help bar
	viewportHeight := m.height - headerLines - footerLines
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	// Render result rows.
	rows := m.rows
	if m.showAll {
		rows = m.ringRows()
	}
	visibleRows := m.getVisibleRows(rows, viewportHeight)
	for _, row := range visibleRows {
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	// Pad remaining viewport.
	for i := len(visibleRows); i < viewportHeight; i++ {
		sb.WriteString("\n")
	}

	// Stats bar.
	statsLine := fmt.Sprintf(" Keywords: %s │ Matched: %d/%d │ %.0f objects/s",
		strings.Join(m.Keywords, ","), m.Stats.Matched(), m.Stats.Total(), m.Stats.Rate())
	if m.showAll {
		statsLine += " │ ALL"
	}
	if m.scrollPos > 0 {
		statsLine += fmt.Sprintf(" │ ↑ %d", m.scrollPos)
	}
	sb.WriteString(statusBarStyle.Render(padRight(statsLine, m.width)))
	sb.WriteString("\n")

	// Help bar.
	helpText := " [/]Search  [a]All  [p]Pause  [↑↓]Scroll  [g]Bottom  [q]Quit"
	if m.paused {
		helpText += fmt.Sprintf("  (queued: %d)", len(m.pauseQueue))
	}
	sb.WriteString(helpStyle.Render(helpText))

	return sb.String()
}

// --- Helpers ---

func (m *Model) formatRow(r *record.Record) string {
	name, ok := r.NameValue()
	if !ok {
		return ""
	}
	name = truncate(name, m.width-20)
	if r.Source != "" {
		return dimStyle.Render(fmt.Sprintf("[%s] ", r.Source)) + matchStyle.Render(name)
	}
	return matchStyle.Render(name)
}

// displayedRowCount returns the size of the row set the viewport is showing;
// scroll bounds clamp against this, not against the matched rows alone.
func (m *Model) displayedRowCount() int {
	if m.showAll {
		return len(m.ringRows())
	}
	return len(m.rows)
}

// ringRows renders everything the ring buffer currently holds, matched or not.
func (m *Model) ringRows() []string {
	if m.RingBuf == nil {
		return m.rows
	}
	snapshot := m.RingBuf.Snapshot()
	rows := make([]string, 0, len(snapshot))
	for i := range snapshot {
		if row := m.formatRow(&snapshot[i]); row != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

func (m *Model) getVisibleRows(rows []string, height int) []string {
	if len(rows) == 0 {
		return nil
	}

	end := len(rows) - m.scrollPos
	if end < 0 {
		end = 0
	}
	start := end - height
	if start < 0 {
		start = 0
	}

	// Highlight search results.
	result := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := rows[i]
		if m.searchQuery != "" && strings.Contains(row, m.searchQuery) {
			row = strings.ReplaceAll(row, m.searchQuery, highlightStyle.Render(m.searchQuery))
		}
		result = append(result, row)
	}
	return result
}

func (m *Model) trimRows() {
	if len(m.rows) > m.maxRows {
		m.rows = m.rows[len(m.rows)-m.maxRows:]
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
