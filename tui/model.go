// Package tui implements the interactive table viewer.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/fit"
	"github.com/young1lin/tablo/internal/grid/peaker"
	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/table"
)

// chromeLines is the number of lines taken by the header and the footer.
const chromeLines = 2

// Model represents the application state
type Model struct {
	// Table
	source string
	data   records.Table
	opts   []table.Option
	lines  []string
	total  int // width reached by the last fit

	// Fitting
	mode      fit.WidthMode
	strategy  peaker.Strategy
	fitHeight bool
	suffix    string

	// Terminal
	width  int
	height int
	offset int

	// State
	ready    bool
	quitting bool
	watching bool

	// Error state
	err error

	// Styles
	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Header lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Key    lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86") // Green
	errorColor := lipgloss.Color("196")  // Red

	styles.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	styles.Key = lipgloss.NewStyle().
		Foreground(primaryColor)

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	return styles
}

// NewModel creates a viewer rendering tables with opts. The width fit is
// managed by the viewer and follows the terminal size.
func NewModel(opts ...table.Option) Model {
	return Model{
		styles:   DefaultStyles(),
		opts:     opts,
		mode:     fit.ModeWrap,
		strategy: peaker.Max,
		suffix:   "…",
	}
}

// WithData returns m showing data.
func (m Model) WithData(source string, data records.Table) Model {
	m.source = source
	m.data = data
	m.ready = true
	return m.refit()
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// bodyHeight is the number of table lines visible at once.
func (m Model) bodyHeight() int {
	return max(m.height-chromeLines, 1)
}

// refit renders the table for the current terminal size and settings.
func (m Model) refit() Model {
	if m.data == nil {
		return m
	}

	t, err := table.New(m.data, m.opts...)
	if err != nil {
		m.err = err
		return m
	}

	// Targets leave room for the margin so the output fits the terminal.
	margin := t.Config().Margin()
	var opts []table.Option
	if m.width > 0 {
		w := fit.Width{Mode: m.mode, Target: max(m.width-config.Horizontal(margin), 0), Priority: m.strategy, KeepWords: true}
		if m.mode == fit.ModeTruncate {
			w.Suffix = m.suffix
		}
		if w.Target > 0 {
			opts = append(opts, table.WithWidth(w))
		}
	}
	if m.fitHeight && m.height > 0 {
		if target := m.bodyHeight() - config.Vertical(margin); target > 0 {
			opts = append(opts, table.WithHeight(fit.Limit(target).WithPriority(m.strategy)))
		}
	}
	if err := t.Apply(opts...); err != nil {
		m.err = err
		return m
	}
	layout, err := t.Layout()
	if err != nil {
		m.err = err
		return m
	}
	var out strings.Builder
	if err := t.Compose(&out, layout); err != nil {
		m.err = err
		return m
	}

	m.err = nil
	m.total = layout.Width
	m.lines = splitLines(out.String())
	m.offset = m.clampOffset(m.offset)
	return m
}

func (m Model) clampOffset(offset int) int {
	last := max(len(m.lines)-m.bodyHeight(), 0)
	return min(max(offset, 0), last)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
