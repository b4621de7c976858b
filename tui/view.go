package tui

import (
	"fmt"
	"strings"

	"github.com/young1lin/tablo/internal/grid/text"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	sections := []string{m.renderHeader()}
	if m.err != nil {
		sections = append(sections, m.renderError())
	} else {
		sections = append(sections, m.renderBody())
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

// renderLoading renders the loading state
func (m Model) renderLoading() string {
	if m.err != nil {
		return m.renderError()
	}
	return m.styles.Muted.Render("Loading records...")
}

// renderError renders the error state
func (m Model) renderError() string {
	return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
}

// renderHeader renders the source name, the table size and the fit state.
func (m Model) renderHeader() string {
	rows, cols := 0, 0
	if m.data != nil {
		rows, cols = m.data.Rows(), m.data.Columns()
	}

	title := m.source
	if title == "" {
		title = "stdin"
	}
	info := fmt.Sprintf("%d×%d", rows, cols)
	if m.width > 0 {
		info += fmt.Sprintf("  width %d/%d", m.total, m.width)
	}
	if m.watching {
		info += "  watching"
	}
	return m.fitLine(m.styles.Title.Render(title) + "  " + m.styles.Muted.Render(info))
}

// renderBody renders the visible part of the table.
func (m Model) renderBody() string {
	end := min(m.offset+m.bodyHeight(), len(m.lines))
	visible := m.lines[min(m.offset, end):end]

	out := make([]string, 0, m.bodyHeight())
	for _, line := range visible {
		out = append(out, m.fitLine(line))
	}
	for len(out) < m.bodyHeight() && m.height > 0 {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// renderFooter renders the key help.
func (m Model) renderFooter() string {
	height := "off"
	if m.fitHeight {
		height = "on"
	}
	keys := []string{
		m.styles.Key.Render("s") + m.styles.Muted.Render(" strategy:"+m.strategy.String()),
		m.styles.Key.Render("m") + m.styles.Muted.Render(" mode:"+m.mode.String()),
		m.styles.Key.Render("h") + m.styles.Muted.Render(" fit height:"+height),
		m.styles.Key.Render("↑↓") + m.styles.Muted.Render(" scroll"),
		m.styles.Key.Render("q") + m.styles.Muted.Render(" quit"),
	}
	return m.fitLine(strings.Join(keys, "  "))
}

// fitLine cuts s to the terminal width.
func (m Model) fitLine(s string) string {
	if m.width <= 0 {
		return s
	}
	return text.Cut(s, m.width)
}
