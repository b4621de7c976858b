package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tablo/internal/grid/fit"
	"github.com/young1lin/tablo/internal/grid/peaker"
)

var widthModes = []fit.WidthMode{fit.ModeTruncate, fit.ModeWrap, fit.ModeIncrease}

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.refit(), nil

	case DataLoadedMsg:
		source := msg.Source
		if source == "" {
			source = m.source
		}
		return m.WithData(source, msg.Data), nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case WatcherStartedMsg:
		m.watching = true
		return m, nil

	case WatcherFailedMsg:
		m.err = msg.Err
		m.watching = false
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "s":
		m.strategy = nextStrategy(m.strategy)
		return m.refit(), nil
	case "m":
		m.mode = nextMode(m.mode)
		return m.refit(), nil
	case "h":
		m.fitHeight = !m.fitHeight
		m.offset = 0
		return m.refit(), nil
	case "up", "k":
		m.offset = m.clampOffset(m.offset - 1)
	case "down", "j":
		m.offset = m.clampOffset(m.offset + 1)
	case "pgup", "b":
		m.offset = m.clampOffset(m.offset - m.bodyHeight())
	case "pgdown", "f", " ":
		m.offset = m.clampOffset(m.offset + m.bodyHeight())
	case "home", "g":
		m.offset = 0
	case "end", "G":
		m.offset = m.clampOffset(len(m.lines))
	}

	return m, nil
}

func nextStrategy(s peaker.Strategy) peaker.Strategy {
	all := peaker.Strategies()
	for i, candidate := range all {
		if candidate == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func nextMode(mode fit.WidthMode) fit.WidthMode {
	for i, candidate := range widthModes {
		if candidate == mode {
			return widthModes[(i+1)%len(widthModes)]
		}
	}
	return widthModes[0]
}
