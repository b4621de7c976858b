package cli

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"

	"github.com/young1lin/tablo/internal/store"
	"github.com/young1lin/tablo/internal/watch"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// Dependencies contains what the commands need from the outside world.
type Dependencies struct {
	Stdin          io.Reader
	Stderr         io.Writer
	WorkDir        func() (string, error)
	TermSize       func() (width, height int, err error)
	ColorProfile   func() termenv.Profile
	DBOpener       func(string) (*store.DB, error)
	WatcherCreator func(string) (watch.Notifier, error)
	ProgramRunner  func(*tea.Program) error
}

// DefaultDependencies wires the commands to the process environment.
func DefaultDependencies() *Dependencies {
	return &Dependencies{
		Stdin:   os.Stdin,
		Stderr:  os.Stderr,
		WorkDir: os.Getwd,
		TermSize: func() (int, int, error) {
			return term.GetSize(os.Stdout.Fd())
		},
		ColorProfile: lipgloss.ColorProfile,
		DBOpener:     store.Open,
		WatcherCreator: func(path string) (watch.Notifier, error) {
			return watch.New(path)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	}
}
