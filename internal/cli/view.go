package cli

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/watch"
	"github.com/young1lin/tablo/tui"
)

// newViewCmd creates the view command, an interactive viewer that refits the
// table whenever the terminal is resized.
func newViewCmd(deps *Dependencies) *cobra.Command {
	var (
		flags  renderFlags
		format string
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a table interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if follow && (path == "" || path == "-") {
				follow = false
				loggerFromContext(cmd.Context()).Warn("--watch needs a file, ignoring it for stdin")
			}
			return runView(cmd, deps, &flags, path, format, follow)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: csv, tsv, json, toml")
	cmd.Flags().BoolVar(&follow, "watch", false, "reload the file when it changes")
	flags.bind(cmd)
	return cmd
}

func runView(cmd *cobra.Command, deps *Dependencies, flags *renderFlags, path, format string, follow bool) error {
	// Cancelling ctx also unblocks pending sends to the program.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	data, err := readRecords(ctx, deps, path, format)
	if err != nil {
		return err
	}
	opts, err := flags.options(cmd, deps)
	if err != nil {
		return err
	}

	name := "stdin"
	if path != "" && path != "-" {
		name = filepath.Base(path)
	}
	model := tui.NewModel(opts...).WithData(name, data)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if follow {
		watcher, err := deps.WatcherCreator(path)
		if err != nil {
			go p.Send(tui.WatcherFailedMsg{Err: err})
		} else {
			defer watcher.Close()
			go runWatchLoop(ctx, p, watcher, func() (records.Table, error) {
				return readRecords(ctx, deps, path, format)
			})
		}
	}

	return deps.ProgramRunner(p)
}

// runWatchLoop reloads the records after each change reported by watcher
// and forwards them to the viewer. It returns when ctx is done or the
// watcher is closed.
func runWatchLoop(ctx context.Context, sender ProgramSender, watcher watch.Notifier, load func() (records.Table, error)) {
	logger := loggerFromContext(ctx)
	sender.Send(tui.WatcherStartedMsg{})

	changes, errs := watcher.Changes(), watcher.Errors()
	for {
		select {
		case <-ctx.Done():
			return

		case _, ok := <-changes:
			if !ok {
				return
			}
			data, err := load()
			if err != nil {
				logger.Debug("reload failed", "err", err)
				sender.Send(tui.ErrorMsg{Err: err})
				continue
			}
			logger.Debug("reloaded records", "rows", data.Rows())
			sender.Send(tui.DataLoadedMsg{Data: data})

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			sender.Send(tui.ErrorMsg{Err: err})
		}
	}
}
