// Package cli implements the tablo command-line interface.
//
// Commands read records from files, standard input or SQLite queries and
// print them as text tables. Every command accepts --verbose (-v) for debug
// logging; the logger travels in the command context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/young1lin/tablo/internal/buildinfo"
)

// Execute runs the tablo CLI and returns an error if any command fails.
func Execute() error {
	return newRootCmd(DefaultDependencies()).ExecuteContext(context.Background())
}

func newRootCmd(deps *Dependencies) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "tablo",
		Short:        "tablo prints records as text tables",
		Long:         `tablo renders CSV, JSON, TOML and SQLite query results as text tables with configurable borders, spans, alignment and width fitting.`,
		Version:      buildinfo.Semver().String(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(deps.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tablo %s\n", buildinfo.String()))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(deps))
	root.AddCommand(newSQLCmd(deps))
	root.AddCommand(newViewCmd(deps))
	root.AddCommand(newStylesCmd())

	return root
}
