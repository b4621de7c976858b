package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/style"
	"github.com/young1lin/tablo/internal/table"
)

var sampleRows = [][]string{
	{"name", "qty"},
	{"apple", "3"},
	{"pear", "10"},
}

// newStylesCmd creates the styles command, which prints every theme.
func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the border styles with a sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, name := range style.Names() {
				theme, err := style.ByName(name)
				if err != nil {
					return err
				}
				t, err := table.FromRows(sampleRows,
					table.WithTheme(theme),
					table.WithPadding(config.Global(), config.NewPadding(1, 1, 0, 0)),
				)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, name)
				if err := t.Render(out); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
