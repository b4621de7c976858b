package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/input"
	"github.com/young1lin/tablo/internal/table"
)

// newRenderCmd creates the render command. It reads FILE, or standard input
// when FILE is omitted or "-".
func newRenderCmd(deps *Dependencies) *cobra.Command {
	var (
		flags  renderFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a CSV, TSV, JSON or TOML document as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readRecords(cmd.Context(), deps, path, format)
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, deps)
			if err != nil {
				return err
			}
			return renderTable(cmd.Context(), cmd.OutOrStdout(), data, opts)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: csv, tsv, json, toml (default from extension, csv for stdin)")
	flags.bind(cmd)
	return cmd
}

// readRecords reads path, or standard input for "" and "-".
func readRecords(ctx context.Context, deps *Dependencies, path, format string) (*records.Matrix, error) {
	logger := loggerFromContext(ctx)

	var f input.Format
	if format != "" {
		var err error
		if f, err = input.ParseFormat(format); err != nil {
			return nil, err
		}
	}

	var (
		m   *records.Matrix
		err error
	)
	if path == "" || path == "-" {
		if f == "" {
			f = input.CSV
		}
		m, err = input.Read(deps.Stdin, f)
		path = "stdin"
	} else {
		m, err = input.ReadFile(path, f)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("read records", "source", path, "rows", m.Rows(), "columns", m.Columns())
	return m, nil
}

// renderTable writes data followed by a newline. An empty table writes nothing.
func renderTable(ctx context.Context, w io.Writer, data records.Table, opts []table.Option) error {
	t, err := table.New(data, opts...)
	if err != nil {
		return err
	}
	layout, err := t.Layout()
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("layout", "width", layout.Width, "height", layout.Height)

	if err := t.Compose(w, layout); err != nil {
		return err
	}
	if rows, cols := t.Shape(); rows == 0 || cols == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write table line: %w", err)
	}
	return nil
}
