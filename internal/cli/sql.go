package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/input"
)

// newSQLCmd creates the sql command, which renders the result of a query
// against a SQLite database.
func newSQLCmd(deps *Dependencies) *cobra.Command {
	var (
		flags    renderFlags
		dbPath   string
		imports  []string
		format   string
		readOnly bool
	)

	cmd := &cobra.Command{
		Use:   "sql QUERY",
		Short: "Render the result of a SQLite query as a table",
		Example: `  tablo sql --db app.db "SELECT name, size FROM files ORDER BY size DESC"
  tablo sql --import people.csv "SELECT * FROM people WHERE age > 30"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			db, err := deps.DBOpener(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			for _, spec := range imports {
				path, name := splitImport(spec)
				data, err := readRecords(ctx, deps, path, format)
				if err != nil {
					return err
				}
				if err := db.Import(ctx, name, data); err != nil {
					return err
				}
				logger.Debug("imported table", "table", name, "rows", data.Rows()-1)
			}

			if readOnly {
				if err := db.SetReadOnly(ctx); err != nil {
					return err
				}
			}

			src, err := db.Query(ctx, args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			data, err := records.Collect(src)
			if err != nil {
				return err
			}
			logger.Debug("query done", "rows", data.Rows()-1, "columns", data.Columns())

			opts, err := flags.options(cmd, deps)
			if err != nil {
				return err
			}
			return renderTable(ctx, cmd.OutOrStdout(), data, opts)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", ":memory:", "SQLite database file")
	cmd.Flags().StringArrayVar(&imports, "import", nil, "load FILE[:TABLE] into the database before querying (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "format of imported files (default from extension)")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "reject statements that modify the database")
	flags.bind(cmd)
	return cmd
}

// splitImport splits FILE[:TABLE]. The table defaults to the file name
// without directory and extension.
func splitImport(spec string) (path, name string) {
	if i := lastColon(spec); i > 0 {
		return spec[:i], spec[i+1:]
	}
	return spec, input.TableName(spec)
}

// lastColon finds a FILE:TABLE separator, ignoring Windows drive letters.
func lastColon(s string) int {
	for i := len(s) - 1; i > 1; i-- {
		switch s[i] {
		case ':':
			return i
		case '/', '\\':
			return -1
		}
	}
	return -1
}
