// Package store reads records from SQLite query results.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/glebarez/sqlite"

	"github.com/young1lin/tablo/internal/grid/records"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the SQLite database at dbPath. ":memory:" opens a private
// in-memory database.
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// An in-memory database exists per connection.
	if dbPath == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
	} else if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &DB{DB: sqlDB}, nil
}

// SetReadOnly makes the database reject writes for the rest of the session.
// The pool is limited to one connection so the pragma covers every statement.
func (db *DB) SetReadOnly(ctx context.Context) error {
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return fmt.Errorf("set read-only: %w", err)
	}
	return nil
}

// Query runs q and returns its result set as a single pass source. The first
// row holds the column names. The caller must Close the source.
func (db *DB) Query(ctx context.Context, q string, args ...any) (*RowSource, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("query columns: %w", err)
	}
	return &RowSource{rows: rows, columns: columns}, nil
}

// Import creates table name with one TEXT column per cell of the first row of
// t and inserts the remaining rows. An existing table of that name is replaced.
func (db *DB) Import(ctx context.Context, name string, t records.Table) error {
	if t.Rows() == 0 || t.Columns() == 0 {
		return fmt.Errorf("import %s: no header row", name)
	}

	cols := make([]string, t.Columns())
	marks := make([]string, t.Columns())
	for j := range cols {
		cols[j] = quoteIdent(t.Cell(0, j)) + " TEXT"
		marks[j] = "?"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return fmt.Errorf("import %s: %w", name, err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(cols, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("import %s: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(name), strings.Join(marks, ", ")))
	if err != nil {
		return fmt.Errorf("import %s: %w", name, err)
	}
	defer stmt.Close()

	values := make([]any, t.Columns())
	for i := 1; i < t.Rows(); i++ {
		for j := range values {
			values[j] = t.Cell(i, j)
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("import %s row %d: %w", name, i, err)
		}
	}
	return tx.Commit()
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// RowSource streams a query result. It implements records.Source.
type RowSource struct {
	rows    *sql.Rows
	columns []string
	header  bool
	row     []string
	err     error
}

func (s *RowSource) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.header {
		s.header = true
		s.row = s.columns
		return true
	}
	if !s.rows.Next() {
		s.err = s.rows.Err()
		s.row = nil
		return false
	}

	values := make([]any, len(s.columns))
	ptrs := make([]any, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := s.rows.Scan(ptrs...); err != nil {
		s.err = fmt.Errorf("scan row: %w", err)
		return false
	}

	s.row = make([]string, len(values))
	for i, v := range values {
		s.row[i] = formatValue(v)
	}
	return true
}

func (s *RowSource) Row() []string { return s.row }
func (s *RowSource) Err() error    { return s.err }

// Columns returns the result column names.
func (s *RowSource) Columns() []string { return s.columns }

// Close releases the underlying result set.
func (s *RowSource) Close() error { return s.rows.Close() }

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
