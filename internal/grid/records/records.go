// Package records provides the cell sources a grid is rendered from.
//
// Two access patterns exist. A Source is read once, row by row, and cannot be
// rewound. A Table gives random access to every cell; estimation and
// composition need it because spans look back at rows already seen. Collect
// buffers a Source into a Matrix, which is a Table.
package records

//go:generate mockgen -source=records.go -destination=mock_source_test.go -package=records

// Table gives random access to the cells of a grid.
type Table interface {
	Rows() int
	Columns() int
	Cell(row, col int) string
}

// Source yields rows in a single forward pass.
type Source interface {
	// Next advances to the next row and reports whether one is available.
	Next() bool
	// Row returns the current row. The slice is only valid until the next call to Next.
	Row() []string
	// Err returns the error that stopped iteration, if any.
	Err() error
}

// SizeHinter is implemented by sources that know their exact row count up front.
type SizeHinter interface {
	RowsHint() int
}
