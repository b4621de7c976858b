package records

import "fmt"

// Matrix is an in-memory Table. Rows shorter than the widest row read as
// empty cells.
type Matrix struct {
	cells [][]string
	cols  int
}

// FromRows builds a Matrix that owns a copy of rows.
func FromRows(rows [][]string) *Matrix {
	m := &Matrix{cells: make([][]string, 0, len(rows))}
	for _, r := range rows {
		m.Append(r)
	}
	return m
}

// Append copies row to the end of the matrix.
func (m *Matrix) Append(row []string) {
	cp := make([]string, len(row))
	copy(cp, row)
	m.cells = append(m.cells, cp)
	if len(cp) > m.cols {
		m.cols = len(cp)
	}
}

func (m *Matrix) Rows() int    { return len(m.cells) }
func (m *Matrix) Columns() int { return m.cols }

// Cell returns the text at (row, col), or "" for a missing cell.
func (m *Matrix) Cell(row, col int) string {
	if row < 0 || row >= len(m.cells) {
		return ""
	}
	r := m.cells[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Set replaces the text at (row, col), growing a short row when needed.
func (m *Matrix) Set(row, col int, s string) error {
	if row < 0 || row >= len(m.cells) || col < 0 || col >= m.cols {
		return fmt.Errorf("cell (%d, %d) outside %dx%d matrix", row, col, len(m.cells), m.cols)
	}
	for len(m.cells[row]) <= col {
		m.cells[row] = append(m.cells[row], "")
	}
	m.cells[row][col] = s
	return nil
}

// Map returns a new Matrix with fn applied to every cell, including the
// empty cells of short rows.
func (m *Matrix) Map(fn func(row, col int, s string) string) *Matrix {
	out := &Matrix{cells: make([][]string, len(m.cells)), cols: m.cols}
	for r := range m.cells {
		out.cells[r] = make([]string, m.cols)
		for c := 0; c < m.cols; c++ {
			out.cells[r][c] = fn(r, c, m.Cell(r, c))
		}
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return m.Map(func(_, _ int, s string) string { return s })
}

// Copy buffers any Table into a Matrix.
func Copy(t Table) *Matrix {
	if m, ok := t.(*Matrix); ok {
		return m.Clone()
	}
	out := &Matrix{cells: make([][]string, t.Rows()), cols: t.Columns()}
	for r := 0; r < t.Rows(); r++ {
		out.cells[r] = make([]string, t.Columns())
		for c := 0; c < t.Columns(); c++ {
			out.cells[r][c] = t.Cell(r, c)
		}
	}
	return out
}
