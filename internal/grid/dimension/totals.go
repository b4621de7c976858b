package dimension

import "github.com/young1lin/tablo/internal/grid/config"

// SpanWidth returns the width available to a cell starting at column col and
// spanning n columns: the covered widths plus the interior vertical lines
// the span swallows.
func SpanWidth(d Dimension, cfg *config.Config, col, n, cols int) int {
	total := 0
	for c := col; c < col+n && c < cols; c++ {
		total += d.Width(c)
		if c > col && cfg.HasVerticalLine(c, cols) {
			total++
		}
	}
	return total
}

// SpanHeight returns the height available to a cell starting at row and
// spanning n rows, interior horizontal lines included.
func SpanHeight(d Dimension, cfg *config.Config, row, n, rows int) int {
	total := 0
	for r := row; r < row+n && r < rows; r++ {
		total += d.Height(r)
		if r > row && cfg.HasHorizontalLine(r, rows) {
			total++
		}
	}
	return total
}

// TotalWidth is the width of the bordered grid without margin.
func TotalWidth(d Dimension, cfg *config.Config, cols int) int {
	if cols == 0 {
		return 0
	}
	total := cfg.CountVerticalLines(cols)
	for c := 0; c < cols; c++ {
		total += d.Width(c)
	}
	return total
}

// TotalHeight is the height of the bordered grid without margin.
func TotalHeight(d Dimension, cfg *config.Config, rows int) int {
	if rows == 0 {
		return 0
	}
	total := cfg.CountHorizontalLines(rows)
	for r := 0; r < rows; r++ {
		total += d.Height(r)
	}
	return total
}
