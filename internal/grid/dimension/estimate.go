package dimension

import (
	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/grid/text"
)

// Estimate validates cfg against the shape of t and computes the width of
// every column and the height of every row.
//
// Cells hidden behind a span contribute nothing. A span anchor contributes to
// its own column (row) only when it spans a single column (row); otherwise
// its requirement is met afterwards by growing the last covered column (row)
// until the covered sizes plus the interior border lines suffice. Spans are
// settled smallest first.
func Estimate(t records.Table, cfg *config.Config) (*Sizes, error) {
	if err := cfg.Validate(t.Rows(), t.Columns()); err != nil {
		return nil, err
	}
	return &Sizes{
		Widths:  EstimateWidths(t, cfg),
		Heights: EstimateHeights(t, cfg),
	}, nil
}

// EstimateWidths computes column widths. cfg is assumed valid for t.
func EstimateWidths(t records.Table, cfg *config.Config) []int {
	rows, cols := t.Rows(), t.Columns()
	widths := make([]int, cols)
	spans := cfg.Spans()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := config.Pos(r, c)
			if spans.IsCovered(pos) || spans.ColSpan(pos) > 1 {
				continue
			}
			if w := RequiredWidth(t, cfg, pos); w > widths[c] {
				widths[c] = w
			}
		}
	}

	hasLine := func(j int) bool { return cfg.HasVerticalLine(j, cols) }
	for _, s := range spans.ColumnSpans() {
		if s.LastCol() >= cols || s.Anchor.Row >= rows {
			continue
		}
		need := RequiredWidth(t, cfg, s.Anchor)
		have := spanSum(widths, s.Anchor.Col, s.Cols, hasLine)
		if need > have {
			widths[s.LastCol()] += need - have
		}
	}
	return widths
}

// EstimateHeights computes row heights. cfg is assumed valid for t.
func EstimateHeights(t records.Table, cfg *config.Config) []int {
	rows, cols := t.Rows(), t.Columns()
	heights := make([]int, rows)
	spans := cfg.Spans()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := config.Pos(r, c)
			if spans.IsCovered(pos) || spans.RowSpan(pos) > 1 {
				continue
			}
			if h := RequiredHeight(t, cfg, pos); h > heights[r] {
				heights[r] = h
			}
		}
	}

	hasLine := func(i int) bool { return cfg.HasHorizontalLine(i, rows) }
	for _, s := range spans.RowSpans() {
		if s.LastRow() >= rows || s.Anchor.Col >= cols {
			continue
		}
		need := RequiredHeight(t, cfg, s.Anchor)
		have := spanSum(heights, s.Anchor.Row, s.Rows, hasLine)
		if need > have {
			heights[s.LastRow()] += need - have
		}
	}
	return heights
}

// CellLines returns the prepared lines of the cell at pos: tabs expanded and
// trimming applied per the cell's formatting.
func CellLines(t records.Table, cfg *config.Config, pos config.Position) []string {
	f := cfg.Formatting(pos)
	return text.Prepare(t.Cell(pos.Row, pos.Col), text.Options{
		TabWidth:       cfg.TabWidth(),
		TrimHorizontal: f.HorizontalTrim,
		TrimVertical:   f.VerticalTrim,
	})
}

// RequiredWidth is the widest line of the cell plus its left and right padding.
func RequiredWidth(t records.Table, cfg *config.Config, pos config.Position) int {
	return text.MaxWidth(CellLines(t, cfg, pos)) + config.Horizontal(cfg.Padding(pos))
}

// RequiredHeight is the line count of the cell plus its top and bottom padding.
func RequiredHeight(t records.Table, cfg *config.Config, pos config.Position) int {
	return len(CellLines(t, cfg, pos)) + config.Vertical(cfg.Padding(pos))
}

// spanSum adds n sizes starting at start plus one for every drawn interior
// line between them.
func spanSum(sizes []int, start, n int, hasLine func(int) bool) int {
	total := 0
	for i := start; i < start+n && i < len(sizes); i++ {
		total += sizes[i]
		if i > start && hasLine(i) {
			total++
		}
	}
	return total
}
