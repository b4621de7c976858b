// Package compose walks a grid with its final dimensions and writes the
// bordered, aligned text line by line to a sink.
package compose

import (
	"io"
	"strings"

	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/dimension"
	"github.com/young1lin/tablo/internal/grid/records"
)

// Render writes the grid to w. Lines are separated by "\n" and the last line
// has no trailing newline. A grid without rows or columns writes nothing.
//
// The span map of cfg and d are trusted as given; they are not validated
// again. The first write error aborts the render and is returned.
func Render(w io.Writer, t records.Table, cfg *config.Config, d dimension.Dimension) error {
	rows, cols := t.Rows(), t.Columns()
	if rows == 0 || cols == 0 {
		return nil
	}
	c := &composer{
		t:     t,
		cfg:   cfg,
		dim:   d,
		spans: cfg.Spans(),
		rows:  rows,
		cols:  cols,
		boxes: make(map[config.Position][]string),
	}
	out := newSink(w, cfg.Margin(), dimension.TotalWidth(d, cfg, cols))
	return c.run(out)
}

// String renders the grid into a string.
func String(t records.Table, cfg *config.Config, d dimension.Dimension) string {
	var b strings.Builder
	_ = Render(&b, t, cfg, d)
	return b.String()
}

type composer struct {
	t     records.Table
	cfg   *config.Config
	dim   dimension.Dimension
	spans *config.SpanMap
	rows  int
	cols  int

	// boxes caches the rendered lines of cells still visible on upcoming rows.
	boxes map[config.Position][]string
}

func (c *composer) run(out *sink) error {
	if err := out.margin(out.m.Top); err != nil {
		return err
	}
	for r := 0; r < c.rows; r++ {
		if c.cfg.HasHorizontalLine(r, c.rows) {
			if err := out.line(c.horizontalLine(r)); err != nil {
				return err
			}
		}
		for k := 0; k < c.dim.Height(r); k++ {
			if err := out.line(c.contentLine(r, k)); err != nil {
				return err
			}
		}
		c.release(r)
	}
	if c.cfg.HasHorizontalLine(c.rows, c.rows) {
		if err := out.line(c.horizontalLine(c.rows)); err != nil {
			return err
		}
	}
	return out.margin(out.m.Bottom)
}

// horizontalLine renders border line i. Where a row span crosses the line
// the spanned cell's text continues through it.
func (c *composer) horizontalLine(i int) string {
	var b strings.Builder
	glyph := c.cfg.HorizontalGlyph(i, c.rows)
	for col := 0; col < c.cols; {
		if c.cfg.HasVerticalLine(col, c.cols) {
			b.WriteRune(c.point(i, col))
		}
		if s, ok := c.rowSpanAcross(i, col); ok {
			offset := dimension.SpanHeight(c.dim, c.cfg, s.Anchor.Row, i-s.Anchor.Row, c.rows)
			b.WriteString(c.boxLine(s.Anchor, offset))
			col = s.Anchor.Col + s.Cols
			continue
		}
		b.WriteString(strings.Repeat(string(glyph), c.dim.Width(col)))
		col++
	}
	if c.cfg.HasVerticalLine(c.cols, c.cols) {
		b.WriteRune(c.point(i, c.cols))
	}
	return b.String()
}

// contentLine renders line k of row r.
func (c *composer) contentLine(r, k int) string {
	var b strings.Builder
	for col := 0; col < c.cols; {
		if c.cfg.HasVerticalLine(col, c.cols) {
			b.WriteRune(c.cfg.VerticalGlyph(col, c.cols))
		}
		anchor := c.spans.Anchor(config.Pos(r, col))
		offset := k
		if r > anchor.Row {
			offset += dimension.SpanHeight(c.dim, c.cfg, anchor.Row, r-anchor.Row, c.rows)
			if c.cfg.HasHorizontalLine(r, c.rows) {
				offset++
			}
		}
		b.WriteString(c.boxLine(anchor, offset))
		col = anchor.Col + c.spans.ColSpan(anchor)
	}
	if c.cfg.HasVerticalLine(c.cols, c.cols) {
		b.WriteRune(c.cfg.VerticalGlyph(c.cols, c.cols))
	}
	return b.String()
}

// point picks the glyph where horizontal line i meets vertical line j from
// the border segments that actually reach it.
func (c *composer) point(i, j int) rune {
	arms := config.Arms{
		Left:  j > 0 && c.horizontalSegment(i, j-1),
		Right: j < c.cols && c.horizontalSegment(i, j),
		Up:    i > 0 && c.verticalSegment(i-1, j),
		Down:  i < c.rows && c.verticalSegment(i, j),
	}
	return c.cfg.IntersectionGlyph(i, j, c.rows, c.cols, arms)
}

func (c *composer) horizontalSegment(i, col int) bool {
	if !c.cfg.HasHorizontalLine(i, c.rows) {
		return false
	}
	_, crossed := c.rowSpanAcross(i, col)
	return !crossed
}

func (c *composer) verticalSegment(row, j int) bool {
	if !c.cfg.HasVerticalLine(j, c.cols) {
		return false
	}
	if j == 0 || j == c.cols {
		return true
	}
	s, ok := c.spans.Covering(config.Pos(row, j))
	return !ok || s.Anchor.Col == j
}

// rowSpanAcross returns the span covering the rows on both sides of
// horizontal line i at column col.
func (c *composer) rowSpanAcross(i, col int) (config.Span, bool) {
	if i <= 0 || i >= c.rows {
		return config.Span{}, false
	}
	s, ok := c.spans.Covering(config.Pos(i, col))
	if !ok || s.Anchor.Row == i {
		return config.Span{}, false
	}
	return s, true
}

func (c *composer) boxLine(anchor config.Position, i int) string {
	lines, ok := c.boxes[anchor]
	if !ok {
		lines = c.box(anchor)
		c.boxes[anchor] = lines
	}
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

// release drops cached boxes that end on row r.
func (c *composer) release(r int) {
	for anchor := range c.boxes {
		if anchor.Row+c.spans.RowSpan(anchor)-1 <= r {
			delete(c.boxes, anchor)
		}
	}
}
