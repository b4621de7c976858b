package compose

import (
	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/dimension"
	"github.com/young1lin/tablo/internal/grid/text"
)

// box renders every line of the cell anchored at pos, each exactly as wide
// as the columns (and swallowed border lines) the cell covers.
func (c *composer) box(pos config.Position) []string {
	width := dimension.SpanWidth(c.dim, c.cfg, pos.Col, c.spans.ColSpan(pos), c.cols)
	height := dimension.SpanHeight(c.dim, c.cfg, pos.Row, c.spans.RowSpan(pos), c.rows)

	pad := c.cfg.Padding(pos)
	left, right := clampPair(pad.Left.Size, pad.Right.Size, width)
	top, bottom := clampPair(pad.Top.Size, pad.Bottom.Size, height)
	cw, ch := width-left-right, height-top-bottom

	lines := dimension.CellLines(c.t, c.cfg, pos)
	if len(lines) > ch {
		lines = lines[:ch]
	}
	for i, l := range lines {
		lines[i] = text.Cut(l, cw)
	}

	offset := 0
	switch c.cfg.VerticalAlignment(pos) {
	case config.AlignMiddle:
		offset = (ch - len(lines)) / 2
	case config.AlignBottom:
		offset = ch - len(lines)
	}

	fill := c.cfg.Justification(pos)
	color, _ := c.cfg.Colors().Get(pos)
	a := aligner{
		align:   c.cfg.Alignment(pos),
		perLine: c.cfg.Formatting(pos).AllowLinesAlignment,
		width:   cw,
		block:   text.MaxWidth(lines),
		fill:    fill,
		color:   color,
	}
	leftPad := indent(pad.Left, left)
	rightPad := indent(pad.Right, right)

	out := make([]string, 0, height)
	for i := 0; i < top; i++ {
		out = append(out, indent(pad.Top, width))
	}
	for k := 0; k < ch; k++ {
		body := text.Repeat(' ', cw)
		if i := k - offset; i >= 0 && i < len(lines) {
			body = a.line(lines[i])
		}
		out = append(out, leftPad+body+rightPad)
	}
	for i := 0; i < bottom; i++ {
		out = append(out, indent(pad.Bottom, width))
	}
	return out
}

// aligner places one line of text inside the content width of a cell.
type aligner struct {
	align   config.AlignmentHorizontal
	perLine bool
	width   int
	block   int
	fill    rune
	color   config.Color
}

// line aligns s on its own when perLine is set; otherwise the cell's lines
// move together, sharing the offset of the widest one.
func (a aligner) line(s string) string {
	w := text.Width(s)
	span := a.block
	if a.perLine {
		span = w
	}
	left := 0
	switch a.align {
	case config.AlignCenter:
		left = (a.width - span) / 2
	case config.AlignRight:
		left = a.width - span
	}
	if left < 0 {
		left = 0
	}
	return text.Repeat(a.fill, left) + a.color.Wrap(s) + text.Repeat(a.fill, a.width-left-w)
}

// indent renders n fill glyphs of ind in its color.
func indent(ind config.Indent, n int) string {
	fill := ind.Fill
	if fill == 0 {
		fill = ' '
	}
	return ind.Color.Wrap(text.Repeat(fill, n))
}

// clampPair shrinks a and b so that together they fit in total, taking from
// b first.
func clampPair(a, b, total int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if a > total {
		a = total
	}
	if b > total-a {
		b = total - a
	}
	return a, b
}
