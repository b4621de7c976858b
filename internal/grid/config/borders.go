package config

// Borders is a sparse glyph set. A zero rune means the glyph is not defined.
type Borders struct {
	Top        rune
	Bottom     rune
	Left       rune
	Right      rune
	Horizontal rune
	Vertical   rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	TopIntersection    rune
	BottomIntersection rune
	LeftIntersection   rune
	RightIntersection  rune
	Intersection       rune
}

// IsEmpty reports whether no glyph is defined.
func (b Borders) IsEmpty() bool {
	return b == Borders{}
}

// HorizontalLine overrides the glyphs of one horizontal line.
type HorizontalLine struct {
	Main         rune
	Intersection rune
	Left         rune
	Right        rune
}

// VerticalLine overrides the glyphs of one vertical line.
type VerticalLine struct {
	Main         rune
	Intersection rune
	Top          rune
	Bottom       rune
}

// Theme bundles a glyph set with its per-line overrides.
type Theme struct {
	Borders     Borders
	Horizontals map[int]HorizontalLine
	Verticals   map[int]VerticalLine
}

// Arms tells which border segments meet at an intersection point.
type Arms struct {
	Up, Down, Left, Right bool
}

// pick maps the arms meeting at a point to a glyph of b. horizontal and
// vertical are the main glyphs of the two lines crossing at the point.
func (b Borders) pick(a Arms, horizontal, vertical rune) rune {
	switch {
	case a.Up && a.Down && a.Left && a.Right:
		return b.Intersection
	case a.Down && a.Left && a.Right:
		return b.TopIntersection
	case a.Up && a.Left && a.Right:
		return b.BottomIntersection
	case a.Up && a.Down && a.Right:
		return b.LeftIntersection
	case a.Up && a.Down && a.Left:
		return b.RightIntersection
	case a.Down && a.Right:
		return b.TopLeft
	case a.Down && a.Left:
		return b.TopRight
	case a.Up && a.Right:
		return b.BottomLeft
	case a.Up && a.Left:
		return b.BottomRight
	case a.Left || a.Right:
		return horizontal
	case a.Up || a.Down:
		return vertical
	}
	return 0
}
