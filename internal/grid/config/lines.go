package config

// HasHorizontalLine reports whether horizontal line i of a grid with the given
// number of rows is drawn. Line 0 is the top edge, line rows the bottom edge.
func (c *Config) HasHorizontalLine(i, rows int) bool {
	if i < 0 || i > rows {
		return false
	}
	if _, ok := c.horizontals[i]; ok {
		return true
	}
	switch i {
	case 0:
		return c.borders.Top != 0
	case rows:
		return c.borders.Bottom != 0
	default:
		return c.borders.Horizontal != 0
	}
}

// HasVerticalLine reports whether vertical line j of a grid with the given
// number of columns is drawn. Line 0 is the left edge, line cols the right edge.
func (c *Config) HasVerticalLine(j, cols int) bool {
	if j < 0 || j > cols {
		return false
	}
	if _, ok := c.verticals[j]; ok {
		return true
	}
	switch j {
	case 0:
		return c.borders.Left != 0
	case cols:
		return c.borders.Right != 0
	default:
		return c.borders.Vertical != 0
	}
}

// CountHorizontalLines returns how many horizontal lines are drawn.
func (c *Config) CountHorizontalLines(rows int) int {
	n := 0
	for i := 0; i <= rows; i++ {
		if c.HasHorizontalLine(i, rows) {
			n++
		}
	}
	return n
}

// CountVerticalLines returns how many vertical lines are drawn.
func (c *Config) CountVerticalLines(cols int) int {
	n := 0
	for j := 0; j <= cols; j++ {
		if c.HasVerticalLine(j, cols) {
			n++
		}
	}
	return n
}

// HorizontalGlyph returns the glyph repeated along horizontal line i.
func (c *Config) HorizontalGlyph(i, rows int) rune {
	if l, ok := c.horizontals[i]; ok && l.Main != 0 {
		return l.Main
	}
	var r rune
	switch i {
	case 0:
		r = c.borders.Top
	case rows:
		r = c.borders.Bottom
	default:
		r = c.borders.Horizontal
	}
	return c.orMissing(r)
}

// VerticalGlyph returns the glyph drawn along vertical line j.
func (c *Config) VerticalGlyph(j, cols int) rune {
	if l, ok := c.verticals[j]; ok && l.Main != 0 {
		return l.Main
	}
	var r rune
	switch j {
	case 0:
		r = c.borders.Left
	case cols:
		r = c.borders.Right
	default:
		r = c.borders.Vertical
	}
	return c.orMissing(r)
}

// IntersectionGlyph returns the glyph drawn where horizontal line i crosses
// vertical line j. Line overrides win over the global set; arms select the
// global glyph kind.
func (c *Config) IntersectionGlyph(i, j, rows, cols int, arms Arms) rune {
	if l, ok := c.horizontals[i]; ok {
		var r rune
		switch j {
		case 0:
			r = l.Left
		case cols:
			r = l.Right
		default:
			r = l.Intersection
		}
		if r != 0 {
			return r
		}
	}
	if l, ok := c.verticals[j]; ok {
		var r rune
		switch i {
		case 0:
			r = l.Top
		case rows:
			r = l.Bottom
		default:
			r = l.Intersection
		}
		if r != 0 {
			return r
		}
	}
	r := c.borders.pick(arms, c.HorizontalGlyph(i, rows), c.VerticalGlyph(j, cols))
	return c.orMissing(r)
}

func (c *Config) orMissing(r rune) rune {
	if r == 0 {
		return c.missing
	}
	return r
}
