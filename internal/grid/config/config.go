package config

// DefaultTabWidth is the number of spaces a tab expands to.
const DefaultTabWidth = 4

// Config is the complete configuration of a grid.
//
// Per-cell values are stored in EntityMaps. Spans are kept in a SpanMap.
// The zero value is not usable; call New.
type Config struct {
	padding       *EntityMap[Padding]
	alignH        *EntityMap[AlignmentHorizontal]
	alignV        *EntityMap[AlignmentVertical]
	formatting    *EntityMap[Formatting]
	justification *EntityMap[rune]
	colors        *ColorMap
	spans         *SpanMap

	borders     Borders
	horizontals map[int]HorizontalLine
	verticals   map[int]VerticalLine

	margin   Margin
	tabWidth int
	missing  rune
}

// New returns a configuration without borders, padding or margin.
func New() *Config {
	return &Config{
		padding:       NewEntityMap(Padding{}),
		alignH:        NewEntityMap(AlignLeft),
		alignV:        NewEntityMap(AlignTop),
		formatting:    NewEntityMap(Formatting{}),
		justification: NewEntityMap(' '),
		colors:        NewColorMap(),
		spans:         NewSpanMap(),
		horizontals:   make(map[int]HorizontalLine),
		verticals:     make(map[int]VerticalLine),
		tabWidth:      DefaultTabWidth,
		missing:       ' ',
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	n := &Config{
		padding:       c.padding.clone(),
		alignH:        c.alignH.clone(),
		alignV:        c.alignV.clone(),
		formatting:    c.formatting.clone(),
		justification: c.justification.clone(),
		colors:        &ColorMap{m: c.colors.m.clone()},
		spans:         c.spans.clone(),
		borders:       c.borders,
		horizontals:   make(map[int]HorizontalLine, len(c.horizontals)),
		verticals:     make(map[int]VerticalLine, len(c.verticals)),
		margin:        c.margin,
		tabWidth:      c.tabWidth,
		missing:       c.missing,
	}
	for k, v := range c.horizontals {
		n.horizontals[k] = v
	}
	for k, v := range c.verticals {
		n.verticals[k] = v
	}
	return n
}

// SetPadding sets the padding of the cells targeted by e.
func (c *Config) SetPadding(e Entity, p Padding) { c.padding.Set(e, p) }

// Padding returns the effective padding at pos.
func (c *Config) Padding(pos Position) Padding { return c.padding.Get(pos) }

// SetFormatting sets the text formatting flags of the cells targeted by e.
func (c *Config) SetFormatting(e Entity, f Formatting) { c.formatting.Set(e, f) }

func (c *Config) Formatting(pos Position) Formatting { return c.formatting.Get(pos) }

// SetAlignment sets the horizontal alignment of the cells targeted by e.
func (c *Config) SetAlignment(e Entity, a AlignmentHorizontal) { c.alignH.Set(e, a) }

// Alignment returns the effective horizontal alignment at pos.
func (c *Config) Alignment(pos Position) AlignmentHorizontal { return c.alignH.Get(pos) }

// SetVerticalAlignment sets the vertical alignment of the cells targeted by e.
func (c *Config) SetVerticalAlignment(e Entity, a AlignmentVertical) { c.alignV.Set(e, a) }

// VerticalAlignment returns the effective vertical alignment at pos.
func (c *Config) VerticalAlignment(pos Position) AlignmentVertical { return c.alignV.Get(pos) }

// SetJustification sets the glyph used to fill the space left by alignment.
func (c *Config) SetJustification(e Entity, fill rune) { c.justification.Set(e, fill) }

// Justification returns the alignment fill glyph at pos.
func (c *Config) Justification(pos Position) rune {
	if r := c.justification.Get(pos); r != 0 {
		return r
	}
	return ' '
}

// SetColor colors the text of the cells targeted by e.
func (c *Config) SetColor(e Entity, color Color) { c.colors.Set(e, color) }

// Colors returns the color lookup.
func (c *Config) Colors() Colors { return c.colors }

// SetSpan merges rows x cols cells starting at pos.
func (c *Config) SetSpan(pos Position, rows, cols int) error {
	return c.spans.Add(Span{Anchor: pos, Rows: rows, Cols: cols})
}

// Spans returns the span map.
func (c *Config) Spans() *SpanMap { return c.spans }

// SetBorders replaces the global glyph set.
func (c *Config) SetBorders(b Borders) { c.borders = b }

// Borders returns the global glyph set.
func (c *Config) Borders() Borders { return c.borders }

// SetHorizontalLine overrides the glyphs of horizontal line i; line 0 is the top edge.
func (c *Config) SetHorizontalLine(i int, l HorizontalLine) { c.horizontals[i] = l }

// SetVerticalLine overrides the glyphs of vertical line i; line 0 is the left edge.
func (c *Config) SetVerticalLine(i int, l VerticalLine) { c.verticals[i] = l }

// RemoveHorizontalLine drops the override of horizontal line i.
func (c *Config) RemoveHorizontalLine(i int) { delete(c.horizontals, i) }

// RemoveVerticalLine drops the override of vertical line i.
func (c *Config) RemoveVerticalLine(i int) { delete(c.verticals, i) }

// SetTheme installs borders and line overrides, replacing previous ones.
func (c *Config) SetTheme(t Theme) {
	c.borders = t.Borders
	c.horizontals = make(map[int]HorizontalLine, len(t.Horizontals))
	for k, v := range t.Horizontals {
		c.horizontals[k] = v
	}
	c.verticals = make(map[int]VerticalLine, len(t.Verticals))
	for k, v := range t.Verticals {
		c.verticals[k] = v
	}
}

// SetMargin sets the outer indent of the rendered grid.
func (c *Config) SetMargin(m Margin) { c.margin = m }

func (c *Config) Margin() Margin { return c.margin }

// SetTabWidth sets how many spaces a tab expands to. Negative values are treated as 0.
func (c *Config) SetTabWidth(n int) {
	if n < 0 {
		n = 0
	}
	c.tabWidth = n
}

func (c *Config) TabWidth() int { return c.tabWidth }

// SetMissingGlyph sets the glyph drawn where a border glyph is not defined.
func (c *Config) SetMissingGlyph(r rune) { c.missing = r }

func (c *Config) MissingGlyph() rune { return c.missing }
