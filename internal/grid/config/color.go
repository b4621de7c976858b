package config

// Color wraps text in a prefix and a suffix, typically ANSI escape sequences.
type Color struct {
	Prefix string
	Suffix string
}

// IsZero reports whether the color adds nothing.
func (c Color) IsZero() bool {
	return c.Prefix == "" && c.Suffix == ""
}

// Wrap returns s surrounded by the color. Empty strings stay empty.
func (c Color) Wrap(s string) string {
	if s == "" || c.IsZero() {
		return s
	}
	return c.Prefix + s + c.Suffix
}

// Colors resolves the color of a cell.
type Colors interface {
	Get(pos Position) (Color, bool)
	IsEmpty() bool
}

// ColorMap is the EntityMap backed Colors implementation.
type ColorMap struct {
	m *EntityMap[Color]
}

// NewColorMap creates an empty ColorMap.
func NewColorMap() *ColorMap {
	return &ColorMap{m: NewEntityMap(Color{})}
}

// Set colors the cells targeted by e.
func (c *ColorMap) Set(e Entity, color Color) {
	c.m.Set(e, color)
}

// Get returns the color of the cell at pos, if any.
func (c *ColorMap) Get(pos Position) (Color, bool) {
	color := c.m.Get(pos)
	return color, !color.IsZero()
}

// IsEmpty reports whether no color is set at any scope.
func (c *ColorMap) IsEmpty() bool {
	return c.m.Global().IsZero() && !c.m.HasOverrides()
}

func (c *ColorMap) entities() []Entity {
	return c.m.Entities()
}
