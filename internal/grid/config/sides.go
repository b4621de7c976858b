package config

// Indent is a run of Size fill glyphs, optionally colored.
type Indent struct {
	Size  int
	Fill  rune
	Color Color
}

// Spaces returns an Indent of n blanks.
func Spaces(n int) Indent {
	return Indent{Size: n, Fill: ' '}
}

// Sides holds one value per side of a box.
type Sides[T any] struct {
	Top    T
	Bottom T
	Left   T
	Right  T
}

// Padding is the space between a cell's border and its text.
type Padding = Sides[Indent]

// Margin is the space around the whole rendered grid.
type Margin = Sides[Indent]

// NewPadding builds a blank padding with the given sizes.
func NewPadding(left, right, top, bottom int) Padding {
	return Padding{Top: Spaces(top), Bottom: Spaces(bottom), Left: Spaces(left), Right: Spaces(right)}
}

// NewMargin builds a blank margin with the given sizes.
func NewMargin(left, right, top, bottom int) Margin {
	return Margin{Top: Spaces(top), Bottom: Spaces(bottom), Left: Spaces(left), Right: Spaces(right)}
}

// Horizontal returns the left plus right sizes.
func Horizontal(s Sides[Indent]) int {
	return s.Left.Size + s.Right.Size
}

// Vertical returns the top plus bottom sizes.
func Vertical(s Sides[Indent]) int {
	return s.Top.Size + s.Bottom.Size
}
