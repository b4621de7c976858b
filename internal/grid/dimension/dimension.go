// Package dimension derives column widths and row heights from cell content,
// padding and spans.
package dimension

// Dimension answers the width of a column and the height of a row.
type Dimension interface {
	Width(col int) int
	Height(row int) int
}

// Sizes is a Dimension backed by two slices. Indexes outside the slices
// report 0.
type Sizes struct {
	Widths  []int
	Heights []int
}

// Fixed returns Sizes holding copies of widths and heights.
func Fixed(widths, heights []int) *Sizes {
	return &Sizes{Widths: cloneInts(widths), Heights: cloneInts(heights)}
}

func (s *Sizes) Width(col int) int {
	if col < 0 || col >= len(s.Widths) {
		return 0
	}
	return s.Widths[col]
}

func (s *Sizes) Height(row int) int {
	if row < 0 || row >= len(s.Heights) {
		return 0
	}
	return s.Heights[row]
}

// Clone returns a deep copy.
func (s *Sizes) Clone() *Sizes {
	return Fixed(s.Widths, s.Heights)
}

// Override replaces the leading entries of the widths and heights with the
// given lists. Longer lists are clipped to the grid shape.
func (s *Sizes) Override(widths, heights []int) {
	for i := 0; i < len(widths) && i < len(s.Widths); i++ {
		if widths[i] >= 0 {
			s.Widths[i] = widths[i]
		}
	}
	for i := 0; i < len(heights) && i < len(s.Heights); i++ {
		if heights[i] >= 0 {
			s.Heights[i] = heights[i]
		}
	}
}

func cloneInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}
