package config

import (
	"fmt"
	"sort"
)

// Span merges the cells of a rectangle into its top-left anchor cell.
// Rows and Cols are both at least 1; 1x1 means no merge.
type Span struct {
	Anchor Position
	Rows   int
	Cols   int
}

// Contains reports whether pos lies inside the span footprint.
func (s Span) Contains(pos Position) bool {
	return pos.Row >= s.Anchor.Row && pos.Row < s.Anchor.Row+s.Rows &&
		pos.Col >= s.Anchor.Col && pos.Col < s.Anchor.Col+s.Cols
}

// LastRow is the index of the bottom row the span covers.
func (s Span) LastRow() int { return s.Anchor.Row + s.Rows - 1 }

// LastCol is the index of the right-most column the span covers.
func (s Span) LastCol() int { return s.Anchor.Col + s.Cols - 1 }

func (s Span) String() string {
	return fmt.Sprintf("%s %dx%d", s.Anchor, s.Rows, s.Cols)
}

// SpanMap keeps registered spans in a slice and indexes every covered
// position to its span for constant time lookups.
type SpanMap struct {
	spans []Span
	index map[Position]int
}

// NewSpanMap creates an empty SpanMap.
func NewSpanMap() *SpanMap {
	return &SpanMap{index: make(map[Position]int)}
}

// Add registers a span. Sizes below 1 and footprints intersecting an already
// registered span are rejected; a 1x1 span is accepted and ignored.
func (m *SpanMap) Add(s Span) error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("%w: %s", ErrInvalidSpan, s)
	}
	if s.Anchor.Row < 0 || s.Anchor.Col < 0 {
		return &PositionError{Pos: s.Anchor, Reason: "span anchor is negative"}
	}
	if s.Rows == 1 && s.Cols == 1 {
		return nil
	}
	for r := s.Anchor.Row; r <= s.LastRow(); r++ {
		for c := s.Anchor.Col; c <= s.LastCol(); c++ {
			if i, ok := m.index[Pos(r, c)]; ok {
				return fmt.Errorf("%w: %s intersects %s", ErrOverlappingSpan, s, m.spans[i])
			}
		}
	}
	m.spans = append(m.spans, s)
	id := len(m.spans) - 1
	for r := s.Anchor.Row; r <= s.LastRow(); r++ {
		for c := s.Anchor.Col; c <= s.LastCol(); c++ {
			m.index[Pos(r, c)] = id
		}
	}
	return nil
}

// Covering returns the span whose footprint contains pos.
func (m *SpanMap) Covering(pos Position) (Span, bool) {
	i, ok := m.index[pos]
	if !ok {
		return Span{}, false
	}
	return m.spans[i], true
}

// IsCovered reports whether pos is hidden behind another cell's span.
func (m *SpanMap) IsCovered(pos Position) bool {
	s, ok := m.Covering(pos)
	return ok && s.Anchor != pos
}

// Anchor returns the cell that visually owns pos: the span anchor when pos is
// inside a span, pos itself otherwise.
func (m *SpanMap) Anchor(pos Position) Position {
	if s, ok := m.Covering(pos); ok {
		return s.Anchor
	}
	return pos
}

// ColSpan returns the number of columns the cell at pos spans, 1 when it is not an anchor.
func (m *SpanMap) ColSpan(pos Position) int {
	if s, ok := m.Covering(pos); ok && s.Anchor == pos {
		return s.Cols
	}
	return 1
}

// RowSpan returns the number of rows the cell at pos spans, 1 when it is not an anchor.
func (m *SpanMap) RowSpan(pos Position) int {
	if s, ok := m.Covering(pos); ok && s.Anchor == pos {
		return s.Rows
	}
	return 1
}

// Len returns the number of registered spans.
func (m *SpanMap) Len() int { return len(m.spans) }

// Spans returns the registered spans in registration order.
func (m *SpanMap) Spans() []Span {
	out := make([]Span, len(m.spans))
	copy(out, m.spans)
	return out
}

// ColumnSpans returns spans wider than one column, smallest first, then by
// anchor row and column.
func (m *SpanMap) ColumnSpans() []Span {
	return m.sorted(func(s Span) int { return s.Cols })
}

// RowSpans returns spans taller than one row, smallest first, then by anchor
// row and column.
func (m *SpanMap) RowSpans() []Span {
	return m.sorted(func(s Span) int { return s.Rows })
}

func (m *SpanMap) sorted(size func(Span) int) []Span {
	var out []Span
	for _, s := range m.spans {
		if size(s) > 1 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if size(a) != size(b) {
			return size(a) < size(b)
		}
		if a.Anchor.Row != b.Anchor.Row {
			return a.Anchor.Row < b.Anchor.Row
		}
		return a.Anchor.Col < b.Anchor.Col
	})
	return out
}

func (m *SpanMap) clone() *SpanMap {
	c := NewSpanMap()
	c.spans = append(c.spans, m.spans...)
	for k, v := range m.index {
		c.index[k] = v
	}
	return c
}
