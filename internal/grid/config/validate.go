package config

import "fmt"

// Validate checks every span and every row, column or cell override against a
// grid of the given shape. The first offending position is returned as a
// *PositionError.
func (c *Config) Validate(rows, cols int) error {
	for _, s := range c.spans.Spans() {
		if !inside(s.Anchor, rows, cols) {
			return &PositionError{Pos: s.Anchor, Reason: fmt.Sprintf("span anchor outside %dx%d grid", rows, cols)}
		}
		last := Pos(s.LastRow(), s.LastCol())
		if !inside(last, rows, cols) {
			return &PositionError{Pos: s.Anchor, Reason: fmt.Sprintf("span %dx%d exceeds %dx%d grid", s.Rows, s.Cols, rows, cols)}
		}
	}

	checks := [][]Entity{
		c.padding.Entities(),
		c.alignH.Entities(),
		c.alignV.Entities(),
		c.formatting.Entities(),
		c.justification.Entities(),
		c.colors.entities(),
	}
	for _, entities := range checks {
		for _, e := range entities {
			if err := checkEntity(e, rows, cols); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkEntity(e Entity, rows, cols int) error {
	switch e.Kind {
	case KindRow:
		if e.Row < 0 || e.Row >= rows {
			return &PositionError{Pos: Pos(e.Row, 0), Reason: fmt.Sprintf("%s override outside %dx%d grid", e, rows, cols)}
		}
	case KindColumn:
		if e.Col < 0 || e.Col >= cols {
			return &PositionError{Pos: Pos(0, e.Col), Reason: fmt.Sprintf("%s override outside %dx%d grid", e, rows, cols)}
		}
	case KindCell:
		if !inside(Pos(e.Row, e.Col), rows, cols) {
			return &PositionError{Pos: Pos(e.Row, e.Col), Reason: fmt.Sprintf("%s override outside %dx%d grid", e, rows, cols)}
		}
	}
	return nil
}

func inside(p Position, rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}
