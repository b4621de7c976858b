// Package config holds the global and per-entity settings of a grid:
// borders, padding, margin, alignment, formatting, spans and colors.
package config

import "fmt"

// Position identifies a grid cell. Both indexes are zero-based.
type Position struct {
	Row int
	Col int
}

// Pos is a shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// EntityKind is the scope an Entity targets.
type EntityKind int

const (
	KindGlobal EntityKind = iota
	KindRow
	KindColumn
	KindCell
)

func (k EntityKind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindCell:
		return "cell"
	default:
		return "global"
	}
}

// Entity targets a configuration value at the whole grid, a row, a column or a single cell.
type Entity struct {
	Kind EntityKind
	Row  int
	Col  int
}

// Global targets every cell.
func Global() Entity {
	return Entity{Kind: KindGlobal}
}

// Row targets every cell of row i.
func Row(i int) Entity {
	return Entity{Kind: KindRow, Row: i}
}

// Column targets every cell of column i.
func Column(i int) Entity {
	return Entity{Kind: KindColumn, Col: i}
}

// Cell targets a single cell.
func Cell(row, col int) Entity {
	return Entity{Kind: KindCell, Row: row, Col: col}
}

func (e Entity) String() string {
	switch e.Kind {
	case KindRow:
		return fmt.Sprintf("row %d", e.Row)
	case KindColumn:
		return fmt.Sprintf("column %d", e.Col)
	case KindCell:
		return fmt.Sprintf("cell %s", Pos(e.Row, e.Col))
	default:
		return "global"
	}
}
