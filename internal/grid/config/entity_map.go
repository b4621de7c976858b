package config

import "sort"

// EntityMap stores a value sparsely per Entity.
//
// Lookups resolve the most specific entry: Cell, then Column, then Row, then Global.
// The order is fixed and does not depend on the order values were set in.
type EntityMap[T any] struct {
	global  T
	rows    map[int]T
	columns map[int]T
	cells   map[Position]T
}

// NewEntityMap creates a map whose Global value is global.
func NewEntityMap[T any](global T) *EntityMap[T] {
	return &EntityMap[T]{
		global:  global,
		rows:    make(map[int]T),
		columns: make(map[int]T),
		cells:   make(map[Position]T),
	}
}

// Set stores v for e.
func (m *EntityMap[T]) Set(e Entity, v T) {
	switch e.Kind {
	case KindRow:
		m.rows[e.Row] = v
	case KindColumn:
		m.columns[e.Col] = v
	case KindCell:
		m.cells[Pos(e.Row, e.Col)] = v
	default:
		m.global = v
	}
}

// Get returns the effective value for the cell at pos.
func (m *EntityMap[T]) Get(pos Position) T {
	if v, ok := m.cells[pos]; ok {
		return v
	}
	if v, ok := m.columns[pos.Col]; ok {
		return v
	}
	if v, ok := m.rows[pos.Row]; ok {
		return v
	}
	return m.global
}

// Global returns the value used when no override matches.
func (m *EntityMap[T]) Global() T {
	return m.global
}

// HasOverrides reports whether any row, column or cell entry exists.
func (m *EntityMap[T]) HasOverrides() bool {
	return len(m.rows) > 0 || len(m.columns) > 0 || len(m.cells) > 0
}

// Entities lists every non-global entity that carries a value, in a stable order.
func (m *EntityMap[T]) Entities() []Entity {
	out := make([]Entity, 0, len(m.rows)+len(m.columns)+len(m.cells))
	for _, r := range sortedKeys(m.rows) {
		out = append(out, Row(r))
	}
	for _, c := range sortedKeys(m.columns) {
		out = append(out, Column(c))
	}
	cells := make([]Position, 0, len(m.cells))
	for p := range m.cells {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	for _, p := range cells {
		out = append(out, Cell(p.Row, p.Col))
	}
	return out
}

func (m *EntityMap[T]) clone() *EntityMap[T] {
	c := NewEntityMap(m.global)
	for k, v := range m.rows {
		c.rows[k] = v
	}
	for k, v := range m.columns {
		c.columns[k] = v
	}
	for k, v := range m.cells {
		c.cells[k] = v
	}
	return c
}

func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
