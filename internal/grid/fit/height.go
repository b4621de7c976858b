package fit

import (
	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/dimension"
	"github.com/young1lin/tablo/internal/grid/peaker"
	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/grid/text"
)

// HeightMode selects how a table is brought to its target height.
type HeightMode int

const (
	// ModeLimit shortens rows; lines that no longer fit are not printed.
	ModeLimit HeightMode = iota
	// ModeGrow adds blank lines to rows.
	ModeGrow
)

func (m HeightMode) String() string {
	if m == ModeGrow {
		return "increase"
	}
	return "limit"
}

// Height fits the total height of a table, borders included and margin
// excluded, to Target.
type Height struct {
	Mode     HeightMode
	Target   int
	Priority peaker.Strategy
}

// Limit shrinks a taller table to n lines.
func Limit(n int) Height { return Height{Mode: ModeLimit, Target: n} }

// IncreaseHeight grows a shorter table to n lines.
func IncreaseHeight(n int) Height { return Height{Mode: ModeGrow, Target: n} }

// WithPriority selects the strategy that picks the row to adjust next.
func (h Height) WithPriority(s peaker.Strategy) Height {
	h.Priority = s
	return h
}

// Apply fits heights, the current row heights of t, to the target and returns
// the fitted heights and the total reached. heights is not modified.
func (h Height) Apply(t records.Table, cfg *config.Config, heights []int) ([]int, int) {
	out := make([]int, len(heights))
	copy(out, heights)
	rows := len(out)
	if rows == 0 {
		return out, 0
	}
	overhead := cfg.CountHorizontalLines(rows)
	total := sum(out) + overhead

	p := h.Priority.New()
	switch h.Mode {
	case ModeGrow:
		if total >= h.Target {
			return out, total
		}
		return out, Grow(out, nil, h.Target-overhead, p) + overhead
	default:
		if total <= h.Target {
			return out, total
		}
		return out, Shrink(out, heightFloors(t, cfg), h.Target-overhead, p) + overhead
	}
}

// heightFloors keeps the padding of every row and one line of its text.
func heightFloors(t records.Table, cfg *config.Config) []int {
	rows, cols := t.Rows(), t.Columns()
	spans := cfg.Spans()
	floors := make([]int, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := config.Pos(r, c)
			if spans.IsCovered(pos) || spans.RowSpan(pos) > 1 {
				continue
			}
			f := config.Vertical(cfg.Padding(pos))
			if text.MaxWidth(dimension.CellLines(t, cfg, pos)) > 0 {
				f++
			}
			if f > floors[r] {
				floors[r] = f
			}
		}
	}
	return floors
}
