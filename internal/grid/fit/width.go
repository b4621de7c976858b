package fit

import (
	"strings"

	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/dimension"
	"github.com/young1lin/tablo/internal/grid/peaker"
	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/grid/text"
)

// WidthMode selects how a table is brought to its target width.
type WidthMode int

const (
	// ModeTruncate cuts cell text at the fitted width.
	ModeTruncate WidthMode = iota
	// ModeWrap moves the overflow of cell text to new lines.
	ModeWrap
	// ModeIncrease widens columns up to the target.
	ModeIncrease
)

func (m WidthMode) String() string {
	switch m {
	case ModeWrap:
		return "wrap"
	case ModeIncrease:
		return "increase"
	default:
		return "truncate"
	}
}

// Width fits the total width of a table, borders included and margin
// excluded, to Target.
type Width struct {
	Mode      WidthMode
	Target    int
	Suffix    string
	KeepWords bool
	Priority  peaker.Strategy
}

// Truncate shrinks a wider table to n columns by cutting cell text.
func Truncate(n int) Width { return Width{Mode: ModeTruncate, Target: n} }

// Wrap shrinks a wider table to n columns by wrapping cell text.
func Wrap(n int) Width { return Width{Mode: ModeWrap, Target: n} }

// Increase widens a narrower table to n columns.
func Increase(n int) Width { return Width{Mode: ModeIncrease, Target: n} }

// WithSuffix sets the text appended to truncated lines, e.g. "...".
func (w Width) WithSuffix(s string) Width {
	w.Suffix = s
	return w
}

// KeepingWords makes wrapping break at whitespace only.
func (w Width) KeepingWords() Width {
	w.KeepWords = true
	return w
}

// WithPriority selects the strategy that picks the column to adjust next.
func (w Width) WithPriority(s peaker.Strategy) Width {
	w.Priority = s
	return w
}

// WidthResult is the outcome of Width.Apply.
type WidthResult struct {
	// Table holds the reshaped cells. It is always a copy of the input.
	Table *records.Matrix
	// Widths are the fitted column widths.
	Widths []int
	// Total is the width reached. It differs from the target when every
	// column hit its floor, or when the table already satisfied the target.
	Total int
}

// Reached reports whether the result satisfies target for the given mode.
func (r WidthResult) Reached(w Width) bool {
	if w.Mode == ModeIncrease {
		return r.Total >= w.Target
	}
	return r.Total <= w.Target
}

// Apply fits t to the target. t and cfg are not modified.
func (w Width) Apply(t records.Table, cfg *config.Config) WidthResult {
	m := records.Copy(t)
	cols := m.Columns()
	widths := dimension.EstimateWidths(m, cfg)
	overhead := 0
	if cols > 0 {
		overhead = cfg.CountVerticalLines(cols)
	}
	total := sum(widths) + overhead
	res := WidthResult{Table: m, Widths: widths, Total: total}
	if cols == 0 {
		return res
	}

	p := w.Priority.New()
	switch w.Mode {
	case ModeIncrease:
		if total >= w.Target {
			return res
		}
		res.Total = Grow(widths, nil, w.Target-overhead, p) + overhead
	default:
		if total <= w.Target {
			return res
		}
		floors := w.floors(m, cfg)
		res.Total = Shrink(widths, floors, w.Target-overhead, p) + overhead
		res.Table = w.reshape(m, cfg, widths)
	}
	return res
}

// floors returns the narrowest each column may become: its padding plus its
// widest character, or the longest word when wrapping keeps words.
func (w Width) floors(t records.Table, cfg *config.Config) []int {
	rows, cols := t.Rows(), t.Columns()
	spans := cfg.Spans()
	floors := make([]int, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := config.Pos(r, c)
			if spans.IsCovered(pos) || spans.ColSpan(pos) > 1 {
				continue
			}
			lines := dimension.CellLines(t, cfg, pos)
			f := config.Horizontal(cfg.Padding(pos))
			if text.MaxWidth(lines) > 0 {
				if w.Mode == ModeWrap && w.KeepWords {
					f += max(1, text.LongestWord(strings.Join(lines, "\n")))
				} else {
					f += max(1, text.WidestRune(strings.Join(lines, "")))
				}
			}
			if f > floors[c] {
				floors[c] = f
			}
		}
	}
	return floors
}

// reshape truncates or wraps every cell wider than the space its fitted
// columns leave for text.
func (w Width) reshape(m *records.Matrix, cfg *config.Config, widths []int) *records.Matrix {
	cols := m.Columns()
	spans := cfg.Spans()
	d := dimension.Fixed(widths, nil)
	return m.Map(func(r, c int, s string) string {
		pos := config.Pos(r, c)
		if spans.IsCovered(pos) {
			return s
		}
		avail := dimension.SpanWidth(d, cfg, c, spans.ColSpan(pos), cols) - config.Horizontal(cfg.Padding(pos))
		if avail < 0 {
			avail = 0
		}
		lines := dimension.CellLines(m, cfg, pos)
		if text.MaxWidth(lines) <= avail {
			return s
		}
		var out []string
		for _, l := range lines {
			if w.Mode == ModeWrap {
				out = append(out, text.Wrap(l, avail, w.KeepWords)...)
			} else {
				out = append(out, text.Truncate(l, avail, w.Suffix))
			}
		}
		return strings.Join(out, "\n")
	})
}
