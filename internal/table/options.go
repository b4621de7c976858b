package table

import (
	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/fit"
)

// Option configures a Table.
type Option func(*Table) error

// WithTheme sets the border glyphs and line overrides.
func WithTheme(theme config.Theme) Option {
	return func(t *Table) error {
		t.cfg.SetTheme(theme)
		return nil
	}
}

// WithPadding sets the padding of the cells targeted by e.
func WithPadding(e config.Entity, p config.Padding) Option {
	return func(t *Table) error {
		t.cfg.SetPadding(e, p)
		return nil
	}
}

// WithAlignment sets the horizontal alignment of the cells targeted by e.
func WithAlignment(e config.Entity, a config.AlignmentHorizontal) Option {
	return func(t *Table) error {
		t.cfg.SetAlignment(e, a)
		return nil
	}
}

// WithVerticalAlignment sets the vertical alignment of the cells targeted by e.
func WithVerticalAlignment(e config.Entity, a config.AlignmentVertical) Option {
	return func(t *Table) error {
		t.cfg.SetVerticalAlignment(e, a)
		return nil
	}
}

// WithFormatting sets the trim and line alignment flags of the cells targeted by e.
func WithFormatting(e config.Entity, f config.Formatting) Option {
	return func(t *Table) error {
		t.cfg.SetFormatting(e, f)
		return nil
	}
}

// WithJustification sets the glyph alignment fills with.
func WithJustification(e config.Entity, fill rune) Option {
	return func(t *Table) error {
		t.cfg.SetJustification(e, fill)
		return nil
	}
}

// WithColor colors the text of the cells targeted by e.
func WithColor(e config.Entity, c config.Color) Option {
	return func(t *Table) error {
		t.cfg.SetColor(e, c)
		return nil
	}
}

// WithSpan merges rows x cols cells anchored at pos.
func WithSpan(pos config.Position, rows, cols int) Option {
	return func(t *Table) error {
		return t.cfg.SetSpan(pos, rows, cols)
	}
}

// WithMargin sets the indent around the rendered table.
func WithMargin(m config.Margin) Option {
	return func(t *Table) error {
		t.cfg.SetMargin(m)
		return nil
	}
}

// WithTabWidth sets how many spaces a tab expands to.
func WithTabWidth(n int) Option {
	return func(t *Table) error {
		t.cfg.SetTabWidth(n)
		return nil
	}
}

// WithMissingGlyph sets the glyph used where a border glyph is undefined.
func WithMissingGlyph(r rune) Option {
	return func(t *Table) error {
		t.cfg.SetMissingGlyph(r)
		return nil
	}
}

// WithWidth fits the table width with w.
func WithWidth(w fit.Width) Option {
	return func(t *Table) error {
		t.width = &w
		return nil
	}
}

// WithHeight fits the table height with h.
func WithHeight(h fit.Height) Option {
	return func(t *Table) error {
		t.height = &h
		return nil
	}
}

// WithColumnWidths fixes the widths of the leading columns. A negative entry
// keeps the computed width. Text wider than its column is cut.
func WithColumnWidths(widths ...int) Option {
	return func(t *Table) error {
		t.widths = append([]int(nil), widths...)
		return nil
	}
}

// WithRowHeights fixes the heights of the leading rows. A negative entry keeps
// the computed height.
func WithRowHeights(heights ...int) Option {
	return func(t *Table) error {
		t.heights = append([]int(nil), heights...)
		return nil
	}
}

// WithConfig runs fn against the configuration.
func WithConfig(fn func(*config.Config) error) Option {
	return func(t *Table) error {
		return fn(t.cfg)
	}
}
