// Package table ties the grid engine together: it estimates dimensions, runs
// the optional width and height fitting and composes the output.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/young1lin/tablo/internal/grid/compose"
	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/dimension"
	"github.com/young1lin/tablo/internal/grid/fit"
	"github.com/young1lin/tablo/internal/grid/records"
)

// Table is a set of records with the configuration used to render them.
// Rendering never modifies either, so the same table renders identically
// until it is reconfigured.
type Table struct {
	data    records.Table
	cfg     *config.Config
	width   *fit.Width
	height  *fit.Height
	widths  []int
	heights []int
}

// New creates a table over data and applies opts in order.
func New(data records.Table, opts ...Option) (*Table, error) {
	t := &Table{data: data, cfg: config.New()}
	if err := t.Apply(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// FromRows is New over an in-memory matrix.
func FromRows(rows [][]string, opts ...Option) (*Table, error) {
	return New(records.FromRows(rows), opts...)
}

// Apply applies further options.
func (t *Table) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return err
		}
	}
	return nil
}

// Config exposes the configuration for settings no Option covers.
func (t *Table) Config() *config.Config { return t.cfg }

// Records returns the table data.
func (t *Table) Records() records.Table { return t.data }

// Shape returns the number of rows and columns.
func (t *Table) Shape() (int, int) { return t.data.Rows(), t.data.Columns() }

// Layout is the result of estimation and fitting.
type Layout struct {
	// Cells holds the text to print, after truncation or wrapping.
	Cells records.Table
	// Sizes are the final column widths and row heights.
	Sizes *dimension.Sizes
	// Width and Height are the totals reached, borders included and margin
	// excluded. When a fitting target cannot be met they hold the closest
	// achievable value.
	Width  int
	Height int
}

// Layout validates the configuration and computes the final dimensions.
func (t *Table) Layout() (*Layout, error) {
	rows, cols := t.Shape()
	if err := t.cfg.Validate(rows, cols); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	var cells records.Table = t.data
	widths := dimension.EstimateWidths(cells, t.cfg)
	if t.width != nil {
		res := t.width.Apply(cells, t.cfg)
		cells, widths = res.Table, res.Widths
	}
	heights := dimension.EstimateHeights(cells, t.cfg)
	if t.height != nil {
		heights, _ = t.height.Apply(cells, t.cfg, heights)
	}

	sizes := &dimension.Sizes{Widths: widths, Heights: heights}
	sizes.Override(t.widths, t.heights)
	return &Layout{
		Cells:  cells,
		Sizes:  sizes,
		Width:  dimension.TotalWidth(sizes, t.cfg, cols),
		Height: dimension.TotalHeight(sizes, t.cfg, rows),
	}, nil
}

// Render writes the table to w line by line.
func (t *Table) Render(w io.Writer) error {
	l, err := t.Layout()
	if err != nil {
		return err
	}
	return t.Compose(w, l)
}

// Compose writes a layout computed by this table's Layout.
func (t *Table) Compose(w io.Writer, l *Layout) error {
	return compose.Render(w, l.Cells, t.cfg, l.Sizes)
}

// String renders the table, returning an empty string on a configuration error.
func (t *Table) String() string {
	var b strings.Builder
	if err := t.Render(&b); err != nil {
		return ""
	}
	return b.String()
}
