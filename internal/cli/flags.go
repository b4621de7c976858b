package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/style"
	"github.com/young1lin/tablo/internal/table"
)

// errNoTerminal is returned when a width relative to the terminal is asked for
// but the output is not a terminal.
var errNoTerminal = errors.New("terminal width unavailable")

// renderFlags holds the layout flags shared by render, sql and view.
// Flags that are set override the style file.
type renderFlags struct {
	style       string   // theme name
	config      string   // style file path
	color       string   // auto, always or never
	width       int      // target total width
	mode        string   // truncate, wrap or increase
	suffix      string   // appended to truncated lines
	keepWords   bool     // wrap at whitespace only
	strategy    string   // column priority
	percent     int      // width as a percentage of the terminal
	fitTerminal bool     // width = terminal width
	height      int      // target total height
	heightMode  string   // limit or increase
	align       string   // horizontal alignment
	valign      string   // vertical alignment
	padding     int      // left and right padding
	margin      int      // left and right margin
	spans       []string // ROW,COL,ROWS,COLS
	colWidths   []int    // fixed column widths
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.style, "style", "s", "", "border style (see `tablo styles`)")
	fs.StringVar(&f.config, "config", "", "style file (default .tablo.yaml, then style.yaml in the user config dir)")
	fs.StringVar(&f.color, "color", "auto", "colorize output: auto, always, never")
	fs.IntVarP(&f.width, "width", "w", 0, "target table width")
	fs.StringVar(&f.mode, "mode", "", "width mode: truncate (default), wrap, increase")
	fs.StringVar(&f.suffix, "suffix", "", "text appended to truncated lines")
	fs.BoolVar(&f.keepWords, "keep-words", false, "wrap at whitespace only")
	fs.StringVar(&f.strategy, "strategy", "", "column priority: none (default), max, min, left, right")
	fs.IntVar(&f.percent, "percent", 0, "target width as a percentage of the terminal width")
	fs.BoolVar(&f.fitTerminal, "fit-terminal", false, "fit the table to the terminal width")
	fs.IntVar(&f.height, "height", 0, "target table height")
	fs.StringVar(&f.heightMode, "height-mode", "", "height mode: limit (default), increase")
	fs.StringVar(&f.align, "align", "", "horizontal alignment: left, center, right")
	fs.StringVar(&f.valign, "valign", "", "vertical alignment: top, center, bottom")
	fs.IntVar(&f.padding, "padding", 1, "left and right cell padding")
	fs.IntVar(&f.margin, "margin", 0, "left and right table margin")
	fs.StringArrayVar(&f.spans, "span", nil, "merge cells: ROW,COL,ROWS,COLS (repeatable)")
	fs.IntSliceVar(&f.colWidths, "column-widths", nil, "fixed column widths, -1 keeps the computed width")
}

// styleFile loads the style file and applies the flags that were set.
func (f *renderFlags) styleFile(cmd *cobra.Command, deps *Dependencies) (*style.File, error) {
	dir := ""
	if deps.WorkDir != nil {
		if wd, err := deps.WorkDir(); err == nil {
			dir = wd
		}
	}
	file, err := style.Load(f.config, dir)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("style") {
		file.Theme = f.style
	}
	if changed("align") {
		file.Align = f.align
	}
	if changed("valign") {
		file.VAlign = f.valign
	}
	if changed("padding") {
		file.Padding = &style.SidesSpec{Left: f.padding, Right: f.padding}
	}
	if changed("margin") {
		file.Margin = &style.SidesSpec{Left: f.margin, Right: f.margin}
	}

	width := style.WidthSpec{}
	if file.Width != nil {
		width = *file.Width
	}
	widthChanged := false
	for name, apply := range map[string]func(){
		"width":      func() { width.Target = f.width },
		"mode":       func() { width.Mode = f.mode },
		"suffix":     func() { width.Suffix = f.suffix },
		"keep-words": func() { width.KeepWords = f.keepWords },
		"strategy":   func() { width.Priority = f.strategy },
		"percent":    func() { width.Percent = f.percent },
	} {
		if changed(name) {
			apply()
			widthChanged = true
		}
	}
	if widthChanged {
		file.Width = &width
	}

	if changed("height") || changed("height-mode") {
		height := style.HeightSpec{}
		if file.Height != nil {
			height = *file.Height
		}
		if changed("height") {
			height.Target = f.height
		}
		if changed("height-mode") {
			height.Mode = f.heightMode
		}
		if changed("strategy") {
			height.Priority = f.strategy
		}
		file.Height = &height
	}

	for _, s := range f.spans {
		span, err := parseSpan(s)
		if err != nil {
			return nil, err
		}
		file.Spans = append(file.Spans, span)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}

// options resolves the style file and flags into table options.
func (f *renderFlags) options(cmd *cobra.Command, deps *Dependencies) ([]table.Option, error) {
	file, err := f.styleFile(cmd, deps)
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(cmd.Context())
	if file.Path != "" {
		logger.Debug("loaded style file", "path", file.Path, "theme", file.Theme)
	}

	env := style.Env{Profile: f.profile(deps)}
	if f.fitTerminal || (file.Width != nil && file.Width.Percent > 0) {
		w, _, err := deps.TermSize()
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("%w: %v", errNoTerminal, err)
		}
		env.Width = w
		logger.Debug("terminal size", "width", w)
	}
	if f.fitTerminal {
		if file.Width == nil {
			file.Width = &style.WidthSpec{}
		}
		if file.Width.Percent == 0 {
			file.Width.Target = file.Available(env.Width)
		}
	}

	opts, err := file.Options(env)
	if err != nil {
		return nil, err
	}
	if len(f.colWidths) > 0 {
		opts = append(opts, table.WithColumnWidths(f.colWidths...))
	}
	return opts, nil
}

func (f *renderFlags) profile(deps *Dependencies) termenv.Profile {
	switch strings.ToLower(f.color) {
	case "always":
		return termenv.ANSI256
	case "never":
		return termenv.Ascii
	}
	if deps.ColorProfile == nil {
		return termenv.Ascii
	}
	return deps.ColorProfile()
}

// parseSpan parses ROW,COL,ROWS,COLS.
func parseSpan(s string) (style.SpanSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return style.SpanSpec{}, fmt.Errorf("invalid span %q: want ROW,COL,ROWS,COLS", s)
	}
	var n [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return style.SpanSpec{}, fmt.Errorf("invalid span %q: %w", s, err)
		}
		n[i] = v
	}
	if n[0] < 0 || n[1] < 0 {
		return style.SpanSpec{}, fmt.Errorf("invalid span %q: %w", s, config.ErrInvalidPosition)
	}
	return style.SpanSpec{Row: n[0], Col: n[1], Rows: n[2], Cols: n[3]}, nil
}
