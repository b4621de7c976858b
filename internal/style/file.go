package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/fit"
	"github.com/young1lin/tablo/internal/grid/peaker"
	"github.com/young1lin/tablo/internal/paths"
	"github.com/young1lin/tablo/internal/table"
)

const (
	// EnvStyle overrides the theme of any loaded style file.
	EnvStyle = "TABLO_STYLE"
	// ProjectFile is looked up in the project directory.
	ProjectFile = ".tablo.yaml"
	// SupportedAPI is the range of apiVersion values this build understands.
	SupportedAPI = "^1"
)

// ErrUnsupportedVersion is returned for a style file declaring an apiVersion
// outside SupportedAPI.
var ErrUnsupportedVersion = errors.New("unsupported style apiVersion")

// File is a style file.
type File struct {
	APIVersion string           `yaml:"apiVersion"`
	Theme      string           `yaml:"theme"`
	Padding    *SidesSpec       `yaml:"padding"`
	Margin     *SidesSpec       `yaml:"margin"`
	Align      string           `yaml:"align"`
	VAlign     string           `yaml:"valign"`
	Justify    string           `yaml:"justify"`
	Trim       TrimSpec         `yaml:"trim"`
	TabWidth   int              `yaml:"tabWidth"`
	Missing    string           `yaml:"missing"`
	Color      ColorSpec        `yaml:"color"`
	Width      *WidthSpec       `yaml:"width"`
	Height     *HeightSpec      `yaml:"height"`
	Columns    []TargetSpec     `yaml:"columns"`
	Rows       []TargetSpec     `yaml:"rows"`
	Spans      []SpanSpec       `yaml:"spans"`
	Lines      map[int]LineSpec `yaml:"lines"`

	// Path is the file the style was read from, empty for defaults.
	Path string `yaml:"-"`
}

// SidesSpec sizes the four sides of a padding or margin.
type SidesSpec struct {
	Left   int       `yaml:"left"`
	Right  int       `yaml:"right"`
	Top    int       `yaml:"top"`
	Bottom int       `yaml:"bottom"`
	Fill   string    `yaml:"fill"`
	Color  ColorSpec `yaml:"color"`
}

// TrimSpec mirrors config.Formatting.
type TrimSpec struct {
	Horizontal     bool `yaml:"horizontal"`
	Vertical       bool `yaml:"vertical"`
	LinesAlignment bool `yaml:"linesAlignment"`
}

// WidthSpec describes a width fit. Percent, when set, takes precedence over
// Target and is relative to the available terminal width.
type WidthSpec struct {
	Target    int    `yaml:"target"`
	Percent   int    `yaml:"percent"`
	Mode      string `yaml:"mode"`
	Suffix    string `yaml:"suffix"`
	KeepWords bool   `yaml:"keepWords"`
	Priority  string `yaml:"priority"`
}

// HeightSpec describes a height fit.
type HeightSpec struct {
	Target   int    `yaml:"target"`
	Mode     string `yaml:"mode"`
	Priority string `yaml:"priority"`
}

// TargetSpec overrides settings of one row or column.
type TargetSpec struct {
	Index   int        `yaml:"index"`
	Align   string     `yaml:"align"`
	VAlign  string     `yaml:"valign"`
	Padding *SidesSpec `yaml:"padding"`
	Color   ColorSpec  `yaml:"color"`
}

// SpanSpec merges Rows x Cols cells anchored at Row, Col.
type SpanSpec struct {
	Row  int `yaml:"row"`
	Col  int `yaml:"col"`
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LineSpec overrides the glyphs of one horizontal line.
type LineSpec struct {
	Main         string `yaml:"main"`
	Intersection string `yaml:"intersection"`
	Left         string `yaml:"left"`
	Right        string `yaml:"right"`
}

// Load loads a style file with priority:
// 1. path, when not empty
// 2. Project-level: <projectDir>/.tablo.yaml
// 3. Global: style.yaml in the user configuration directory
// 4. Default: built-in defaults
//
// The theme is then overridden by $TABLO_STYLE when set.
func Load(path, projectDir string) (*File, error) {
	f, err := locate(path, projectDir)
	if err != nil {
		return nil, err
	}
	if env := strings.TrimSpace(os.Getenv(EnvStyle)); env != "" {
		if _, err := ByName(env); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvStyle, err)
		}
		f.Theme = env
	}
	return f, nil
}

func locate(path, projectDir string) (*File, error) {
	if path != "" {
		return LoadFile(path)
	}

	if projectDir != "" {
		projectFile := filepath.Join(projectDir, ProjectFile)
		if info, err := os.Stat(projectFile); err == nil && !info.IsDir() {
			return LoadFile(projectFile)
		}
	}

	if globalFile := paths.GlobalStyleFile(); globalFile != "" {
		if info, err := os.Stat(globalFile); err == nil && !info.IsDir() {
			return LoadFile(globalFile)
		}
	}

	return Default(), nil
}

// LoadFile loads and validates a style file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes and validates a style document.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse style file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Default returns the built-in style.
func Default() *File {
	return &File{
		APIVersion: "1",
		Theme:      "ascii",
		Padding:    &SidesSpec{Left: 1, Right: 1},
		TabWidth:   config.DefaultTabWidth,
	}
}

// Validate checks the names and values a style file refers to.
func (f *File) Validate() error {
	if err := checkVersion(f.APIVersion); err != nil {
		return err
	}
	if _, err := ByName(f.Theme); err != nil {
		return err
	}
	if _, err := config.ParseAlignment(f.Align); err != nil {
		return err
	}
	if _, err := config.ParseVerticalAlignment(f.VAlign); err != nil {
		return err
	}
	if f.TabWidth < 0 {
		return fmt.Errorf("tabWidth must not be negative, got %d", f.TabWidth)
	}
	if f.Width != nil {
		if _, err := f.Width.Build(0); err != nil {
			return err
		}
	}
	if f.Height != nil {
		if _, err := f.Height.Build(); err != nil {
			return err
		}
	}
	for i, t := range append(append([]TargetSpec(nil), f.Columns...), f.Rows...) {
		if t.Index < 0 {
			return fmt.Errorf("override at index %d: negative row or column %d", i, t.Index)
		}
		if _, err := config.ParseAlignment(t.Align); err != nil {
			return err
		}
		if _, err := config.ParseVerticalAlignment(t.VAlign); err != nil {
			return err
		}
	}
	for i, s := range f.Spans {
		if s.Rows < 1 || s.Cols < 1 {
			return fmt.Errorf("span at index %d: %w", i, config.ErrInvalidSpan)
		}
	}
	return nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, v, err)
	}
	c, err := semver.NewConstraint(SupportedAPI)
	if err != nil {
		return err
	}
	if !c.Check(version) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, version, SupportedAPI)
	}
	return nil
}

// Build turns w into a width fit. available is the width percentages refer to.
func (w WidthSpec) Build(available int) (fit.Width, error) {
	var out fit.Width
	switch strings.ToLower(strings.TrimSpace(w.Mode)) {
	case "", "truncate":
		out.Mode = fit.ModeTruncate
	case "wrap":
		out.Mode = fit.ModeWrap
	case "increase":
		out.Mode = fit.ModeIncrease
	default:
		return out, fmt.Errorf("unknown width mode %q", w.Mode)
	}

	priority, err := peaker.ParseStrategy(w.Priority)
	if err != nil {
		return out, err
	}
	if w.Target < 0 || w.Percent < 0 {
		return out, fmt.Errorf("width target must not be negative")
	}

	out.Target = w.Target
	if w.Percent > 0 {
		out.Target = fit.Percent(w.Percent, available)
	}
	out.Suffix = w.Suffix
	out.KeepWords = w.KeepWords
	out.Priority = priority
	return out, nil
}

// Build turns h into a height fit.
func (h HeightSpec) Build() (fit.Height, error) {
	var out fit.Height
	switch strings.ToLower(strings.TrimSpace(h.Mode)) {
	case "", "limit":
		out.Mode = fit.ModeLimit
	case "increase":
		out.Mode = fit.ModeGrow
	default:
		return out, fmt.Errorf("unknown height mode %q", h.Mode)
	}

	priority, err := peaker.ParseStrategy(h.Priority)
	if err != nil {
		return out, err
	}
	if h.Target < 0 {
		return out, fmt.Errorf("height target must not be negative")
	}
	out.Target = h.Target
	out.Priority = priority
	return out, nil
}

// Env carries what a style file needs from the terminal it renders to.
type Env struct {
	Profile termenv.Profile
	// Width is the terminal width. Percentage width targets refer to it
	// minus the margin.
	Width int
}

// Available returns the width left for the table once the margin is taken
// out of width columns.
func (f *File) Available(width int) int {
	if f.Margin != nil {
		width -= f.Margin.Left + f.Margin.Right
	}
	return max(width, 0)
}

// Options converts f into table options. f must be valid.
func (f *File) Options(env Env) ([]table.Option, error) {
	theme, err := ByName(f.Theme)
	if err != nil {
		return nil, err
	}
	align, _ := config.ParseAlignment(f.Align)
	valign, _ := config.ParseVerticalAlignment(f.VAlign)

	opts := []table.Option{
		table.WithTheme(theme),
		table.WithAlignment(config.Global(), align),
		table.WithVerticalAlignment(config.Global(), valign),
		table.WithFormatting(config.Global(), config.Formatting{
			HorizontalTrim:      f.Trim.Horizontal,
			VerticalTrim:        f.Trim.Vertical,
			AllowLinesAlignment: f.Trim.LinesAlignment,
		}),
	}

	for i, l := range f.Lines {
		opts = append(opts, table.WithConfig(func(c *config.Config) error {
			c.SetHorizontalLine(i, config.HorizontalLine{
				Main:         glyph(l.Main),
				Intersection: glyph(l.Intersection),
				Left:         glyph(l.Left),
				Right:        glyph(l.Right),
			})
			return nil
		}))
	}
	if f.Padding != nil {
		opts = append(opts, table.WithPadding(config.Global(), f.Padding.sides(env.Profile)))
	}
	if f.Margin != nil {
		opts = append(opts, table.WithMargin(f.Margin.sides(env.Profile)))
	}
	if r := glyph(f.Justify); r != 0 {
		opts = append(opts, table.WithJustification(config.Global(), r))
	}
	if r := glyph(f.Missing); r != 0 {
		opts = append(opts, table.WithMissingGlyph(r))
	}
	if f.TabWidth > 0 {
		opts = append(opts, table.WithTabWidth(f.TabWidth))
	}
	if c := f.Color.Resolve(env.Profile); !c.IsZero() {
		opts = append(opts, table.WithColor(config.Global(), c))
	}

	for _, t := range f.Rows {
		opts = append(opts, t.options(config.Row(t.Index), env.Profile)...)
	}
	for _, t := range f.Columns {
		opts = append(opts, t.options(config.Column(t.Index), env.Profile)...)
	}
	for _, s := range f.Spans {
		opts = append(opts, table.WithSpan(config.Pos(s.Row, s.Col), s.Rows, s.Cols))
	}

	if f.Width != nil {
		w, err := f.Width.Build(f.Available(env.Width))
		if err != nil {
			return nil, err
		}
		if w.Target > 0 {
			opts = append(opts, table.WithWidth(w))
		}
	}
	if f.Height != nil {
		h, err := f.Height.Build()
		if err != nil {
			return nil, err
		}
		if h.Target > 0 {
			opts = append(opts, table.WithHeight(h))
		}
	}
	return opts, nil
}

func (t TargetSpec) options(e config.Entity, profile termenv.Profile) []table.Option {
	var opts []table.Option
	if t.Align != "" {
		a, _ := config.ParseAlignment(t.Align)
		opts = append(opts, table.WithAlignment(e, a))
	}
	if t.VAlign != "" {
		a, _ := config.ParseVerticalAlignment(t.VAlign)
		opts = append(opts, table.WithVerticalAlignment(e, a))
	}
	if t.Padding != nil {
		opts = append(opts, table.WithPadding(e, t.Padding.sides(profile)))
	}
	if c := t.Color.Resolve(profile); !c.IsZero() {
		opts = append(opts, table.WithColor(e, c))
	}
	return opts
}

func (s SidesSpec) sides(profile termenv.Profile) config.Sides[config.Indent] {
	fill := glyph(s.Fill)
	if fill == 0 {
		fill = ' '
	}
	color := s.Color.Resolve(profile)
	indent := func(n int) config.Indent {
		return config.Indent{Size: max(n, 0), Fill: fill, Color: color}
	}
	return config.Sides[config.Indent]{
		Top:    indent(s.Top),
		Bottom: indent(s.Bottom),
		Left:   indent(s.Left),
		Right:  indent(s.Right),
	}
}

// glyph returns the first rune of s, or 0 for an empty string.
func glyph(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
