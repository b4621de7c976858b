package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/young1lin/tablo/internal/grid/config"
	"github.com/young1lin/tablo/internal/grid/fit"
)

var ascii = config.Theme{Borders: config.Borders{
	Top: '-', Bottom: '-', Left: '|', Right: '|', Horizontal: '-', Vertical: '|',
	TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
	TopIntersection: '+', BottomIntersection: '+', LeftIntersection: '+', RightIntersection: '+',
	Intersection: '+',
}}

func lines(s ...string) string { return strings.Join(s, "\n") }

func TestString(t *testing.T) {
	twoByTwo := [][]string{{"a", "bb"}, {"ccc", "d"}}

	tests := []struct {
		name string
		rows [][]string
		opts []Option
		want string
	}{
		{
			name: "plain grid",
			rows: twoByTwo,
			opts: []Option{WithTheme(ascii)},
			want: lines("+---+--+", "|a  |bb|", "+---+--+", "|ccc|d |", "+---+--+"),
		},
		{
			name: "span",
			rows: twoByTwo,
			opts: []Option{WithTheme(ascii), WithSpan(config.Pos(0, 0), 1, 2)},
			want: lines("+-----+", "|a    |", "+---+-+", "|ccc|d|", "+---+-+"),
		},
		{
			name: "truncate to width",
			rows: [][]string{{"Hello World"}},
			opts: []Option{WithTheme(ascii), WithWidth(fit.Truncate(8).WithSuffix("..."))},
			want: lines("+------+", "|Hel...|", "+------+"),
		},
		{
			name: "wrap keeping words",
			rows: [][]string{{"Hello World"}},
			opts: []Option{WithTheme(ascii), WithWidth(fit.Wrap(7).KeepingWords())},
			want: lines("+-----+", "|Hello|", "|World|", "+-----+"),
		},
		{
			name: "increase width",
			rows: [][]string{{"a"}},
			opts: []Option{WithTheme(ascii), WithWidth(fit.Increase(5))},
			want: lines("+---+", "|a  |", "+---+"),
		},
		{
			name: "limit height",
			rows: [][]string{{"a\nb\nc"}},
			opts: []Option{WithTheme(ascii), WithHeight(fit.Limit(3))},
			want: lines("+-+", "|a|", "+-+"),
		},
		{
			name: "increase height",
			rows: [][]string{{"a"}},
			opts: []Option{WithTheme(ascii), WithHeight(fit.IncreaseHeight(4))},
			want: lines("+-+", "|a|", "| |", "+-+"),
		},
		{
			name: "fixed column widths",
			rows: [][]string{{"abc", "de"}},
			opts: []Option{WithColumnWidths(2, -1)},
			want: "abde",
		},
		{
			name: "fixed row heights",
			rows: [][]string{{"a"}},
			opts: []Option{WithRowHeights(3)},
			want: lines("a", " ", " "),
		},
		{
			name: "padding alignment and justification",
			rows: [][]string{{"abc"}, {"a"}},
			opts: []Option{
				WithPadding(config.Global(), config.NewPadding(1, 1, 0, 0)),
				WithAlignment(config.Global(), config.AlignRight),
				WithJustification(config.Row(1), '.'),
			},
			want: lines(" abc ", " ..a "),
		},
		{
			name: "vertical alignment",
			rows: [][]string{{"a\nb", "x"}},
			opts: []Option{WithVerticalAlignment(config.Column(1), config.AlignBottom)},
			want: lines("a ", "bx"),
		},
		{
			name: "formatting and tab width",
			rows: [][]string{{"\tx  \n\n"}},
			opts: []Option{
				WithTabWidth(2),
				WithFormatting(config.Global(), config.Formatting{VerticalTrim: true}),
			},
			want: "  x  ",
		},
		{
			name: "margin",
			rows: [][]string{{"a"}},
			opts: []Option{WithMargin(config.NewMargin(1, 0, 0, 1))},
			want: lines(" a", "  "),
		},
		{
			name: "color",
			rows: [][]string{{"a", "b"}},
			opts: []Option{WithColor(config.Column(1), config.Color{Prefix: "[", Suffix: "]"})},
			want: "a[b]",
		},
		{
			name: "missing glyph",
			rows: [][]string{{"a"}},
			opts: []Option{
				WithConfig(func(c *config.Config) error {
					c.SetBorders(config.Borders{Top: '-', Left: '|'})
					return nil
				}),
				WithMissingGlyph('*'),
			},
			want: lines("*-", "|a"),
		},
		{
			name: "empty",
			rows: nil,
			opts: []Option{WithTheme(ascii)},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := FromRows(tt.rows, tt.opts...)
			if err != nil {
				t.Fatalf("FromRows() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, tbl.String()); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	tbl, err := FromRows(
		[][]string{{"name", "a long description"}, {"x", "y"}},
		WithTheme(ascii),
		WithWidth(fit.Wrap(16).KeepingWords()),
		WithSpan(config.Pos(1, 0), 1, 2),
	)
	if err != nil {
		t.Fatal(err)
	}
	first := tbl.String()
	if first == "" {
		t.Fatal("String() returned nothing")
	}
	if second := tbl.String(); second != first {
		t.Errorf("second render differs:\n%s\n---\n%s", first, second)
	}
	if got := tbl.Records().Cell(0, 1); got != "a long description" {
		t.Errorf("records modified by rendering: %q", got)
	}
}

func TestLayout(t *testing.T) {
	tbl, err := FromRows([][]string{{"a", "bb"}, {"ccc", "d"}}, WithTheme(ascii))
	if err != nil {
		t.Fatal(err)
	}
	l, err := tbl.Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if l.Width != 8 || l.Height != 5 {
		t.Errorf("Layout() totals = %dx%d, want 8x5", l.Width, l.Height)
	}
	if diff := cmp.Diff([]int{3, 2}, l.Sizes.Widths); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}

	var b strings.Builder
	if err := tbl.Compose(&b, l); err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if b.String() != tbl.String() {
		t.Error("Compose() of a Layout differs from String()")
	}
}

func TestLayoutUnreachableWidth(t *testing.T) {
	tbl, err := FromRows([][]string{{"abc", "def"}}, WithTheme(ascii), WithWidth(fit.Truncate(3)))
	if err != nil {
		t.Fatal(err)
	}
	l, err := tbl.Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if l.Width != 5 {
		t.Errorf("Layout().Width = %d, want the floor 5", l.Width)
	}
}

func TestOptionErrors(t *testing.T) {
	_, err := FromRows([][]string{{"a", "b"}, {"c", "d"}},
		WithSpan(config.Pos(0, 0), 2, 1),
		WithSpan(config.Pos(1, 0), 1, 2),
	)
	if !errors.Is(err, config.ErrOverlappingSpan) {
		t.Errorf("FromRows() error = %v, want ErrOverlappingSpan", err)
	}

	boom := errors.New("boom")
	if _, err := FromRows(nil, WithConfig(func(*config.Config) error { return boom })); !errors.Is(err, boom) {
		t.Errorf("FromRows() error = %v, want boom", err)
	}
}

func TestRenderInvalidConfiguration(t *testing.T) {
	tbl, err := FromRows([][]string{{"a"}}, WithSpan(config.Pos(0, 0), 1, 3))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := tbl.Render(&b); !errors.Is(err, config.ErrInvalidPosition) {
		t.Errorf("Render() error = %v, want ErrInvalidPosition", err)
	}
	if b.Len() != 0 {
		t.Errorf("Render() wrote %q before failing", b.String())
	}
	if got := tbl.String(); got != "" {
		t.Errorf("String() = %q, want empty on error", got)
	}
}

func TestShapeAndApply(t *testing.T) {
	tbl, err := FromRows([][]string{{"a", "b", "c"}, {"d"}})
	if err != nil {
		t.Fatal(err)
	}
	if r, c := tbl.Shape(); r != 2 || c != 3 {
		t.Errorf("Shape() = %d, %d, want 2, 3", r, c)
	}
	if err := tbl.Apply(WithTheme(ascii)); err != nil {
		t.Fatal(err)
	}
	if tbl.Config().Borders().Top != '-' {
		t.Error("Apply() did not reach the configuration")
	}
}
