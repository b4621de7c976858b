// Package style provides named border themes and YAML style files.
package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/young1lin/tablo/internal/grid/config"
)

// ErrUnknownStyle is returned for a theme name that is not registered.
var ErrUnknownStyle = errors.New("unknown style")

var presets = map[string]func() config.Theme{
	"ascii":              ASCII,
	"ascii_rounded":      ASCIIRounded,
	"modern":             Modern,
	"sharp":              Sharp,
	"rounded":            Rounded,
	"extended":           Extended,
	"dots":               Dots,
	"markdown":           Markdown,
	"psql":               Psql,
	"re_structured_text": ReStructuredText,
	"blank":              Blank,
	"empty":              Empty,
}

// Names lists the registered theme names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the theme registered under name. Dashes and case are ignored,
// and "none" is an alias of "empty".
func ByName(name string) (config.Theme, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	switch key {
	case "", "default":
		key = "ascii"
	case "none", "no_borders":
		key = "empty"
	case "rst":
		key = "re_structured_text"
	}
	fn, ok := presets[key]
	if !ok {
		return config.Theme{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return fn(), nil
}

// ASCII draws every line with + - and |.
//
//	+---+--+
//	|a  |bb|
//	+---+--+
func ASCII() config.Theme {
	return config.Theme{Borders: full('-', '|', [9]rune{'+', '+', '+', '+', '+', '+', '+', '+', '+'})}
}

// ASCIIRounded has an outer frame with rounded looking corners and no inner lines.
func ASCIIRounded() config.Theme {
	return config.Theme{Borders: config.Borders{
		Top: '-', Bottom: '-', Left: '|', Right: '|', Vertical: '|',
		TopLeft: '.', TopRight: '.', BottomLeft: '\'', BottomRight: '\'',
		TopIntersection: '-', BottomIntersection: '-',
	}}
}

// Modern draws every line with box drawing characters.
func Modern() config.Theme {
	return config.Theme{Borders: full('─', '│', [9]rune{'┌', '┐', '└', '┘', '┬', '┴', '├', '┤', '┼'})}
}

// Sharp is Modern with a single separator under the first row.
func Sharp() config.Theme {
	return headerOnly(full('─', '│', [9]rune{'┌', '┐', '└', '┘', '┬', '┴', '├', '┤', '┼'}))
}

// Rounded is Sharp with rounded corners.
func Rounded() config.Theme {
	return headerOnly(full('─', '│', [9]rune{'╭', '╮', '╰', '╯', '┬', '┴', '├', '┤', '┼'}))
}

// Extended draws every line with double box drawing characters.
func Extended() config.Theme {
	return config.Theme{Borders: full('═', '║', [9]rune{'╔', '╗', '╚', '╝', '╦', '╩', '╠', '╣', '╬'})}
}

// Dots draws every line with dots and colons.
func Dots() config.Theme {
	return config.Theme{Borders: full('.', ':', [9]rune{'.', '.', ':', ':', '.', ':', ':', ':', ':'})}
}

// Markdown renders a GitHub flavored markdown table.
//
//	| a   | bb |
//	|-----|----|
//	| ccc | d  |
func Markdown() config.Theme {
	return config.Theme{
		Borders: config.Borders{Left: '|', Right: '|', Vertical: '|'},
		Horizontals: map[int]config.HorizontalLine{
			1: {Main: '-', Intersection: '|', Left: '|', Right: '|'},
		},
	}
}

// Psql mimics the output of the PostgreSQL shell.
func Psql() config.Theme {
	return config.Theme{
		Borders: config.Borders{Vertical: '|'},
		Horizontals: map[int]config.HorizontalLine{
			1: {Main: '-', Intersection: '+'},
		},
	}
}

// ReStructuredText renders a reStructuredText simple table.
func ReStructuredText() config.Theme {
	return config.Theme{
		Borders: config.Borders{
			Top: '=', Bottom: '=', Vertical: ' ',
			TopIntersection: ' ', BottomIntersection: ' ',
		},
		Horizontals: map[int]config.HorizontalLine{
			1: {Main: '=', Intersection: ' '},
		},
	}
}

// Blank separates columns with a space and draws nothing else.
func Blank() config.Theme {
	return config.Theme{Borders: config.Borders{Vertical: ' '}}
}

// Empty draws no borders at all.
func Empty() config.Theme {
	return config.Theme{}
}

// full builds a glyph set where every line is drawn. corners lists top-left,
// top-right, bottom-left, bottom-right, top, bottom, left and right
// intersections, then the inner intersection.
func full(h, v rune, corners [9]rune) config.Borders {
	return config.Borders{
		Top: h, Bottom: h, Horizontal: h,
		Left: v, Right: v, Vertical: v,
		TopLeft: corners[0], TopRight: corners[1],
		BottomLeft: corners[2], BottomRight: corners[3],
		TopIntersection: corners[4], BottomIntersection: corners[5],
		LeftIntersection: corners[6], RightIntersection: corners[7],
		Intersection: corners[8],
	}
}

func headerOnly(b config.Borders) config.Theme {
	line := config.HorizontalLine{
		Main:         b.Horizontal,
		Intersection: b.Intersection,
		Left:         b.LeftIntersection,
		Right:        b.RightIntersection,
	}
	b.Horizontal = 0
	return config.Theme{
		Borders:     b,
		Horizontals: map[int]config.HorizontalLine{1: line},
	}
}
