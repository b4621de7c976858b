package config

import (
	"fmt"
	"strings"
)

// AlignmentHorizontal places text inside a column.
type AlignmentHorizontal int

const (
	AlignLeft AlignmentHorizontal = iota
	AlignCenter
	AlignRight
)

func (a AlignmentHorizontal) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment parses "left", "center" or "right".
func ParseAlignment(s string) (AlignmentHorizontal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown horizontal alignment %q", s)
}

// AlignmentVertical places a cell's lines inside a taller row.
type AlignmentVertical int

const (
	AlignTop AlignmentVertical = iota
	AlignMiddle
	AlignBottom
)

func (a AlignmentVertical) String() string {
	switch a {
	case AlignMiddle:
		return "center"
	case AlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// ParseVerticalAlignment parses "top", "center" or "bottom".
func ParseVerticalAlignment(s string) (AlignmentVertical, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return AlignTop, nil
	case "center", "centre", "middle":
		return AlignMiddle, nil
	case "bottom":
		return AlignBottom, nil
	}
	return AlignTop, fmt.Errorf("unknown vertical alignment %q", s)
}

// Formatting controls how a cell's text is prepared before alignment.
type Formatting struct {
	// HorizontalTrim strips leading and trailing whitespace of each line.
	HorizontalTrim bool
	// VerticalTrim drops blank lines at the top and bottom of the text.
	VerticalTrim bool
	// AllowLinesAlignment aligns every line on its own instead of aligning
	// the text as one block.
	AllowLinesAlignment bool
}
