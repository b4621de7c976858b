package text

import "strings"

// Repeat returns fill repeated n times, or "" when n <= 0.
func Repeat(fill rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(fill), n)
}

// PadLeft right-aligns s in width columns using fill.
func PadLeft(s string, width int, fill rune) string {
	return Repeat(fill, width-Width(s)) + s
}

// PadRight left-aligns s in width columns using fill.
func PadRight(s string, width int, fill rune) string {
	return s + Repeat(fill, width-Width(s))
}

// PadCenter centers s in width columns using fill.
// An odd remainder goes to the right.
func PadCenter(s string, width int, fill rune) string {
	padding := width - Width(s)
	if padding <= 0 {
		return s
	}
	left := padding / 2
	return Repeat(fill, left) + s + Repeat(fill, padding-left)
}

// Cut returns the longest prefix of s that is at most width columns wide.
func Cut(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	return cut(s, width)
}

// Truncate shortens s to at most width columns, ending it with suffix when
// anything was cut. A suffix wider than width is itself cut.
func Truncate(s string, width int, suffix string) string {
	if Width(s) <= width {
		return s
	}
	sw := Width(suffix)
	if sw >= width {
		return Cut(suffix, width)
	}
	return Cut(s, width-sw) + suffix
}
