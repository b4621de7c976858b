// Package text measures and reshapes cell text: display width, tab expansion,
// trimming, cutting, truncating with a suffix, wrapping and padding.
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const esc = "\x1b"

// Width returns the display width of a single line.
// ANSI escape sequences are ignored and wide characters (e.g., CJK) count
// as two columns.
func Width(s string) int {
	if strings.Contains(s, esc) {
		s = ansi.Strip(s)
	}
	return runewidth.StringWidth(s)
}

// MaxWidth returns the widest line of lines.
func MaxWidth(lines []string) int {
	max := 0
	for _, l := range lines {
		if w := Width(l); w > max {
			max = w
		}
	}
	return max
}

// Lines splits s into visual lines. Carriage returns are dropped.
// An empty string is one empty line.
func Lines(s string) []string {
	if strings.Contains(s, "\r") {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "")
	}
	return strings.Split(s, "\n")
}

// CountLines returns the number of visual lines of s.
func CountLines(s string) int {
	return strings.Count(s, "\n") + 1
}

// ExpandTabs replaces every tab with n spaces.
func ExpandTabs(s string, n int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", n))
}

// LongestWord returns the display width of the widest whitespace separated
// word of s.
func LongestWord(s string) int {
	if strings.Contains(s, esc) {
		s = ansi.Strip(s)
	}
	max := 0
	for _, w := range strings.Fields(s) {
		if n := runewidth.StringWidth(w); n > max {
			max = n
		}
	}
	return max
}

// WidestRune returns the display width of the widest single character of s,
// the narrowest a column can get while still showing any of s.
func WidestRune(s string) int {
	if strings.Contains(s, esc) {
		s = ansi.Strip(s)
	}
	max := 0
	for _, r := range s {
		if n := runewidth.RuneWidth(r); n > max {
			max = n
		}
	}
	return max
}
