package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Options controls Prepare.
type Options struct {
	TabWidth       int
	TrimHorizontal bool
	TrimVertical   bool
}

// Prepare turns raw cell text into the lines that are measured and printed.
func Prepare(s string, o Options) []string {
	lines := Lines(ExpandTabs(s, o.TabWidth))
	if o.TrimHorizontal {
		for i, l := range lines {
			lines[i] = strings.TrimSpace(l)
		}
	}
	if o.TrimVertical {
		lines = trimBlankLines(lines)
	}
	return lines
}

func trimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	if start == end {
		return []string{""}
	}
	return lines[start:end]
}

func isBlank(s string) bool {
	if strings.Contains(s, esc) {
		s = ansi.Strip(s)
	}
	return strings.TrimSpace(s) == ""
}
