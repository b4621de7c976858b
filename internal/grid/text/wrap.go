package text

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Wrap reflows s into lines at most width columns wide.
//
// With keepWords, lines break at whitespace and a word is only split when it
// is wider than width on its own. Without it, lines are filled up to width.
// Existing newlines are kept.
func Wrap(s string, width int, keepWords bool) []string {
	if width <= 0 {
		return []string{""}
	}
	if MaxWidth(Lines(s)) <= width {
		return Lines(s)
	}

	var out string
	if keepWords {
		out = wrap.String(wordwrap.String(s, width), width)
	} else {
		out = wrap.String(s, width)
	}

	lines := Lines(out)
	for i, l := range lines {
		l = strings.TrimRight(l, " ")
		lines[i] = Cut(l, width)
	}
	return lines
}
