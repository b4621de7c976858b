package text

import "github.com/muesli/reflow/truncate"

// cut drops the printable text past width columns. Escape sequences are kept
// and an open color is reset.
func cut(s string, width int) string {
	return truncate.String(s, uint(width))
}
