package compose

import (
	"fmt"
	"io"
	"strings"

	"github.com/young1lin/tablo/internal/grid/config"
)

// sink writes finished lines to the caller's writer, wrapping them in the
// margin.
type sink struct {
	w       io.Writer
	m       config.Margin
	width   int
	started bool
}

func newSink(w io.Writer, m config.Margin, width int) *sink {
	return &sink{w: w, m: m, width: width}
}

func (s *sink) line(body string) error {
	var b strings.Builder
	if s.started {
		b.WriteByte('\n')
	}
	b.WriteString(indent(s.m.Left, s.m.Left.Size))
	b.WriteString(body)
	b.WriteString(indent(s.m.Right, s.m.Right.Size))
	return s.write(b.String())
}

// margin writes the full-width lines of a top or bottom margin.
func (s *sink) margin(side config.Indent) error {
	full := s.m.Left.Size + s.width + s.m.Right.Size
	for i := 0; i < side.Size; i++ {
		var b strings.Builder
		if s.started {
			b.WriteByte('\n')
		}
		b.WriteString(indent(side, full))
		if err := s.write(b.String()); err != nil {
			return err
		}
	}
	return nil
}

func (s *sink) write(chunk string) error {
	s.started = true
	if _, err := io.WriteString(s.w, chunk); err != nil {
		return fmt.Errorf("write table line: %w", err)
	}
	return nil
}
