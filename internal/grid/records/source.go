package records

// Collect drains src into a Matrix. The source is read exactly once; rows are
// copied because a Source may reuse its slice.
func Collect(src Source) (*Matrix, error) {
	m := &Matrix{}
	if h, ok := src.(SizeHinter); ok && h.RowsHint() > 0 {
		m.cells = make([][]string, 0, h.RowsHint())
	}
	for src.Next() {
		m.Append(src.Row())
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// SliceSource iterates over rows held in memory.
type SliceSource struct {
	rows [][]string
	i    int
}

// NewSliceSource returns a Source over rows.
func NewSliceSource(rows [][]string) *SliceSource {
	return &SliceSource{rows: rows, i: -1}
}

func (s *SliceSource) Next() bool {
	if s.i+1 >= len(s.rows) {
		s.i = len(s.rows)
		return false
	}
	s.i++
	return true
}

func (s *SliceSource) Row() []string {
	if s.i < 0 || s.i >= len(s.rows) {
		return nil
	}
	return s.rows[s.i]
}

func (s *SliceSource) Err() error    { return nil }
func (s *SliceSource) RowsHint() int { return len(s.rows) }

// Prepend yields head before the rows of src. It is used to put a header
// row in front of a streamed body.
func Prepend(head []string, src Source) Source {
	return &prependSource{head: head, src: src}
}

type prependSource struct {
	head    []string
	src     Source
	started bool
	inHead  bool
}

func (p *prependSource) Next() bool {
	if !p.started {
		p.started = true
		p.inHead = true
		return true
	}
	p.inHead = false
	return p.src.Next()
}

func (p *prependSource) Row() []string {
	if p.inHead {
		return p.head
	}
	return p.src.Row()
}

func (p *prependSource) Err() error { return p.src.Err() }
