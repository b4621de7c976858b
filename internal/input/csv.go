package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// CSVSource streams the records of a delimited document.
type CSVSource struct {
	r    *csv.Reader
	row  []string
	err  error
	line int
}

// NewCSV returns a source reading comma (or tab) separated records from r.
// Records may have different numbers of fields.
func NewCSV(r io.Reader, comma rune) *CSVSource {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return &CSVSource{r: cr}
}

func (s *CSVSource) Next() bool {
	if s.err != nil {
		return false
	}
	row, err := s.r.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = fmt.Errorf("csv record %d: %w", s.line+1, err)
		}
		s.row = nil
		return false
	}
	s.line++
	s.row = row
	return true
}

func (s *CSVSource) Row() []string { return s.row }
func (s *CSVSource) Err() error    { return s.err }
