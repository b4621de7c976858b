package input

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type tomlDocument struct {
	Header []string `toml:"header"`
	Rows   [][]any  `toml:"rows"`
}

// DecodeTOML reads a document with an optional header array and a rows array
// of arrays:
//
//	header = ["name", "qty"]
//	rows = [["apple", 3], ["pear", 10]]
func DecodeTOML(r io.Reader) ([][]string, error) {
	var doc tomlDocument
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("toml: unknown keys %s", strings.Join(keys, ", "))
	}

	rows := make([][]string, 0, len(doc.Rows)+1)
	if len(doc.Header) > 0 {
		rows = append(rows, doc.Header)
	}
	for _, values := range doc.Rows {
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = tomlValue(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func tomlValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}
