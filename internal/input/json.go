package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// DecodeJSON reads a JSON array. Elements are either arrays of scalars, one
// per row, or objects. Objects produce a header row holding the sorted union
// of their keys; missing keys yield empty cells.
func DecodeJSON(r io.Reader) ([][]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	if _, ok := items[0].(map[string]any); ok {
		return jsonObjects(items)
	}

	rows := make([][]string, 0, len(items))
	for i, item := range items {
		values, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("json element %d: expected an array, got %T", i, item)
		}
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = scalar(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func jsonObjects(items []any) ([][]string, error) {
	seen := make(map[string]bool)
	var keys []string
	objects := make([]map[string]any, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("json element %d: expected an object, got %T", i, item)
		}
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		objects = append(objects, obj)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(objects)+1)
	rows = append(rows, keys)
	for _, obj := range objects {
		row := make([]string, len(keys))
		for j, k := range keys {
			if v, ok := obj[k]; ok {
				row[j] = scalar(v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// scalar formats a decoded JSON value as cell text. Nested values are
// printed as compact JSON.
func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
