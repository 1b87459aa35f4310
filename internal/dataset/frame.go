package dataset

import (
	"fmt"
	"strings"
)

// Frame is an immutable tabular dataset: ordered headers plus row-major
// string cells. An empty string cell is a missing value. Frames are never
// mutated after construction, so concurrent reads need no locking.
type Frame struct {
	Headers []string
	Rows    [][]string
}

// NewFrame builds a Frame from raw headers and rows, dropping rows whose
// cells are all empty and columns whose cells are all empty (ragged rows are
// padded with missing values first).
func NewFrame(headers []string, rows [][]string) (*Frame, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("dataset has no columns")
	}

	cleaned := make([][]string, 0, len(rows))
	for _, row := range rows {
		padded := make([]string, len(headers))
		empty := true
		for i := range headers {
			if i < len(row) {
				padded[i] = strings.TrimSpace(row[i])
			}
			if padded[i] != "" {
				empty = false
			}
		}
		if !empty {
			cleaned = append(cleaned, padded)
		}
	}

	// Drop fully-empty columns.
	keep := make([]int, 0, len(headers))
	for i := range headers {
		if !columnEmpty(cleaned, i) {
			keep = append(keep, i)
		}
	}

	outHeaders := make([]string, 0, len(keep))
	for _, i := range keep {
		outHeaders = append(outHeaders, strings.TrimSpace(headers[i]))
	}
	outRows := make([][]string, len(cleaned))
	for r, row := range cleaned {
		outRows[r] = make([]string, len(keep))
		for c, i := range keep {
			outRows[r][c] = row[i]
		}
	}

	return &Frame{Headers: outHeaders, Rows: outRows}, nil
}

func columnEmpty(rows [][]string, idx int) bool {
	for _, row := range rows {
		if idx < len(row) && row[idx] != "" {
			return false
		}
	}
	return true
}

// RowCount returns the number of data rows.
func (f *Frame) RowCount() int { return len(f.Rows) }

// ColumnCount returns the number of columns.
func (f *Frame) ColumnCount() int { return len(f.Headers) }

// HasColumn reports whether the frame contains a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	return f.columnIndex(name) >= 0
}

// Column returns all cells of the named column in row order. The second
// return is false when the column does not exist.
func (f *Frame) Column(name string) ([]string, bool) {
	idx := f.columnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		values[i] = row[idx]
	}
	return values, true
}

func (f *Frame) columnIndex(name string) int {
	for i, h := range f.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Preview returns up to limit rows as JSON-friendly maps. Numeric and boolean
// cells are emitted as their native types so the serialized preview is
// format-stable; missing cells are emitted as explicit nulls.
func (f *Frame) Preview(limit int) []map[string]interface{} {
	if limit > len(f.Rows) {
		limit = len(f.Rows)
	}

	dtypes := make([]DType, len(f.Headers))
	for i, h := range f.Headers {
		col, _ := f.Column(h)
		dtypes[i] = Classify(col)
	}

	preview := make([]map[string]interface{}, 0, limit)
	for _, row := range f.Rows[:limit] {
		record := make(map[string]interface{}, len(f.Headers))
		for i, h := range f.Headers {
			record[h] = cellValue(row[i], dtypes[i])
		}
		preview = append(preview, record)
	}
	return preview
}

func cellValue(raw string, dtype DType) interface{} {
	if raw == "" {
		return nil
	}
	switch dtype {
	case DTypeNumeric:
		if v, ok := ParseNumeric(raw); ok {
			return v
		}
	case DTypeBoolean:
		if v, ok := parseBool(raw); ok {
			return v
		}
	}
	return raw
}
