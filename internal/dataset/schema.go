package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DType is the semantic type of a column.
type DType string

const (
	DTypeNumeric     DType = "numeric"
	DTypeDatetime    DType = "datetime"
	DTypeBoolean     DType = "boolean"
	DTypeCategorical DType = "categorical"
)

// ColumnInfo describes one column of a frame. Derived on demand, never stored.
type ColumnInfo struct {
	Name        string `json:"name"`
	DType       DType  `json:"dtype"`
	UniqueCount int    `json:"unique_count"`
}

// typeThreshold is the share of non-missing cells that must parse as a
// candidate type for the column to take that type.
const typeThreshold = 0.8

// Classify maps a column's cells to exactly one semantic type. Precedence is
// numeric, then datetime, then boolean, with categorical as the catch-all, so
// classification is total and never fails.
func Classify(values []string) DType {
	nonMissing := 0
	numCount := 0
	dateCount := 0
	boolCount := 0

	for _, v := range values {
		if v == "" {
			continue
		}
		nonMissing++
		if _, ok := ParseNumeric(v); ok {
			numCount++
		}
		if isDatetime(v) {
			dateCount++
		}
		if _, ok := parseBool(v); ok {
			boolCount++
		}
	}

	if nonMissing == 0 {
		return DTypeCategorical
	}

	threshold := int(float64(nonMissing) * typeThreshold)
	if threshold == 0 {
		threshold = 1
	}

	if numCount >= threshold {
		return DTypeNumeric
	}
	if dateCount >= threshold {
		return DTypeDatetime
	}
	if boolCount >= threshold {
		return DTypeBoolean
	}
	return DTypeCategorical
}

// Columns computes ColumnInfo for every column of the frame.
func Columns(f *Frame) []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(f.Headers))
	for _, h := range f.Headers {
		values, _ := f.Column(h)
		infos = append(infos, ColumnInfo{
			Name:        h,
			DType:       Classify(values),
			UniqueCount: uniqueCount(values),
		})
	}
	return infos
}

func uniqueCount(values []string) int {
	seen := make(map[string]bool)
	for _, v := range values {
		if v != "" {
			seen[v] = true
		}
	}
	return len(seen)
}

// ExampleValues returns up to n non-missing cells in row order.
func ExampleValues(values []string, n int) []string {
	out := make([]string, 0, n)
	for _, v := range values {
		if v == "" {
			continue
		}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// IsMonotonicIncreasing reports whether the column's numeric values are
// non-decreasing in row order. Columns containing missing or non-numeric
// cells are not monotonic.
func IsMonotonicIncreasing(values []string) bool {
	if len(values) == 0 {
		return false
	}
	prev := 0.0
	for i, v := range values {
		f, ok := ParseNumeric(v)
		if !ok {
			return false
		}
		if i > 0 && f < prev {
			return false
		}
		prev = f
	}
	return true
}

// Describe renders a natural-language summary of the frame for use as model
// prompt context: row/column counts plus per-column type, distinct count and
// a few example values.
func Describe(f *Frame) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The dataset contains %d rows and %d columns.\n", f.RowCount(), f.ColumnCount())
	for _, info := range Columns(f) {
		values, _ := f.Column(info.Name)
		examples := ExampleValues(values, 3)
		fmt.Fprintf(&b, "- Column '%s': Type is %s. It has %d unique values. Examples: [%s].\n",
			info.Name, info.DType, info.UniqueCount, strings.Join(examples, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ParseNumeric parses a cell as a float, tolerating thousands separators.
func ParseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "") // handle "1,234.56"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var datetimeLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func isDatetime(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes":
		return true, true
	case "false", "no":
		return false, true
	}
	return false, false
}
