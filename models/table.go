package models

import "fmt"

// Table is the result of one query: named columns and rows of normalized
// values (int64, float64, string or nil).
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of col, or -1.
func (t *Table) ColumnIndex(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Value returns the cell at row i, column col. It returns nil when the column
// does not exist.
func (t *Table) Value(i int, col string) any {
	j := t.ColumnIndex(col)
	if j < 0 || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i][j]
}

// Float returns the cell as float64; ok is false for nil or non-numeric cells.
func (t *Table) Float(i int, col string) (float64, bool) {
	switch v := t.Value(i, col).(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Strings returns every non-nil cell of col formatted as a string.
func (t *Table) Strings(col string) []string {
	j := t.ColumnIndex(col)
	if j < 0 {
		return nil
	}
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row[j] == nil {
			continue
		}
		out = append(out, FormatValue(row[j]))
	}
	return out
}

// Records returns the rows as column-keyed maps, for JSON output.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, len(t.Rows))
	for i, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for j, col := range t.Columns {
			rec[col] = row[j]
		}
		out[i] = rec
	}
	return out
}

// FormatValue renders a cell for text output.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%.2f", x)
	case int64:
		return fmt.Sprintf("%d", x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
