// Package table holds the immutable in-memory spreadsheet the dashboard
// filters and counts.
package table

import (
	"fmt"
	"sort"
)

// Table is an ordered sequence of rows over a shared column set. A Table is
// never mutated after construction; derived views share row storage.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New builds a table. Rows are padded or truncated to the column count.
func New(columns []string, rows [][]Value) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)

	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	normalized := make([][]Value, len(rows))
	for i, row := range rows {
		if len(row) == len(cols) {
			normalized[i] = row
			continue
		}
		r := make([]Value, len(cols))
		copy(r, row)
		normalized[i] = r
	}

	return &Table{columns: cols, index: index, rows: normalized}
}

// NormalizeHeaders applies the spreadsheet header rules: empty names become
// "Unnamed: <i>" and repeated names get ".1", ".2", ... suffixes. Other
// names are kept verbatim.
func NormalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := h
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			candidate := fmt.Sprintf("%s.%d", name, n+1)
			for {
				if _, taken := seen[candidate]; !taken {
					break
				}
				seen[name]++
				candidate = fmt.Sprintf("%s.%d", name, seen[name])
			}
			name = candidate
		}
		seen[name] = 0
		headers[i] = name
	}
	return headers
}

// Columns returns the column names in sheet order
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn is the capability check every feature runs before touching a column
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Value returns the cell at row i for column. ok is false when the column is absent.
func (t *Table) Value(i int, column string) (Value, bool) {
	c, ok := t.index[column]
	if !ok {
		return Null, false
	}
	return t.rows[i][c], true
}

// Row returns row i as a column→value map
func (t *Table) Row(i int) map[string]Value {
	out := make(map[string]Value, len(t.columns))
	for c, name := range t.columns {
		if _, exists := out[name]; !exists {
			out[name] = t.rows[i][c]
		}
	}
	return out
}

// Strings returns row i rendered as text in column order
func (t *Table) Strings(i int) []string {
	out := make([]string, len(t.columns))
	for c, v := range t.rows[i] {
		out[c] = v.String()
	}
	return out
}

// Select returns the view made of the given row indices, in the given order.
// Rows are shared with t, not copied.
func (t *Table) Select(indices []int) *Table {
	rows := make([][]Value, len(indices))
	for i, idx := range indices {
		rows[i] = t.rows[idx]
	}
	return &Table{columns: t.columns, index: t.index, rows: rows}
}

// Head returns the first n rows
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n >= len(t.rows) {
		return t
	}
	return &Table{columns: t.columns, index: t.index, rows: t.rows[:n]}
}

// Distinct returns the sorted distinct non-null values of column. An absent
// column yields nil.
func (t *Table) Distinct(column string) []Value {
	c, ok := t.index[column]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var values []Value
	for _, row := range t.rows {
		v := row[c]
		if v.IsNull() || seen[v.Text] {
			continue
		}
		seen[v.Text] = true
		values = append(values, v)
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Less(values[j])
	})
	return values
}

// DistinctStrings is Distinct rendered as text
func (t *Table) DistinctStrings(column string) []string {
	values := t.Distinct(column)
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
