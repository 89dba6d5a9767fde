// Package aggregate computes frequency counts over a table column.
package aggregate

import (
	"sort"

	"faunadash/domain/table"
	"faunadash/internal/filter"
)

// Count is one category of a distribution
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Result is the frequency distribution of one column. Available is false
// when the column does not exist in the input; the other fields are then zero.
type Result struct {
	Column    string  `json:"column"`
	Available bool    `json:"available"`
	Counts    []Count `json:"counts"`
	Total     int     `json:"total"` // non-missing values, equals the sum of Counts
	Rows      int     `json:"rows"`  // input rows, missing values included
}

// Max returns the largest count, 0 for an empty distribution
func (r Result) Max() int {
	if len(r.Counts) == 0 {
		return 0
	}
	return r.Counts[0].Count
}

// ValueCounts counts each distinct non-missing value of column, most
// frequent first. Ties keep first-seen order.
func ValueCounts(t *table.Table, column string) Result {
	if !t.HasColumn(column) {
		return Result{Column: column}
	}

	position := make(map[string]int)
	counts := []Count{}
	total := 0
	for i := 0; i < t.Len(); i++ {
		v, _ := t.Value(i, column)
		if v.IsNull() {
			continue
		}
		total++
		key := v.String()
		if p, ok := position[key]; ok {
			counts[p].Count++
			continue
		}
		position[key] = len(counts)
		counts = append(counts, Count{Value: key, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return Result{
		Column:    column,
		Available: true,
		Counts:    counts,
		Total:     total,
		Rows:      t.Len(),
	}
}

// CountContains counts rows whose value for column contains pattern,
// ignoring case. An absent column counts 0; callers check HasColumn first
// when they need to tell the two apart.
func CountContains(t *table.Table, column, pattern string) int {
	if !t.HasColumn(column) {
		return 0
	}
	return filter.Count(t, filter.Spec{
		Substrings: []filter.Substring{{Column: column, Pattern: pattern, CaseInsensitive: true}},
	})
}
