// Package filter narrows a table with column predicates. Filters on columns
// the table does not have are skipped, never an error.
package filter

import (
	"strings"

	"faunadash/domain/table"
)

// Membership keeps rows whose value for Column is one of Accepted.
// Nulls are never members; an empty Accepted set keeps nothing.
type Membership struct {
	Column   string
	Accepted []string
}

// Substring keeps rows whose value for Column contains Pattern
type Substring struct {
	Column          string
	Pattern         string
	CaseInsensitive bool
}

// Spec is a conjunction of filters
type Spec struct {
	Memberships []Membership
	Substrings  []Substring
}

// Empty reports whether the spec has no filters
func (s Spec) Empty() bool {
	return len(s.Memberships) == 0 && len(s.Substrings) == 0
}

// Apply returns the rows of t matching every active filter. With nothing to
// apply it returns t itself.
func Apply(t *table.Table, spec Spec) *table.Table {
	if spec.Empty() {
		return t
	}
	preds := compile(t, spec)
	if len(preds) == 0 {
		return t
	}

	keep := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if matchesAll(t, i, preds) {
			keep = append(keep, i)
		}
	}
	return t.Select(keep)
}

// Count returns how many rows match every active filter
func Count(t *table.Table, spec Spec) int {
	if spec.Empty() {
		return t.Len()
	}
	preds := compile(t, spec)
	if len(preds) == 0 {
		return t.Len()
	}
	n := 0
	for i := 0; i < t.Len(); i++ {
		if matchesAll(t, i, preds) {
			n++
		}
	}
	return n
}

type predicate struct {
	column string
	match  func(table.Value) bool
}

func compile(t *table.Table, spec Spec) []predicate {
	var preds []predicate
	for _, m := range spec.Memberships {
		if !t.HasColumn(m.Column) {
			continue
		}
		preds = append(preds, predicate{column: m.Column, match: membership(m.Accepted)})
	}
	for _, s := range spec.Substrings {
		if !t.HasColumn(s.Column) {
			continue
		}
		preds = append(preds, predicate{column: s.Column, match: contains(s.Pattern, s.CaseInsensitive)})
	}
	return preds
}

func matchesAll(t *table.Table, row int, preds []predicate) bool {
	for _, p := range preds {
		v, _ := t.Value(row, p.column)
		if !p.match(v) {
			return false
		}
	}
	return true
}

func membership(accepted []string) func(table.Value) bool {
	set := make(map[string]struct{}, len(accepted))
	for _, a := range accepted {
		set[a] = struct{}{}
	}
	return func(v table.Value) bool {
		if v.IsNull() {
			return false
		}
		_, ok := set[v.String()]
		return ok
	}
}

func contains(pattern string, caseInsensitive bool) func(table.Value) bool {
	if caseInsensitive {
		pattern = strings.ToLower(pattern)
	}
	return func(v table.Value) bool {
		if v.IsNull() {
			return false
		}
		s := v.String()
		if caseInsensitive {
			s = strings.ToLower(s)
		}
		return strings.Contains(s, pattern)
	}
}

// DefaultSelection is the selection used before the user narrows a filter:
// every option.
func DefaultSelection(options []string) []string {
	out := make([]string, len(options))
	copy(out, options)
	return out
}

// PreferredSelection selects only preferred when it is among options,
// otherwise every option.
func PreferredSelection(options []string, preferred string) []string {
	for _, o := range options {
		if o == preferred {
			return []string{preferred}
		}
	}
	return DefaultSelection(options)
}
