package dashboard

import (
	"fmt"

	"faunadash/internal/aggregate"
)

// Metric is a scalar display. Available is false when its column is missing.
type Metric struct {
	Label     string `json:"label"`
	Value     int    `json:"value"`
	Available bool   `json:"available"`
}

// Notice tells the user a recognised column is missing and which feature
// is skipped because of it. It is informational, never an error.
type Notice struct {
	Column  string `json:"column"`
	Feature string `json:"feature"`
	Message string `json:"message"`
}

func missingColumn(column, feature string) Notice {
	return Notice{
		Column:  column,
		Feature: feature,
		Message: fmt.Sprintf("No se encontró la columna '%s'.", column),
	}
}

// FilterControl is a multi-select: its options and what is selected
type FilterControl struct {
	Name      string   `json:"name"`
	Column    string   `json:"column"`
	Label     string   `json:"label"`
	Options   []string `json:"options"`
	Selected  []string `json:"selected"`
	Available bool     `json:"available"`
}

// IsSelected reports whether option is part of the selection
func (f FilterControl) IsSelected(option string) bool {
	for _, s := range f.Selected {
		if s == option {
			return true
		}
	}
	return false
}

// Distribution is a bar chart plus table
type Distribution struct {
	Title   string            `json:"title"`
	Label   string            `json:"label"`
	Result  aggregate.Result  `json:"result"`
	Summary aggregate.Summary `json:"summary"`
}

// View is everything the page shows for one table and one selection
type View struct {
	DatasetID    string `json:"dataset_id,omitempty"`
	Filename     string `json:"filename,omitempty"`
	SourceRows   int    `json:"source_rows"`
	FilteredRows int    `json:"filtered_rows"`

	Filters []FilterControl `json:"filters"`

	Columns []string   `json:"columns"`
	Preview [][]string `json:"preview"`

	Maltreatment Metric `json:"maltreatment"`
	Trafficking  Metric `json:"trafficking"`
	Total        Metric `json:"total"`

	Classes        Distribution `json:"classes"`
	Municipalities Distribution `json:"municipalities"`

	Notices []Notice `json:"notices"`
}

// Notice returns the notice for column, if any
func (v View) Notice(column string) (Notice, bool) {
	for _, n := range v.Notices {
		if n.Column == column {
			return n, true
		}
	}
	return Notice{}, false
}
