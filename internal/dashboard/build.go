// Package dashboard computes the page for a table and a filter selection.
// Build is a pure function of its inputs; every interaction calls it again.
package dashboard

import (
	"faunadash/domain/table"
	"faunadash/internal/aggregate"
	"faunadash/internal/config"
	"faunadash/internal/filter"
)

// Filter names used in query strings and JSON bodies
const (
	FilterYear         = "year"
	FilterMunicipality = "municipality"
)

// Columns names the recognised spreadsheet columns
type Columns struct {
	Year         string
	Municipality string
	DeliveryType string
	Class        string
}

// Options are the dashboard settings
type Options struct {
	Columns               Columns
	PreviewRows           int
	PreferredMunicipality string
	MaltreatmentPattern   string
	TraffickingPattern    string
}

// DefaultOptions matches the fauna spreadsheet published by Medellín
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig maps the loaded configuration
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Columns: Columns{
			Year:         cfg.Columns.Year,
			Municipality: cfg.Columns.Municipality,
			DeliveryType: cfg.Columns.DeliveryType,
			Class:        cfg.Columns.Class,
		},
		PreviewRows:           cfg.Dashboard.PreviewRows,
		PreferredMunicipality: cfg.Dashboard.PreferredMunicipality,
		MaltreatmentPattern:   cfg.Dashboard.MaltreatmentPattern,
		TraffickingPattern:    cfg.Dashboard.TraffickingPattern,
	}
}

// Selection is what the user picked. A nil list means the filter has not
// been touched and its default applies; a non-nil empty list selects nothing.
type Selection struct {
	Years          []string
	Municipalities []string
}

// Map keys the selection by filter name
func (s Selection) Map() map[string][]string {
	return map[string][]string{
		FilterYear:         s.Years,
		FilterMunicipality: s.Municipalities,
	}
}

// Build filters t by sel and computes every display of the page. Missing
// columns produce notices and unavailable features, never a failure.
func Build(t *table.Table, sel Selection, opts Options) View {
	cols := opts.Columns
	view := View{
		SourceRows: t.Len(),
		Columns:    t.Columns(),
		Notices:    []Notice{},
	}

	filtered := t

	years := FilterControl{Name: FilterYear, Column: cols.Year, Label: "Año de remisión", Options: []string{}, Selected: []string{}}
	if filtered.HasColumn(cols.Year) {
		years.Available = true
		years.Options = nonNil(filtered.DistinctStrings(cols.Year))
		years.Selected = sel.Years
		if years.Selected == nil {
			years.Selected = filter.DefaultSelection(years.Options)
		}
		filtered = filter.Apply(filtered, filter.Spec{
			Memberships: []filter.Membership{{Column: cols.Year, Accepted: years.Selected}},
		})
	} else {
		view.Notices = append(view.Notices, missingColumn(cols.Year, "filtro por año"))
	}

	// Municipality options come from the year-filtered rows.
	municipalities := FilterControl{Name: FilterMunicipality, Column: cols.Municipality, Label: "Municipio de procedencia", Options: []string{}, Selected: []string{}}
	if filtered.HasColumn(cols.Municipality) {
		municipalities.Available = true
		municipalities.Options = nonNil(filtered.DistinctStrings(cols.Municipality))
		municipalities.Selected = sel.Municipalities
		if municipalities.Selected == nil {
			municipalities.Selected = filter.PreferredSelection(municipalities.Options, opts.PreferredMunicipality)
		}
		filtered = filter.Apply(filtered, filter.Spec{
			Memberships: []filter.Membership{{Column: cols.Municipality, Accepted: municipalities.Selected}},
		})
	} else {
		view.Notices = append(view.Notices, missingColumn(cols.Municipality, "filtro y distribución por municipio"))
	}
	view.Filters = []FilterControl{years, municipalities}

	view.FilteredRows = filtered.Len()
	head := filtered.Head(opts.PreviewRows)
	view.Preview = make([][]string, head.Len())
	for i := range view.Preview {
		view.Preview[i] = head.Strings(i)
	}

	view.Maltreatment = Metric{Label: "Casos de maltrato"}
	view.Trafficking = Metric{Label: "Casos de tráfico de fauna"}
	if filtered.HasColumn(cols.DeliveryType) {
		view.Maltreatment.Available = true
		view.Maltreatment.Value = aggregate.CountContains(filtered, cols.DeliveryType, opts.MaltreatmentPattern)
		view.Trafficking.Available = true
		view.Trafficking.Value = aggregate.CountContains(filtered, cols.DeliveryType, opts.TraffickingPattern)
	} else {
		view.Notices = append(view.Notices, missingColumn(cols.DeliveryType, "casos de maltrato y tráfico"))
	}
	view.Total = Metric{Label: "Total de casos (filtro aplicado)", Value: filtered.Len(), Available: true}

	classes := aggregate.ValueCounts(filtered, cols.Class)
	if !classes.Available {
		view.Notices = append(view.Notices, missingColumn(cols.Class, "distribución por clase"))
	}
	view.Classes = Distribution{
		Title:   "Distribución por clase (AVES, REPTILIA, MAMMALIA, etc.)",
		Label:   cols.Class,
		Result:  classes,
		Summary: aggregate.Summarize(classes),
	}

	byMunicipality := aggregate.ValueCounts(filtered, cols.Municipality)
	view.Municipalities = Distribution{
		Title:   "Casos por municipio de procedencia",
		Label:   "MUNICIPIO",
		Result:  byMunicipality,
		Summary: aggregate.Summarize(byMunicipality),
	}

	return view
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
