package dashboard

import (
	"testing"

	"faunadash/domain/table"
	"faunadash/internal/aggregate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var faunaColumns = []string{"AÑOREMISION", "MUNICIPIO PROCEDENCIA", "TIPO ENTREGA", "CLASE"}

func build(columns []string, rows ...[]string) *table.Table {
	typed := make([][]table.Value, len(rows))
	for i, r := range rows {
		for _, cell := range r {
			typed[i] = append(typed[i], table.ParseValue(cell))
		}
	}
	return table.New(columns, typed)
}

func fauna() *table.Table {
	return build(faunaColumns,
		[]string{"2019", "MEDELLIN", "MALTRATO ANIMAL", "AVES"},
		[]string{"2019", "BELLO", "TRAFICO ILEGAL", "REPTILIA"},
		[]string{"2020", "MEDELLIN", "RESCATE", "AVES"},
		[]string{"2020", "ENVIGADO", "ENTREGA VOLUNTARIA", "MAMMALIA"},
		[]string{"2021", "MEDELLIN", "Tráfico", "REPTILIA"},
		[]string{"2021", "BELLO", "maltrato", "AVES"},
	)
}

func TestBuildDefaultsToPreferredMunicipality(t *testing.T) {
	view := Build(fauna(), Selection{}, DefaultOptions())

	require.Len(t, view.Filters, 2)
	years, municipalities := view.Filters[0], view.Filters[1]

	assert.Equal(t, []string{"2019", "2020", "2021"}, years.Options)
	assert.Equal(t, years.Options, years.Selected)
	assert.Equal(t, []string{"BELLO", "ENVIGADO", "MEDELLIN"}, municipalities.Options)
	assert.Equal(t, []string{"MEDELLIN"}, municipalities.Selected)
	assert.True(t, municipalities.IsSelected("MEDELLIN"))
	assert.False(t, municipalities.IsSelected("BELLO"))

	assert.Equal(t, 6, view.SourceRows)
	assert.Equal(t, 3, view.FilteredRows)
	for _, row := range view.Preview {
		assert.Equal(t, "MEDELLIN", row[1])
	}
	assert.Equal(t, []aggregate.Count{{Value: "MEDELLIN", Count: 3}}, view.Municipalities.Result.Counts)
	assert.Empty(t, view.Notices)
}

func TestBuildWithoutPreferredMunicipality(t *testing.T) {
	tbl := build(faunaColumns,
		[]string{"2019", "BELLO", "RESCATE", "AVES"},
		[]string{"2019", "ITAGUI", "RESCATE", "AVES"},
	)
	view := Build(tbl, Selection{}, DefaultOptions())

	assert.Equal(t, []string{"BELLO", "ITAGUI"}, view.Filters[1].Selected)
	assert.Equal(t, 2, view.FilteredRows)
}

func TestBuildMetrics(t *testing.T) {
	all := []string{"BELLO", "ENVIGADO", "MEDELLIN"}
	view := Build(fauna(), Selection{Municipalities: all}, DefaultOptions())

	assert.Equal(t, 6, view.Total.Value)
	assert.Equal(t, 2, view.Maltreatment.Value)
	assert.Equal(t, 1, view.Trafficking.Value, "TRAF does not match the accented Tráfico")
	assert.True(t, view.Maltreatment.Available)

	classes := view.Classes.Result
	require.True(t, classes.Available)
	assert.Equal(t, []aggregate.Count{
		{Value: "AVES", Count: 3},
		{Value: "REPTILIA", Count: 2},
		{Value: "MAMMALIA", Count: 1},
	}, classes.Counts)
	assert.Equal(t, 3, view.Classes.Summary.Categories)
}

func TestBuildYearSelectionNarrowsMunicipalityOptions(t *testing.T) {
	view := Build(fauna(), Selection{Years: []string{"2020"}}, DefaultOptions())

	assert.Equal(t, []string{"ENVIGADO", "MEDELLIN"}, view.Filters[1].Options)
	assert.Equal(t, []string{"MEDELLIN"}, view.Filters[1].Selected)
	assert.Equal(t, 1, view.FilteredRows)
}

func TestBuildExplicitEmptySelection(t *testing.T) {
	view := Build(fauna(), Selection{Years: []string{}}, DefaultOptions())

	assert.Equal(t, 0, view.FilteredRows)
	assert.Empty(t, view.Filters[1].Options)
	assert.Empty(t, view.Filters[1].Selected)
}

func TestBuildEmptyResult(t *testing.T) {
	view := Build(fauna(), Selection{Municipalities: []string{"CALDAS"}}, DefaultOptions())

	assert.Equal(t, 0, view.FilteredRows)
	assert.Equal(t, 0, view.Total.Value)
	assert.Equal(t, 0, view.Maltreatment.Value)
	assert.Equal(t, 0, view.Trafficking.Value)
	assert.Empty(t, view.Preview)
	assert.True(t, view.Classes.Result.Available)
	assert.Empty(t, view.Classes.Result.Counts)
	assert.Equal(t, aggregate.Summary{}, view.Classes.Summary)
	assert.Empty(t, view.Municipalities.Result.Counts)
}

func TestBuildEmptyTable(t *testing.T) {
	view := Build(build(faunaColumns), Selection{}, DefaultOptions())

	assert.Equal(t, 0, view.SourceRows)
	assert.Equal(t, 0, view.FilteredRows)
	assert.Empty(t, view.Filters[0].Options)
	assert.Empty(t, view.Notices)
}

func TestBuildMissingClassColumn(t *testing.T) {
	tbl := build([]string{"AÑOREMISION", "MUNICIPIO PROCEDENCIA", "TIPO ENTREGA"},
		[]string{"2019", "MEDELLIN", "MALTRATO"},
		[]string{"2020", "MEDELLIN", "RESCATE"},
	)
	view := Build(tbl, Selection{}, DefaultOptions())

	notice, ok := view.Notice("CLASE")
	require.True(t, ok)
	assert.Contains(t, notice.Message, "CLASE")
	assert.False(t, view.Classes.Result.Available)

	assert.Equal(t, 2, view.FilteredRows)
	assert.Equal(t, 1, view.Maltreatment.Value)
	assert.True(t, view.Municipalities.Result.Available)
	assert.Len(t, view.Notices, 1)
}

func TestBuildColumnNamesAreExact(t *testing.T) {
	tbl := build([]string{"AÑOREMISION", "MUNICIPIO PROCEDENCIA", "CLASE "},
		[]string{"2019", "MEDELLIN ", "AVES"},
		[]string{"2019", "BELLO", "AVES"},
	)
	view := Build(tbl, Selection{}, DefaultOptions())

	_, ok := view.Notice("CLASE")
	assert.True(t, ok, "a padded header does not stand in for CLASE")
	assert.False(t, view.Classes.Result.Available)

	municipalities := view.Filters[1]
	assert.Equal(t, []string{"BELLO", "MEDELLIN "}, municipalities.Options)
	assert.Equal(t, municipalities.Options, municipalities.Selected, "MEDELLIN is not among the options")
	assert.Equal(t, 2, view.FilteredRows)
}

func TestBuildNoRecognisedColumns(t *testing.T) {
	tbl := build([]string{"ESPECIE"}, []string{"Iguana iguana"}, []string{"Amazona ochrocephala"})
	view := Build(tbl, Selection{Years: []string{"2019"}}, DefaultOptions())

	assert.Equal(t, 2, view.FilteredRows, "filters on absent columns are skipped")
	assert.False(t, view.Filters[0].Available)
	assert.False(t, view.Filters[1].Available)
	assert.False(t, view.Maltreatment.Available)
	assert.False(t, view.Trafficking.Available)
	assert.True(t, view.Total.Available)
	assert.Equal(t, 2, view.Total.Value)
	assert.Len(t, view.Notices, 4)
}

func TestBuildPreviewLimit(t *testing.T) {
	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{"2019", "MEDELLIN", "RESCATE", "AVES"}
	}
	opts := DefaultOptions()
	view := Build(build(faunaColumns, rows...), Selection{}, opts)

	assert.Equal(t, 120, view.FilteredRows)
	assert.Len(t, view.Preview, opts.PreviewRows)
}
