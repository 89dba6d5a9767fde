package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Table {
	return New(
		[]string{"AÑOREMISION", "CLASE"},
		[][]Value{
			{ParseValue("2019"), ParseValue("AVES")},
			{ParseValue("2017"), ParseValue("REPTILIA")},
			{ParseValue(""), ParseValue("AVES")},
			{ParseValue("2019")},
		},
	)
}

func TestParseValue(t *testing.T) {
	assert.True(t, ParseValue("").IsNull())
	assert.Equal(t, KindNumber, ParseValue("2017").Kind)

	padded := ParseValue(" 2017.0 ")
	assert.Equal(t, KindNumber, padded.Kind)
	assert.Equal(t, 2017.0, padded.Num)
	assert.Equal(t, " 2017.0 ", padded.String())

	spaces := ParseValue("   ")
	assert.False(t, spaces.IsNull())
	assert.Equal(t, KindString, spaces.Kind)
	assert.Equal(t, "   ", spaces.String())
	assert.Equal(t, "MEDELLIN ", ParseValue("MEDELLIN ").String())
	assert.Equal(t, KindString, ParseValue("MEDELLIN").Kind)
	assert.Equal(t, "2020", NumberValue(2020).String())
	assert.True(t, StringValue("").IsNull())
}

func TestNewPadsShortRows(t *testing.T) {
	tbl := sample()
	require.Equal(t, 4, tbl.Len())

	v, ok := tbl.Value(3, "CLASE")
	require.True(t, ok)
	assert.True(t, v.IsNull())

	_, ok = tbl.Value(0, "MISSING")
	assert.False(t, ok)
}

func TestHasColumn(t *testing.T) {
	tbl := sample()
	assert.True(t, tbl.HasColumn("CLASE"))
	assert.False(t, tbl.HasColumn("clase"))
}

func TestDistinctSortsNumbersFirst(t *testing.T) {
	tbl := New([]string{"X"}, [][]Value{
		{ParseValue("b")}, {ParseValue("10")}, {ParseValue("a")},
		{ParseValue("9")}, {ParseValue("")}, {ParseValue("b")},
	})
	assert.Equal(t, []string{"9", "10", "a", "b"}, tbl.DistinctStrings("X"))
	assert.Nil(t, tbl.DistinctStrings("Y"))
}

func TestSelectSharesRows(t *testing.T) {
	tbl := sample()
	view := tbl.Select([]int{2, 0})
	require.Equal(t, 2, view.Len())
	assert.Equal(t, tbl.Row(2), view.Row(0))
	assert.Equal(t, tbl.Row(0), view.Row(1))
	assert.Equal(t, tbl.Columns(), view.Columns())
}

func TestHead(t *testing.T) {
	tbl := sample()
	assert.Equal(t, 2, tbl.Head(2).Len())
	assert.Equal(t, 4, tbl.Head(50).Len())
	assert.Equal(t, 0, tbl.Head(-1).Len())
	assert.Equal(t, []string{"2019", "AVES"}, tbl.Head(1).Strings(0))
}

func TestNormalizeHeaders(t *testing.T) {
	got := NormalizeHeaders([]string{" CLASE ", "", "CLASE", "CLASE.1", "CLASE"})
	want := []string{" CLASE ", "Unnamed: 1", "CLASE", "CLASE.1", "CLASE.2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeHeaders mismatch (-want +got):\n%s", diff)
	}
}
