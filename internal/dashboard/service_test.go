package dashboard

import (
	"context"
	"strings"
	"testing"

	"faunadash/domain/table"
	"faunadash/internal/dataset"
	"faunadash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// csvLoader stands in for the workbook reader: one row per line, cells
// separated by commas, first line is the header.
func csvLoader(content []byte) (*table.Table, error) {
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) == 0 || lines[0] == "" || lines[0] == "broken" {
		return nil, errors.LoadError("the uploaded file is not a valid Excel workbook", nil)
	}
	rows := make([][]string, 0, len(lines)-1)
	for _, l := range lines[1:] {
		rows = append(rows, strings.Split(l, ","))
	}
	return build(strings.Split(lines[0], ","), rows...), nil
}

func newService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(dataset.NewStore(csvLoader, nil), DefaultOptions(), 16, nil)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func TestRenderWithoutDataset(t *testing.T) {
	_, err := newService(t).Render(Selection{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestRenderCurrentDataset(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	entry, err := svc.Upload(ctx, "fauna.xlsx", []byte("CLASE,MUNICIPIO PROCEDENCIA\nAVES,MEDELLIN\nAVES,BELLO\nREPTILIA,MEDELLIN\n"))
	require.NoError(t, err)

	view, err := svc.Render(Selection{})
	require.NoError(t, err)
	assert.Equal(t, entry.ID.String(), view.DatasetID)
	assert.Equal(t, "fauna.xlsx", view.Filename)
	assert.Equal(t, 2, view.FilteredRows)

	again, err := svc.Render(Selection{})
	require.NoError(t, err)
	assert.Equal(t, view.FilteredRows, again.FilteredRows)

	all, err := svc.Render(Selection{Municipalities: []string{"BELLO", "MEDELLIN"}})
	require.NoError(t, err)
	assert.Equal(t, 3, all.FilteredRows)
}

func TestUploadSwitchesDataset(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "a.xlsx", []byte("CLASE\nAVES\n"))
	require.NoError(t, err)
	first, err := svc.Render(Selection{})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, "b.xlsx", []byte("CLASE\nAVES\nREPTILIA\n"))
	require.NoError(t, err)
	second, err := svc.Render(Selection{})
	require.NoError(t, err)

	assert.NotEqual(t, first.DatasetID, second.DatasetID)
	assert.Equal(t, 2, second.FilteredRows)
}

func TestRenderShowsLatestFilename(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	content := []byte("CLASE\nAVES\n")

	_, err := svc.Upload(ctx, "old.xlsx", content)
	require.NoError(t, err)
	first, err := svc.Render(Selection{})
	require.NoError(t, err)
	assert.Equal(t, "old.xlsx", first.Filename)

	entry, err := svc.Upload(ctx, "new.xlsx", content)
	require.NoError(t, err)
	assert.Equal(t, "new.xlsx", entry.Filename)

	second, err := svc.Render(Selection{})
	require.NoError(t, err)
	assert.Equal(t, "new.xlsx", second.Filename)
	assert.Equal(t, first.DatasetID, second.DatasetID)
}

func TestUploadFailureStopsRendering(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "a.xlsx", []byte("CLASE\nAVES\n"))
	require.NoError(t, err)

	_, err = svc.Upload(ctx, "b.xlsx", []byte("broken"))
	assert.Equal(t, errors.CodeLoadError, errors.GetCode(err))

	_, err = svc.Render(Selection{})
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
