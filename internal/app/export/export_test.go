package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	apperrors "collab-filter/internal/app/errors"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/app/testutil"
)

func cellValues(row *xlsx.Row) []string {
	values := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		values[i] = c.Value
	}
	return values
}

func TestSimilarItemsToExcel(t *testing.T) {
	g := testutil.SampleGrid(t)
	index, err := recommend.CalculateSimilarItems(g, 2, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "similar.xlsx")
	require.NoError(t, SimilarItemsToExcel(index, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet, ok := file.Sheet[SheetSimilarItems]
	require.True(t, ok)

	// header plus two neighbors for each of three items
	require.Len(t, sheet.Rows, 7)
	assert.Equal(t, []string{"Item", "Rank", "Neighbor", "Score"}, cellValues(sheet.Rows[0]))
	assert.Equal(t, []string{"0", "1", "2", "0.200000"}, cellValues(sheet.Rows[1]))
	assert.Equal(t, []string{"0", "2", "1", "0.166667"}, cellValues(sheet.Rows[2]))
}

func TestWorkbookSheets(t *testing.T) {
	g := testutil.SampleGrid(t)
	matches, err := recommend.TopMatches(g, 0, recommend.DefaultMatchOptions())
	require.NoError(t, err)

	w := NewWorkbook()
	require.NoError(t, w.AddRanked("Matches 0", 0, matches))
	require.NoError(t, w.AddGrid(g))
	assert.Equal(t, []string{"Matches 0", SheetGrid}, w.Sheets())

	assert.Error(t, w.AddRanked("Matches 0", 0, matches), "duplicate sheet name")

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, w.Save(path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	gridSheet := file.Sheet[SheetGrid]
	require.NotNil(t, gridSheet)
	require.Len(t, gridSheet.Rows, g.Rows()+1)
	assert.Equal(t, []string{"Row", "0", "1", "2"}, cellValues(gridSheet.Rows[0]))
	assert.Equal(t, "5", gridSheet.Rows[1].Cells[1].Value)
}

func TestSaveEmptyWorkbook(t *testing.T) {
	err := NewWorkbook().Save(filepath.Join(t.TempDir(), "empty.xlsx"))
	assert.True(t, errors.Is(err, apperrors.ErrFileWriteFailed))
}

func TestSaveUnwritablePath(t *testing.T) {
	w := NewWorkbook()
	require.NoError(t, w.AddGrid(testutil.SampleGrid(t)))
	err := w.Save(filepath.Join(t.TempDir(), "missing", "dir", "out.xlsx"))
	assert.True(t, errors.Is(err, apperrors.ErrFileWriteFailed))
}
