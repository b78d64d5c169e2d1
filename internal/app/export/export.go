// Package export writes rankings and grids to Excel workbooks.
package export

import (
	"fmt"
	"strconv"

	"github.com/tealeg/xlsx"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
	"collab-filter/internal/app/recommend"
)

// Sheet names used by Workbook.
const (
	SheetSimilarItems = "Similar Items"
	SheetGrid         = "Grid"
)

// Workbook collects sheets until Save is called.
type Workbook struct {
	file *xlsx.File
}

func NewWorkbook() *Workbook {
	return &Workbook{file: xlsx.NewFile()}
}

// AddRanked adds a sheet listing one ranking for entity.
func (w *Workbook) AddRanked(name string, entity int, ranked recommend.Ranked) error {
	sheet, err := w.file.AddSheet(name)
	if err != nil {
		return errors.Wrapf(err, "add sheet %q", name)
	}

	addHeader(sheet, "Entity", "Rank", "ID", "Score")
	for i, s := range ranked {
		row := sheet.AddRow()
		row.AddCell().Value = strconv.Itoa(entity)
		row.AddCell().Value = strconv.Itoa(i + 1)
		row.AddCell().Value = strconv.Itoa(s.ID)
		row.AddCell().Value = formatScore(s.Score)
	}
	return nil
}

// AddItemIndex adds one row per (item, neighbor) pair of the index.
func (w *Workbook) AddItemIndex(index recommend.ItemIndex) error {
	sheet, err := w.file.AddSheet(SheetSimilarItems)
	if err != nil {
		return errors.Wrapf(err, "add sheet %q", SheetSimilarItems)
	}

	addHeader(sheet, "Item", "Rank", "Neighbor", "Score")
	for item, ranked := range index {
		for i, s := range ranked {
			row := sheet.AddRow()
			row.AddCell().Value = strconv.Itoa(item)
			row.AddCell().Value = strconv.Itoa(i + 1)
			row.AddCell().Value = strconv.Itoa(s.ID)
			row.AddCell().Value = formatScore(s.Score)
		}
	}
	return nil
}

// AddGrid dumps g cell by cell. Unrated cells are left empty.
func (w *Workbook) AddGrid(g *grid.Grid) error {
	sheet, err := w.file.AddSheet(SheetGrid)
	if err != nil {
		return errors.Wrapf(err, "add sheet %q", SheetGrid)
	}

	header := sheet.AddRow()
	header.AddCell().Value = "Row"
	for col := 0; col < g.Cols(); col++ {
		header.AddCell().Value = strconv.Itoa(col)
	}
	for r := 0; r < g.Rows(); r++ {
		row := sheet.AddRow()
		row.AddCell().Value = strconv.Itoa(r)
		for col := 0; col < g.Cols(); col++ {
			cell := row.AddCell()
			if v := g.Value(r, col); grid.IsRated(v) {
				cell.Value = strconv.Itoa(v)
			}
		}
	}
	return nil
}

// Sheets returns the sheet names in insertion order.
func (w *Workbook) Sheets() []string {
	names := make([]string, len(w.file.Sheets))
	for i, s := range w.file.Sheets {
		names[i] = s.Name
	}
	return names
}

func (w *Workbook) Save(outputFilePath string) error {
	if len(w.file.Sheets) == 0 {
		return errors.Wrap(errors.ErrFileWriteFailed, "workbook has no sheets")
	}
	if err := w.file.Save(outputFilePath); err != nil {
		return errors.Wrapf(errors.ErrFileWriteFailed, "%s: %v", outputFilePath, err)
	}
	return nil
}

// SimilarItemsToExcel writes the item index to a single-sheet workbook.
func SimilarItemsToExcel(index recommend.ItemIndex, outputFilePath string) error {
	w := NewWorkbook()
	if err := w.AddItemIndex(index); err != nil {
		return err
	}
	return w.Save(outputFilePath)
}

func addHeader(sheet *xlsx.Sheet, names ...string) {
	row := sheet.AddRow()
	for _, name := range names {
		row.AddCell().Value = name
	}
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.6f", score)
}
