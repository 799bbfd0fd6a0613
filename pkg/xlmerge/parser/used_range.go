package parser

import (
	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the minimal range containing every non-empty cell of a sheet.
// An empty sheet yields an empty Range.
func UsedRange(f *excelize.File, sheetName string) (models.Range, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Range{}, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Range{}, nil
	}

	return models.Range{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, nil
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
