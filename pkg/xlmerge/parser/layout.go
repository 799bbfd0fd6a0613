package parser

import (
	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/xuri/excelize/v2"
)

// ReadLayout collects merged ranges, column widths, row heights and print
// areas of a sheet. Widths and heights are read for the given bounds only.
func ReadLayout(f *excelize.File, sheetName string, bounds models.Range) (models.Layout, error) {
	var layout models.Layout

	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return layout, err
	}
	for _, mc := range merged {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		layout.Merges = append(layout.Merges, models.Range{R1: r1, C1: c1, R2: r2, C2: c2})
	}

	if !bounds.Empty() {
		layout.ColWidths = make(map[int]float64)
		for col := 1; col <= bounds.C2; col++ {
			name, err := excelize.ColumnNumberToName(col)
			if err != nil {
				return layout, err
			}
			width, err := f.GetColWidth(sheetName, name)
			if err != nil {
				return layout, err
			}
			layout.ColWidths[col] = width
		}

		layout.RowHeights = make(map[int]float64)
		for row := 1; row <= bounds.R2; row++ {
			height, err := f.GetRowHeight(sheetName, row)
			if err != nil {
				return layout, err
			}
			layout.RowHeights[row] = height
		}
	}

	areas, err := ExtractPrintAreas(f)
	if err != nil {
		return layout, err
	}
	layout.PrintAreas = areas[sheetName]

	return layout, nil
}
