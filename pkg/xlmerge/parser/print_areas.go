package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the built-in defined name Excel uses for print areas.
const PrintAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.Range, error) {
	result := make(map[string][]models.Range)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// FormatPrintAreaReference builds a print area reference for a sheet,
// e.g. 'Sheet 1'!$A$1:$D$10,'Sheet 1'!$F$1:$G$4.
func FormatPrintAreaReference(sheetName string, areas []models.Range) (string, error) {
	parts := make([]string, 0, len(areas))
	for _, area := range areas {
		start, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
		if err != nil {
			return "", err
		}
		end, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s!%s:%s", QuoteSheetName(sheetName), start, end))
	}
	return strings.Join(parts, ","), nil
}

// QuoteSheetName wraps a sheet name in apostrophes for use in a reference,
// doubling embedded apostrophes.
func QuoteSheetName(sheetName string) string {
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.Range) {
	var areas []models.Range

	// Split by comma for multiple print areas
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Split by ! to separate sheet name and range
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := part[:idx]
			rangeStr := part[idx+1:]

			if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
				sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
			}
			if sheetName == "" {
				sheetName = sheet
			}

			if area := parseRangeToArea(rangeStr); area != nil {
				areas = append(areas, *area)
			}
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) *models.Range {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.Range{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
