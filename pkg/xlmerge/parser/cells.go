// Package parser reads cells, styles and sheet layout from Excel files.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/xuri/excelize/v2"
)

// ReadCell reads the value, formula and hyperlink of a single cell.
// Style is left nil; callers resolve it with ReadStyle so style ids can be cached.
func ReadCell(f *excelize.File, sheetName string, col, row int) (models.Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}

	text, err := f.GetCellValue(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Cell{}, err
	}
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	formula, err := f.GetCellFormula(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}

	cell := models.Cell{
		Value:   typedValue(cellType, raw),
		Text:    text,
		Formula: formula,
	}

	hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
	if err == nil && hasLink && target != "" {
		link := classifyLink(target)
		cell.Link = &link
	}

	return cell, nil
}

// ReadText returns the formatted display text of a cell.
func ReadText(f *excelize.File, sheetName string, col, row int) (string, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return f.GetCellValue(sheetName, cellName)
}

// typedValue converts a raw cell value to a Go value according to the cell type.
func typedValue(cellType excelize.CellType, raw string) interface{} {
	if raw == "" {
		return nil
	}
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(raw)
	default:
		return raw
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// classifyLink splits a hyperlink target as returned by excelize into an
// external address or an in-document location.
func classifyLink(target string) models.Hyperlink {
	lower := strings.ToLower(target)
	if strings.Contains(lower, "://") || strings.HasPrefix(lower, "mailto:") {
		return models.Hyperlink{Address: target}
	}
	return models.Hyperlink{Location: target}
}
