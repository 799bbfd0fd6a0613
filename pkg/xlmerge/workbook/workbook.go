// Package workbook defines the spreadsheet operations the merge pipeline
// depends on and implements them on top of excelize.
package workbook

import "github.com/ukaji3/xlmerge/pkg/xlmerge/models"

// Source is a read-only workbook.
type Source interface {
	// Path returns the file the workbook was opened from.
	Path() string
	// SheetList returns the sheet names in workbook order.
	SheetList() []string
	// UsedRange returns the minimal range holding every non-empty cell.
	UsedRange(sheet string) (models.Range, error)
	// Cell reads a single cell (1-based coordinates) including its style.
	Cell(sheet string, col, row int) (models.Cell, error)
	// Layout returns merges, sizes and print areas of a sheet within bounds.
	Layout(sheet string, bounds models.Range) (models.Layout, error)
	Close() error
}

// Target is a workbook being assembled.
type Target interface {
	// SheetList returns the sheet names in workbook order.
	SheetList() []string
	// Reserve keeps a name free for a later AddSheet with exactly that name.
	// Other sheets colliding with it are renamed.
	Reserve(name string)
	// AddSheet appends an empty sheet and returns the name it was given,
	// which differs from name when name is invalid or already taken.
	AddSheet(name string) (string, error)
	// CopySheet appends a copy of a source sheet and returns its assigned name.
	CopySheet(src Source, sheet string) (string, error)
	// SetCell writes value, formula, style and hyperlink of a cell.
	SetCell(sheet string, col, row int, cell models.Cell) error
	// SetHyperlink attaches a hyperlink to a cell.
	SetHyperlink(sheet string, col, row int, link models.Hyperlink) error
	// Activate makes a sheet the one shown when the workbook is opened.
	Activate(sheet string) error
	// Save writes the workbook to path.
	Save(path string) error
	Close() error
}

// CopyCells copies every non-blank cell of srcSheet, up to the bottom-right
// corner of its used range, to the same coordinates in dstSheet.
// Returns the bounds that were scanned.
func CopyCells(dst Target, dstSheet string, src Source, srcSheet string) (models.Range, error) {
	used, err := src.UsedRange(srcSheet)
	if err != nil {
		return models.Range{}, err
	}
	if used.Empty() {
		return models.Range{}, nil
	}

	bounds := models.Range{R1: 1, C1: 1, R2: used.R2, C2: used.C2}
	for row := bounds.R1; row <= bounds.R2; row++ {
		for col := bounds.C1; col <= bounds.C2; col++ {
			cell, err := src.Cell(srcSheet, col, row)
			if err != nil {
				return bounds, err
			}
			if cell.IsBlank() {
				continue
			}
			if err := dst.SetCell(dstSheet, col, row, cell); err != nil {
				return bounds, err
			}
		}
	}
	return bounds, nil
}
