package workbook

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/ukaji3/xlmerge/pkg/xlmerge/parser"
	"github.com/xuri/excelize/v2"
)

// File is an excelize-backed workbook. It serves as a Source when opened
// from disk and as a Target when created with New.
type File struct {
	f    *excelize.File
	path string

	names *NameSet
	// placeholder is the default sheet of a new workbook. Excel files need at
	// least one sheet, so the first AddSheet renames it instead of adding one.
	placeholder string

	styles   map[int]*models.Style
	styleIDs map[string]int
}

// Open opens an existing workbook.
func Open(path string) (*File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &File{
		f:        f,
		path:     path,
		names:    NewNameSet(f.GetSheetList()...),
		styles:   make(map[int]*models.Style),
		styleIDs: make(map[string]int),
	}, nil
}

// New creates an empty workbook.
func New() *File {
	f := excelize.NewFile()
	return &File{
		f:           f,
		names:       NewNameSet(),
		placeholder: f.GetSheetName(0),
		styles:      make(map[int]*models.Style),
		styleIDs:    make(map[string]int),
	}
}

// Excelize exposes the underlying excelize file.
func (w *File) Excelize() *excelize.File {
	return w.f
}

// Path returns the file the workbook was opened from.
func (w *File) Path() string {
	return w.path
}

// SheetList returns the sheet names in workbook order. A new workbook
// reports no sheets until the first AddSheet.
func (w *File) SheetList() []string {
	var out []string
	for _, name := range w.f.GetSheetList() {
		if w.placeholder != "" && name == w.placeholder {
			continue
		}
		out = append(out, name)
	}
	return out
}

// UsedRange returns the minimal range holding every non-empty cell.
func (w *File) UsedRange(sheet string) (models.Range, error) {
	return parser.UsedRange(w.f, sheet)
}

// Cell reads a single cell including its style.
func (w *File) Cell(sheet string, col, row int) (models.Cell, error) {
	cell, err := parser.ReadCell(w.f, sheet, col, row)
	if err != nil {
		return cell, err
	}

	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return cell, err
	}
	styleID, err := w.f.GetCellStyle(sheet, cellName)
	if err != nil {
		return cell, err
	}
	style, ok := w.styles[styleID]
	if !ok {
		style, err = parser.ReadStyle(w.f, styleID)
		if err != nil {
			return cell, fmt.Errorf("style %d: %w", styleID, err)
		}
		w.styles[styleID] = style
	}
	cell.Style = style

	return cell, nil
}

// Layout returns merges, sizes and print areas of a sheet.
func (w *File) Layout(sheet string, bounds models.Range) (models.Layout, error) {
	return parser.ReadLayout(w.f, sheet, bounds)
}

// Reserve keeps name free for a later AddSheet with exactly that name.
func (w *File) Reserve(name string) {
	w.names.Reserve(name)
}

// AddSheet appends an empty sheet and returns the name it was given.
func (w *File) AddSheet(name string) (string, error) {
	actual := w.names.Assign(name)
	if w.placeholder != "" {
		if err := w.f.SetSheetName(w.placeholder, actual); err != nil {
			return "", err
		}
		w.placeholder = ""
		return actual, nil
	}
	if _, err := w.f.NewSheet(actual); err != nil {
		return "", err
	}
	return actual, nil
}

// CopySheet appends a copy of a source sheet: cells, styles, hyperlinks,
// merged ranges, column widths, row heights and print areas.
func (w *File) CopySheet(src Source, sheet string) (string, error) {
	actual, err := w.AddSheet(sheet)
	if err != nil {
		return "", err
	}

	bounds, err := CopyCells(w, actual, src, sheet)
	if err != nil {
		return actual, err
	}

	layout, err := src.Layout(sheet, bounds)
	if err != nil {
		return actual, err
	}
	if err := w.applyLayout(actual, layout); err != nil {
		return actual, err
	}

	return actual, nil
}

// SetCell writes value, formula, style and hyperlink of a cell.
func (w *File) SetCell(sheet string, col, row int, cell models.Cell) error {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	if cell.Value != nil {
		if err := w.f.SetCellValue(sheet, cellName, cell.Value); err != nil {
			return err
		}
	}
	if cell.Formula != "" {
		if err := w.f.SetCellFormula(sheet, cellName, cell.Formula); err != nil {
			return err
		}
	}
	if cell.Style != nil {
		styleID, err := w.styleID(cell.Style)
		if err != nil {
			return err
		}
		if err := w.f.SetCellStyle(sheet, cellName, cellName, styleID); err != nil {
			return err
		}
	}
	if cell.Link != nil {
		return w.SetHyperlink(sheet, col, row, *cell.Link)
	}

	return nil
}

// SetHyperlink attaches a hyperlink to a cell. Internal links point at
// Location, external ones at Address.
func (w *File) SetHyperlink(sheet string, col, row int, link models.Hyperlink) error {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	target, linkType := link.Address, "External"
	if link.Internal() {
		if link.Location == "" {
			return fmt.Errorf("hyperlink at %s!%s has no target", sheet, cellName)
		}
		target, linkType = link.Location, "Location"
	}

	var opts []excelize.HyperlinkOpts
	if link.Display != "" {
		display := link.Display
		opts = append(opts, excelize.HyperlinkOpts{Display: &display})
	}
	return w.f.SetCellHyperLink(sheet, cellName, target, linkType, opts...)
}

// Activate makes a sheet the one shown when the workbook is opened.
func (w *File) Activate(sheet string) error {
	idx, err := w.f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx < 0 {
		return fmt.Errorf("sheet %q does not exist", sheet)
	}
	w.f.SetActiveSheet(idx)
	return nil
}

// Close releases the workbook without saving.
func (w *File) Close() error {
	return w.f.Close()
}

// styleID returns the id of an equivalent style in this workbook, creating it once.
func (w *File) styleID(style *models.Style) (int, error) {
	key, err := json.Marshal(style)
	if err != nil {
		return 0, err
	}
	if id, ok := w.styleIDs[string(key)]; ok {
		return id, nil
	}
	id, err := w.f.NewStyle(parser.ToExcelize(style))
	if err != nil {
		return 0, err
	}
	w.styleIDs[string(key)] = id
	return id, nil
}

func (w *File) applyLayout(sheet string, layout models.Layout) error {
	for _, m := range layout.Merges {
		start, err := excelize.CoordinatesToCellName(m.C1, m.R1)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(m.C2, m.R2)
		if err != nil {
			return err
		}
		if err := w.f.MergeCell(sheet, start, end); err != nil {
			return err
		}
	}

	for col, width := range layout.ColWidths {
		if width == defaultColWidth {
			continue
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}

	for row, height := range layout.RowHeights {
		if height == defaultRowHeight {
			continue
		}
		if err := w.f.SetRowHeight(sheet, row, height); err != nil {
			return err
		}
	}

	if len(layout.PrintAreas) > 0 {
		ref, err := parser.FormatPrintAreaReference(sheet, layout.PrintAreas)
		if err != nil {
			return err
		}
		if err := w.f.SetDefinedName(&excelize.DefinedName{
			Name:     parser.PrintAreaName,
			RefersTo: ref,
			Scope:    sheet,
		}); err != nil {
			return fmt.Errorf("print area: %w", err)
		}
	}

	return nil
}

// Widths and heights excelize reports for columns and rows without an explicit size.
const (
	defaultColWidth  = 9.140625
	defaultRowHeight = 15
)
