package xlmerge

import (
	"fmt"

	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/ukaji3/xlmerge/pkg/xlmerge/workbook"
)

// mergeSummary appends the rows of one input's summary sheet whose key has
// not been written yet. The header comes from the first input whose summary
// sheet is not empty, so an empty leading summary defers it to a later input.
func (p *Pipeline) mergeSummary(st *mergeState, path string) error {
	if st.skipped[path] {
		return nil
	}
	log := p.logger()

	src, err := p.Open(path)
	if err != nil {
		return NewMergeError(path, "", StageOpen, err)
	}
	defer src.Close()

	if !containsSheet(src.SheetList(), p.SummarySheet) {
		return NewMergeError(path, p.SummarySheet, StageSummary, ErrMissingSummary)
	}

	used, err := src.UsedRange(p.SummarySheet)
	if err != nil {
		return NewMergeError(path, p.SummarySheet, StageSummary, err)
	}
	if used.Empty() {
		log.Debug("summary sheet is empty", "file", path)
		return nil
	}

	if st.nextRow == 0 {
		if err := p.copyHeader(st, src, used); err != nil {
			return NewMergeError(path, p.SummarySheet, StageSummary, err)
		}
	}

	for row := used.R1 + 1; row <= used.R2; row++ {
		keyCell, err := src.Cell(p.SummarySheet, used.C1, row)
		if err != nil {
			return NewMergeError(path, p.SummarySheet, StageSummary, err)
		}
		key := keyCell.Text

		if _, seen := st.wallets[key]; seen {
			log.Debug("duplicate key, row skipped", "file", path, "row", row, "key", key)
			st.report.DuplicateRows++
			continue
		}
		st.wallets[key] = struct{}{}

		if err := p.appendRow(st, src, used, row, key); err != nil {
			return NewMergeError(path, p.SummarySheet, StageSummary, err)
		}
	}

	return nil
}

// copyHeader writes the first row of the used range as the summary header.
func (p *Pipeline) copyHeader(st *mergeState, src workbook.Source, used models.Range) error {
	for col := used.C1; col <= used.C2; col++ {
		cell, err := src.Cell(p.SummarySheet, col, used.R1)
		if err != nil {
			return err
		}
		if err := st.out.SetCell(st.summary, col-used.C1+1, 1, plainCell(cell)); err != nil {
			return err
		}
	}
	st.nextRow = 2
	return nil
}

// appendRow writes one source row as the next summary row and links its key
// cell to the key's sheet.
func (p *Pipeline) appendRow(st *mergeState, src workbook.Source, used models.Range, row int, key string) error {
	outRow := st.nextRow
	for col := used.C1; col <= used.C2; col++ {
		cell, err := src.Cell(p.SummarySheet, col, row)
		if err != nil {
			return err
		}
		outCol := col - used.C1 + 1
		if err := st.out.SetCell(st.summary, outCol, outRow, plainCell(cell)); err != nil {
			return fmt.Errorf("row %d: %w", outRow, err)
		}
		if col == used.C1 && key != "" {
			p.linkKey(st, outCol, outRow, key)
		}
	}
	st.nextRow++
	st.report.SummaryRows++
	return nil
}

// linkKey hyperlinks a summary cell to the sheet copied for its key. A
// missing sheet or a failing hyperlink is reported and leaves the cell as is.
func (p *Pipeline) linkKey(st *mergeState, col, row int, key string) {
	log := p.logger()

	want := p.KeyPrefix + key
	actual, ok := st.nameMap[want]
	if !ok {
		log.Warn("sheet not found in merged workbook", "sheet", want, "key", key)
		st.report.MissingLinks = append(st.report.MissingLinks, models.MissingLink{Key: key, Sheet: want})
		return
	}

	link := models.Hyperlink{
		Location: p.linkLocation(actual),
		Display:  key,
	}
	if err := st.out.SetHyperlink(st.summary, col, row, link); err != nil {
		log.Error("failed to add hyperlink", "key", key, "sheet", actual, "error", err)
		st.report.LinkErrors = append(st.report.LinkErrors, fmt.Sprintf("%s: %v", key, err))
		return
	}
	st.report.Links++
}

// plainCell keeps the value and formatting of a cell, dropping its formula
// and hyperlink.
func plainCell(cell models.Cell) models.Cell {
	return models.Cell{Value: cell.Value, Style: cell.Style}
}
