package xlmerge

import (
	"fmt"

	"github.com/thedatashed/xlsxreader"
	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/ukaji3/xlmerge/pkg/xlmerge/workbook"
	"github.com/xuri/excelize/v2"
)

// Plan describes what merging inputs into output would produce, without
// writing anything. Inputs are streamed, so large workbooks are cheap to plan.
// Keys are compared by stored value rather than display text, so rows whose
// keys differ only by number format may be counted separately.
func Plan(inputs []string, output string, opts Options) (*models.Plan, error) {
	if err := opts.Validate(); err != nil {
		return nil, NewMergeError(output, "", StageValidate, err)
	}
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	pl := &planner{
		opts:   opts,
		names:  workbook.NewNameSet(),
		copied: make(map[string]bool),
		keys:   make(map[string]struct{}),
		plan:   &models.Plan{Output: output},
	}
	pl.names.Reserve(opts.SummarySheet)

	for _, path := range inputs {
		ip, err := pl.planInput(path)
		if err != nil {
			return nil, err
		}
		pl.plan.Inputs = append(pl.plan.Inputs, ip)
	}
	pl.plan.Sheets = append(pl.plan.Sheets, pl.names.Assign(opts.SummarySheet))
	pl.plan.SummaryRows = len(pl.keys)

	return pl.plan, nil
}

type planner struct {
	opts   Options
	names  *workbook.NameSet
	copied map[string]bool
	keys   map[string]struct{}
	plan   *models.Plan
}

func (pl *planner) planInput(path string) (models.InputPlan, error) {
	ip := models.InputPlan{Path: path}

	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return ip, NewMergeError(path, "", StageOpen, err)
	}
	defer xl.Close()

	ip.Sheets = append([]string(nil), xl.Sheets...)
	for _, name := range xl.Sheets {
		if name == pl.opts.SummarySheet {
			ip.HasSummary = true
			continue
		}
		if pl.copied[name] {
			continue
		}
		pl.copied[name] = true
		ip.Copy = append(ip.Copy, name)
		pl.plan.Sheets = append(pl.plan.Sheets, pl.names.Assign(name))
	}

	if !ip.HasSummary {
		if pl.opts.SkipMissingSummary {
			return ip, nil
		}
		return ip, NewMergeError(path, pl.opts.SummarySheet, StageCopy, ErrMissingSummary)
	}

	keys, err := summaryKeys(xl, pl.opts.SummarySheet)
	if err != nil {
		return ip, NewMergeError(path, pl.opts.SummarySheet, StageSummary, err)
	}
	ip.SummaryRows = len(keys)
	for _, key := range keys {
		if _, seen := pl.keys[key]; seen {
			continue
		}
		pl.keys[key] = struct{}{}
		ip.NewKeys++
	}

	return ip, nil
}

// summaryKeys returns the key of every data row of a summary sheet, in row
// order. Rows inside the used range without any cell yield an empty key.
func summaryKeys(xl *xlsxreader.XlsxFileCloser, sheet string) ([]string, error) {
	type cellAt struct {
		col   int
		value string
	}

	rows := make(map[int][]cellAt)
	minRow, maxRow, minCol := 0, 0, 0
	var readErr error
	for row := range xl.ReadRows(sheet) {
		if row.Error != nil {
			if readErr == nil {
				readErr = row.Error
			}
			continue
		}
		for _, c := range row.Cells {
			if c.Value == "" {
				continue
			}
			col, err := excelize.ColumnNameToNumber(c.Column)
			if err != nil {
				continue
			}
			rows[row.Index] = append(rows[row.Index], cellAt{col: col, value: c.Value})
			if minRow == 0 || row.Index < minRow {
				minRow = row.Index
			}
			if row.Index > maxRow {
				maxRow = row.Index
			}
			if minCol == 0 || col < minCol {
				minCol = col
			}
		}
	}
	if readErr != nil {
		return nil, fmt.Errorf("read rows: %w", readErr)
	}
	if minRow == 0 {
		return nil, nil
	}

	keys := make([]string, 0, maxRow-minRow)
	for r := minRow + 1; r <= maxRow; r++ {
		key := ""
		for _, c := range rows[r] {
			if c.col == minCol {
				key = c.value
				break
			}
		}
		keys = append(keys, key)
	}
	return keys, nil
}
