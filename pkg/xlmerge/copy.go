package xlmerge

import "github.com/ukaji3/xlmerge/pkg/xlmerge/models"

// copySheets copies every sheet of one input that is neither the summary
// sheet nor already copied from an earlier input.
func (p *Pipeline) copySheets(st *mergeState, path string) error {
	log := p.logger()

	src, err := p.Open(path)
	if err != nil {
		return NewMergeError(path, "", StageOpen, err)
	}
	defer src.Close()

	sheets := src.SheetList()
	if !containsSheet(sheets, p.SummarySheet) {
		if !p.SkipMissingSummary {
			return NewMergeError(path, p.SummarySheet, StageCopy, ErrMissingSummary)
		}
		log.Warn("input has no summary sheet, only its sheets are copied",
			"file", path, "sheet", p.SummarySheet)
		st.skipped[path] = true
		st.report.SkippedInputs = append(st.report.SkippedInputs, path)
	}

	for _, name := range sheets {
		if name == p.SummarySheet {
			continue
		}
		if _, done := st.nameMap[name]; done {
			log.Debug("sheet already copied, skipping", "file", path, "sheet", name)
			st.report.Duplicates = append(st.report.Duplicates, models.SkippedSheet{Source: path, Name: name})
			continue
		}

		actual, err := st.out.CopySheet(src, name)
		if err != nil {
			return NewMergeError(path, name, StageCopy, err)
		}
		st.nameMap[name] = actual
		st.report.Sheets = append(st.report.Sheets, models.CopiedSheet{
			Source:   path,
			Original: name,
			Actual:   actual,
		})
		log.Info("copied sheet", "file", path, "original", name, "actual", actual)
	}

	return nil
}
