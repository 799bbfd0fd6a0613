package xlmerge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/ukaji3/xlmerge/pkg/xlmerge/workbook"
)

// Pipeline runs a merge against the workbook abstraction.
type Pipeline struct {
	Options
	// Open opens an input workbook. Each input is opened once per pass and
	// closed before the next one is opened.
	Open func(path string) (workbook.Source, error)
	// Create returns the empty output workbook.
	Create func() workbook.Target
}

// NewPipeline returns a pipeline reading and writing files with excelize.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{
		Options: opts,
		Open:    openFile,
		Create:  func() workbook.Target { return workbook.New() },
	}
}

// Merge validates the paths and merges inputs into output.
func Merge(inputs []string, output string, opts Options) (*models.Report, error) {
	if err := ValidatePaths(inputs, output); err != nil {
		return nil, err
	}
	return NewPipeline(opts).Run(inputs, output)
}

// mergeState is the state accumulated across both passes of one run.
type mergeState struct {
	out workbook.Target
	// summary is the name the output summary sheet received.
	summary string
	// nameMap maps original sheet names to the names assigned in out.
	nameMap map[string]string
	// wallets holds every key already written to the summary.
	wallets map[string]struct{}
	// nextRow is the next free summary row; 0 until the header is written.
	nextRow int
	// skipped marks inputs without a summary sheet.
	skipped map[string]bool
	report  *models.Report
}

func newMergeState(out workbook.Target, inputs []string, output string) *mergeState {
	return &mergeState{
		out:     out,
		nameMap: make(map[string]string),
		wallets: make(map[string]struct{}),
		skipped: make(map[string]bool),
		report: &models.Report{
			Output: output,
			Inputs: append([]string(nil), inputs...),
			Sheets: []models.CopiedSheet{},
		},
	}
}

// Run copies the sheets of every input, consolidates their summary sheets and
// saves the result to output.
func (p *Pipeline) Run(inputs []string, output string) (*models.Report, error) {
	if err := p.Options.Validate(); err != nil {
		return nil, NewMergeError(output, "", StageValidate, err)
	}
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	log := p.logger()

	out := p.Create()
	defer out.Close()
	out.Reserve(p.SummarySheet)

	st := newMergeState(out, inputs, output)

	for _, path := range inputs {
		if err := p.copySheets(st, path); err != nil {
			return st.report, err
		}
	}

	log.Info("sheets in merged workbook")
	for _, name := range out.SheetList() {
		log.Info("sheet", "name", name)
	}

	summary, err := out.AddSheet(p.SummarySheet)
	if err != nil {
		return st.report, NewMergeError(output, p.SummarySheet, StageSummary, err)
	}
	st.summary = summary

	for _, path := range inputs {
		if err := p.mergeSummary(st, path); err != nil {
			return st.report, err
		}
	}

	if err := out.Activate(summary); err != nil {
		return st.report, NewMergeError(output, summary, StageSave, err)
	}
	if err := out.Save(output); err != nil {
		return st.report, NewMergeError(output, "", StageSave, err)
	}
	log.Info("result saved", "output", output,
		"sheets", len(st.report.Sheets), "summary_rows", st.report.SummaryRows)

	return st.report, nil
}

// ValidatePaths checks that every input exists and is a workbook, and that
// output is a writable workbook path distinct from the inputs.
func ValidatePaths(inputs []string, output string) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	if !workbook.IsSupported(output) {
		return NewMergeError(output, "", StageValidate,
			fmt.Errorf("%w: %s", ErrInvalidFormat, filepath.Ext(output)))
	}

	outAbs, err := filepath.Abs(output)
	if err != nil {
		return NewMergeError(output, "", StageValidate, err)
	}
	outInfo, outErr := os.Stat(output)

	for _, in := range inputs {
		info, err := os.Stat(in)
		if os.IsNotExist(err) {
			return NewMergeError(in, "", StageValidate, ErrFileNotFound)
		}
		if err != nil {
			return NewMergeError(in, "", StageValidate, err)
		}
		if info.IsDir() || !workbook.IsSupported(in) {
			return NewMergeError(in, "", StageValidate, ErrInvalidFormat)
		}

		inAbs, err := filepath.Abs(in)
		if err != nil {
			return NewMergeError(in, "", StageValidate, err)
		}
		if inAbs == outAbs || (outErr == nil && os.SameFile(info, outInfo)) {
			return NewMergeError(in, "", StageValidate, ErrOutputIsInput)
		}
	}
	return nil
}

func openFile(path string) (workbook.Source, error) {
	f, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
