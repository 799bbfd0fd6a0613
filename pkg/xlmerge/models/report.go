package models

// CopiedSheet records one worksheet copied into the output workbook.
type CopiedSheet struct {
	// Source is the input file the sheet came from.
	Source string `json:"source"`
	// Original is the sheet name in the input workbook.
	Original string `json:"original"`
	// Actual is the name assigned in the output workbook.
	Actual string `json:"actual"`
}

// SkippedSheet records a worksheet that was not copied because its name was already taken.
type SkippedSheet struct {
	Source string `json:"source"`
	Name   string `json:"name"`
}

// MissingLink records a summary row whose key sheet was not found.
type MissingLink struct {
	Key   string `json:"key"`
	Sheet string `json:"sheet"`
}

// Report summarizes a merge run.
type Report struct {
	// Output is the path of the written workbook.
	Output string `json:"output"`
	// Inputs lists the input files in processing order.
	Inputs []string `json:"inputs"`
	// Sheets lists copied sheets in output order.
	Sheets []CopiedSheet `json:"sheets"`
	// Duplicates lists sheets skipped because an earlier input had the same name.
	Duplicates []SkippedSheet `json:"duplicates,omitempty"`
	// SkippedInputs lists inputs without a summary sheet (only with skip_missing_summary).
	SkippedInputs []string `json:"skipped_inputs,omitempty"`
	// SummaryRows is the number of data rows written to the summary sheet.
	SummaryRows int `json:"summary_rows"`
	// DuplicateRows is the number of summary rows skipped because their key was already written.
	DuplicateRows int `json:"duplicate_rows"`
	// Links is the number of hyperlinks created.
	Links int `json:"links"`
	// MissingLinks lists keys whose target sheet does not exist.
	MissingLinks []MissingLink `json:"missing_links,omitempty"`
	// LinkErrors lists hyperlink failures.
	LinkErrors []string `json:"link_errors,omitempty"`
}
