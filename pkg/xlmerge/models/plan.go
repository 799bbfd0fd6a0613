package models

// InputPlan describes what a merge would take from one input workbook.
type InputPlan struct {
	// Path is the input file.
	Path string `json:"path"`
	// Sheets lists every sheet in workbook order.
	Sheets []string `json:"sheets"`
	// Copy lists sheets the copy pass would take from this input.
	Copy []string `json:"copy,omitempty"`
	// HasSummary reports whether the summary sheet is present.
	HasSummary bool `json:"has_summary"`
	// SummaryRows is the number of summary data rows (header excluded).
	SummaryRows int `json:"summary_rows"`
	// NewKeys is the number of keys not seen in earlier inputs.
	NewKeys int `json:"new_keys"`
}

// Plan describes a merge without performing it.
type Plan struct {
	Output string      `json:"output"`
	Inputs []InputPlan `json:"inputs"`
	// Sheets lists the sheet names of the output in order, summary last.
	Sheets []string `json:"sheets"`
	// SummaryRows is the expected number of consolidated data rows.
	SummaryRows int `json:"summary_rows"`
}
