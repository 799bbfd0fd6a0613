package models

// Layout holds the sheet-level formatting carried along when a sheet is copied.
type Layout struct {
	// Merges contains merged cell ranges.
	Merges []Range `json:"merges,omitempty"`
	// ColWidths maps column index (1-based) to width.
	ColWidths map[int]float64 `json:"col_widths,omitempty"`
	// RowHeights maps row index (1-based) to height.
	RowHeights map[int]float64 `json:"row_heights,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []Range `json:"print_areas,omitempty"`
}
