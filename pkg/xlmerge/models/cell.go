// Package models defines data structures for workbook merging.
package models

// Cell represents a single cell read from or written to a worksheet.
type Cell struct {
	// Value is the typed cell value (string, int64, float64, bool) or nil for blank cells.
	Value interface{} `json:"value,omitempty"`
	// Text is the formatted display text of the cell.
	Text string `json:"text,omitempty"`
	// Formula is the cell formula without the leading '=' (empty if none).
	Formula string `json:"formula,omitempty"`
	// Style is the cell formatting, nil when the cell uses the default style.
	Style *Style `json:"style,omitempty"`
	// Link is the cell hyperlink (optional).
	Link *Hyperlink `json:"link,omitempty"`
}

// IsBlank reports whether the cell carries neither a value, a formula nor a style.
func (c Cell) IsBlank() bool {
	return c.Value == nil && c.Formula == "" && c.Style == nil && c.Link == nil
}

// Hyperlink represents a cell hyperlink.
type Hyperlink struct {
	// Address is the external target (URL, mailto). Empty for in-document links.
	Address string `json:"address,omitempty"`
	// Location is the in-document target, e.g. 'Wallet_abc'!A1.
	Location string `json:"location,omitempty"`
	// Display is the text shown for the link.
	Display string `json:"display,omitempty"`
}

// Internal reports whether the hyperlink points inside the workbook.
func (h Hyperlink) Internal() bool {
	return h.Address == ""
}
