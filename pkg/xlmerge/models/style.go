package models

// Style is a workbook-independent description of cell formatting.
// Style ids are local to a workbook, so formatting crosses workbooks in this form.
type Style struct {
	// Fill is the cell background.
	Fill Fill `json:"fill"`
	// Font is the font definition (nil means the workbook default font).
	Font *Font `json:"font,omitempty"`
	// Alignment is the text alignment (optional).
	Alignment *Alignment `json:"alignment,omitempty"`
	// Borders lists the cell borders.
	Borders []Border `json:"borders,omitempty"`
	// NumFmt is the built-in number format id.
	NumFmt int `json:"num_fmt,omitempty"`
	// CustomNumFmt is a custom number format code (optional).
	CustomNumFmt string `json:"custom_num_fmt,omitempty"`
}

// Fill describes a cell background.
type Fill struct {
	Type    string   `json:"type,omitempty"`
	Pattern int      `json:"pattern,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Shading int      `json:"shading,omitempty"`
}

// Background returns the primary background color, or "" when the cell has none.
func (f Fill) Background() string {
	if len(f.Colors) == 0 {
		return ""
	}
	return f.Colors[0]
}

// Font describes the font of a cell.
type Font struct {
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Underline  string  `json:"underline,omitempty"`
	Strike     bool    `json:"strike,omitempty"`
	Family     string  `json:"family,omitempty"`
	Size       float64 `json:"size,omitempty"`
	Color      string  `json:"color,omitempty"`
	ColorTheme *int    `json:"color_theme,omitempty"`
	ColorTint  float64 `json:"color_tint,omitempty"`
}

// Alignment describes text placement inside a cell.
type Alignment struct {
	Horizontal   string `json:"horizontal,omitempty"`
	Vertical     string `json:"vertical,omitempty"`
	WrapText     bool   `json:"wrap_text,omitempty"`
	Indent       int    `json:"indent,omitempty"`
	TextRotation int    `json:"text_rotation,omitempty"`
}

// Border describes one side of a cell border.
type Border struct {
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	Style int    `json:"style"`
}

// Background returns the background color of the style (nil-safe).
func (s *Style) Background() string {
	if s == nil {
		return ""
	}
	return s.Fill.Background()
}

// FontColor returns the font color of the style (nil-safe).
func (s *Style) FontColor() string {
	if s == nil || s.Font == nil {
		return ""
	}
	return s.Font.Color
}

// Bold reports whether the style uses a bold font (nil-safe).
func (s *Style) Bold() bool {
	return s != nil && s.Font != nil && s.Font.Bold
}

// Italic reports whether the style uses an italic font (nil-safe).
func (s *Style) Italic() bool {
	return s != nil && s.Font != nil && s.Font.Italic
}
