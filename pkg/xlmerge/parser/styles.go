package parser

import (
	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/xuri/excelize/v2"
)

// ReadStyle resolves a workbook style id into a workbook-independent Style.
// Style id 0 is the workbook default and yields nil.
func ReadStyle(f *excelize.File, styleID int) (*models.Style, error) {
	if styleID == 0 {
		return nil, nil
	}
	st, err := f.GetStyle(styleID)
	if err != nil {
		return nil, err
	}
	return FromExcelize(st), nil
}

// FromExcelize converts an excelize style definition.
func FromExcelize(st *excelize.Style) *models.Style {
	if st == nil {
		return nil
	}

	out := &models.Style{
		Fill: models.Fill{
			Type:    st.Fill.Type,
			Pattern: st.Fill.Pattern,
			Colors:  append([]string(nil), st.Fill.Color...),
			Shading: st.Fill.Shading,
		},
		NumFmt: st.NumFmt,
	}
	if st.CustomNumFmt != nil {
		out.CustomNumFmt = *st.CustomNumFmt
	}
	if st.Font != nil {
		out.Font = &models.Font{
			Bold:      st.Font.Bold,
			Italic:    st.Font.Italic,
			Underline: st.Font.Underline,
			Strike:    st.Font.Strike,
			Family:    st.Font.Family,
			Size:      st.Font.Size,
			Color:     st.Font.Color,
			ColorTint: st.Font.ColorTint,
		}
		if st.Font.ColorTheme != nil {
			theme := *st.Font.ColorTheme
			out.Font.ColorTheme = &theme
		}
	}
	if st.Alignment != nil {
		out.Alignment = &models.Alignment{
			Horizontal:   st.Alignment.Horizontal,
			Vertical:     st.Alignment.Vertical,
			WrapText:     st.Alignment.WrapText,
			Indent:       st.Alignment.Indent,
			TextRotation: st.Alignment.TextRotation,
		}
	}
	for _, b := range st.Border {
		out.Borders = append(out.Borders, models.Border{Type: b.Type, Color: b.Color, Style: b.Style})
	}
	return out
}

// ToExcelize converts a Style back into an excelize style definition.
func ToExcelize(s *models.Style) *excelize.Style {
	if s == nil {
		return nil
	}

	st := &excelize.Style{
		Fill: excelize.Fill{
			Type:    s.Fill.Type,
			Pattern: s.Fill.Pattern,
			Color:   append([]string(nil), s.Fill.Colors...),
			Shading: s.Fill.Shading,
		},
		NumFmt: s.NumFmt,
	}
	if s.CustomNumFmt != "" {
		numFmt := s.CustomNumFmt
		st.CustomNumFmt = &numFmt
	}
	if s.Font != nil {
		st.Font = &excelize.Font{
			Bold:      s.Font.Bold,
			Italic:    s.Font.Italic,
			Underline: s.Font.Underline,
			Strike:    s.Font.Strike,
			Family:    s.Font.Family,
			Size:      s.Font.Size,
			Color:     s.Font.Color,
			ColorTint: s.Font.ColorTint,
		}
		if s.Font.ColorTheme != nil {
			theme := *s.Font.ColorTheme
			st.Font.ColorTheme = &theme
		}
	}
	if s.Alignment != nil {
		st.Alignment = &excelize.Alignment{
			Horizontal:   s.Alignment.Horizontal,
			Vertical:     s.Alignment.Vertical,
			WrapText:     s.Alignment.WrapText,
			Indent:       s.Alignment.Indent,
			TextRotation: s.Alignment.TextRotation,
		}
	}
	for _, b := range s.Borders {
		st.Border = append(st.Border, excelize.Border{Type: b.Type, Color: b.Color, Style: b.Style})
	}
	return st
}
