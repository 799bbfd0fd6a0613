// Package xlmerge merges workbooks: it copies every worksheet of the inputs
// into one output workbook and consolidates their summary sheets into a
// single deduplicated, hyperlinked summary.
package xlmerge

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/xlmerge/pkg/xlmerge/parser"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultSummarySheet is the name of the sheet consolidated across inputs.
	DefaultSummarySheet = "Summary"
	// DefaultKeyPrefix is prepended to a row key to name the sheet it links to.
	DefaultKeyPrefix = "Wallet_"
	// DefaultLinkCell is the cell summary hyperlinks jump to.
	DefaultLinkCell = "A1"
)

// Options configures merge behavior.
type Options struct {
	// SummarySheet is the sheet consolidated into the output summary.
	// Sheets with this name are never copied as-is.
	SummarySheet string
	// KeyPrefix names the sheet a summary row links to: KeyPrefix + key.
	KeyPrefix string
	// LinkCell is the anchor cell of summary hyperlinks in the target sheet.
	LinkCell string
	// SkipMissingSummary makes an input without a summary sheet contribute
	// its other sheets only, instead of failing the run.
	SkipMissingSummary bool
	// Logger receives progress and diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default merge options.
func DefaultOptions() Options {
	return Options{
		SummarySheet: DefaultSummarySheet,
		KeyPrefix:    DefaultKeyPrefix,
		LinkCell:     DefaultLinkCell,
	}
}

// Validate checks the options for values that would make every merge fail.
func (o Options) Validate() error {
	if o.SummarySheet == "" {
		return fmt.Errorf("summary sheet name must not be empty")
	}
	if _, _, err := excelize.CellNameToCoordinates(o.LinkCell); err != nil {
		return fmt.Errorf("invalid link cell %q: %w", o.LinkCell, err)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// linkLocation returns the in-document hyperlink target for a sheet, e.g. 'Wallet_abc'!A1.
func (o Options) linkLocation(sheet string) string {
	return parser.QuoteSheetName(sheet) + "!" + o.LinkCell
}
