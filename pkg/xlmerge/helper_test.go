package xlmerge

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// sheetData describes one sheet of a test workbook.
type sheetData struct {
	name   string
	rows   [][]interface{}
	styles map[string]*excelize.Style
}

var summaryHeader = []interface{}{"wallet", "balance", "status"}

// summarySheet returns a "Summary" sheet with the standard header followed by rows.
func summarySheet(rows ...[]interface{}) sheetData {
	return sheetData{name: DefaultSummarySheet, rows: append([][]interface{}{summaryHeader}, rows...)}
}

// walletSheet returns a "Wallet_<key>" sheet holding a single marker value.
func walletSheet(key, marker string) sheetData {
	return sheetData{name: DefaultKeyPrefix + key, rows: [][]interface{}{{marker}}}
}

// writeWorkbook saves the sheets in order to dir/name and returns the path.
func writeWorkbook(t *testing.T, dir, name string, sheets ...sheetData) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sd := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sd.name); err != nil {
				t.Fatalf("SetSheetName(%q) failed: %v", sd.name, err)
			}
		} else if _, err := f.NewSheet(sd.name); err != nil {
			t.Fatalf("NewSheet(%q) failed: %v", sd.name, err)
		}

		for r, row := range sd.rows {
			values := row
			if err := f.SetSheetRow(sd.name, fmt.Sprintf("A%d", r+1), &values); err != nil {
				t.Fatalf("SetSheetRow failed: %v", err)
			}
		}
		for cell, style := range sd.styles {
			id, err := f.NewStyle(style)
			if err != nil {
				t.Fatalf("NewStyle failed: %v", err)
			}
			if err := f.SetCellStyle(sd.name, cell, cell, id); err != nil {
				t.Fatalf("SetCellStyle failed: %v", err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

// openOutput opens a merged workbook for inspection.
func openOutput(t *testing.T, path string) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// summaryRows returns the rows of the output summary sheet.
func summaryRows(t *testing.T, f *excelize.File) [][]string {
	t.Helper()

	rows, err := f.GetRows(DefaultSummarySheet)
	if err != nil {
		t.Fatalf("GetRows(Summary) failed: %v", err)
	}
	return rows
}

// bufferLogger returns options logging into the returned buffer.
func bufferLogger() (Options, *bytes.Buffer) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return opts, &buf
}
