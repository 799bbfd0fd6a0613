package workbook

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/xlmerge/pkg/xlmerge/models"
	"github.com/ukaji3/xlmerge/pkg/xlmerge/parser"
	"github.com/xuri/excelize/v2"
)

// writeSource saves a workbook with one formatted "Data" sheet and returns its path.
func writeSource(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Data"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	f.SetCellValue(sheet, "A1", "name")
	f.SetCellValue(sheet, "B1", "amount")
	f.SetCellValue(sheet, "C1", "double")
	f.SetCellValue(sheet, "A2", "alpha")
	f.SetCellValue(sheet, "B2", 42)
	f.SetCellFormula(sheet, "C2", "B2*2")
	f.SetCellValue(sheet, "A4", "docs")
	f.SetCellHyperLink(sheet, "A4", "https://example.com/docs", "External")

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "1F4E78"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellStyle(sheet, "A1", "B1", bold)
	f.MergeCell(sheet, "A3", "B3")
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetRowHeight(sheet, 1, 28)
	f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: "Data!$A$1:$C$4",
		Scope:    sheet,
	})

	path := filepath.Join(t.TempDir(), "source.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func TestCopySheet(t *testing.T) {
	src, err := Open(writeSource(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	dst := New()
	defer dst.Close()

	actual, err := dst.CopySheet(src, "Data")
	if err != nil {
		t.Fatalf("CopySheet failed: %v", err)
	}
	if actual != "Data" {
		t.Errorf("CopySheet name = %q, expected %q", actual, "Data")
	}
	if got := dst.SheetList(); !reflect.DeepEqual(got, []string{"Data"}) {
		t.Errorf("SheetList = %v, expected [Data]", got)
	}

	out := dst.Excelize()
	for cell, expected := range map[string]string{"A1": "name", "B1": "amount", "A2": "alpha", "B2": "42", "A4": "docs"} {
		got, err := out.GetCellValue("Data", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != expected {
			t.Errorf("%s = %q, expected %q", cell, got, expected)
		}
	}

	formula, _ := out.GetCellFormula("Data", "C2")
	if formula != "B2*2" {
		t.Errorf("C2 formula = %q, expected %q", formula, "B2*2")
	}

	hasLink, target, _ := out.GetCellHyperLink("Data", "A4")
	if !hasLink || target != "https://example.com/docs" {
		t.Errorf("A4 link = %v %q, expected external docs link", hasLink, target)
	}

	srcCell, _ := src.Cell("Data", 1, 1)
	dstCell, err := dst.Cell("Data", 1, 1)
	if err != nil {
		t.Fatalf("Cell failed: %v", err)
	}
	if !reflect.DeepEqual(srcCell.Style, dstCell.Style) {
		t.Errorf("A1 style = %+v, expected %+v", dstCell.Style, srcCell.Style)
	}
	if !dstCell.Style.Bold() {
		t.Error("A1 should be bold")
	}

	merged, _ := out.GetMergeCells("Data")
	if len(merged) != 1 || merged[0].GetStartAxis() != "A3" || merged[0].GetEndAxis() != "B3" {
		t.Errorf("merged cells = %v, expected A3:B3", merged)
	}
	if width, _ := out.GetColWidth("Data", "A"); width != 25 {
		t.Errorf("column A width = %v, expected 25", width)
	}
	if height, _ := out.GetRowHeight("Data", 1); height != 28 {
		t.Errorf("row 1 height = %v, expected 28", height)
	}

	areas, _ := parser.ExtractPrintAreas(out)
	expectedAreas := []models.Range{{R1: 1, C1: 1, R2: 4, C2: 3}}
	if !reflect.DeepEqual(areas["Data"], expectedAreas) {
		t.Errorf("print areas = %+v, expected %+v", areas["Data"], expectedAreas)
	}
}

func TestCopySheetRenamesOnCollision(t *testing.T) {
	src, err := Open(writeSource(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	dst := New()
	defer dst.Close()

	first, err := dst.CopySheet(src, "Data")
	if err != nil {
		t.Fatalf("CopySheet failed: %v", err)
	}
	second, err := dst.CopySheet(src, "Data")
	if err != nil {
		t.Fatalf("second CopySheet failed: %v", err)
	}
	if first != "Data" || second != "Data (2)" {
		t.Errorf("names = %q, %q, expected %q, %q", first, second, "Data", "Data (2)")
	}
	if got := dst.SheetList(); !reflect.DeepEqual(got, []string{"Data", "Data (2)"}) {
		t.Errorf("SheetList = %v", got)
	}
}

func TestAddSheetReserved(t *testing.T) {
	w := New()
	defer w.Close()

	w.Reserve("Summary")
	names := []string{"summary", "Data", "Summary"}
	var got []string
	for _, name := range names {
		actual, err := w.AddSheet(name)
		if err != nil {
			t.Fatalf("AddSheet(%q) failed: %v", name, err)
		}
		got = append(got, actual)
	}

	expected := []string{"summary (2)", "Data", "Summary"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("AddSheet names = %v, expected %v", got, expected)
	}
	if list := w.SheetList(); !reflect.DeepEqual(list, expected) {
		t.Errorf("SheetList = %v, expected %v", list, expected)
	}
}

func TestSetHyperlink(t *testing.T) {
	w := New()
	defer w.Close()

	sheet, _ := w.AddSheet("Summary")
	if err := w.SetCell(sheet, 1, 2, models.Cell{Value: "abc123"}); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	link := models.Hyperlink{Location: "'Wallet_abc123'!A1", Display: "abc123"}
	if err := w.SetHyperlink(sheet, 1, 2, link); err != nil {
		t.Fatalf("SetHyperlink failed: %v", err)
	}

	hasLink, target, err := w.Excelize().GetCellHyperLink(sheet, "A2")
	if err != nil {
		t.Fatalf("GetCellHyperLink failed: %v", err)
	}
	if !hasLink || target != "'Wallet_abc123'!A1" {
		t.Errorf("A2 link = %v %q, expected location link", hasLink, target)
	}

	if err := w.SetHyperlink(sheet, 1, 3, models.Hyperlink{}); err == nil {
		t.Error("SetHyperlink without target should fail")
	}
}

func TestSaveAndActivate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")

	w := New()
	defer w.Close()
	w.AddSheet("First")
	w.AddSheet("Second")
	if err := w.Activate("Second"); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if err := w.Activate("Missing"); err == nil {
		t.Error("Activate(Missing) should fail")
	}
	if err := w.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.xlsx" {
		t.Errorf("directory holds %v, expected only out.xlsx", entries)
	}

	saved, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer saved.Close()
	if got := saved.GetSheetList(); !reflect.DeepEqual(got, []string{"First", "Second"}) {
		t.Errorf("saved sheets = %v", got)
	}
	if idx := saved.GetActiveSheetIndex(); idx != 1 {
		t.Errorf("active sheet = %d, expected 1", idx)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if mode := info.Mode().Perm(); mode != 0644 {
		t.Errorf("output mode = %v, expected %v", mode, os.FileMode(0644))
	}
}

func TestSaveKeepsExistingMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0640); err != nil {
		t.Fatal(err)
	}

	w := New()
	defer w.Close()
	if _, err := w.AddSheet("Summary"); err != nil {
		t.Fatal(err)
	}
	if err := w.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if mode := info.Mode().Perm(); mode != 0640 {
		t.Errorf("output mode = %v, expected the previous %v", mode, os.FileMode(0640))
	}
	if info.Size() <= int64(len("old")) {
		t.Error("existing file was not replaced")
	}
}

func TestSaveFailureLeavesNoFiles(t *testing.T) {
	dir := t.TempDir()

	w := New()
	defer w.Close()
	w.AddSheet("Only")

	if err := w.Save(filepath.Join(dir, "out.txt")); err == nil {
		t.Fatal("Save to an unsupported extension should fail")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory holds %v after a failed save, expected nothing", entries)
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"a.xlsx", true},
		{"dir/B.XLSM", true},
		{"c.xltx", true},
		{"d.xls", false},
		{"e.csv", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsSupported(tt.path); got != tt.expected {
			t.Errorf("IsSupported(%q) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}
