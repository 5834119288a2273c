package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook saves an .xlsx workbook at path whose active sheet holds the
// given rows, header row first.
func WriteWorkbook(t testing.TB, path string, rows [][]string) {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheetName := file.GetSheetName(file.GetActiveSheetIndex())
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := file.SetSheetRow(sheetName, cell, &values); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}
