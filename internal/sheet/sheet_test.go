package sheet_test

import (
	"path/filepath"
	"testing"

	"bindery/internal/sheet"
	"bindery/internal/testsupport"
)

func TestLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Resources.xlsx")
	testsupport.WriteWorkbook(t, path, [][]string{
		{"Board Books", "", "SH Videos"},
		{"Three Little Kittens", "note", "Itsy Bitsy Spider (Anim)"},
		{"Humpty Dumpty"},
	})

	grid, err := sheet.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(grid.Headers) != 3 {
		t.Fatalf("unexpected headers: %v", grid.Headers)
	}
	if grid.Headers[0] != "Board Books" || grid.Headers[1] != "" || grid.Headers[2] != "SH Videos" {
		t.Fatalf("unexpected headers: %v", grid.Headers)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("unexpected row count: %d", len(grid.Rows))
	}
	if grid.Rows[0][2] != "Itsy Bitsy Spider (Anim)" {
		t.Fatalf("unexpected cell: %q", grid.Rows[0][2])
	}
	// Short rows are padded to header width.
	if len(grid.Rows[1]) != 3 || grid.Rows[1][1] != "" || grid.Rows[1][2] != "" {
		t.Fatalf("expected padded row, got %v", grid.Rows[1])
	}
}

func TestLoadMissingWorkbook(t *testing.T) {
	if _, err := sheet.Load(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}
