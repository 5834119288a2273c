package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Grid is the ordered contents of the workbook's active sheet.
type Grid struct {
	// Headers holds the raw first-row cell per column; blank entries mark
	// unlabeled columns.
	Headers []string
	// Rows holds the data rows in traversal order. Each row is aligned to
	// Headers; short rows are padded with empty strings.
	Rows [][]string
}

// Load reads the active sheet of an .xlsx workbook into a Grid.
func Load(path string) (*Grid, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(file.GetActiveSheetIndex())
	if sheetName == "" {
		return nil, fmt.Errorf("workbook %s has no active sheet", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return &Grid{}, nil
	}

	grid := &Grid{Headers: rows[0]}
	for _, row := range rows[1:] {
		grid.Rows = append(grid.Rows, padRow(row, len(grid.Headers)))
	}
	return grid, nil
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
