package exsplit

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

var fixtureHeader = []string{"ID", "Name", "Amount"}

// writeFixture creates dir/name with a header row followed by dataRows rows.
func writeFixture(t *testing.T, dir, name string, dataRows int) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter("Sheet1")
	if err != nil {
		t.Fatalf("NewStreamWriter failed: %v", err)
	}
	header := make([]interface{}, len(fixtureHeader))
	for i, h := range fixtureHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		t.Fatalf("SetRow header failed: %v", err)
	}
	for i := 1; i <= dataRows; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		row := []interface{}{i, fmt.Sprintf("name-%d", i), float64(i) * 1.5}
		if err := sw.SetRow(cell, row); err != nil {
			t.Fatalf("SetRow %d failed: %v", i, err)
		}
	}
	if err := sw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// readRows returns every row of the first sheet of path.
func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	return rows
}
