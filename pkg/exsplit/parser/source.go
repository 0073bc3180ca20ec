// Package parser provides the read side of the splitter: opening the source
// workbook, iterating its rows and classifying cells.
package parser

import (
	"github.com/xuri/excelize/v2"
)

// Source is a read-only handle on the first sheet of a workbook.
type Source struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   *styleCache
}

// OpenSource opens the workbook at path and selects its first sheet.
func OpenSource(path string, opts ...excelize.Options) (*Source, error) {
	f, err := excelize.OpenFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return NewSource(f)
}

// NewSource wraps an already opened workbook. The Source takes ownership of f.
func NewSource(f *excelize.File) (*Source, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		f.Close()
		return nil, err
	}
	s := &Source{
		f:      f,
		sheet:  f.GetSheetName(0),
		styles: newStyleCache(f),
	}
	if props.Date1904 != nil {
		s.date1904 = *props.Date1904
	}
	return s, nil
}

// SheetName returns the name of the sheet being read.
func (s *Source) SheetName() string {
	return s.sheet
}

// Date1904 reports whether the workbook uses the 1904 date system.
func (s *Source) Date1904() bool {
	return s.date1904
}

// File returns the underlying workbook.
func (s *Source) File() *excelize.File {
	return s.f
}

// Close releases the workbook.
func (s *Source) Close() error {
	return s.f.Close()
}

// PhysicalRows counts the rows that hold at least one populated cell.
// It runs its own pass over the sheet and leaves no iterator open.
func (s *Source) PhysicalRows() (int, error) {
	rows, err := s.f.Rows(s.sheet)
	if err != nil {
		return 0, err
	}
	count := 0
	for rows.Next() {
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			rows.Close()
			return 0, err
		}
		if len(cols) > 0 {
			count++
		}
	}
	if err := rows.Error(); err != nil {
		rows.Close()
		return 0, err
	}
	return count, rows.Close()
}

// Rows returns a fresh single-pass iterator over the sheet's physical rows.
func (s *Source) Rows() (*SheetReader, error) {
	rows, err := s.f.Rows(s.sheet)
	if err != nil {
		return nil, err
	}
	return &SheetReader{src: s, rows: rows}, nil
}

// DisplayValues returns the formatted string of each cell in row, in column
// order, as a spreadsheet application would show it.
func (s *Source) DisplayValues(row int, width int) ([]string, error) {
	values := make([]string, width)
	for col := 1; col <= width; col++ {
		cellName, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return nil, err
		}
		v, err := s.f.GetCellValue(s.sheet, cellName)
		if err != nil {
			return nil, err
		}
		values[col-1] = v
	}
	return values, nil
}
