package parser

import (
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/xuri/excelize/v2"
)

// SheetReader iterates the physical rows of a Source. Rows without any
// populated cell are skipped. It is single-pass and cannot be restarted.
type SheetReader struct {
	src  *Source
	rows *excelize.Rows
	num  int
	raw  []string
	err  error
}

// Next advances to the next physical row. It returns false at the end of
// the sheet or on error; check Err afterwards.
func (r *SheetReader) Next() bool {
	if r.err != nil {
		return false
	}
	for r.rows.Next() {
		r.num++
		cols, err := r.rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			r.err = err
			return false
		}
		if len(cols) == 0 {
			continue
		}
		r.raw = cols
		return true
	}
	r.err = r.rows.Error()
	return false
}

// Row classifies every cell of the current row.
func (r *SheetReader) Row() (models.Row, error) {
	row := models.Row{Number: r.num, Cells: make([]models.Cell, len(r.raw))}
	for i, raw := range r.raw {
		cell, err := r.src.ReadCell(i+1, r.num, raw)
		if err != nil {
			return models.Row{}, err
		}
		row.Cells[i] = cell
	}
	return row, nil
}

// Err returns the error that stopped the iteration, if any.
func (r *SheetReader) Err() error {
	return r.err
}

// Close releases the iterator's temporary files.
func (r *SheetReader) Close() error {
	return r.rows.Close()
}
