// Package models defines data structures for spreadsheet splitting.
package models

import (
	"time"

	"github.com/xuri/excelize/v2"
)

// CellKind identifies the value type of a source cell.
type CellKind int

const (
	// CellBlank is a cell that exists in the row but carries no value.
	CellBlank CellKind = iota
	// CellText is a shared, inline or cached string value.
	CellText
	// CellNumber is a numeric value, possibly displayed as a date.
	CellNumber
	// CellBoolean is a TRUE/FALSE value.
	CellBoolean
	// CellFormula is a cell holding a formula expression.
	CellFormula
	// CellUnknown is any type the splitter does not transcribe (e.g. errors).
	CellUnknown
)

func (k CellKind) String() string {
	switch k {
	case CellBlank:
		return "blank"
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellBoolean:
		return "boolean"
	case CellFormula:
		return "formula"
	default:
		return "unknown"
	}
}

// Cell represents one classified source cell.
type Cell struct {
	// Kind is the value type.
	Kind CellKind
	// Text holds the string value for CellText, the expression for
	// CellFormula and the raw value for CellUnknown.
	Text string
	// Number holds the numeric value for CellNumber (an Excel serial for dates).
	Number float64
	// Bool holds the value for CellBoolean.
	Bool bool
	// DateFormatted reports whether a CellNumber is displayed as a date or time.
	DateFormatted bool
	// Time is the calendar value of a date-formatted number.
	Time time.Time
	// StyleID is the cell style index in the source workbook.
	StyleID int
	// Style is the resolved source style. It is only populated for
	// date-formatted numbers, whose style survives transcription.
	Style *excelize.Style
	// RawType is the cell type attribute as read from the source.
	RawType excelize.CellType
}

// Row represents one physical row of the source sheet.
type Row struct {
	// Number is the 1-based sheet row number.
	Number int
	// Cells holds the row's cells by 0-based column index.
	Cells []Cell
}

// Cell returns the cell at column index i. The second result is false when
// i lies beyond the row's populated cells.
func (r Row) Cell(i int) (Cell, bool) {
	if i < 0 || i >= len(r.Cells) {
		return Cell{}, false
	}
	return r.Cells[i], true
}
