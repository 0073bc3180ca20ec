package parser

import (
	"strconv"
	"time"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/xuri/excelize/v2"
)

// ReadCell classifies the cell at the 1-based coordinates. raw is the
// unformatted value already read by the row iterator.
func (s *Source) ReadCell(col, row int, raw string) (models.Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}

	formula, err := s.f.GetCellFormula(s.sheet, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	cellType, err := s.f.GetCellType(s.sheet, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	styleID, err := s.f.GetCellStyle(s.sheet, cellName)
	if err != nil {
		return models.Cell{}, err
	}

	cell := models.Cell{StyleID: styleID, RawType: cellType}
	if formula != "" {
		cell.Kind = models.CellFormula
		cell.Text = formula
		return cell, nil
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		if raw == "" {
			cell.Kind = models.CellBlank
			return cell, nil
		}
		cell.Kind = models.CellText
		cell.Text = raw
	case excelize.CellTypeBool:
		b, ok := parseBool(raw)
		if !ok {
			return unknownCell(cell, raw), nil
		}
		cell.Kind = models.CellBoolean
		cell.Bool = b
	case excelize.CellTypeDate:
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			if t, err = time.Parse("2006-01-02T15:04:05", raw); err != nil {
				return unknownCell(cell, raw), nil
			}
		}
		return s.dateCell(cell, timeToSerial(t, s.date1904), t)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if raw == "" {
			cell.Kind = models.CellBlank
			return cell, nil
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return unknownCell(cell, raw), nil
		}
		info, err := s.styles.lookup(styleID)
		if err != nil {
			return models.Cell{}, err
		}
		if info.date {
			if t, err := excelize.ExcelDateToTime(n, s.date1904); err == nil {
				return s.dateCell(cell, n, t)
			}
		}
		cell.Kind = models.CellNumber
		cell.Number = n
	default:
		return unknownCell(cell, raw), nil
	}
	return cell, nil
}

// dateCell fills in a date-formatted number, carrying the source style so it
// can be reproduced in the output workbook.
func (s *Source) dateCell(cell models.Cell, serial float64, t time.Time) (models.Cell, error) {
	info, err := s.styles.lookup(cell.StyleID)
	if err != nil {
		return models.Cell{}, err
	}
	cell.Kind = models.CellNumber
	cell.Number = serial
	cell.DateFormatted = true
	cell.Time = t
	cell.Style = info.style
	return cell, nil
}

func unknownCell(cell models.Cell, raw string) models.Cell {
	cell.Kind = models.CellUnknown
	cell.Text = raw
	return cell
}

// parseBool accepts the stored forms of a boolean cell.
func parseBool(s string) (bool, bool) {
	switch s {
	case "1", "TRUE", "true":
		return true, true
	case "0", "FALSE", "false":
		return false, true
	}
	return false, false
}

// timeToSerial converts an ISO 8601 cell value to a serial in the
// workbook's date system.
func timeToSerial(t time.Time, date1904 bool) float64 {
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	if date1904 {
		epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return t.Sub(epoch).Hours() / 24
}
