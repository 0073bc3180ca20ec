package output

import (
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/parser"
	"github.com/xuri/excelize/v2"
)

// transcribe converts the first width cells of a source row into stream
// writer values. Every column gets the default style except date-formatted
// numbers, which keep a clone of their source style.
func (c *Chunk) transcribe(row models.Row, width int) ([]interface{}, error) {
	values := make([]interface{}, width)
	for i := 0; i < width; i++ {
		out := excelize.Cell{}
		cell, ok := row.Cell(i)
		if !ok {
			values[i] = out
			continue
		}
		switch cell.Kind {
		case models.CellText:
			out.Value = cell.Text
		case models.CellNumber:
			if !cell.DateFormatted {
				out.Value = cell.Number
				break
			}
			styleID, err := c.styles.clone(cell.StyleID, cell.Style)
			if err != nil {
				return nil, err
			}
			out.StyleID = styleID
			out.Value = dateValue(cell)
		case models.CellBoolean:
			out.Value = cell.Bool
		case models.CellFormula:
			out.Formula = cell.Text
			c.noteFormula(i, row.Number, cell.Text)
		case models.CellBlank:
			out.Value = ""
		default:
			c.log.Debug().
				Int("row", row.Number).
				Int("col", i+1).
				Int("type", int(cell.RawType)).
				Str("value", cell.Text).
				Msg("could not determine cell type, skipping")
		}
		values[i] = out
	}
	return values, nil
}

// dateValue returns the value written for a date-formatted number. Pure
// times (serials below one day) have no calendar date and are written as
// the fraction itself.
func dateValue(cell models.Cell) interface{} {
	if cell.Number < 1 {
		return cell.Number
	}
	return cell.Time
}

// noteFormula logs, once per column, that a copied formula references cells
// whose rows may have moved.
func (c *Chunk) noteFormula(col, row int, formula string) {
	if c.formulaRefsLogged[col] {
		return
	}
	refs := parser.RangeOperands(formula)
	if len(refs) == 0 {
		return
	}
	c.formulaRefsLogged[col] = true
	c.log.Debug().
		Int("row", row).
		Int("col", col+1).
		Str("formula", formula).
		Strs("refs", refs).
		Msg("formula copied unevaluated; references are not shifted")
}
