package parser

import (
	"github.com/xuri/efp"
)

// RangeOperands returns the cell and range references used by a formula
// expression. An expression without references yields nil.
func RangeOperands(formula string) []string {
	ps := efp.ExcelParser()
	var refs []string
	for _, token := range ps.Parse(formula) {
		if token.TType == efp.TokenTypeOperand && token.TSubType == efp.TokenSubTypeRange {
			refs = append(refs, token.TValue)
		}
	}
	return refs
}
