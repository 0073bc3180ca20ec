package parser

import (
	"reflect"
	"testing"
)

func TestRangeOperands(t *testing.T) {
	tests := []struct {
		formula  string
		expected []string
	}{
		{"SUM(A1:B2)", []string{"A1:B2"}},
		{"A1*2", []string{"A1"}},
		{"1+2", nil},
		{`"text"&"more"`, nil},
		{"VLOOKUP(A2,Sheet2!A:C,3,FALSE)", []string{"A2", "Sheet2!A:C"}},
	}

	for _, tt := range tests {
		if got := RangeOperands(tt.formula); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("RangeOperands(%q) = %v, expected %v", tt.formula, got, tt.expected)
		}
	}
}
