package output

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/excelize/v2"
)

// styleCloner registers source styles in an output workbook, once per
// source style ID.
type styleCloner struct {
	f   *excelize.File
	ids map[int]int
}

func newStyleCloner(f *excelize.File) *styleCloner {
	return &styleCloner{f: f, ids: make(map[int]int)}
}

// clone returns the output style ID for a source style. NewStyle normalizes
// the struct it is given, so it receives a deep copy and the source style
// stays intact for the next output workbook.
func (s *styleCloner) clone(sourceID int, style *excelize.Style) (int, error) {
	if style == nil {
		return 0, nil
	}
	if id, ok := s.ids[sourceID]; ok {
		return id, nil
	}
	var cp excelize.Style
	if err := deepcopy.Copy(&cp, *style); err != nil {
		return 0, fmt.Errorf("copy style %d: %w", sourceID, err)
	}
	id, err := s.f.NewStyle(&cp)
	if err != nil {
		// Fall back to the number format alone, which is what keeps the
		// value displayed as a date.
		id, err = s.f.NewStyle(numFmtOnly(style))
		if err != nil {
			return 0, fmt.Errorf("register style %d: %w", sourceID, err)
		}
	}
	s.ids[sourceID] = id
	return id, nil
}

func numFmtOnly(style *excelize.Style) *excelize.Style {
	out := &excelize.Style{NumFmt: style.NumFmt}
	if style.CustomNumFmt != nil {
		code := *style.CustomNumFmt
		out.CustomNumFmt = &code
	}
	return out
}
