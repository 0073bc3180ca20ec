package parser

import (
	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// isBuiltInDateFmt reports whether a built-in number format ID displays a
// date or time. Language-specific IDs follow the ECMA-376 East Asian and
// Thai tables.
func isBuiltInDateFmt(id int) bool {
	switch {
	case 14 <= id && id <= 22:
		return true
	case 27 <= id && id <= 36:
		return true
	case 45 <= id && id <= 47:
		return true
	case 50 <= id && id <= 58:
		return true
	case 71 <= id && id <= 81:
		return true
	}
	return false
}

// IsDateFormatCode reports whether a custom number format code renders a
// date, time or elapsed time in any of its sections.
func IsDateFormatCode(code string) bool {
	if code == "" {
		return false
	}
	p := nfp.NumberFormatParser()
	for _, section := range p.Parse(code) {
		for _, token := range section.Items {
			switch token.TType {
			case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
				return true
			}
		}
	}
	return false
}

// IsDateStyle reports whether a style displays numbers as dates.
func IsDateStyle(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return IsDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltInDateFmt(style.NumFmt)
}

type styleInfo struct {
	date  bool
	style *excelize.Style
}

// styleCache memoizes date detection per source style ID.
type styleCache struct {
	f     *excelize.File
	infos map[int]styleInfo
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, infos: make(map[int]styleInfo)}
}

func (c *styleCache) lookup(id int) (styleInfo, error) {
	if info, ok := c.infos[id]; ok {
		return info, nil
	}
	style, err := c.f.GetStyle(id)
	if err != nil {
		return styleInfo{}, err
	}
	info := styleInfo{date: IsDateStyle(style), style: style}
	c.infos[id] = info
	return info, nil
}
