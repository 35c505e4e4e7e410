package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// builtInDateFormats lists the built-in number format ids that render a
// date or a time, including the East Asian locale ranges.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// styleCache memoizes the date check per style id.
type styleCache struct {
	f     *excelize.File
	dates map[int]bool
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, dates: make(map[int]bool)}
}

// isDate reports whether the cell's number format displays a date.
func (c *styleCache) isDate(sheetName, cellName string) bool {
	styleID, err := c.f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if v, ok := c.dates[styleID]; ok {
		return v
	}

	isDate := false
	if style, err := c.f.GetStyle(styleID); err == nil && style != nil {
		isDate = builtInDateFormats[style.NumFmt]
		if !isDate && style.CustomNumFmt != nil {
			isDate = IsDateFormatCode(*style.CustomNumFmt)
		}
	}
	c.dates[styleID] = isDate
	return isDate
}

// IsDateFormatCode reports whether a number format code renders a date or
// time. Quoted literals, escaped characters and bracketed sections (colors,
// locales, conditions) are ignored; elapsed-time sections such as [h] count.
func IsDateFormatCode(code string) bool {
	// only the positive section decides
	if idx := strings.IndexByte(code, ';'); idx >= 0 {
		code = code[:idx]
	}

	var inQuote, inBracket bool
	var bracket strings.Builder
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
				switch strings.ToLower(bracket.String()) {
				case "h", "hh", "m", "mm", "s", "ss":
					return true
				}
				bracket.Reset()
				continue
			}
			bracket.WriteByte(ch)
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++ // skip the escaped or padding character
		default:
			switch ch {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}
