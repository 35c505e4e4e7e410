package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ResolveSheet returns the sheet to read. An empty name selects the
// workbook's active sheet.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		active := f.GetSheetName(f.GetActiveSheetIndex())
		if active == "" {
			sheets := f.GetSheetList()
			if len(sheets) == 0 {
				return "", ErrSheetNotFound
			}
			active = sheets[0]
		}
		return active, nil
	}

	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrSheetNotFound, name, err)
	}
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return name, nil
}
