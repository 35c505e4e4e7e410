// Package parser reads typed listing data from Excel workbooks.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts typed cell data from a sheet.
// Every row up to the last used one is returned, blank rows included, so
// that row numbers stay aligned with the sheet.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := uses1904(f)
	styles := newStyleCache(f)

	result := make([]models.CellRow, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]models.Cell, len(row))

		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				cells[colIdx] = models.NewStringCell(raw)
				continue
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				cellType = excelize.CellTypeUnset
			}
			isDate := false
			if cellType == excelize.CellTypeUnset || cellType == excelize.CellTypeNumber {
				isDate = styles.isDate(sheetName, cellName)
			}
			cells[colIdx] = parseValue(raw, cellType, isDate, date1904)
		}

		result = append(result, models.CellRow{R: rowNum, Cells: cells})
	}

	return result, nil
}

// parseValue converts a raw cell value into a typed cell.
// Numeric values become dates when their number format is a date format.
func parseValue(raw string, cellType excelize.CellType, isDate, date1904 bool) models.Cell {
	if raw == "" {
		return models.NullCell()
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return models.NewStringCell(raw)
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return models.NewStringCell("TRUE")
		}
		return models.NewStringCell("FALSE")
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.NewDateCell(t)
		}
		return models.NewStringCell(raw)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.NewStringCell(raw)
	}
	if isDate {
		if f >= 0 && f < 1 {
			return models.NewStringCell(timeOfDay(f))
		}
		if t, err := excelize.ExcelDateToTime(f, date1904); err == nil {
			return models.NewDateCell(t)
		}
	}
	return models.NewNumberCell(f)
}

// timeOfDay formats a day fraction as hh:mm:ss. Serials below one carry no
// date part and are kept as a time of day.
func timeOfDay(fraction float64) string {
	secs := time.Duration(math.Round(fraction*86400)) * time.Second
	return time.Time{}.Add(secs).Format("15:04:05")
}

// parseISODate parses the ISO 8601 value of a t="d" cell.
func parseISODate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// uses1904 reports whether the workbook uses the 1904 date system.
func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
