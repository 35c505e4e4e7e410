// Package transform converts spreadsheet rows into listings.
//
// Every coercion in this package is total: a value that does not fit the
// target type yields the caller's default instead of an error.
package transform

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
)

const isoDate = "2006-01-02"

// toNumber returns the cell as a float. Blank cells, dates and text that is
// not a decimal literal yield def.
func toNumber(c models.Cell, def float64) float64 {
	if c.IsBlank() {
		return def
	}
	var v float64
	switch c.Kind {
	case models.KindNumber:
		v = c.Num
	case models.KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Str), 64)
		if err != nil {
			return def
		}
		v = f
	default:
		return def
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// toInt returns the cell as an integer. Numbers are truncated toward zero;
// text must be a base-10 integer literal.
func toInt(c models.Cell, def int) int {
	if c.IsBlank() {
		return def
	}
	switch c.Kind {
	case models.KindNumber:
		if math.IsNaN(c.Num) || c.Num < math.MinInt64 || c.Num >= math.MaxInt64 {
			return def
		}
		return int(math.Trunc(c.Num))
	case models.KindString:
		n, err := strconv.Atoi(strings.TrimSpace(c.Str))
		if err != nil {
			return def
		}
		return n
	}
	return def
}

// toTrimmedString returns the trimmed text form of the cell, or def for a
// blank cell.
func toTrimmedString(c models.Cell, def string) string {
	if c.IsBlank() {
		return def
	}
	return strings.TrimSpace(c.String())
}

// toDate formats date cells as YYYY-MM-DD and falls back to the trimmed
// text form for anything else.
func toDate(c models.Cell, def string) string {
	if c.Kind == models.KindDate {
		return c.Time.Format(isoDate)
	}
	return toTrimmedString(c, def)
}

// round2 rounds to two decimals, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
