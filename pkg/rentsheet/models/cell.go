// Package models defines data structures for listing conversion.
package models

import (
	"strconv"
	"time"
)

// CellKind identifies the type of value held by a Cell.
type CellKind int

const (
	// KindNull is an empty or missing cell.
	KindNull CellKind = iota
	// KindString is a text cell. Boolean cells are read as TRUE/FALSE text.
	KindString
	// KindNumber is a numeric cell without a date number format.
	KindNumber
	// KindDate is a numeric cell carrying a date number format, or an ISO date cell.
	KindDate
)

// Cell is a single spreadsheet value tagged with its kind.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Time time.Time
}

// NullCell returns an empty cell.
func NullCell() Cell {
	return Cell{Kind: KindNull}
}

// NewStringCell returns a text cell.
func NewStringCell(s string) Cell {
	return Cell{Kind: KindString, Str: s}
}

// NewNumberCell returns a numeric cell.
func NewNumberCell(n float64) Cell {
	return Cell{Kind: KindNumber, Num: n}
}

// NewDateCell returns a date cell.
func NewDateCell(t time.Time) Cell {
	return Cell{Kind: KindDate, Time: t}
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// IsBlank reports whether the cell is null, an empty string or the number zero.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case KindNull:
		return true
	case KindString:
		return c.Str == ""
	case KindNumber:
		return c.Num == 0
	}
	return false
}

// String returns the text form of the cell.
// Numbers use the shortest decimal representation without an exponent.
func (c Cell) String() string {
	switch c.Kind {
	case KindString:
		return c.Str
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindDate:
		return c.Time.Format("2006-01-02 15:04:05")
	}
	return ""
}

// CellRow represents a single spreadsheet row.
type CellRow struct {
	// R is the row index (1-based).
	R int
	// Cells holds the row values in column order.
	Cells []Cell
}

// At returns the cell at the 0-based column index, or a null cell when
// the row is shorter than idx.
func (r CellRow) At(idx int) Cell {
	if idx < 0 || idx >= len(r.Cells) {
		return NullCell()
	}
	return r.Cells[idx]
}
