package rentsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/parser"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/schema"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrNoHeader indicates the sheet has no header row.
var ErrNoHeader = errors.New("missing header row")

// MissingColumnsError lists required columns absent from the header row.
type MissingColumnsError = schema.MissingColumnsError

// ConversionError represents an error during conversion.
type ConversionError struct {
	SheetName string
	Stage     string // "open", "sheet", "cells", "header"
	Err       error
}

func (e *ConversionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("conversion error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(sheetName, stage string, err error) *ConversionError {
	return &ConversionError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
