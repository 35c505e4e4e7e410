package rentsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/parser"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/schema"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/transform"
	"github.com/xuri/excelize/v2"
)

// Convert reads the listings sheet of an Excel file.
func Convert(path string, opts Options) (*models.Result, error) {
	log := opts.logger()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, NewConversionError("", "open", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewConversionError("", "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheetName, err := parser.ResolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewConversionError(opts.Sheet, "sheet", err)
	}
	log.Debug("sheet resolved", "path", path, "sheet", sheetName)

	rows, err := parser.ExtractCells(f, sheetName)
	if err != nil {
		return nil, NewConversionError(sheetName, "cells", err)
	}

	result, err := ConvertRows(rows, opts)
	if err != nil {
		return nil, NewConversionError(sheetName, "header", err)
	}
	result.BookName = filepath.Base(path)
	result.SheetName = sheetName

	log.Info("conversion finished",
		"book", result.BookName,
		"sheet", result.SheetName,
		"range", result.Range,
		"processed", result.Processed,
		"exported", len(result.Listings),
		"skipped", result.Skipped,
	)
	return result, nil
}

// ConvertRows converts already extracted rows. The first row is the header;
// every following row is a listing candidate.
func ConvertRows(rows []models.CellRow, opts Options) (*models.Result, error) {
	log := opts.logger()

	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	header := make([]string, len(rows[0].Cells))
	for i, c := range rows[0].Cells {
		header[i] = c.String()
	}
	index, err := schema.NewIndex(header)
	if err != nil {
		return nil, err
	}
	log.Debug("header indexed", "columns", len(header))

	tr := transform.NewTransformer(index)
	result := &models.Result{
		Range:    parser.DataRange(rows),
		Listings: make([]models.Listing, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		result.Processed++
		listing, ok := tr.Transform(row)
		if !ok {
			result.Skipped++
			log.Debug("row skipped: empty quartier", "row", row.R)
			continue
		}
		result.Listings = append(result.Listings, listing)
	}

	return result, nil
}
