package parser

import (
	"fmt"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
	"github.com/xuri/excelize/v2"
)

// DataRange returns the bounding box of non-empty cells as an A1 range
// (e.g., "A1:R42"), or "" when every cell is empty.
func DataRange(rows []models.CellRow) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
// Rows are 1-based, columns 0-based.
func findDataBounds(rows []models.CellRow) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for colIdx, cell := range row.Cells {
			if cell.IsNull() {
				continue
			}
			if minRow < 0 || row.R < minRow {
				minRow = row.R
			}
			if maxRow < 0 || row.R > maxRow {
				maxRow = row.R
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
