package models

// Result represents the outcome of one conversion run.
type Result struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the listings were read from.
	SheetName string `json:"sheet_name"`
	// Range is the used data range of the sheet (e.g. "A1:R42").
	Range string `json:"range,omitempty"`
	// Listings holds one record per kept row, in row order.
	Listings []Listing `json:"listings"`
	// Processed is the number of data rows read (header excluded).
	Processed int `json:"processed"`
	// Skipped is the number of data rows without a quartier.
	Skipped int `json:"skipped"`
}
