// Package schema defines the required listing columns and validates a
// header row against them.
package schema

import (
	"fmt"
	"strings"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
	"golang.org/x/text/unicode/norm"
)

// Column identifies one required source column.
type Column int

const (
	Quartier Column = iota
	Type
	Prix
	Surface
	Pieces
	DPE
	Chauffage
	ChargesAnnuelles
	Equipements
	Etat
	DatePublication
	DateContact
	DateVisite
	Contact
	Tel
	Adresse
	SiteWeb
	Notes

	numColumns
)

// headers maps each Column to its exact header text.
var headers = [numColumns]string{
	Quartier:         "Quartier",
	Type:             "Type",
	Prix:             "Prix",
	Surface:          "Surface au m²",
	Pieces:           "Nb de pièces",
	DPE:              "DPE",
	Chauffage:        "Type de chauffage",
	ChargesAnnuelles: "Estimation des charges annuelles",
	Equipements:      "Parking / Cave / Terrasse / Clim",
	Etat:             "État",
	DatePublication:  "Date de publication",
	DateContact:      "Date de prise de contact",
	DateVisite:       "Rendez-vous visite",
	Contact:          "Contact",
	Tel:              "Tel",
	Adresse:          "Adresse",
	SiteWeb:          "Site web",
	Notes:            "Notes",
}

// Header returns the header text of the column.
func (c Column) Header() string {
	if c < 0 || c >= numColumns {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return headers[c]
}

// String implements fmt.Stringer.
func (c Column) String() string {
	return c.Header()
}

// Columns returns every required column in declaration order.
func Columns() []Column {
	cols := make([]Column, numColumns)
	for i := range cols {
		cols[i] = Column(i)
	}
	return cols
}

// MissingColumnsError reports required columns absent from the header row.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Index maps every required column to its 0-based position in the sheet.
type Index struct {
	pos [numColumns]int
}

// NewIndex validates header against the required columns. Header texts are
// trimmed and NFC-normalized before matching; extra columns are ignored and
// the last occurrence of a repeated header wins.
func NewIndex(header []string) (Index, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[normalizeHeader(h)] = i
	}

	var ix Index
	var missing []string
	for _, col := range Columns() {
		pos, ok := byName[normalizeHeader(col.Header())]
		if !ok {
			missing = append(missing, col.Header())
			continue
		}
		ix.pos[col] = pos
	}
	if len(missing) > 0 {
		return Index{}, &MissingColumnsError{Missing: missing}
	}
	return ix, nil
}

// Position returns the 0-based sheet column of c.
func (ix Index) Position(c Column) int {
	return ix.pos[c]
}

// Cell returns the value of column c in row.
func (ix Index) Cell(row models.CellRow, c Column) models.Cell {
	return row.At(ix.pos[c])
}

func normalizeHeader(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
