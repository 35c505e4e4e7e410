package transform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/schema"
)

// Furnished is the Type cell value marking a furnished rental.
const Furnished = "Meublé"

// Transformer converts data rows into listings and numbers them.
// A Transformer is not safe for concurrent use.
type Transformer struct {
	index  schema.Index
	upper  cases.Caser
	nextID int
}

// NewTransformer returns a Transformer reading columns through index.
// The first listing it produces gets id 1.
func NewTransformer(index schema.Index) *Transformer {
	return &Transformer{
		index:  index,
		upper:  cases.Upper(language.French),
		nextID: 1,
	}
}

// Transform converts row into a listing. It returns false, and does not
// consume an id, when the row has no quartier.
func (t *Transformer) Transform(row models.CellRow) (models.Listing, bool) {
	cell := func(c schema.Column) models.Cell {
		return t.index.Cell(row, c)
	}

	quartier := toTrimmedString(cell(schema.Quartier), "")
	if quartier == "" {
		return models.Listing{}, false
	}

	loyer := toNumber(cell(schema.Prix), 0)
	pieces := toInt(cell(schema.Pieces), 0)

	annual := toNumber(cell(schema.ChargesAnnuelles), 0)
	var monthly float64
	if annual > 0 {
		monthly = annual / 12
	}

	dpe := toTrimmedString(cell(schema.DPE), "")
	if dpe != "" {
		dpe = t.upper.String(dpe)
	}

	equip := ParseEquipments(toTrimmedString(cell(schema.Equipements), ""))

	listing := models.Listing{
		ID:               t.nextID,
		Quartier:         quartier,
		Type:             TypeFormat(pieces),
		Meuble:           isFurnished(cell(schema.Type)),
		Loyer:            loyer,
		Charges:          round2(monthly),
		ChargesAnnuelles: round2(annual),
		Surface:          toInt(cell(schema.Surface), 0),
		Pieces:           pieces,
		DPE:              dpe,
		Chauffage:        toTrimmedString(cell(schema.Chauffage), ""),
		DepotGarantie:    loyer,
		Parking:          equip.Parking,
		Cave:             equip.Cave,
		Terrasse:         equip.Terrasse,
		Clim:             equip.Clim,
		Etat:             toTrimmedString(cell(schema.Etat), ""),
		DatePublication:  toDate(cell(schema.DatePublication), ""),
		DateContact:      toDate(cell(schema.DateContact), ""),
		DateVisite:       toDate(cell(schema.DateVisite), ""),
		Contact:          toTrimmedString(cell(schema.Contact), ""),
		Tel:              CleanPhoneNumber(toTrimmedString(cell(schema.Tel), "")),
		Adresse:          toTrimmedString(cell(schema.Adresse), ""),
		SiteWeb:          toTrimmedString(cell(schema.SiteWeb), ""),
		Notes:            toTrimmedString(cell(schema.Notes), ""),
	}
	t.nextID++
	return listing, true
}

// Count returns the number of listings produced so far.
func (t *Transformer) Count() int {
	return t.nextID - 1
}

func isFurnished(c models.Cell) bool {
	return norm.NFC.String(strings.TrimSpace(c.String())) == Furnished
}
