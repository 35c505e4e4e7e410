package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
)

// utf8BOM lets spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

// CSVHeader is the header row of the CSV export.
var CSVHeader = []string{
	"Quartier", "Type", "Loyer", "Surface", "Meublé", "Nb Pièces", "DPE", "Chauffage",
	"Charges mensuelles", "Charges annuelles", "Dépôt de garantie",
	"Parking", "Cave", "Terrasse", "Clim", "Ascenseur", "Balcon",
	"État", "Date Publication", "Date Contact", "Date Visite",
	"Contact", "Téléphone", "Adresse", "Site Web", "Notes",
}

// ToCSV serializes listings as semicolon-separated values with a UTF-8 BOM.
func ToCSV(listings []models.Listing) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, l := range listings {
		if err := w.Write(csvRecord(l)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvRecord(l models.Listing) []string {
	annual := l.ChargesAnnuelles
	if annual == 0 {
		annual = l.Charges * 12
	}
	return []string{
		l.Quartier,
		l.Type,
		amount(l.Loyer),
		strconv.Itoa(l.Surface),
		yesNo(l.Meuble),
		strconv.Itoa(l.Pieces),
		l.DPE,
		l.Chauffage,
		amount(l.Charges),
		amount(annual),
		amount(l.DepotGarantie),
		yesNo(l.Parking),
		yesNo(l.Cave),
		yesNo(l.Terrasse),
		yesNo(l.Clim),
		yesNo(l.Ascenseur),
		yesNo(l.Balcon),
		l.Etat,
		l.DatePublication,
		l.DateContact,
		l.DateVisite,
		l.Contact,
		l.Tel,
		l.Adresse,
		l.SiteWeb,
		l.Notes,
	}
}

// amount leaves zero amounts empty.
func amount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Oui"
	}
	return "Non"
}
