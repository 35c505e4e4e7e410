package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
	"github.com/ukaji3/rentsheet/pkg/rentsheet/schema"
)

func newTestTransformer(t *testing.T) *Transformer {
	t.Helper()
	var header []string
	for _, c := range schema.Columns() {
		header = append(header, c.Header())
	}
	ix, err := schema.NewIndex(header)
	require.NoError(t, err)
	return NewTransformer(ix)
}

// row lays cells out in schema column order, which matches the test header.
func row(r int, cells map[schema.Column]models.Cell) models.CellRow {
	out := make([]models.Cell, len(schema.Columns()))
	for c, v := range cells {
		out[c] = v
	}
	return models.CellRow{R: r, Cells: out}
}

func str(s string) models.Cell     { return models.NewStringCell(s) }
func num(n float64) models.Cell    { return models.NewNumberCell(n) }
func date(t time.Time) models.Cell { return models.NewDateCell(t) }

func TestTransformFullRow(t *testing.T) {
	tr := newTestTransformer(t)

	got, ok := tr.Transform(row(2, map[schema.Column]models.Cell{
		schema.Quartier:         str("  Antigone "),
		schema.Type:             str("Meublé"),
		schema.Prix:             num(850),
		schema.Surface:          num(45),
		schema.Pieces:           num(2),
		schema.DPE:              str(" d "),
		schema.Chauffage:        str("Électrique "),
		schema.ChargesAnnuelles: num(1200),
		schema.Equipements:      str("Parking, Cave, Clim"),
		schema.Etat:             str("Nouveau"),
		schema.DatePublication:  date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		schema.DateContact:      str(" 16/01 "),
		schema.Contact:          str("Agence Sud"),
		schema.Tel:              str("=33467603160"),
		schema.Adresse:          str("1 rue de la Loge"),
		schema.SiteWeb:          str("https://example.fr/annonce/1"),
		schema.Notes:            str(" lumineux "),
	}))
	require.True(t, ok)

	assert.Equal(t, models.Listing{
		ID:               1,
		Quartier:         "Antigone",
		Type:             "T2",
		Meuble:           true,
		Loyer:            850,
		Charges:          100,
		ChargesAnnuelles: 1200,
		Surface:          45,
		Pieces:           2,
		DPE:              "D",
		Chauffage:        "Électrique",
		DepotGarantie:    850,
		Parking:          true,
		Cave:             true,
		Clim:             true,
		Etat:             "Nouveau",
		DatePublication:  "2024-01-15",
		DateContact:      "16/01",
		Contact:          "Agence Sud",
		Tel:              "04 67 60 31 60",
		Adresse:          "1 rue de la Loge",
		SiteWeb:          "https://example.fr/annonce/1",
		Notes:            "lumineux",
	}, got)
}

func TestTransformSkipsBlankQuartier(t *testing.T) {
	tr := newTestTransformer(t)

	for _, q := range []models.Cell{models.NullCell(), str(""), str("   \t")} {
		_, ok := tr.Transform(row(2, map[schema.Column]models.Cell{
			schema.Quartier: q,
			schema.Prix:     num(500),
		}))
		assert.False(t, ok, "quartier %q", q.String())
	}
	assert.Equal(t, 0, tr.Count())
}

func TestTransformSequentialIDs(t *testing.T) {
	tr := newTestTransformer(t)

	quartiers := []string{"Ecusson", "", "Beaux-Arts", " ", "Boutonnet"}
	var ids []int
	for i, q := range quartiers {
		l, ok := tr.Transform(row(i+2, map[schema.Column]models.Cell{schema.Quartier: str(q)}))
		if ok {
			ids = append(ids, l.ID)
		}
	}

	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, 3, tr.Count())
}

func TestTransformDefaults(t *testing.T) {
	tr := newTestTransformer(t)

	got, ok := tr.Transform(row(2, map[schema.Column]models.Cell{
		schema.Quartier:         str("Figuerolles"),
		schema.Type:             str("Vide"),
		schema.Prix:             str("à négocier"),
		schema.Surface:          str("environ 40"),
		schema.ChargesAnnuelles: num(-50),
	}))
	require.True(t, ok)

	assert.False(t, got.Meuble)
	assert.Equal(t, 0.0, got.Loyer)
	assert.Equal(t, 0.0, got.DepotGarantie)
	assert.Equal(t, 0, got.Surface)
	assert.Equal(t, 0, got.Pieces)
	assert.Equal(t, "T5+", got.Type)
	assert.Equal(t, 0.0, got.Charges)
	assert.Equal(t, -50.0, got.ChargesAnnuelles)
	assert.Empty(t, got.DPE)
	assert.Empty(t, got.Tel)
	assert.Empty(t, got.DatePublication)
	assert.False(t, got.Ascenseur)
	assert.False(t, got.Balcon)
	assert.Equal(t, Equipment{}, Equipment{Parking: got.Parking, Cave: got.Cave, Terrasse: got.Terrasse, Clim: got.Clim})
}

func TestTransformShortRow(t *testing.T) {
	tr := newTestTransformer(t)

	got, ok := tr.Transform(models.CellRow{R: 3, Cells: []models.Cell{str("Antigone")}})
	require.True(t, ok)
	assert.Equal(t, "Antigone", got.Quartier)
	assert.Empty(t, got.Notes)
}

func TestTransformChargesRounding(t *testing.T) {
	tr := newTestTransformer(t)

	got, ok := tr.Transform(row(2, map[schema.Column]models.Cell{
		schema.Quartier:         str("Antigone"),
		schema.ChargesAnnuelles: str("1000"),
	}))
	require.True(t, ok)
	assert.Equal(t, 83.33, got.Charges)
	assert.Equal(t, 1000.0, got.ChargesAnnuelles)
}

func TestTransformPhoneFromNumberCell(t *testing.T) {
	tr := newTestTransformer(t)

	got, ok := tr.Transform(row(2, map[schema.Column]models.Cell{
		schema.Quartier: str("Antigone"),
		schema.Tel:      num(33467603160),
	}))
	require.True(t, ok)
	assert.Equal(t, "04 67 60 31 60", got.Tel)
}
