package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
)

func TestSummarize(t *testing.T) {
	listings := []models.Listing{
		{Type: "T2", Etat: "Nouveau", Meuble: true, Loyer: 800, Surface: 40},
		{Type: "T2", Etat: "Contacté", Loyer: 900, Surface: 45},
		{Type: "Studio", Etat: "Nouveau", Loyer: 500, Surface: 20},
		{Type: "T5+", Loyer: 0, Surface: 0},
	}

	s := Summarize(listings)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Furnished)
	assert.Equal(t, map[string]int{"T2": 2, "Studio": 1, "T5+": 1}, s.ByType)
	assert.Equal(t, map[string]int{"Nouveau": 2, "Contacté": 1, "(vide)": 1}, s.ByEtat)

	assert.Equal(t, Distribution{Count: 3, Mean: 733.33, Median: 800, Min: 500, Max: 900}, s.Loyer)
	assert.Equal(t, Distribution{Count: 3, Mean: 35, Median: 40, Min: 20, Max: 45}, s.Surface)
	// (20 + 20 + 25) / 3
	assert.Equal(t, 21.67, s.LoyerPerM2)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.Total)
	assert.Empty(t, s.ByType)
	assert.Equal(t, Distribution{}, s.Loyer)
	assert.Zero(t, s.LoyerPerM2)
}
