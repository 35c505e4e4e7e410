// Package summary computes aggregate figures over converted listings.
package summary

import (
	"github.com/montanaflynn/stats"

	"github.com/ukaji3/rentsheet/pkg/rentsheet/models"
)

// Distribution describes a set of known (positive) values.
type Distribution struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary aggregates a listing set.
type Summary struct {
	Total     int            `json:"total"`
	Furnished int            `json:"furnished"`
	ByType    map[string]int `json:"by_type"`
	ByEtat    map[string]int `json:"by_etat"`
	Loyer     Distribution   `json:"loyer"`
	Surface   Distribution   `json:"surface"`
	// LoyerPerM2 is the mean rent per square metre over listings with
	// both a rent and a surface.
	LoyerPerM2 float64 `json:"loyer_per_m2"`
}

// Summarize aggregates listings. Zero rents and surfaces are treated as
// unknown and left out of the distributions.
func Summarize(listings []models.Listing) Summary {
	s := Summary{
		Total:  len(listings),
		ByType: make(map[string]int),
		ByEtat: make(map[string]int),
	}

	var loyers, surfaces, perM2 stats.Float64Data
	for _, l := range listings {
		s.ByType[l.Type]++
		etat := l.Etat
		if etat == "" {
			etat = "(vide)"
		}
		s.ByEtat[etat]++
		if l.Meuble {
			s.Furnished++
		}
		if l.Loyer > 0 {
			loyers = append(loyers, l.Loyer)
		}
		if l.Surface > 0 {
			surfaces = append(surfaces, float64(l.Surface))
		}
		if l.Loyer > 0 && l.Surface > 0 {
			perM2 = append(perM2, l.Loyer/float64(l.Surface))
		}
	}

	s.Loyer = describe(loyers)
	s.Surface = describe(surfaces)
	if mean, err := perM2.Mean(); err == nil {
		s.LoyerPerM2 = round(mean)
	}
	return s
}

// describe returns the zero Distribution for empty input.
func describe(data stats.Float64Data) Distribution {
	if data.Len() == 0 {
		return Distribution{}
	}
	d := Distribution{Count: data.Len()}
	if v, err := data.Mean(); err == nil {
		d.Mean = round(v)
	}
	if v, err := data.Median(); err == nil {
		d.Median = round(v)
	}
	if v, err := data.Min(); err == nil {
		d.Min = v
	}
	if v, err := data.Max(); err == nil {
		d.Max = v
	}
	return d
}

func round(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}
