package models

// Listing represents one normalized rental apartment.
// Field order matches the JSON layout consumed by the dashboard.
type Listing struct {
	// ID is the sequential listing id (1-based, over kept rows only).
	ID int `json:"id"`
	// Quartier is the neighbourhood.
	Quartier string `json:"quartier"`
	// Type is the room-count category (Studio, T2, T3, T4, T5+).
	Type string `json:"type"`
	// Meuble reports a furnished rental.
	Meuble bool `json:"meublé"`
	// Loyer is the monthly rent.
	Loyer float64 `json:"loyer"`
	// Charges is the monthly share of the annual charges.
	Charges float64 `json:"charges"`
	// ChargesAnnuelles is the estimated yearly charges.
	ChargesAnnuelles float64 `json:"charges_annuelles"`
	// Surface is the living area in square metres.
	Surface int `json:"surface"`
	// Pieces is the room count.
	Pieces int `json:"pieces"`
	// DPE is the energy rating code.
	DPE string `json:"dpe"`
	// Chauffage is the heating type.
	Chauffage string `json:"chauffage"`
	// DepotGarantie is the security deposit (one month of rent).
	DepotGarantie float64 `json:"depotGarantie"`

	Parking  bool `json:"parking"`
	Cave     bool `json:"cave"`
	Terrasse bool `json:"terrasse"`
	Clim     bool `json:"clim"`
	// Ascenseur and Balcon have no source column and are always false.
	Ascenseur bool `json:"ascenseur"`
	Balcon    bool `json:"balcon"`

	// Etat is the follow-up status of the listing.
	Etat string `json:"etat"`
	// DatePublication, DateContact and DateVisite are YYYY-MM-DD when the
	// source cell is a date, the trimmed source text otherwise.
	DatePublication string `json:"datePublication"`
	DateContact     string `json:"dateContact"`
	DateVisite      string `json:"dateVisite"`

	Contact string `json:"contact"`
	// Tel is the cleaned phone number.
	Tel     string `json:"tel"`
	Adresse string `json:"adresse"`
	SiteWeb string `json:"siteWeb"`
	Notes   string `json:"notes"`
}
