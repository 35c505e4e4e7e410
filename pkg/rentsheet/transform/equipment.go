package transform

import "strings"

// Equipment holds the amenities parsed from the free-text equipment column.
type Equipment struct {
	Parking  bool
	Cave     bool
	Terrasse bool
	Clim     bool
}

// ParseEquipments detects amenity keywords, case-insensitively, in text.
// Keywords are independent: any subset may be present.
func ParseEquipments(text string) Equipment {
	if text == "" {
		return Equipment{}
	}
	lower := strings.ToLower(text)
	return Equipment{
		Parking:  strings.Contains(lower, "parking"),
		Cave:     strings.Contains(lower, "cave"),
		Terrasse: strings.Contains(lower, "terrasse"),
		Clim:     strings.Contains(lower, "clim") || strings.Contains(lower, "climatisation"),
	}
}
