// Package label defines the warehouse-location record and the
// temperature-zone classification applied to location codes.
package label

import "strings"

// Record is one warehouse-location row from the input table.
// Records are immutable values; each record produces exactly one label.
type Record struct {
	// Aisle is the aisle display text (typically short alphanumeric).
	Aisle string

	// Ambient is the bay/slot display text shown in the middle section.
	Ambient string

	// BGColor is a color-name token for the middle section fill.
	BGColor string

	// CodeValue is the full location code, encoded verbatim into the QR
	// image and used to classify the temperature zone.
	CodeValue string
}

// Zone header texts returned by ClassifyZone.
const (
	ZoneAmbient = "AMBIENT"
	ZoneChilled = "CHILLED"
	ZoneFreezer = "FREEZER"
)

// ClassifyZone maps a location code to its temperature-zone header.
//
// Matching is literal substring containment, checked in a fixed priority
// order with the first match winning:
//
//	STOWAGE → AMBIENT
//	CHILLER → CHILLED
//	FROZEN  → FREEZER
//
// A code matching none of the markers (including the empty string)
// classifies as AMBIENT. The ordering matters: a code containing both
// "STOWAGE" and "CHILLER" is AMBIENT because the STOWAGE check runs first.
func ClassifyZone(code string) string {
	switch {
	case strings.Contains(code, "STOWAGE"):
		return ZoneAmbient
	case strings.Contains(code, "CHILLER"):
		return ZoneChilled
	case strings.Contains(code, "FROZEN"):
		return ZoneFreezer
	default:
		return ZoneAmbient
	}
}
