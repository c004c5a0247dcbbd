package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// SpecialMarker flags a handling property of a parcel. Markers form a set:
// adding the same marker twice has no effect, and each marker contributes
// its configured surcharge exactly once.
type SpecialMarker int

const (
	// UnknownMarker represents an invalid or undefined marker.
	UnknownMarker SpecialMarker = iota

	// Dangerous marks hazardous goods.
	Dangerous

	// Fragile marks goods requiring careful handling.
	Fragile

	// InternationalShipment marks cross-border shipments.
	InternationalShipment

	// Perishable marks goods with limited shelf life.
	Perishable
)

func getMarkerStrings() map[SpecialMarker]string {
	return map[SpecialMarker]string{
		UnknownMarker:         "UNKNOWN",
		Dangerous:             "DANGEROUS",
		Fragile:               "FRAGILE",
		InternationalShipment: "INTERNATIONAL",
		Perishable:            "PERISHABLE",
	}
}

func getValidMarkerStrings() map[SpecialMarker]string {
	valid := getMarkerStrings()
	delete(valid, UnknownMarker)
	return valid
}

// MarkerFromString parses a special marker from its wire representation.
func MarkerFromString(s string) (SpecialMarker, error) {
	for marker, str := range getValidMarkerStrings() {
		if str == s {
			return marker, nil
		}
	}
	return UnknownMarker, errs.NewValueIsInvalidErrorWithCause(
		"specialMarker",
		fmt.Errorf("%q is not a valid special marker", s),
	)
}

// Validate checks if the SpecialMarker value is valid.
func (m SpecialMarker) Validate() error {
	if _, ok := getValidMarkerStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"special marker is invalid",
			fmt.Errorf("%d is not a valid special marker", m),
		)
	}
	return nil
}

// String returns the wire name of the marker.
func (m SpecialMarker) String() string {
	if str, ok := getMarkerStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
