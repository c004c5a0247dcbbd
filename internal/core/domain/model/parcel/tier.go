package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Tier represents the service level a parcel is shipped under.
// Pricing rules are keyed by tier; an unrecognized tier falls back to
// Standard explicitly in the pricing engine.
type Tier int

const (
	// UnknownTier represents an invalid or undefined tier.
	UnknownTier Tier = iota

	// Standard is the default ground service.
	Standard

	// Express is accelerated delivery.
	Express

	// Overnight is next-day delivery.
	Overnight

	// International is cross-border delivery.
	International
)

func getTierStrings() map[Tier]string {
	return map[Tier]string{
		UnknownTier:   "UNKNOWN",
		Standard:      "STANDARD",
		Express:       "EXPRESS",
		Overnight:     "OVERNIGHT",
		International: "INTERNATIONAL",
	}
}

func getValidTierStrings() map[Tier]string {
	valid := getTierStrings()
	delete(valid, UnknownTier)
	return valid
}

// TierFromString parses a service tier from its wire representation.
func TierFromString(s string) (Tier, error) {
	for tier, str := range getValidTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return UnknownTier, errs.NewValueIsInvalidErrorWithCause(
		"serviceTier",
		fmt.Errorf("%q is not a valid service tier", s),
	)
}

// Validate checks if the Tier value is valid.
func (t Tier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service tier is invalid",
			fmt.Errorf("%d is not a valid service tier", t),
		)
	}
	return nil
}

// String returns the wire name of the tier.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
