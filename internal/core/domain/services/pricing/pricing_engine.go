package pricing

import (
	"math"
	"time"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
)

// Rule holds the pricing parameters applied to parcels of one service tier.
//
// Fields:
//   - BaseRatePerKg: cost per kilogram of chargeable weight
//   - DistanceRatePerKm: cost per kilometer of delivery distance
//   - BaseFee: flat per-shipment charge, independent of weight and distance
//   - Surcharges: flat fee per special marker; markers without an entry
//     contribute nothing
type Rule struct {
	BaseRatePerKg     float64
	DistanceRatePerKm float64
	BaseFee           float64
	Surcharges        map[parcel.SpecialMarker]float64
}

// Breakdown is the result of a cost calculation. Callers such as billing and
// reporting need the individual components, not just the scalar total, so
// every sub-total is carried alongside the inputs that produced it.
// All monetary values and weights are rounded to two decimal places.
type Breakdown struct {
	ActualWeight     float64
	VolumetricWeight float64
	ChargeableWeight float64
	DistanceKm       float64

	WeightCost   float64
	DistanceCost float64
	Surcharge    float64
	BaseFee      float64
	Total        float64
}

// ParcelCost pairs a parcel with its calculated cost breakdown inside a
// monthly report.
type ParcelCost struct {
	TrackingNumber string
	Breakdown      Breakdown
}

// MonthlyReport aggregates the shipping costs of one customer over one
// calendar month.
type MonthlyReport struct {
	CustomerID  string
	Month       string
	ParcelCount int
	TotalCost   float64
	Parcels     []ParcelCost
}

// PricingEngine is a domain service that calculates shipping costs from a
// parcel snapshot. It is deterministic and performs no I/O: given the same
// parcel and the same rules it always produces the same breakdown.
//
// Example usage:
//
//	engine, _ := NewPricingEngine(DefaultRules())
//	breakdown, err := engine.CalculateCost(p)
//	if err != nil {
//	    // parcel was not properly constructed
//	    return
//	}
//	fmt.Println(breakdown.Total)
type PricingEngine interface {
	// CalculateCost computes the full cost breakdown for a parcel.
	// Physical quantities on the parcel are assumed non-negative; that
	// is enforced by the parcel's own constructors and mutators.
	CalculateCost(p *parcel.Parcel) (Breakdown, error)

	// MonthlyReport filters the given parcels down to those sent by
	// customerID during yearMonth (formatted "2006-01"), prices each one
	// and sums the totals. Pure aggregation, no mutation.
	MonthlyReport(customerID string, yearMonth string, parcels []*parcel.Parcel) (MonthlyReport, error)
}

var _ PricingEngine = pricingEngine{}

type pricingEngine struct {
	rules map[parcel.Tier]Rule
}

// DefaultRules returns the standard rate card: per-kilogram rates of 5.0
// (standard), 8.0 (express), 12.0 (overnight) and 15.0 (international),
// a distance rate of 2.0 per kilometer, a flat base fee of 50.0 and flat
// surcharges for dangerous (20.0), fragile (10.0) and international (30.0)
// markers.
func DefaultRules() map[parcel.Tier]Rule {
	surcharges := map[parcel.SpecialMarker]float64{
		parcel.Dangerous:             20.0,
		parcel.Fragile:               10.0,
		parcel.InternationalShipment: 30.0,
	}

	rule := func(ratePerKg float64) Rule {
		return Rule{
			BaseRatePerKg:     ratePerKg,
			DistanceRatePerKm: 2.0,
			BaseFee:           50.0,
			Surcharges:        surcharges,
		}
	}

	return map[parcel.Tier]Rule{
		parcel.Standard:      rule(5.0),
		parcel.Express:       rule(8.0),
		parcel.Overnight:     rule(12.0),
		parcel.International: rule(15.0),
	}
}

// NewPricingEngine creates a PricingEngine from a rate card. A rule for the
// standard tier is mandatory because it doubles as the fallback for tiers
// without a configured rule.
func NewPricingEngine(rules map[parcel.Tier]Rule) (PricingEngine, error) {
	if len(rules) == 0 {
		return nil, errs.NewValueIsRequiredError("rules")
	}
	if _, ok := rules[parcel.Standard]; !ok {
		return nil, errs.NewValueIsRequiredError("rules[standard]")
	}

	for tier, rule := range rules {
		if rule.BaseRatePerKg < 0 || rule.DistanceRatePerKm < 0 || rule.BaseFee < 0 {
			return nil, errs.NewValueIsInvalidError("rules[" + tier.String() + "]")
		}
	}

	return pricingEngine{rules: rules}, nil
}

func (e pricingEngine) CalculateCost(p *parcel.Parcel) (Breakdown, error) {
	if err := p.Validate(); err != nil {
		return Breakdown{}, err
	}

	rule := e.ruleFor(p.ServiceTier())

	chargeable := p.ChargeableWeight()
	weightCost := round2(chargeable * rule.BaseRatePerKg)
	distanceCost := round2(p.DistanceKm() * rule.DistanceRatePerKm)

	var surcharge float64
	for _, marker := range p.Markers() {
		surcharge += rule.Surcharges[marker]
	}
	surcharge = round2(surcharge)

	baseFee := round2(rule.BaseFee)

	return Breakdown{
		ActualWeight:     round2(p.WeightKg()),
		VolumetricWeight: round2(p.VolumetricWeight()),
		ChargeableWeight: round2(chargeable),
		DistanceKm:       round2(p.DistanceKm()),
		WeightCost:       weightCost,
		DistanceCost:     distanceCost,
		Surcharge:        surcharge,
		BaseFee:          baseFee,
		Total:            round2(baseFee + weightCost + distanceCost + surcharge),
	}, nil
}

func (e pricingEngine) MonthlyReport(customerID string, yearMonth string, parcels []*parcel.Parcel) (MonthlyReport, error) {
	if customerID == "" {
		return MonthlyReport{}, errs.NewValueIsRequiredError("customerID")
	}

	month, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return MonthlyReport{}, errs.NewValueIsInvalidErrorWithCause("yearMonth", err)
	}

	report := MonthlyReport{
		CustomerID: customerID,
		Month:      yearMonth,
		Parcels:    []ParcelCost{},
	}

	for _, p := range parcels {
		if p.SenderID() != customerID {
			continue
		}

		created := p.CreatedAt()
		if created.Year() != month.Year() || created.Month() != month.Month() {
			continue
		}

		breakdown, err := e.CalculateCost(p)
		if err != nil {
			return MonthlyReport{}, err
		}

		report.Parcels = append(report.Parcels, ParcelCost{
			TrackingNumber: p.TrackingNumber().String(),
			Breakdown:      breakdown,
		})
		report.TotalCost = round2(report.TotalCost + breakdown.Total)
	}

	report.ParcelCount = len(report.Parcels)

	return report, nil
}

// ruleFor resolves the rule for a tier, falling back to the standard tier
// when the tier has no configured rule.
func (e pricingEngine) ruleFor(tier parcel.Tier) Rule {
	if rule, ok := e.rules[tier]; ok {
		return rule
	}
	return e.rules[parcel.Standard]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
