package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services/pricing"
	"logistics/internal/pkg/errs"
)

// CalculateCostQueryHandler prices parcels by loading their snapshot from
// the database and delegating the arithmetic to the pricing engine.
type CalculateCostQueryHandler struct {
	db     *gorm.DB
	engine pricing.PricingEngine
}

// NewCalculateCostQueryHandler creates a handler for cost queries.
// Requires a GORM database connection and a configured pricing engine.
func NewCalculateCostQueryHandler(db *gorm.DB, engine pricing.PricingEngine) CalculateCostQueryHandler {
	return CalculateCostQueryHandler{db: db, engine: engine}
}

// Handle loads the parcel snapshot and returns its full cost breakdown.
// Fails with an object-not-found error for unknown tracking numbers.
func (h CalculateCostQueryHandler) Handle(
	ctx context.Context,
	query CalculateCostQuery,
) (pricing.Breakdown, error) {
	if err := query.Validate(); err != nil {
		return pricing.Breakdown{}, err
	}

	aggregate, err := loadParcel(ctx, h.db, query.TrackingNumber())
	if err != nil {
		return pricing.Breakdown{}, err
	}

	return h.engine.CalculateCost(aggregate)
}

// loadParcel reads one parcel row and restores the aggregate from it.
// Shared by the cost and report handlers, which need the aggregate rather
// than a flat read model.
func loadParcel(ctx context.Context, db *gorm.DB, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			sender_id,
			recipient_name,
			recipient_address,
			weight_kg,
			length_cm,
			width_cm,
			height_cm,
			declared_value,
			distance_km,
			content_description,
			service_tier,
			status,
			markers,
			created_at
		FROM parcels
		WHERE tracking_number = ?
	`, trackingNumber.String()).Row()

	aggregate, err := scanParcelRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
	}

	return aggregate, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParcelRow(row rowScanner) (*parcel.Parcel, error) {
	var (
		tn, senderID, recipientName, recipientAddress   string
		weightKg, lengthCm, widthCm, heightCm           float64
		declaredValue, distanceKm                       float64
		contentDescription, markers                     string
		serviceTier, status                             int
		createdAt                                       time.Time
	)

	if err := row.Scan(
		&tn, &senderID, &recipientName, &recipientAddress,
		&weightKg, &lengthCm, &widthCm, &heightCm,
		&declaredValue, &distanceKm,
		&contentDescription, &serviceTier, &status, &markers,
		&createdAt,
	); err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(tn)
	if err != nil {
		return nil, err
	}

	markerValues, err := parseMarkers(markers)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		trackingNumber,
		senderID, recipientName, recipientAddress,
		weightKg, lengthCm, widthCm, heightCm,
		declaredValue, distanceKm,
		contentDescription,
		parcel.Tier(serviceTier),
		parcel.Status(status),
		markerValues,
		createdAt,
	)
}

// parseMarkers decodes the comma-joined marker column.
func parseMarkers(s string) ([]parcel.SpecialMarker, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	markers := make([]parcel.SpecialMarker, 0, len(parts))
	for _, part := range parts {
		marker, err := parcel.MarkerFromString(part)
		if err != nil {
			return nil, err
		}
		markers = append(markers, marker)
	}

	return markers, nil
}
