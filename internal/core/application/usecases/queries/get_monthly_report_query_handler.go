package queries

import (
	"context"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services/pricing"
	"logistics/internal/pkg/errs"
)

// GetMonthlyReportQueryHandler builds per-customer monthly cost reports.
// Loads the customer's parcels and folds them through the pricing engine.
type GetMonthlyReportQueryHandler struct {
	db     *gorm.DB
	engine pricing.PricingEngine
}

// NewGetMonthlyReportQueryHandler creates a handler for monthly report queries.
// Requires a GORM database connection and a configured pricing engine.
func NewGetMonthlyReportQueryHandler(db *gorm.DB, engine pricing.PricingEngine) GetMonthlyReportQueryHandler {
	return GetMonthlyReportQueryHandler{db: db, engine: engine}
}

// Handle builds the report. A customer actor asking about another customer
// is rejected with a permission-denied error; month filtering and summation
// are delegated to the pricing engine.
func (h GetMonthlyReportQueryHandler) Handle(
	ctx context.Context,
	query GetMonthlyReportQuery,
) (pricing.MonthlyReport, error) {
	if err := query.Validate(); err != nil {
		return pricing.MonthlyReport{}, err
	}

	requester := query.Actor()
	if requester.Role() == actor.Customer && requester.Username() != query.CustomerID() {
		return pricing.MonthlyReport{}, errs.NewPermissionDeniedError(
			requester.Role().String(), "read another customer's report",
		)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE sender_id = ?
		ORDER BY tracking_number
	`, query.CustomerID()).Rows()
	if err != nil {
		return pricing.MonthlyReport{}, err
	}
	defer rows.Close()

	parcels := make([]*parcel.Parcel, 0)

	for rows.Next() {
		aggregate, scanErr := scanParcelRow(rows)
		if scanErr != nil {
			return pricing.MonthlyReport{}, scanErr
		}
		parcels = append(parcels, aggregate)
	}

	if err = rows.Err(); err != nil {
		return pricing.MonthlyReport{}, err
	}

	return h.engine.MonthlyReport(query.CustomerID(), query.YearMonth(), parcels)
}
