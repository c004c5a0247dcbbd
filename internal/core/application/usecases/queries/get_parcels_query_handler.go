package queries

import (
	"context"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// GetParcelsQueryHandler lists parcels from the database, scoped by the
// requesting actor's role.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listings.
// Requires a GORM database connection for query execution.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the listing. Customer actors are restricted to parcels
// they sent; staff, warehouse, driver and administrative actors see all.
// Results are sorted by tracking number for consistent output.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			tracking_number,
			sender_id,
			recipient_name,
			recipient_address,
			service_tier,
			status,
			created_at
		FROM parcels
	`

	db := h.db.WithContext(ctx)
	tx := db.Raw(baseQuery + " ORDER BY tracking_number")
	if query.Actor().Role() == actor.Customer {
		tx = db.Raw(baseQuery+" WHERE sender_id = ? ORDER BY tracking_number", query.Actor().Username())
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetParcelsQueryResponse, 0)

	for rows.Next() {
		var parcelResp GetParcelsQueryResponse
		var tn string
		var serviceTier, status int

		err = rows.Scan(
			&tn,
			&parcelResp.SenderID,
			&parcelResp.RecipientName,
			&parcelResp.RecipientAddress,
			&serviceTier,
			&status,
			&parcelResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		trackingNumber, tnErr := kernel.TrackingNumberFromString(tn)
		if tnErr != nil {
			return nil, tnErr
		}
		parcelResp.TrackingNumber = trackingNumber

		parcelResp.ServiceTier = parcel.Tier(serviceTier)
		if err = parcelResp.ServiceTier.Validate(); err != nil {
			return nil, err
		}

		parcelResp.Status = parcel.Status(status)
		if err = parcelResp.Status.Validate(); err != nil {
			return nil, err
		}

		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
