package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// GetTrackingHistoryQueryHandler retrieves parcel event trails from the database.
//
// Example:
//
//	handler := NewGetTrackingHistoryQueryHandler(db)
//	query, _ := NewGetTrackingHistoryQuery(tn)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get history: %v", err)
//	    return err
//	}
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the parcel's events most recent
// first. Returns an empty slice when no events are recorded.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]GetTrackingHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetTrackingHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			location,
			vehicle_id,
			warehouse_id,
			operator,
			notes,
			timestamp
		FROM tracking_events
		WHERE tracking_number = ?
		ORDER BY timestamp DESC
	`, query.TrackingNumber().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var eventResp GetTrackingHistoryQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&eventResp.Location,
			&eventResp.VehicleID,
			&eventResp.WarehouseID,
			&eventResp.Operator,
			&eventResp.Notes,
			&eventResp.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.EventIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		eventResp.ID = eventID

		eventResp.Status = parcel.Status(status)
		if err = eventResp.Status.Validate(); err != nil {
			return nil, err
		}

		events = append(events, eventResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
