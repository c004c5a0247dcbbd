package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
)

// GetCurrentStatusQueryHandler retrieves the latest tracking event of a
// parcel from the database.
type GetCurrentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentStatusQueryHandler creates a handler for current-status queries.
// Requires a GORM database connection for query execution.
func NewGetCurrentStatusQueryHandler(db *gorm.DB) GetCurrentStatusQueryHandler {
	return GetCurrentStatusQueryHandler{db: db}
}

// Handle returns the status, location, notes and timestamp of the parcel's
// most recent event. A parcel without events yields an object-not-found
// error: with no event there is no observed position to report.
func (h GetCurrentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStatusQuery,
) (GetCurrentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentStatusQueryResponse{}, err
	}

	var resp GetCurrentStatusQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			location,
			notes,
			timestamp
		FROM tracking_events
		WHERE tracking_number = ?
		ORDER BY timestamp DESC
		LIMIT 1
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(&status, &resp.Location, &resp.Notes, &resp.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCurrentStatusQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber().String(),
		)
	}
	if err != nil {
		return GetCurrentStatusQueryResponse{}, err
	}

	resp.Status = parcel.Status(status)
	if err = resp.Status.Validate(); err != nil {
		return GetCurrentStatusQueryResponse{}, err
	}

	return resp, nil
}
