package eventrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
type GormTrackingEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormTrackingEventRepository creates a new GORM tracking-event repository.
func NewGormTrackingEventRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new event to the trail.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID().String(), event)
	return nil
}

// GetByTrackingNumber retrieves a parcel's full event trail, most recent
// first. A parcel without events yields an empty slice.
func (r *GormTrackingEventRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) ([]*tracking.Event, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&dtos, "tracking_number = ?", trackingNumber.String()).
		Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		events = append(events, event)
	}

	return events, nil
}

// GetLatest retrieves the most recent event of a parcel.
func (r *GormTrackingEventRepository) GetLatest(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) (*tracking.Event, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto EventDTO
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		First(&dto, "tracking_number = ?", trackingNumber.String()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByTrackingNumber removes a parcel's full event trail. Deleting a
// trail that is already empty is not an error.
func (r *GormTrackingEventRepository) DeleteByTrackingNumber(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&EventDTO{}, "tracking_number = ?", trackingNumber.String()).
		Error
}
