package parcelrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database. A tracking-number collision
// surfaces as ports.ErrTrackingNumberTaken joined with a value-is-invalid
// error so callers can retry with a fresh number. Requires the connection
// to be opened with TranslateError enabled.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Join(ports.ErrTrackingNumberTaken, errs.NewValueIsInvalidErrorWithCause("trackingNumber", err))
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.TrackingNumber().String(), aggregate)
	return nil
}

// Update saves an existing parcel to the database. All columns are written
// so that attributes reset to zero are persisted too.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("tracking_number = ?", dto.TrackingNumber).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", dto.TrackingNumber)
	}

	r.tracker.TrackAggregate(aggregate.TrackingNumber().String(), aggregate)
	return nil
}

// Get retrieves a parcel by tracking number.
func (r *GormParcelRepository) Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySender retrieves all parcels sent by the given customer.
func (r *GormParcelRepository) GetBySender(ctx context.Context, senderID string) ([]*parcel.Parcel, error) {
	if senderID == "" {
		return nil, errs.NewValueIsRequiredError("senderID")
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "sender_id = ?", senderID).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every parcel.
func (r *GormParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatus retrieves all parcels currently in the given status.
func (r *GormParcelRepository) GetAllInStatus(ctx context.Context, status parcel.Status) ([]*parcel.Parcel, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a parcel by tracking number.
func (r *GormParcelRepository) Delete(ctx context.Context, trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "tracking_number = ?", trackingNumber.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", trackingNumber.String())
	}

	return nil
}

func toDomainSlice(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, aggregate)
	}

	return parcels, nil
}
