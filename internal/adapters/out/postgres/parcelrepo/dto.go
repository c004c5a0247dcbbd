// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking number is the primary key; sender and status are indexed for
// the listing and watch-job queries. Status and tier are stored as integer
// codes, markers as a comma-joined string of marker names. The domain model
// never sees these encodings.
type ParcelDTO struct {
	TrackingNumber   string `gorm:"primaryKey;size:19"`
	SenderID         string `gorm:"index"`
	RecipientName    string
	RecipientAddress string

	WeightKg      float64
	LengthCm      float64
	WidthCm       float64
	HeightCm      float64
	DeclaredValue float64
	DistanceKm    float64

	ContentDescription string
	ServiceTier        int
	Status             int `gorm:"index"`
	Markers            string
	CreatedAt          time.Time
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	markers := aggregate.Markers()
	names := make([]string, 0, len(markers))
	for _, marker := range markers {
		names = append(names, marker.String())
	}

	return ParcelDTO{
		TrackingNumber:     aggregate.TrackingNumber().String(),
		SenderID:           aggregate.SenderID(),
		RecipientName:      aggregate.RecipientName(),
		RecipientAddress:   aggregate.RecipientAddress(),
		WeightKg:           aggregate.WeightKg(),
		LengthCm:           aggregate.LengthCm(),
		WidthCm:            aggregate.WidthCm(),
		HeightCm:           aggregate.HeightCm(),
		DeclaredValue:      aggregate.DeclaredValue(),
		DistanceKm:         aggregate.DistanceKm(),
		ContentDescription: aggregate.ContentDescription(),
		ServiceTier:        int(aggregate.ServiceTier()),
		Status:             int(aggregate.Status()),
		Markers:            strings.Join(names, ","),
		CreatedAt:          aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including status and markers using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	var markers []parcel.SpecialMarker
	if dto.Markers != "" {
		for _, name := range strings.Split(dto.Markers, ",") {
			marker, markerErr := parcel.MarkerFromString(name)
			if markerErr != nil {
				return nil, markerErr
			}
			markers = append(markers, marker)
		}
	}

	return parcel.RestoreParcel(
		trackingNumber,
		dto.SenderID,
		dto.RecipientName,
		dto.RecipientAddress,
		dto.WeightKg, dto.LengthCm, dto.WidthCm, dto.HeightCm,
		dto.DeclaredValue, dto.DistanceKm,
		dto.ContentDescription,
		parcel.Tier(dto.ServiceTier),
		parcel.Status(dto.Status),
		markers,
		dto.CreatedAt,
	)
}
