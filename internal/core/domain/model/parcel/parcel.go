package parcel

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through the NewParcel or RestoreParcel factory methods.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel is the aggregate root for a shipment. It owns the parcel's
// physical attributes, its special-marker set and its lifecycle status.
//
// Parcel follows these invariants:
//   - Must have a valid tracking number, sender and recipient
//   - All physical quantities (weight, dimensions, declared value,
//     distance) are non-negative
//   - Special markers have set semantics
//   - Status transitions follow the role gate and the state-machine rules
//   - Can only be created through NewParcel or RestoreParcel
//
// After creation the status field is the only part of the parcel the
// lifecycle mutates; attributes change only through UpdateAttributes.
type Parcel struct {
	trackingNumber kernel.TrackingNumber

	senderID         string
	recipientName    string
	recipientAddress string

	// physical attributes, recorded after creation
	weightKg      float64
	lengthCm      float64
	widthCm       float64
	heightCm      float64
	declaredValue float64
	distanceKm    float64

	contentDescription string
	serviceTier        Tier
	status             Status
	markers            map[SpecialMarker]struct{}
	createdAt          time.Time

	isConstructed bool
}

// NewParcel registers a new parcel in Created status with zeroed physical
// attributes. Attributes are recorded separately via UpdateAttributes once
// the parcel has been measured.
func NewParcel(
	trackingNumber kernel.TrackingNumber,
	senderID string,
	recipientName string,
	recipientAddress string,
	serviceTier Tier,
	createdAt time.Time,
) (*Parcel, error) {
	parcel := &Parcel{
		status:        Created,
		markers:       make(map[SpecialMarker]struct{}),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setTrackingNumber(trackingNumber),
		parcel.setParties(senderID, recipientName, recipientAddress),
		parcel.setServiceTier(serviceTier),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// RestoreParcel reconstructs a parcel from persistence. The status must be
// valid; attribute validation is not repeated because stored values already
// passed it.
func RestoreParcel(
	trackingNumber kernel.TrackingNumber,
	senderID string,
	recipientName string,
	recipientAddress string,
	weightKg, lengthCm, widthCm, heightCm float64,
	declaredValue, distanceKm float64,
	contentDescription string,
	serviceTier Tier,
	status Status,
	markers []SpecialMarker,
	createdAt time.Time,
) (*Parcel, error) {
	parcel := &Parcel{
		weightKg:           weightKg,
		lengthCm:           lengthCm,
		widthCm:            widthCm,
		heightCm:           heightCm,
		declaredValue:      declaredValue,
		distanceKm:         distanceKm,
		contentDescription: contentDescription,
		markers:            make(map[SpecialMarker]struct{}, len(markers)),
		createdAt:          createdAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		parcel.setTrackingNumber(trackingNumber),
		parcel.setParties(senderID, recipientName, recipientAddress),
		parcel.setServiceTier(serviceTier),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	parcel.status = status

	for _, marker := range markers {
		if err := parcel.AddMarker(marker); err != nil {
			return nil, err
		}
	}

	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by tracking number.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.trackingNumber.IsEqual(other.trackingNumber)
}

// TrackingNumber returns the parcel's unique tracking number.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber {
	return p.trackingNumber
}

// SenderID returns the customer identifier of the sender.
func (p *Parcel) SenderID() string {
	return p.senderID
}

// RecipientName returns the recipient's name.
func (p *Parcel) RecipientName() string {
	return p.recipientName
}

// RecipientAddress returns the recipient's address.
func (p *Parcel) RecipientAddress() string {
	return p.recipientAddress
}

// WeightKg returns the actual weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// LengthCm returns the parcel length in centimeters.
func (p *Parcel) LengthCm() float64 {
	return p.lengthCm
}

// WidthCm returns the parcel width in centimeters.
func (p *Parcel) WidthCm() float64 {
	return p.widthCm
}

// HeightCm returns the parcel height in centimeters.
func (p *Parcel) HeightCm() float64 {
	return p.heightCm
}

// DeclaredValue returns the declared value of the contents.
func (p *Parcel) DeclaredValue() float64 {
	return p.declaredValue
}

// DistanceKm returns the caller-supplied shipping distance in kilometers.
func (p *Parcel) DistanceKm() float64 {
	return p.distanceKm
}

// ContentDescription returns the free-text description of the contents.
func (p *Parcel) ContentDescription() string {
	return p.contentDescription
}

// ServiceTier returns the service tier the parcel ships under.
func (p *Parcel) ServiceTier() Tier {
	return p.serviceTier
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// Markers returns the special markers as a sorted slice.
func (p *Parcel) Markers() []SpecialMarker {
	markers := make([]SpecialMarker, 0, len(p.markers))
	for marker := range p.markers {
		markers = append(markers, marker)
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i] < markers[j] })
	return markers
}

// HasMarker reports whether the parcel carries the given marker.
func (p *Parcel) HasMarker(marker SpecialMarker) bool {
	_, ok := p.markers[marker]
	return ok
}

// VolumetricWeight returns the dimensional weight in kilograms, using the
// standard air-freight divisor of 5000 for centimeter dimensions.
func (p *Parcel) VolumetricWeight() float64 {
	return p.lengthCm * p.widthCm * p.heightCm / 5000
}

// ChargeableWeight returns the weight the parcel is billed by: the greater
// of actual and volumetric weight.
func (p *Parcel) ChargeableWeight() float64 {
	if vol := p.VolumetricWeight(); vol > p.weightKg {
		return vol
	}
	return p.weightKg
}

// UpdateAttributes records the measured physical attributes of the parcel.
// All quantities must be non-negative; a violation leaves the parcel
// unchanged.
func (p *Parcel) UpdateAttributes(
	weightKg, lengthCm, widthCm, heightCm float64,
	declaredValue, distanceKm float64,
	contentDescription string,
) error {
	if err := errors.Join(
		validateNonNegative("weight", weightKg),
		validateNonNegative("length", lengthCm),
		validateNonNegative("width", widthCm),
		validateNonNegative("height", heightCm),
		validateNonNegative("declaredValue", declaredValue),
		validateNonNegative("distance", distanceKm),
	); err != nil {
		return err
	}

	p.weightKg = weightKg
	p.lengthCm = lengthCm
	p.widthCm = widthCm
	p.heightCm = heightCm
	p.declaredValue = declaredValue
	p.distanceKm = distanceKm
	p.contentDescription = contentDescription
	return nil
}

// AddMarker adds a special marker to the parcel. Adding a marker that is
// already present is a no-op (set semantics).
func (p *Parcel) AddMarker(marker SpecialMarker) error {
	if err := marker.Validate(); err != nil {
		return err
	}
	p.markers[marker] = struct{}{}
	return nil
}

// ChangeStatus moves the parcel to newStatus on behalf of the given actor.
//
// The role gate is checked first: a status outside the actor's allow-list
// fails with a PermissionDenied error. Then the state-machine rules apply:
// leaving an abnormal state for anything but a recovery status, or leaving
// the terminal state, fails with an InvalidTransition error. Admin actors
// bypass both checks.
//
// On failure the parcel is left unchanged.
func (p *Parcel) ChangeStatus(a actor.Actor, newStatus Status) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if !a.Role().IsAdmin() {
		if !statusAllowedForRole(a.Role(), newStatus) {
			return errs.NewPermissionDeniedError(
				a.Role().String(),
				fmt.Sprintf("set status %s", newStatus.String()),
			)
		}
		if err := p.status.ValidateTransition(newStatus); err != nil {
			return err
		}
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setParties(senderID, recipientName, recipientAddress string) error {
	if senderID == "" {
		return errs.NewValueIsRequiredError("senderID")
	}
	if recipientName == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if recipientAddress == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}
	p.senderID = senderID
	p.recipientName = recipientName
	p.recipientAddress = recipientAddress
	return nil
}

func (p *Parcel) setServiceTier(serviceTier Tier) error {
	if err := serviceTier.Validate(); err != nil {
		return err
	}
	p.serviceTier = serviceTier
	return nil
}

func validateNonNegative(name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name,
			fmt.Errorf("%v must not be negative", value),
		)
	}
	return nil
}
