package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	trackingNumberPrefix    = "TRK"
	trackingNumberDateLen   = 8
	trackingNumberSuffixLen = 8
)

// ErrTrackingNumberIsNotConstructed indicates that a TrackingNumber was not
// created through NewTrackingNumber or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString",
)

// TrackingNumber is a value object that uniquely identifies a parcel.
// Its string form is "TRK" followed by the creation date (yyyymmdd) and an
// 8-character uppercase hexadecimal suffix, e.g. "TRK20260831A1B2C3D4".
//
// The suffix is random; uniqueness across live parcels is enforced by the
// store's unique constraint, and callers are expected to retry with a fresh
// number on a duplicate.
//
// The zero value of TrackingNumber is invalid and must be constructed using
// one of the factory functions.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a tracking number dated at the given time.
//
// Example:
//
//	tn := kernel.NewTrackingNumber(time.Now())
//	fmt.Println(tn.String()) // e.g. "TRK202608315E8400E2"
func NewTrackingNumber(now time.Time) TrackingNumber {
	id := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(id[:])[:trackingNumberSuffixLen])
	return TrackingNumber{
		value: trackingNumberPrefix + now.Format("20060102") + suffix,
	}
}

// TrackingNumberFromString parses a tracking number from its string form.
// It is typically used when reconstructing parcels from persistence or when
// accepting tracking numbers from external callers.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !strings.HasPrefix(s, trackingNumberPrefix) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q does not start with %q", s, trackingNumberPrefix),
		)
	}
	body := s[len(trackingNumberPrefix):]
	if len(body) != trackingNumberDateLen+trackingNumberSuffixLen {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q has unexpected length %d", s, len(s)),
		)
	}
	if _, err := time.Parse("20060102", body[:trackingNumberDateLen]); err != nil {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber", err)
	}
	suffix := body[trackingNumberDateLen:]
	if _, err := hex.DecodeString(strings.ToLower(suffix)); err != nil {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber", err)
	}
	if suffix != strings.ToUpper(suffix) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("suffix of %q is not uppercase", s),
		)
	}

	return TrackingNumber{value: s}, nil
}

// String returns the canonical string form of the tracking number.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the tracking number was properly constructed.
// Returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
