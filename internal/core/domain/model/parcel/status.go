package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions to ensure parcels
// follow the correct operational workflow.
//
// Normal flow:
//
//	Created ─> Pickup ─> InTransit ─> AtFacility ─> Sorting ─> OutForDelivery ─> Delivered
//
// Delayed and Exception are reachable from any non-terminal state. The
// abnormal states (Lost, Damaged, Returned) are reachable from transit and
// warehouse states and lock the parcel: only a transition to Processing or
// Returned leaves them, unless an admin overrides.
//
// Status is a value object that validates state transitions and provides
// string representations for the API; persistence adapters own the stored
// encoding.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Created is the initial status when a parcel is first registered.
	Created

	// Pickup indicates the parcel has been collected from the sender.
	Pickup

	// InTransit indicates the parcel is moving between facilities.
	InTransit

	// AtFacility indicates the parcel has arrived at a logistics center.
	AtFacility

	// Sorting indicates the parcel is being sorted at a facility.
	Sorting

	// OutForDelivery indicates the parcel is loaded for final delivery.
	OutForDelivery

	// Delivered indicates the parcel reached the recipient.
	// This is the terminal state of the normal flow.
	Delivered

	// Delayed indicates the parcel is behind schedule but still in flow.
	Delayed

	// Exception indicates an unspecified handling problem.
	Exception

	// Lost is an abnormal state: the parcel cannot be located.
	Lost

	// Damaged is an abnormal state: the parcel was physically damaged.
	Damaged

	// Returned is an abnormal state: the parcel is being sent back.
	Returned

	// Processing is the recovery state abnormal parcels transition to
	// while an operator resolves the problem.
	Processing
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:  "UNKNOWN",
		Created:        "CREATED",
		Pickup:         "PICKUP",
		InTransit:      "IN_TRANSIT",
		AtFacility:     "AT_FACILITY",
		Sorting:        "SORTING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Delayed:        "DELAYED",
		Exception:      "EXCEPTION",
		Lost:           "LOST",
		Damaged:        "DAMAGED",
		Returned:       "RETURNED",
		Processing:     "PROCESSING",
	}
}

func getValidStatusStrings() map[Status]string {
	valid := getStatusStrings()
	delete(valid, UnknownStatus)
	return valid
}

// StatusFromString parses a status from its wire representation.
// Returns an error for anything outside the closed status set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// UnknownStatus (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status ends the normal flow.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// IsAbnormal reports whether the status locks the parcel until recovery.
func (s Status) IsAbnormal() bool {
	return s == Lost || s == Damaged || s == Returned
}

// isRecovery reports whether the status is an accepted exit from an
// abnormal state.
func (s Status) isRecovery() bool {
	return s == Processing || s == Returned
}

// ValidateTransition checks the state-machine rules for moving from s to
// newStatus, ignoring role gates (which are enforced separately):
//
//   - an abnormal state only accepts Processing or Returned;
//   - Delivered accepts nothing.
//
// Admin overrides skip this check entirely.
func (s Status) ValidateTransition(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if s.IsAbnormal() && !newStatus.isRecovery() {
		return errs.NewInvalidTransitionErrorWithCause(
			s.String(), newStatus.String(),
			fmt.Errorf("parcel is locked in abnormal state %s", s.String()),
		)
	}

	if s.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			s.String(), newStatus.String(),
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}

	return nil
}
