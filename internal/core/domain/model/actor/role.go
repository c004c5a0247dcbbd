package actor

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role represents the access level of an actor performing an operation.
// Each role maps to an allow-list of parcel statuses it may set; the table
// itself lives with the parcel state machine.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer is a sender or recipient. Customers may read their own
	// parcels but may not mutate parcel status.
	Customer

	// Staff is a customer-service operator. Staff may set any status but
	// remains subject to the abnormal-state lock.
	Staff

	// Warehouse is a facility operator handling intake, storage and sorting.
	Warehouse

	// Driver is a delivery operator handling pickup, transit and delivery.
	Driver

	// Admin bypasses both the role allow-lists and the abnormal-state lock.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Staff:       "staff",
		Warehouse:   "warehouse",
		Driver:      "driver",
		Admin:       "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer:  "customer",
		Staff:     "staff",
		Warehouse: "warehouse",
		Driver:    "driver",
		Admin:     "admin",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns an error for anything outside the closed role set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// UnknownRole (0) and out-of-range values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role.
// Implements fmt.Stringer; safe to call on invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsAdmin reports whether the role bypasses status gates and the
// abnormal-state lock.
func (r Role) IsAdmin() bool {
	return r == Admin
}

// MayDeleteParcels reports whether the role may hard-delete parcels.
func (r Role) MayDeleteParcels() bool {
	return r == Admin || r == Staff
}
