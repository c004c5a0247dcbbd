// Package parcel provides domain entities and business logic for parcel
// management in the logistics system. It implements the Parcel aggregate
// root with lifecycle management and role-gated state transitions.
//
// The package includes:
//   - Parcel: The aggregate root managing identity, physical attributes,
//     special markers and lifecycle status
//   - Status: A state machine enforcing valid status transitions
//   - Tier: The closed set of service levels
//   - SpecialMarker: Handling flags with set semantics
//
// Key business rules:
//   - Parcels must have a valid tracking number, sender and recipient
//   - All physical quantities are non-negative
//   - Status changes are gated by a single declarative role allow-list table
//   - Abnormal statuses (Lost, Damaged, Returned) lock the parcel until a
//     recovery transition or an admin override
//   - Delivered ends the normal flow
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
