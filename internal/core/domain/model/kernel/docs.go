// Package kernel provides core domain primitives for the logistics system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - TrackingNumber: A value object identifying a parcel, in the
//     "TRK" + date + random-suffix format
//   - EventID: A value object identifying a tracking event
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
