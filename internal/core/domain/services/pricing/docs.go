// Package pricing implements shipping cost calculation as a stateless
// domain service.
//
// The engine prices a parcel snapshot against a per-tier rate card:
// chargeable weight is the greater of actual and volumetric weight
// (length * width * height / 5000), weight and distance costs are linear,
// special markers add flat surcharges and every shipment carries a flat
// base fee. Sub-totals and the total are rounded to two decimal places.
//
// The engine performs no I/O and never mutates the parcel, which makes the
// monthly report a pure fold over an in-memory parcel slice.
package pricing
