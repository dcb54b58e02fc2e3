// Package kernel provides shared value objects used across the order domain
// model: UUID identifiers and Money amounts.
//
// Both types are immutable, validate themselves on construction and are safe
// to copy and compare. The zero UUID is invalid and rejected by Validate,
// which keeps improperly constructed identifiers out of aggregates; the
// zero Money is a valid zero amount.
package kernel
