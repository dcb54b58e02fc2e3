// Package order provides the domain model for the vendor-side order
// lifecycle. It implements the Order aggregate root together with the
// Status state machine that is the single authority over lifecycle
// transitions.
//
// The package includes:
//   - Order: the aggregate root owning identity, items, payment fields,
//     driver assignment and the lifecycle status
//   - Status: a closed state machine enforcing the transition graph
//     NEW -> PREPARING -> READY -> OUT_FOR_DELIVERY -> DELIVERED, with
//     REJECTED reachable from NEW and CANCELLED from any pre-dispatch state
//   - Item, Customer, Driver: validated value objects
//   - Event: lifecycle events consumed by the notification outbox
//
// Key business rules:
//   - Items and the total amount are frozen at creation; the total must
//     equal the sum of the line subtotals
//   - Terminal statuses have no outgoing transitions; same-status retries
//     fail rather than silently succeed
//   - A driver is required to go out for delivery and may be assigned early
//     while the order is still being prepared
//   - Transition timestamps are set exactly once
package order
