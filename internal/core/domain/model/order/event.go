package order

import (
	"time"

	"vendororders/internal/core/domain/model/kernel"
)

// Event is a lifecycle event recorded by the Order aggregate whenever its
// status changes, including creation. Events are collected by repositories
// into the transactional outbox and published asynchronously to external
// subscribers (push, SMS, analytics).
//
// For the creation event From is Unknown.
type Event struct {
	OrderID     kernel.UUID
	OrderNumber string
	From        Status
	To          Status
	OccurredAt  time.Time
}
