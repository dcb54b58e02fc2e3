package order

import (
	"errors"
	"fmt"
	"time"

	"vendororders/internal/core/domain/model/kernel"
	"vendororders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for a customer's placed order. It is the sole
// authority over the order's lifecycle status and enforces the transition
// graph defined on Status.
//
// Invariants:
//   - Exactly one status at any time; transitions follow the allowed graph
//   - Items and the derived total amount are frozen at creation
//   - acceptedAt, readyAt and deliveredAt are each set exactly once, by the
//     corresponding transition
//   - A driver reference is present in OutForDelivery and Delivered, never
//     in New or Rejected
//   - Terminal statuses (Delivered, Cancelled, Rejected) are immutable
//
// Every successful transition records a lifecycle Event; repositories write
// the recorded events to the outbox in the same transaction as the order.
type Order struct {
	id          kernel.UUID
	orderNumber string
	customer    Customer
	items       []Item
	totalAmount kernel.Money

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	status Status
	driver *Driver

	// estimatedTime is the vendor's preparation estimate in minutes,
	// optionally provided when accepting the order.
	estimatedTime   *int
	rejectionReason string

	createdAt   time.Time
	acceptedAt  *time.Time
	readyAt     *time.Time
	deliveredAt *time.Time

	// version supports optimistic concurrency control in the store.
	version int64

	events        []Event
	isConstructed bool
}

// NewOrder creates a new order in New status. The declared total amount must
// equal the sum of quantity times unit price over the items; this invariant
// is checked here once and the total is never recomputed later.
//
// A creation event (Unknown -> New) is recorded for the notification hook.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	items []Item,
	totalAmount kernel.Money,
	paymentMethod PaymentMethod,
) (*Order, error) {
	order := &Order{
		status:        New,
		paymentStatus: PaymentPending,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if err := order.setTotalAmount(totalAmount); err != nil {
		return nil, err
	}

	order.recordEvent(Unknown, New, order.createdAt)
	return order, nil
}

// RestoreOrderParams carries the persisted state needed to re-hydrate an
// Order aggregate from storage.
type RestoreOrderParams struct {
	ID              kernel.UUID
	OrderNumber     string
	Customer        Customer
	Items           []Item
	TotalAmount     kernel.Money
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	Status          Status
	Driver          *Driver
	EstimatedTime   *int
	RejectionReason string
	CreatedAt       time.Time
	AcceptedAt      *time.Time
	ReadyAt         *time.Time
	DeliveredAt     *time.Time
	Version         int64
}

// RestoreOrder re-hydrates an order from persistence, re-validating the
// stored state including status validity and status/driver consistency.
// Unlike NewOrder it does not recompute the total amount and records no
// event.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		totalAmount:     params.TotalAmount,
		paymentStatus:   params.PaymentStatus,
		estimatedTime:   params.EstimatedTime,
		rejectionReason: params.RejectionReason,
		createdAt:       params.CreatedAt,
		acceptedAt:      params.AcceptedAt,
		readyAt:         params.ReadyAt,
		deliveredAt:     params.DeliveredAt,
		version:         params.Version,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setOrderNumber(params.OrderNumber),
		order.setCustomer(params.Customer),
		order.setItems(params.Items),
		order.setPaymentMethod(params.PaymentMethod),
		params.PaymentStatus.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := params.Status.ValidateCanHaveDriver(params.Driver != nil); err != nil {
		return nil, err
	}

	if params.Driver != nil {
		if err := params.Driver.Validate(); err != nil {
			return nil, err
		}
		driver := *params.Driver
		order.driver = &driver
	}

	if order.version <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", params.Version))
	}

	order.status = params.Status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable display identifier.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns the customer snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalAmount returns the total frozen at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver, or nil before assignment.
func (o *Order) Driver() *Driver {
	if o.driver == nil {
		return nil
	}
	driver := *o.driver
	return &driver
}

// EstimatedTime returns the preparation estimate in minutes, or nil when the
// vendor provided none.
func (o *Order) EstimatedTime() *int {
	return o.estimatedTime
}

// RejectionReason returns the reason given on rejection, empty otherwise.
func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns when the order was accepted, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// ReadyAt returns when the order became ready, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Version returns the optimistic-concurrency version of the loaded state.
func (o *Order) Version() int64 {
	return o.version
}

// Events returns the lifecycle events recorded since the aggregate was
// constructed or last cleared.
func (o *Order) Events() []Event {
	return append([]Event(nil), o.events...)
}

// ClearEvents discards recorded events after they have been handed to the
// outbox.
func (o *Order) ClearEvents() {
	o.events = nil
}

// Accept moves the order from New to Preparing, stamping acceptedAt and
// storing the optional preparation estimate (minutes, must be positive when
// provided).
func (o *Order) Accept(estimatedTime *int) error {
	if estimatedTime != nil && *estimatedTime <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedTime", fmt.Errorf("%d is not greater than 0", *estimatedTime))
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	from := o.status
	o.status = newStatus
	o.acceptedAt = &now
	o.estimatedTime = estimatedTime
	o.recordEvent(from, newStatus, now)
	return nil
}

// Reject moves the order from New to Rejected. A non-empty reason is
// required.
func (o *Order) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.rejectionReason = reason
	o.recordEvent(from, newStatus, time.Now().UTC())
	return nil
}

// MarkReady moves the order from Preparing to Ready, stamping readyAt.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	from := o.status
	o.status = newStatus
	o.readyAt = &now
	o.recordEvent(from, newStatus, now)
	return nil
}

// Dispatch moves the order from Ready to OutForDelivery. When driver is nil
// the driver assigned earlier via AssignDriver is used; a dispatch with no
// driver available at all fails with a validation error before any state
// change.
//
// Dispatching before the driver window opens (New, Preparing) fails with
// InvalidAssignment; dispatching from OutForDelivery or a terminal state
// fails with InvalidTransition like any other illegal transition.
func (o *Order) Dispatch(driver *Driver) error {
	if driver == nil && o.driver == nil {
		return errs.NewValueIsRequiredError("driverId")
	}
	if driver != nil {
		if err := driver.Validate(); err != nil {
			return err
		}
	}

	if o.status == New || o.status == Preparing {
		return errs.NewInvalidAssignmentError(o.status.String())
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	if driver != nil {
		assigned := *driver
		o.driver = &assigned
	}
	o.recordEvent(from, newStatus, time.Now().UTC())
	return nil
}

// MarkDelivered moves the order from OutForDelivery to Delivered, stamping
// deliveredAt. Delivered is terminal.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	from := o.status
	o.status = newStatus
	o.deliveredAt = &now
	o.recordEvent(from, newStatus, now)
	return nil
}

// RecordPaymentOutcome stores the payment result reported by the external
// payment system. The payment lifecycle runs independently of the order
// status, so the outcome can land at any point, including after delivery.
// Only final outcomes are accepted; the order starts as PaymentPending and
// never goes back to it.
func (o *Order) RecordPaymentOutcome(status PaymentStatus) error {
	if status != PaymentPaid && status != PaymentFailed {
		return errs.NewValueIsInvalidError("paymentStatus")
	}

	o.paymentStatus = status
	return nil
}

// Cancel moves the order from New, Preparing or Ready to Cancelled.
// Cancellation is an admin operation; orders already out for delivery
// cannot be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.recordEvent(from, newStatus, time.Now().UTC())
	return nil
}

// AssignDriver records which driver will handle the order ahead of
// dispatch. Assignment is legal in Ready, and additionally in Preparing when
// allowPreparing (the early-assignment configuration switch) is set. The
// order status does not change and no lifecycle event is recorded.
func (o *Order) AssignDriver(driver Driver, allowPreparing bool) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	if o.status != Ready && !(o.status == Preparing && allowPreparing) {
		return errs.NewInvalidAssignmentError(o.status.String())
	}

	o.driver = &driver
	return nil
}

// UnassignDriver clears the driver reference before dispatch. Legal only in
// Preparing and Ready: out for delivery a driver is mandatory, and terminal
// orders are immutable.
func (o *Order) UnassignDriver() error {
	if o.status != Preparing && o.status != Ready {
		return errs.NewInvalidAssignmentError(o.status.String())
	}

	o.driver = nil
	return nil
}

// TransitionMetadata carries the per-transition inputs for ApplyTransition:
// the preparation estimate for accept, the reason for reject and the driver
// for dispatch. Fields irrelevant to the requested transition are ignored.
type TransitionMetadata struct {
	EstimatedTime *int
	Reason        string
	Driver        *Driver
}

// ApplyTransition is the generic guarded transition entry point: it maps the
// requested target status onto the corresponding transition method. New is
// the initial state and is never a legal target.
func (o *Order) ApplyTransition(target Status, meta TransitionMetadata) error {
	switch target {
	case Preparing:
		return o.Accept(meta.EstimatedTime)
	case Rejected:
		return o.Reject(meta.Reason)
	case Ready:
		return o.MarkReady()
	case OutForDelivery:
		return o.Dispatch(meta.Driver)
	case Delivered:
		return o.MarkDelivered()
	case Cancelled:
		return o.Cancel()
	default:
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}
}

func (o *Order) recordEvent(from, to Status, occurredAt time.Time) {
	o.events = append(o.events, Event{
		OrderID:     o.id,
		OrderNumber: o.orderNumber,
		From:        from,
		To:          to,
		OccurredAt:  occurredAt,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	derived := kernel.Money{}
	for _, item := range o.items {
		derived = derived.Add(item.Subtotal())
	}

	if !derived.IsEqual(totalAmount) {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("declared %d does not equal derived %d", totalAmount.Amount(), derived.Amount()),
		)
	}

	o.totalAmount = totalAmount
	return nil
}
