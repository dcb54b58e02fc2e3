package order

import (
	"fmt"

	"vendororders/internal/pkg/errs"
)

// PaymentStatus tracks the payment side of an order. Its lifecycle is
// independent of the delivery Status; the collaborating payment system owns
// updates and reconciliation. The only coupling is a soft rule: a Delivered
// cash-on-delivery order should not remain Failed, which the delivery
// handler logs but does not enforce mechanically.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means payment has not been captured yet.
	PaymentPending

	// PaymentPaid means payment was captured.
	PaymentPaid

	// PaymentFailed means a capture attempt failed.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "UNKNOWN",
		PaymentPending: "PENDING",
		PaymentPaid:    "PAID",
		PaymentFailed:  "FAILED",
	}
}

// PaymentStatusFromString parses a wire payment status name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if status != PaymentUnknown && name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks the payment status is one of the defined values.
func (p PaymentStatus) Validate() error {
	if p != PaymentPending && p != PaymentPaid && p != PaymentFailed {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// PaymentMethod identifies how the customer pays. Cash matters to the
// delivered-order payment soft rule; everything else is opaque to this service.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCash is cash on delivery.
	PaymentMethodCash

	// PaymentMethodOnline is any prepaid online method.
	PaymentMethodOnline
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "UNKNOWN",
		PaymentMethodCash:    "CASH",
		PaymentMethodOnline:  "ONLINE",
	}
}

// PaymentMethodFromString parses a wire payment method name.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks the payment method is one of the defined values.
func (m PaymentMethod) Validate() error {
	if m != PaymentMethodCash && m != PaymentMethodOnline {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
