package order

import (
	"fmt"
	"slices"

	"backoffice/internal/pkg/errs"
)

// PaymentStatus and ShippingStatus are tracked beside the primary status. They have no
// transition table: any known value may replace any other.
type (
	PaymentStatus  string
	ShippingStatus string
)

const (
	Unpaid        PaymentStatus = "UNPAID"
	PartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	Paid          PaymentStatus = "PAID"
	Refunded      PaymentStatus = "REFUNDED"
)

const (
	NotShipped ShippingStatus = "NOT_SHIPPED"
	Preparing  ShippingStatus = "PREPARING"
	InTransit  ShippingStatus = "IN_TRANSIT"
	Delivered  ShippingStatus = "DELIVERED"
	Returned   ShippingStatus = "RETURNED"
)

func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{Unpaid, PartiallyPaid, Paid, Refunded}
}

func ShippingStatuses() []ShippingStatus {
	return []ShippingStatus{NotShipped, Preparing, InTransit, Delivered, Returned}
}

func (s PaymentStatus) Validate() error {
	if !slices.Contains(PaymentStatuses(), s) {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a payment status", string(s)))
	}
	return nil
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s ShippingStatus) Validate() error {
	if !slices.Contains(ShippingStatuses(), s) {
		return errs.NewValueIsInvalidErrorWithCause("shippingStatus", fmt.Errorf("%q is not a shipping status", string(s)))
	}
	return nil
}

func (s ShippingStatus) String() string {
	return string(s)
}
