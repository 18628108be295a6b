package order

import "storefront/internal/pkg/errs"

// PaymentMethod describes how an order is paid. The value travels through
// from checkout as-is; the lifecycle only cares whether it is cash on
// delivery, which is settled automatically when the order is completed.
type PaymentMethod string

const (
	// PaymentMethodCOD is cash on delivery: payment settles on completion.
	PaymentMethodCOD PaymentMethod = "COD"

	// PaymentMethodPrepaid covers orders paid at checkout.
	PaymentMethodPrepaid PaymentMethod = "Prepaid"
)

// Validate checks that a payment method is present. Values other than the
// named constants are accepted, matching the free-form checkout field.
func (pm PaymentMethod) Validate() error {
	if pm == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	return nil
}

// IsCashOnDelivery reports whether completing the order settles the payment.
func (pm PaymentMethod) IsCashOnDelivery() bool {
	return pm == PaymentMethodCOD
}

// String implements fmt.Stringer.
func (pm PaymentMethod) String() string {
	return string(pm)
}
