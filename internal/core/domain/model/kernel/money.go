package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Money is a value object that represents a non-negative monetary quantity
// in minor currency units (e.g. cents). It is used for ledger transaction
// amounts and for the running balance of delivery-person accounts.
//
// Money is immutable: arithmetic methods return a new value. The zero value
// is a valid amount of zero, which is the starting balance of every account.
//
// Example usage:
//
//	amount, err := kernel.NewMoney(100)
//	if err != nil {
//	    // handle error
//	}
//	balance := kernel.Money{}.Add(amount) // balance of 100
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor currency units.
// Negative amounts are rejected.
//
// Returns:
//   - Money: the created value if the amount is valid
//   - error: ValueIsOutOfRangeError if the amount is negative
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(9223372036854775807))
	}
	return Money{amount: amount}, nil
}

// Amount returns the quantity in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the quantity is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the quantity is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// IsLess reports whether m is strictly smaller than other.
func (m Money) IsLess(other Money) bool {
	return m.amount < other.amount
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference m - other.
//
// Returns:
//   - Money: the difference if it is not negative
//   - error: ValueIsOutOfRangeError if other exceeds m
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", other.amount, 0, m.amount)
	}
	return Money{amount: m.amount - other.amount}, nil
}

// String returns the amount in minor units as a decimal string,
// implementing fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
