package account

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account was not created
// through a constructor.
var ErrAccountIsNotConstructed = errors.New("account must be created via NewAccount or RestoreAccount")

// Account is the aggregate holding a delivery person's ledger balance.
//
// The balance is denormalized from the approved ledger transactions and is
// the value the withdrawal guard runs against. It never goes below zero:
// Debit refuses any amount the balance cannot cover.
type Account struct {
	// id is the delivery person's identifier, shared with the order ledger
	id kernel.UUID

	// name is the delivery person's display name
	name string

	// email is the delivery person's contact address
	email string

	// balance is the current withdrawable amount
	balance kernel.Money

	// version is the persistence snapshot this aggregate was loaded from
	version int64

	// isConstructed ensures the account was created via a constructor
	isConstructed bool
}

// NewAccount creates a new Account with a zero balance and version 1.
func NewAccount(id kernel.UUID, name string, email string) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Account{
		id:            id,
		name:          name,
		email:         email,
		balance:       kernel.Money{},
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(
	id kernel.UUID,
	name string,
	email string,
	balance kernel.Money,
	version int64,
) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", version, 1, int64(9223372036854775807))
	}

	return &Account{
		id:            id,
		name:          name,
		email:         email,
		balance:       balance,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the delivery person's display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the delivery person's contact address.
func (a *Account) Email() string {
	return a.email
}

// Balance returns the current withdrawable amount.
func (a *Account) Balance() kernel.Money {
	return a.balance
}

// Version returns the persistence snapshot version.
func (a *Account) Version() int64 {
	return a.version
}

// IsEqual checks if two accounts are the same by comparing their IDs.
func (a *Account) IsEqual(other *Account) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// CanWithdraw reports whether the balance covers the given amount. This is
// the guard the withdrawal flow runs both at request time and again at
// approval time, since the balance may have moved in between.
func (a *Account) CanWithdraw(amount kernel.Money) bool {
	return !a.balance.IsLess(amount)
}

// Credit increases the balance by the given amount. Called when a deposit
// transaction is approved.
func (a *Account) Credit(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount must be positive")
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Debit decreases the balance by the given amount. Called when a withdrawal
// transaction is approved.
//
// Returns an InsufficientBalanceError if the balance does not cover the
// amount; the balance is left untouched.
func (a *Account) Debit(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount must be positive")
	}

	if !a.CanWithdraw(amount) {
		return errs.NewInsufficientBalanceError(a.balance.Amount(), amount.Amount())
	}

	newBalance, err := a.balance.Sub(amount)
	if err != nil {
		return err
	}

	a.balance = newBalance
	return nil
}
