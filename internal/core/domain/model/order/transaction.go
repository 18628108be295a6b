package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through NewTransaction or RestoreTransaction.
var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")

// TransactionType distinguishes money moving onto a delivery person's
// balance (deposit) from money moving off it (withdrawal).
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Validate checks that the type is one of the known values.
func (t TransactionType) Validate() error {
	if t != TransactionTypeDeposit && t != TransactionTypeWithdrawal {
		return errs.NewValueIsInvalidError("transaction type")
	}
	return nil
}

// String implements fmt.Stringer.
func (t TransactionType) String() string {
	return string(t)
}

// TransactionStatus is the approval state of a ledger transaction.
// Every transaction starts pending; approved and rejected are terminal.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusRejected TransactionStatus = "rejected"
)

// Validate checks that the status is one of the known values.
func (s TransactionStatus) Validate() error {
	switch s {
	case TransactionStatusPending, TransactionStatusApproved, TransactionStatusRejected:
		return nil
	default:
		return errs.NewValueIsInvalidError("transaction status")
	}
}

// String implements fmt.Stringer.
func (s TransactionStatus) String() string {
	return string(s)
}

// Transaction is a deposit or withdrawal request raised by a delivery person
// against one order. It is an entity owned by the Order aggregate: it is
// appended to the order's ledger, decided exactly once by an administrator,
// and never deleted.
//
// Transaction follows these invariants:
//   - The requesting delivery person is required
//   - The amount is strictly positive
//   - Status moves pending -> approved or pending -> rejected, once
//   - approvedBy records the deciding administrator on either outcome
//   - A rejection reason is present exactly when the status is rejected
type Transaction struct {
	id               kernel.UUID
	deliveryPersonID kernel.UUID
	txType           TransactionType
	amount           kernel.Money
	status           TransactionStatus
	approvedBy       *kernel.UUID
	rejectionReason  string
	createdAt        time.Time

	// isConstructed ensures the transaction was created via a constructor
	isConstructed bool
}

// NewTransaction creates a pending ledger transaction.
//
// Parameters:
//   - id: unique identifier for the transaction
//   - deliveryPersonID: the requesting delivery person
//   - txType: deposit or withdrawal
//   - amount: requested quantity, must be positive
//   - createdAt: request time, used for newest-first listings
//
// Returns the created transaction in pending status, or a validation error.
func NewTransaction(
	id kernel.UUID,
	deliveryPersonID kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	createdAt time.Time,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryPersonID.Validate(),
		txType.Validate(),
	); err != nil {
		return nil, err
	}

	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidError("amount must be positive")
	}

	return &Transaction{
		id:               id,
		deliveryPersonID: deliveryPersonID,
		txType:           txType,
		amount:           amount,
		status:           TransactionStatusPending,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// RestoreTransaction reconstructs a transaction from persistence without
// re-running the request-time rules, but still validating value integrity.
func RestoreTransaction(
	id kernel.UUID,
	deliveryPersonID kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	status TransactionStatus,
	approvedBy *kernel.UUID,
	rejectionReason string,
	createdAt time.Time,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryPersonID.Validate(),
		txType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if approvedBy != nil {
		if err := approvedBy.Validate(); err != nil {
			return nil, err
		}
	}

	return &Transaction{
		id:               id,
		deliveryPersonID: deliveryPersonID,
		txType:           txType,
		amount:           amount,
		status:           status,
		approvedBy:       approvedBy,
		rejectionReason:  rejectionReason,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Transaction was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// DeliveryPerson returns the requesting delivery person's identifier.
func (t *Transaction) DeliveryPerson() kernel.UUID {
	return t.deliveryPersonID
}

// Type returns whether this is a deposit or a withdrawal.
func (t *Transaction) Type() TransactionType {
	return t.txType
}

// Amount returns the requested quantity.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// Status returns the current approval state.
func (t *Transaction) Status() TransactionStatus {
	return t.status
}

// IsPending reports whether the transaction still awaits a decision.
func (t *Transaction) IsPending() bool {
	return t.status == TransactionStatusPending
}

// ApprovedBy returns the deciding administrator, or nil while pending.
func (t *Transaction) ApprovedBy() *kernel.UUID {
	return t.approvedBy
}

// RejectionReason returns the reason recorded on rejection, empty otherwise.
func (t *Transaction) RejectionReason() string {
	return t.rejectionReason
}

// CreatedAt returns the request time.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// Approve moves a pending transaction to approved and records the deciding
// administrator. A transaction that has already been decided cannot be
// approved again.
func (t *Transaction) Approve(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if !t.IsPending() {
		return errs.NewInvalidTransitionError("approve transaction", t.status.String())
	}

	t.status = TransactionStatusApproved
	t.approvedBy = &adminID
	return nil
}

// Reject moves a pending transaction to rejected, recording the deciding
// administrator and the reason. The reason is required.
func (t *Transaction) Reject(adminID kernel.UUID, reason string) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	if !t.IsPending() {
		return errs.NewInvalidTransitionError("reject transaction", t.status.String())
	}

	t.status = TransactionStatusRejected
	t.rejectionReason = reason
	t.approvedBy = &adminID
	return nil
}
