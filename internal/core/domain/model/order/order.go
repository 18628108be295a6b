package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods. This
	// ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer purchase in the system. It is the aggregate
// root that manages the delivery lifecycle and exclusively owns the ledger
// of deposit/withdrawal transactions raised against it.
//
// Order follows these invariants:
//   - Must have valid unique and customer identifiers
//   - Status transitions follow the rules defined on Status
//   - A delivery person is present from acceptance onward
//   - Completing a cash-on-delivery order settles the payment
//   - Ledger transactions may only be raised by the assigned delivery
//     person, are append-only, and never leave the order
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. The version field supports
// optimistic concurrency in the storage layer: it identifies the snapshot
// this aggregate was loaded from.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the owning customer
	userID kernel.UUID

	// deliveryPersonID is the assigned delivery person (nil if unassigned)
	deliveryPersonID *kernel.UUID

	// paymentMethod records how the order is paid
	paymentMethod PaymentMethod

	// status represents the current state in the order lifecycle
	status Status

	// isPaid and paidAt track payment settlement, which is independent of
	// the lifecycle except for cash on delivery
	isPaid bool
	paidAt *time.Time

	// deliveredAt is set when the order is completed
	deliveredAt *time.Time

	// returnReason is set when a delivered order is returned
	returnReason string

	// transactions is the append-only ledger owned by this order
	transactions []*Transaction

	// version is the persistence snapshot this aggregate was loaded from
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in Created
// status, unassigned and unpaid, with an empty ledger and version 1.
//
// Parameters:
//   - id: unique identifier for the order
//   - userID: the owning customer
//   - paymentMethod: how the order is paid
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(id kernel.UUID, userID kernel.UUID, paymentMethod PaymentMethod) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		paymentMethod: paymentMethod,
		status:        Created,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It validates value
// integrity and the consistency between status and delivery assignment, but
// does not re-run transition rules: the stored state is taken as-is.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	deliveryPersonID *kernel.UUID,
	paymentMethod PaymentMethod,
	status Status,
	isPaid bool,
	paidAt *time.Time,
	deliveredAt *time.Time,
	returnReason string,
	transactions []*Transaction,
	version int64,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		paymentMethod.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return nil, err
		}
	}

	if err := status.ValidateCanHaveDeliveryPerson(deliveryPersonID != nil); err != nil {
		return nil, err
	}

	for _, tx := range transactions {
		if err := tx.Validate(); err != nil {
			return nil, err
		}
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order")
	}

	return &Order{
		id:               id,
		userID:           userID,
		deliveryPersonID: deliveryPersonID,
		paymentMethod:    paymentMethod,
		status:           status,
		isPaid:           isPaid,
		paidAt:           paidAt,
		deliveredAt:      deliveredAt,
		returnReason:     returnReason,
		transactions:     transactions,
		version:          version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
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

// User returns the owning customer's identifier.
func (o *Order) User() kernel.UUID {
	return o.userID
}

// DeliveryPerson returns the assigned delivery person's ID.
// Returns nil if no delivery person is assigned.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether payment has settled.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// PaidAt returns the settlement time, or nil while unpaid.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// DeliveredAt returns the completion time, or nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ReturnReason returns the reason recorded on return, empty otherwise.
func (o *Order) ReturnReason() string {
	return o.returnReason
}

// Transactions returns the order's ledger, oldest first.
func (o *Order) Transactions() []*Transaction {
	return o.transactions
}

// Version returns the persistence snapshot this aggregate was loaded from.
func (o *Order) Version() int64 {
	return o.version
}

// Assign assigns the order to a delivery person and packs it.
//
// This method enforces the following business rules:
//   - The delivery person ID must be valid
//   - Re-assignment is allowed at any stage and overwrites the previous
//     assignment; the lifecycle never regresses
//
// There is deliberately no guard against re-assigning an order that has
// already been accepted: assignment is the administrative entry point for
// putting a rejected or stuck order back into circulation.
func (o *Order) Assign(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Pack()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPersonID = &deliveryPersonID
	return nil
}

// Accept marks the order as accepted by its delivery person.
//
// This method enforces the following business rules:
//   - The order must be packed and not yet accepted
//   - An assignment must be present
//
// Returns an InvalidTransitionError otherwise.
func (o *Order) Accept() error {
	if o.deliveryPersonID == nil {
		return errs.NewInvalidTransitionErrorWithCause(
			"accept", o.status.String(),
			errors.New("order has no delivery person"),
		)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject clears the delivery assignment of a packed, not yet accepted
// order. The order stays packed and re-enters the assignable pool; the next
// Assign overwrites the cleared assignment.
//
// Returns an InvalidTransitionError if the order is not packed or has
// already been accepted.
func (o *Order) Reject() error {
	if err := o.status.ValidateReject(); err != nil {
		return err
	}

	o.deliveryPersonID = nil
	return nil
}

// Complete marks the order as delivered at the given time.
//
// This method enforces the following business rules:
//   - The order must have been accepted and not yet delivered
//   - Cash-on-delivery orders are marked paid at the same time
//
// Returns an InvalidTransitionError otherwise.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now

	if o.paymentMethod.IsCashOnDelivery() && !o.isPaid {
		o.isPaid = true
		o.paidAt = &now
	}

	return nil
}

// MarkReturned marks a delivered order as returned and records the reason.
// The reason is required.
//
// Returns an InvalidTransitionError if the order has not been delivered.
func (o *Order) MarkReturned(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("return reason")
	}

	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.returnReason = reason
	return nil
}

// ForceStatus jumps the lifecycle to the target status without transition
// checks. This is the administrative override and bypasses every guard the
// normal transitions enforce; see Status.Force for the exact semantics.
//
// The one check that still applies is assignment consistency: an order
// without a delivery person cannot be forced past Packed, because such a
// state could never be restored from persistence.
func (o *Order) ForceStatus(target Status) error {
	newStatus, err := o.status.Force(target)
	if err != nil {
		return err
	}

	if newStatus.ValidateCanHaveDeliveryPerson(o.deliveryPersonID != nil) != nil {
		return errs.NewInvalidTransitionError("force "+newStatus.String(), o.status.String())
	}

	o.status = newStatus
	return nil
}

// RequestDeposit appends a pending deposit transaction to the order's
// ledger on behalf of the assigned delivery person.
//
// This method enforces the following business rules:
//   - The requester must be the order's assigned delivery person
//   - The amount must be positive
//
// Returns the appended transaction, or a NotAuthorizedError if the
// requester is not assigned to this order.
func (o *Order) RequestDeposit(
	deliveryPersonID kernel.UUID,
	amount kernel.Money,
	now time.Time,
) (*Transaction, error) {
	return o.appendTransaction(deliveryPersonID, TransactionTypeDeposit, amount, now)
}

// RequestWithdrawal appends a pending withdrawal transaction to the order's
// ledger on behalf of the assigned delivery person. The balance guard is
// applied by the caller against the delivery person's account; the order
// only enforces ownership and amount validity.
func (o *Order) RequestWithdrawal(
	deliveryPersonID kernel.UUID,
	amount kernel.Money,
	now time.Time,
) (*Transaction, error) {
	return o.appendTransaction(deliveryPersonID, TransactionTypeWithdrawal, amount, now)
}

// TransactionByID finds a ledger transaction by its identifier.
//
// Returns an ObjectNotFoundError if no transaction with the given ID exists
// on this order.
func (o *Order) TransactionByID(id kernel.UUID) (*Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, tx := range o.transactions {
		if tx.ID().IsEqual(id) {
			return tx, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("transaction", id.String())
}

// appendTransaction validates ownership and appends a pending transaction.
func (o *Order) appendTransaction(
	deliveryPersonID kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	now time.Time,
) (*Transaction, error) {
	if err := deliveryPersonID.Validate(); err != nil {
		return nil, err
	}

	if o.deliveryPersonID == nil || !o.deliveryPersonID.IsEqual(deliveryPersonID) {
		return nil, errs.NewNotAuthorizedError(
			deliveryPersonID.String(),
			string(txType)+" for order "+o.id.String(),
		)
	}

	tx, err := NewTransaction(kernel.NewUUID(), deliveryPersonID, txType, amount, now)
	if err != nil {
		return nil, err
	}

	o.transactions = append(o.transactions, tx)
	return tx, nil
}
