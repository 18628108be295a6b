// Package order provides domain entities and business logic for the order
// lifecycle and the delivery ledger. It implements the Order aggregate root
// with its tagged status state machine and the append-only list of ledger
// transactions embedded in each order.
//
// The package includes:
//   - Order: the aggregate root that manages identity, delivery assignment,
//     lifecycle state and the embedded transaction ledger
//   - Status: a state machine that enforces valid lifecycle transitions and
//     exposes the legacy boolean flags as a derived read view
//   - Transaction: a deposit or withdrawal request raised by a delivery
//     person against an order, mutated exactly once by an admin decision
//   - PaymentMethod: how the order is paid; cash on delivery is settled
//     automatically when the order is completed
//
// Key business rules:
//   - Lifecycle follows Created -> Packed -> Shipped -> Delivered -> Returned
//   - Assignment sets the delivery person and packs the order; re-assignment
//     is permitted at any point and never regresses the lifecycle
//   - Rejection is only possible while packed and not yet accepted; it clears
//     the delivery person but leaves the order packed for re-assignment
//   - Completing a cash-on-delivery order also marks it paid
//   - A ledger transaction starts pending and is approved or rejected exactly
//     once; transactions are never removed from an order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced before anything reaches storage.
package order
