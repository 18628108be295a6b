package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the correct delivery workflow.
//
// State transitions:
//
//	Created ──> Packed ──> Shipped ──> Delivered ──> Returned
//	              │ ▲
//	              └─┘
//	     (reject clears the delivery person but keeps the order packed)
//
// The historical data model tracked the lifecycle as independent boolean
// flags (isPacked, isAcceptedByDelivery, isDelivered, isReturned). Status
// replaces those flags with a single tagged value; the flags remain
// available as the derived read methods IsPacked, IsAcceptedByDelivery,
// IsDelivered and IsReturned, which are consistent by construction.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// Orders in this status are waiting to be packed and assigned.
	Created

	// Packed indicates the order has been packed and assigned to a
	// delivery person. A rejected order also sits here, packed but
	// unassigned, until it is assigned again.
	Packed

	// Shipped indicates the assigned delivery person accepted the order.
	Shipped

	// Delivered indicates the order reached the customer.
	Delivered

	// Returned indicates a delivered order was sent back. This is a final
	// state with no further transitions allowed.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Packed:    "Packed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Returned:  "Returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Packed:    "Packed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Returned:  "Returned",
	}
}

// StatusFromLabel maps an administrative override label onto a Status.
// Valid labels are "Packed", "Shipped", "Delivered" and "Returned" - the
// stages an administrator may force an order into. "Created" is not a legal
// override target.
func StatusFromLabel(label string) (Status, error) {
	for status, s := range getValidStatusStrings() {
		if s == label && status != Created {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status label",
		fmt.Errorf("%q is not a valid status label", label),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Packed, Shipped, Delivered, Returned.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, implementing
// fmt.Stringer. Invalid values yield "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPacked reports whether the order has been packed. Every stage from
// Packed onward implies packing; nothing in the lifecycle un-packs an order.
func (s Status) IsPacked() bool {
	return s >= Packed && s <= Returned
}

// IsAcceptedByDelivery reports whether a delivery person accepted the order.
func (s Status) IsAcceptedByDelivery() bool {
	return s >= Shipped && s <= Returned
}

// IsDelivered reports whether the order reached the customer.
func (s Status) IsDelivered() bool {
	return s >= Delivered && s <= Returned
}

// IsReturned reports whether a delivered order was sent back.
func (s Status) IsReturned() bool {
	return s == Returned
}

// DisplayLabel returns the customer-facing status label. The flags are
// evaluated in the fixed priority order Returned > Delivered > Packed >
// Shipped > Ordered, matching the historical projection: an accepted order
// that is not yet delivered reports "Packed", because the packed flag takes
// priority over the shipped flag.
func (s Status) DisplayLabel() string {
	switch {
	case s.IsReturned():
		return "Returned"
	case s.IsDelivered():
		return "Delivered"
	case s.IsPacked():
		return "Packed"
	case s.IsAcceptedByDelivery():
		return "Shipped"
	default:
		return "Ordered"
	}
}

// ValidateCanHaveDeliveryPerson validates the consistency between order
// status and delivery assignment.
//
// Business rules:
//   - Created orders must not have a delivery person
//   - Packed orders may or may not have one (rejection clears the
//     assignment without un-packing the order)
//   - Shipped, Delivered and Returned orders must have one
func (s Status) ValidateCanHaveDeliveryPerson(assigned bool) error {
	if assigned && s == Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a delivery person", s.String()),
		)
	}

	if !assigned && s >= Shipped && s <= Returned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery person", s.String()),
		)
	}

	return nil
}

// Pack transitions the status to Packed when assigning a delivery person.
//
// Assignment is deliberately permissive: it may be repeated at any stage
// (re-assignment overwrites a rejected or still-unaccepted assignment) and
// never regresses the lifecycle, so packing an order that is already
// shipped or delivered leaves the status untouched.
//
// Returns:
//   - the resulting status on success
//   - (0, error) if the current status value is invalid
func (s Status) Pack() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s < Packed {
		return Packed, nil
	}
	return s, nil
}

// Accept transitions the status to Shipped.
//
// Valid transitions:
//   - Packed -> Shipped
//
// Any other starting point fails with an InvalidTransitionError: an order
// cannot be accepted before it is packed, nor accepted twice.
func (s Status) Accept() (Status, error) {
	if s != Packed {
		return 0, errs.NewInvalidTransitionError("accept", s.String())
	}

	return Shipped, nil
}

// ValidateReject checks whether the assignment can be rejected without
// performing the transition. Rejection is only possible while the order is
// packed and not yet accepted; the status itself does not change on
// rejection, only the assignment is cleared.
func (s Status) ValidateReject() error {
	if s != Packed {
		return errs.NewInvalidTransitionError("reject", s.String())
	}
	return nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// An order that was never accepted, or is already delivered, cannot be
// completed.
func (s Status) Complete() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}

	return Delivered, nil
}

// Return transitions the status to Returned.
//
// Valid transitions:
//   - Delivered -> Returned
//
// Returned is a final state with no further transitions possible.
func (s Status) Return() (Status, error) {
	if s != Delivered {
		return 0, errs.NewInvalidTransitionError("return", s.String())
	}

	return Returned, nil
}

// Force jumps the lifecycle to the target status without transition checks.
// This is the administrative override: forcing a later stage skips every
// guard in between. Forcing an earlier stage is a no-op, because the
// historical flag model only ever set flags and never cleared them.
//
// Returns:
//   - the resulting status (the later of current and target)
//   - (0, error) if either status value is invalid
func (s Status) Force(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target > s {
		return target, nil
	}
	return s, nil
}
