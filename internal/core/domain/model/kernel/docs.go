// Package kernel provides the shared value objects of the domain model.
//
// The package includes:
//   - UUID: an immutable identifier value object used by every aggregate
//   - Money: a non-negative monetary quantity in minor currency units
//
// Kernel types are value objects in the Domain-Driven Design sense: they are
// immutable, compared by value, and validated on construction. Aggregates in
// the order and account packages build on them and never work with raw
// identifiers or raw integer amounts directly.
package kernel
