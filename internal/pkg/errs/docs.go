// Package errs provides standardized error types for the storefront
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common validation failures
// (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
// ObjectNotFoundError, VersionIsInvalidError) and for the business-rule
// violations of the order and ledger workflows (InvalidTransitionError,
// NotAuthorizedError, InsufficientBalanceError). StorageUnavailableError is
// the one transient-fault kind, kept distinct from business-rule errors so
// callers can map it to a different response.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies
//     any error from this package
//
// This standardized approach makes error classification uniform: the HTTP
// layer switches on the sentinels alone and never inspects error strings.
package errs
