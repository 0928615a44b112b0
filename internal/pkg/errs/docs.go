// Package errs provides standardized error types for the DineSmart application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure kinds the core classifies:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//     (see IsValidation)
//   - InvalidTransitionError: a status change outside of the order status graph
//   - InvalidStateError: an operation the current status forbids
//   - ObjectNotFoundError: a referenced object is absent from storage
//   - ObjectAlreadyExistsError: a uniqueness rule was violated
//   - ConcurrentModificationError: a lost update under concurrent mutation
//   - VersionIsInvalidError: a malformed aggregate version
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on joined errors
//
// The core only classifies failures; translating them into user-facing
// messages is left to the adapters.
package errs
