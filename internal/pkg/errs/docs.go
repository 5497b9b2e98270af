// Package errs provides standardized error types for the citrus tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the failure modes of the core
// operations:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a rule
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed range
//   - ObjectNotFoundError: a shipment/document/tracking number does not exist
//   - AccessForbiddenError: the object exists but the principal lacks rights
//   - CodeCollisionError: a generated code (tracking or invoice number)
//     collided with an existing one; callers retry generation exactly once
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Handlers and adapters classify errors exclusively via errors.Is against
// the sentinels, never by string matching.
package errs
