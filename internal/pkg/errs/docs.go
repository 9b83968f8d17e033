// Package errs provides standardized error types for construction-time
// validation failures. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the value-object kernel.
//
// The package includes three error types, one per validation scenario:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a domain predicate
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error classification via errors.Is
//
// Validation errors are raised synchronously by value-object constructors and
// are never recovered internally; they always surface to the caller.
package errs
