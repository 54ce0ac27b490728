// Package errs provides the typed errors shared by the back-office service.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrInvalidTransition, ...) usable with errors.Is
//   - a struct carrying the details (parameter name, offending value, cause)
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Adapters translate these kinds into transport responses: InvalidTransitionError is
// a business rule violation, ObjectNotFoundError a missing aggregate, the ValueIs*
// errors bad input and VersionIsInvalidError a lost optimistic-concurrency race.
package errs
