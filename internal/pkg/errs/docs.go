// Package errs defines the error vocabulary shared by all layers of the
// restaurant application.
//
// Two families of errors live here. Validation errors cover malformed or
// missing input: ValueIsRequiredError, ValueIsInvalidError,
// ValueIsOutOfRangeError, VersionIsInvalidError and ObjectNotFoundError.
// Domain errors cover business rules that reject an otherwise well-formed
// request: InvalidTransitionError for moves the status transition table
// forbids, InvalidStateError for operations blocked by the current status,
// InvalidDriverError and AlreadyAssignedError for delivery assignment rules,
// ProductUnavailableError for ordering products withdrawn from the menu, and
// ConcurrencyConflictError for lost optimistic-locking races.
//
// Every type follows the same shape: a package-level sentinel (for example
// ErrInvalidTransition), a struct carrying the details, a constructor with
// and one without a cause, and an Unwrap method pointing at the sentinel so
// callers can classify with errors.Is while handlers inspect the struct with
// errors.As. The HTTP layer relies on this to map each family onto a status
// code without string matching.
package errs
