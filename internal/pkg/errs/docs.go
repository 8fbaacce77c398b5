// Package errs provides the typed validation and lookup errors shared by the
// domain, application and adapter layers.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange,
//     ErrObjectNotFound) that errors.Is can match
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Error for the message and Unwrap returning the sentinel
//
// Callers at the boundary (HTTP handlers, the CLI) map the sentinels to
// "validation failure" or "not found" responses without parsing messages.
package errs
