// Package errs provides the error types shared by the depot packages.
//
// Every typed error carries the name of the offending parameter, an optional
// cause and unwraps to a sentinel so callers can classify failures:
//   - ErrValueIsRequired: a mandatory value or selection is missing
//   - ErrValueIsInvalid: a value is malformed
//   - ErrValueIsOutOfRange: a numeric value falls outside its bounds
//   - ErrObjectNotFound: a selection points at nothing
//
// The presentation layer maps these sentinels onto user-facing responses.
package errs
