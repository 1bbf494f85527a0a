// Package errors provides the structured error type used by ssemock's
// supporting code: registry lookups, script loading and validation.
//
// Errors carry a machine-readable code, a message, optional details and an
// optional cause reachable through errors.Unwrap.
package errors
