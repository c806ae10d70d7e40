// Package errors provides unified error handling for the component
// loader. It implements structured error types with machine-readable
// error codes and retryable detection.
//
// Every failure in the load/validate cycle surfaces as an *AppError
// carrying one of the codes in codes.go. Errors are never retried or
// swallowed; the top-level caller logs them and terminates.
package errors
