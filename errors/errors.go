package errors

import (
	"errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf extracts the ErrorCode from err, unwrapping as needed.
// Returns an empty code when err carries no AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// --- Load path constructors ---

// Resolution creates a new AppError for a module reference that could not be resolved.
func Resolution(ref string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeResolution, Message: fmt.Sprintf("cannot resolve component module %q", ref),
		Retryable: false, Cause: cause,
		Details: map[string]any{"module": ref},
	}
}

// Shape creates a new AppError for an export that is not a usable callable.
func Shape(ref, reason string) *AppError {
	return &AppError{
		Code: ErrCodeShape, Message: fmt.Sprintf("component module %q: %s", ref, reason),
		Retryable: false,
		Details:   map[string]any{"module": ref},
	}
}

// Init creates a new AppError for a component whose construction or init failed.
func Init(name, reason string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeInit, Message: fmt.Sprintf("component %q: %s", name, reason),
		Retryable: false, Cause: cause,
		Details: map[string]any{"component": name},
	}
}

// --- Validation constructors ---

// Contract creates a new AppError for a structural contract violation.
// The detail message is the exact convention that was violated, e.g.
// "component: start".
func Contract(detail string) *AppError {
	return &AppError{
		Code: ErrCodeContract, Message: detail,
		Retryable: false,
	}
}

// Lifecycle creates a new AppError for a lifecycle hook that failed
// during the conformance probe.
func Lifecycle(name, hook string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeLifecycle, Message: fmt.Sprintf("component %q: %s failed", name, hook),
		Retryable: false, Cause: cause,
		Details: map[string]any{"component": name, "hook": hook},
	}
}

// --- Process constructors ---

// Config creates a new AppError for invalid or missing process configuration.
func Config(reason string) *AppError {
	return &AppError{
		Code: ErrCodeConfig, Message: reason,
		Retryable: false,
	}
}

// Timeout creates a new AppError for a lifecycle hook that exceeded its deadline.
func Timeout(name, hook string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("component %q: %s deadline exceeded", name, hook),
		Retryable: true,
		Details:   map[string]any{"component": name, "hook": hook},
	}
}
