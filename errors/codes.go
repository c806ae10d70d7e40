package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Load path errors
const (
	// ErrCodeResolution indicates the module reference could not be resolved.
	ErrCodeResolution ErrorCode = "RESOLUTION_FAILED"
	// ErrCodeShape indicates the resolved export is not a usable callable.
	ErrCodeShape ErrorCode = "INVALID_SHAPE"
	// ErrCodeInit indicates construction or init of the component failed.
	ErrCodeInit ErrorCode = "INIT_FAILED"
)

// Validation errors
const (
	// ErrCodeContract indicates the instance violates the structural contract.
	ErrCodeContract ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeLifecycle indicates a lifecycle hook failed during the probe.
	ErrCodeLifecycle ErrorCode = "LIFECYCLE_FAILED"
)

// Process errors
const (
	// ErrCodeConfig indicates the process configuration is invalid or missing.
	ErrCodeConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeTimeout indicates a lifecycle hook exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeResolution: false,
	ErrCodeShape:      false,
	ErrCodeInit:       false,
	ErrCodeContract:   false,
	ErrCodeLifecycle:  false,
	ErrCodeConfig:     false,
	ErrCodeTimeout:    true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// The loader itself never retries; the flag is advice for the caller.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
