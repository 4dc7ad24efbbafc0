package errs

import "errors"

// Sentinel errors shared across layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreUnavailable = errors.New("store unavailable")
)
