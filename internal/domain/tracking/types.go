package tracking

import "errors"

var (
	ErrInvalidTrackingNumber = errors.New("tracking number must be 8 to 16 characters of A-Z and 0-9")
	ErrInvalidCountryCode    = errors.New("country code must be two uppercase letters")
	ErrInvalidWeight         = errors.New("weight must be between 0.001 and 999.999 with at most 3 decimal places")
	ErrEmptyCustomerName     = errors.New("customer name cannot be blank")
	ErrCustomerNameTooLong   = errors.New("customer name exceeds maximum length")
	ErrInvalidCustomerSlug   = errors.New("customer slug must be lowercase kebab-case")
	ErrCustomerSlugTooLong   = errors.New("customer slug exceeds maximum length")
	ErrMissingCustomerID     = errors.New("customer id is required")
	ErrMissingCreatedAt      = errors.New("created at is required")
)

// ClaimOutcome is the non-error result of an atomic claim attempt. A failed
// claim is reported through the accompanying error instead.
type ClaimOutcome int

const (
	ClaimOutcomeUnknown ClaimOutcome = iota
	// ClaimOutcomeClaimed means the identifier was absent and is now durably recorded.
	ClaimOutcomeClaimed
	// ClaimOutcomeCollision means the identifier already existed; nothing was written.
	ClaimOutcomeCollision
)

func (o ClaimOutcome) String() string {
	switch o {
	case ClaimOutcomeClaimed:
		return "claimed"
	case ClaimOutcomeCollision:
		return "collision"
	default:
		return "unknown"
	}
}
