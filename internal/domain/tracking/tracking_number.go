package tracking

import "regexp"

const (
	Alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	MinLength = 8
	MaxLength = 16
)

var trackingNumberPattern = regexp.MustCompile(`^[A-Z0-9]{8,16}$`)

type TrackingNumber struct {
	value string
}

func NewTrackingNumber(s string) (TrackingNumber, error) {
	if !IsValidTrackingNumber(s) {
		return TrackingNumber{}, ErrInvalidTrackingNumber
	}
	return TrackingNumber{value: s}, nil
}

func IsValidTrackingNumber(s string) bool {
	return trackingNumberPattern.MatchString(s)
}

func (n TrackingNumber) String() string { return n.value }
func (n TrackingNumber) IsZero() bool   { return n.value == "" }
