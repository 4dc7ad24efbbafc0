package tracking

import (
	"time"

	"github.com/google/uuid"
)

// IssuanceRequest carries the already-validated attributes of one issuance.
type IssuanceRequest struct {
	Origin       CountryCode
	Destination  CountryCode
	Weight       Weight
	CreatedAt    time.Time
	CustomerID   uuid.UUID
	CustomerName CustomerName
	CustomerSlug CustomerSlug
}

func NewIssuanceRequest(
	origin, destination CountryCode,
	weight Weight,
	createdAt time.Time,
	customerID uuid.UUID,
	customerName CustomerName,
	customerSlug CustomerSlug,
) (IssuanceRequest, error) {
	if createdAt.IsZero() {
		return IssuanceRequest{}, ErrMissingCreatedAt
	}
	if customerID == uuid.Nil {
		return IssuanceRequest{}, ErrMissingCustomerID
	}
	return IssuanceRequest{
		Origin:       origin,
		Destination:  destination,
		Weight:       weight,
		CreatedAt:    createdAt,
		CustomerID:   customerID,
		CustomerName: customerName,
		CustomerSlug: customerSlug,
	}, nil
}

// ClaimedIdentifier is the durable record of an issued tracking number.
// createdAt and updatedAt are set by the store, not by the caller.
type ClaimedIdentifier struct {
	trackingNumber TrackingNumber
	origin         CountryCode
	destination    CountryCode
	weight         Weight
	customerID     uuid.UUID
	customerName   CustomerName
	customerSlug   CustomerSlug
	requestID      uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewClaimedIdentifier(number TrackingNumber, req IssuanceRequest, requestID uuid.UUID) *ClaimedIdentifier {
	if requestID == uuid.Nil {
		requestID = uuid.New()
	}
	return &ClaimedIdentifier{
		trackingNumber: number,
		origin:         req.Origin,
		destination:    req.Destination,
		weight:         req.Weight,
		customerID:     req.CustomerID,
		customerName:   req.CustomerName,
		customerSlug:   req.CustomerSlug,
		requestID:      requestID,
	}
}

func ReconstructClaimedIdentifier(
	number TrackingNumber,
	origin, destination CountryCode,
	weight Weight,
	customerID uuid.UUID,
	customerName CustomerName,
	customerSlug CustomerSlug,
	requestID uuid.UUID,
	createdAt, updatedAt time.Time,
) *ClaimedIdentifier {
	return &ClaimedIdentifier{
		trackingNumber: number,
		origin:         origin,
		destination:    destination,
		weight:         weight,
		customerID:     customerID,
		customerName:   customerName,
		customerSlug:   customerSlug,
		requestID:      requestID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *ClaimedIdentifier) TrackingNumber() TrackingNumber { return c.trackingNumber }
func (c *ClaimedIdentifier) Origin() CountryCode            { return c.origin }
func (c *ClaimedIdentifier) Destination() CountryCode       { return c.destination }
func (c *ClaimedIdentifier) Weight() Weight                 { return c.weight }
func (c *ClaimedIdentifier) CustomerID() uuid.UUID          { return c.customerID }
func (c *ClaimedIdentifier) CustomerName() CustomerName     { return c.customerName }
func (c *ClaimedIdentifier) CustomerSlug() CustomerSlug     { return c.customerSlug }
func (c *ClaimedIdentifier) RequestID() uuid.UUID           { return c.requestID }
func (c *ClaimedIdentifier) CreatedAt() time.Time           { return c.createdAt }
func (c *ClaimedIdentifier) UpdatedAt() time.Time           { return c.updatedAt }

// IssuanceResult is what the caller receives after a successful claim.
// CreatedAt echoes the caller-supplied timestamp.
type IssuanceResult struct {
	TrackingNumber TrackingNumber
	CreatedAt      time.Time
	RequestID      uuid.UUID
	CustomerID     uuid.UUID
	CustomerName   CustomerName
}

func NewIssuanceResult(claimed *ClaimedIdentifier, req IssuanceRequest) IssuanceResult {
	return IssuanceResult{
		TrackingNumber: claimed.TrackingNumber(),
		CreatedAt:      req.CreatedAt,
		RequestID:      claimed.RequestID(),
		CustomerID:     claimed.CustomerID(),
		CustomerName:   claimed.CustomerName(),
	}
}
