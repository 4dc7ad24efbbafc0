//go:build unit || e2e

package builder

import (
	"net/url"
	"time"

	domtracking "tracking-number-generator/internal/domain/tracking"
	reqdto "tracking-number-generator/internal/handler/dto/request"

	"github.com/google/uuid"
)

type TrackingRequestBuilder struct {
	OriginCountryID      string
	DestinationCountryID string
	Weight               string
	CreatedAt            time.Time
	CustomerID           uuid.UUID
	CustomerName         string
	CustomerSlug         string
}

func NewTrackingRequestBuilder() *TrackingRequestBuilder {
	return &TrackingRequestBuilder{
		OriginCountryID:      "MY",
		DestinationCountryID: "ID",
		Weight:               "1.234",
		CreatedAt:            time.Date(2018, 11, 20, 19, 29, 32, 0, time.FixedZone("", 8*60*60)),
		CustomerID:           uuid.MustParse("de619854-b59b-425e-9db4-943979e1bd49"),
		CustomerName:         "RedBox Logistics",
		CustomerSlug:         "redbox-logistics",
	}
}

func (b *TrackingRequestBuilder) With(mutate func(*TrackingRequestBuilder)) *TrackingRequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TrackingRequestBuilder) BuildDomain() (domtracking.IssuanceRequest, error) {
	dto := b.BuildDTO()
	return dto.ToDomain()
}

func (b *TrackingRequestBuilder) MustBuildDomain() domtracking.IssuanceRequest {
	req, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return req
}

func (b *TrackingRequestBuilder) BuildDTO() reqdto.NextTrackingNumberRequest {
	return reqdto.NextTrackingNumberRequest{
		OriginCountryID:      b.OriginCountryID,
		DestinationCountryID: b.DestinationCountryID,
		Weight:               b.Weight,
		CreatedAt:            b.CreatedAt.Format(time.RFC3339),
		CustomerID:           b.CustomerID.String(),
		CustomerName:         b.CustomerName,
		CustomerSlug:         b.CustomerSlug,
	}
}

func (b *TrackingRequestBuilder) BuildQuery() url.Values {
	return url.Values{
		"origin_country_id":      {b.OriginCountryID},
		"destination_country_id": {b.DestinationCountryID},
		"weight":                 {b.Weight},
		"created_at":             {b.CreatedAt.Format(time.RFC3339)},
		"customer_id":            {b.CustomerID.String()},
		"customer_name":          {b.CustomerName},
		"customer_slug":          {b.CustomerSlug},
	}
}

// Fluent builder methods
func (b *TrackingRequestBuilder) WithRoute(origin, destination string) *TrackingRequestBuilder {
	b.OriginCountryID = origin
	b.DestinationCountryID = destination
	return b
}

func (b *TrackingRequestBuilder) WithWeight(weight string) *TrackingRequestBuilder {
	b.Weight = weight
	return b
}

func (b *TrackingRequestBuilder) WithCreatedAt(createdAt time.Time) *TrackingRequestBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *TrackingRequestBuilder) WithCustomer(id uuid.UUID, name, slug string) *TrackingRequestBuilder {
	b.CustomerID = id
	b.CustomerName = name
	b.CustomerSlug = slug
	return b
}

func (b *TrackingRequestBuilder) WithCustomerSlug(slug string) *TrackingRequestBuilder {
	b.CustomerSlug = slug
	return b
}
