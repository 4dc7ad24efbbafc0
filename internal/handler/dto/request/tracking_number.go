package request

import (
	"time"

	"tracking-number-generator/internal/domain/tracking"
	"tracking-number-generator/internal/pkg/errs"

	"github.com/google/uuid"
)

type NextTrackingNumberRequest struct {
	OriginCountryID      string `form:"origin_country_id" binding:"required,iso3166_1_alpha2"`
	DestinationCountryID string `form:"destination_country_id" binding:"required,iso3166_1_alpha2"`
	Weight               string `form:"weight" binding:"required,weight"`
	CreatedAt            string `form:"created_at" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	CustomerID           string `form:"customer_id" binding:"required,uuid"`
	CustomerName         string `form:"customer_name" binding:"required,max=255"`
	CustomerSlug         string `form:"customer_slug" binding:"required,max=100,kebabcase"`
}

// ToDomain builds the issuance request. Binding validation has already run;
// anything rejected here is still reported as a validation failure.
func (r *NextTrackingNumberRequest) ToDomain() (tracking.IssuanceRequest, error) {
	origin, err := tracking.NewCountryCode(r.OriginCountryID)
	if err != nil {
		return tracking.IssuanceRequest{}, invalid(err, "origin_country_id")
	}
	destination, err := tracking.NewCountryCode(r.DestinationCountryID)
	if err != nil {
		return tracking.IssuanceRequest{}, invalid(err, "destination_country_id")
	}
	weight, err := tracking.ParseWeight(r.Weight)
	if err != nil {
		return tracking.IssuanceRequest{}, invalid(err, "weight")
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return tracking.IssuanceRequest{}, invalid(err, "created_at")
	}
	customerID, err := uuid.Parse(r.CustomerID)
	if err != nil {
		return tracking.IssuanceRequest{}, invalid(err, "customer_id")
	}
	name, err := tracking.NewCustomerName(r.CustomerName)
	if err != nil {
		return tracking.IssuanceRequest{}, invalid(err, "customer_name")
	}
	slug, err := tracking.NewCustomerSlug(r.CustomerSlug)
	if err != nil {
		return tracking.IssuanceRequest{}, invalid(err, "customer_slug")
	}

	req, err := tracking.NewIssuanceRequest(origin, destination, weight, createdAt, customerID, name, slug)
	if err != nil {
		return tracking.IssuanceRequest{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return req, nil
}

// FieldError names the request field a validation failure belongs to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *FieldError) Unwrap() error { return e.Err }

func invalid(err error, field string) error {
	return errs.Mark(&FieldError{Field: field, Err: err}, errs.ErrDomainValidation)
}
