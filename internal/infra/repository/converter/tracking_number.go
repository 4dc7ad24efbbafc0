package converter

import (
	"tracking-number-generator/internal/domain/tracking"
	sqlc "tracking-number-generator/internal/infra/sqlc/generated"
	"tracking-number-generator/internal/pkg/errs"
	"tracking-number-generator/internal/pkg/pgconv"
)

func ClaimedIdentifierToClaimParams(rec *tracking.ClaimedIdentifier) sqlc.ClaimTrackingNumberParams {
	return sqlc.ClaimTrackingNumberParams{
		TrackingNumber:       rec.TrackingNumber().String(),
		OriginCountryID:      rec.Origin().String(),
		DestinationCountryID: rec.Destination().String(),
		Weight:               pgconv.ThousandthsToNumeric(rec.Weight().Thousandths()),
		CustomerID:           pgconv.UUIDToPgtype(rec.CustomerID()),
		CustomerName:         rec.CustomerName().String(),
		CustomerSlug:         rec.CustomerSlug().String(),
		RequestID:            pgconv.UUIDToPgtype(rec.RequestID()),
	}
}

func ClaimedIdentifierFromRow(row sqlc.TrackingNumbers) (*tracking.ClaimedIdentifier, error) {
	number, err := tracking.NewTrackingNumber(row.TrackingNumber)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored tracking number")
	}
	origin, err := tracking.NewCountryCode(row.OriginCountryID)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored origin country")
	}
	destination, err := tracking.NewCountryCode(row.DestinationCountryID)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored destination country")
	}
	thousandths, err := pgconv.ThousandthsFromNumeric(row.Weight)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored weight")
	}
	weight, err := tracking.NewWeightFromThousandths(thousandths)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored weight")
	}
	name, err := tracking.NewCustomerName(row.CustomerName)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored customer name")
	}
	slug, err := tracking.NewCustomerSlug(row.CustomerSlug)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored customer slug")
	}

	return tracking.ReconstructClaimedIdentifier(
		number,
		origin,
		destination,
		weight,
		pgconv.UUIDFromPgtype(row.CustomerID),
		name,
		slug,
		pgconv.UUIDFromPgtype(row.RequestID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
