package repository

import (
	"context"

	"tracking-number-generator/internal/domain/tracking"
	"tracking-number-generator/internal/infra"
	"tracking-number-generator/internal/infra/repository/converter"
	sqlc "tracking-number-generator/internal/infra/sqlc/generated"
	"tracking-number-generator/internal/pkg/pgconv"
)

const trackingNumberUniqueConstraint = "tracking_numbers_tracking_number_key"

type TrackingNumberWriteQueries interface {
	ClaimTrackingNumber(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimTrackingNumberParams) (int64, error)
	GetTrackingNumber(ctx context.Context, db sqlc.DBTX, trackingNumber string) (sqlc.TrackingNumbers, error)
}

// TrackingNumberRepository is the PostgreSQL uniqueness arbiter. A claim is a
// single INSERT ... ON CONFLICT DO NOTHING, so concurrent claims of the same
// identifier are serialized by the unique constraint.
type TrackingNumberRepository struct {
	queries TrackingNumberWriteQueries
	db      sqlc.DBTX
}

func NewTrackingNumberRepository(queries TrackingNumberWriteQueries, db sqlc.DBTX) *TrackingNumberRepository {
	return &TrackingNumberRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TrackingNumberRepository) TryClaim(ctx context.Context, rec *tracking.ClaimedIdentifier) (tracking.ClaimOutcome, error) {
	params := converter.ClaimedIdentifierToClaimParams(rec)
	_, err := r.queries.ClaimTrackingNumber(ctx, r.db, params)
	switch {
	case err == nil:
		return tracking.ClaimOutcomeClaimed, nil
	case pgconv.IsNoRows(err):
		// ON CONFLICT DO NOTHING returns no row when the identifier exists.
		return tracking.ClaimOutcomeCollision, nil
	case infra.IsUniqueViolation(err, trackingNumberUniqueConstraint):
		return tracking.ClaimOutcomeCollision, nil
	default:
		return tracking.ClaimOutcomeUnknown, infra.WrapRepoErr("failed to claim tracking number", err)
	}
}

func (r *TrackingNumberRepository) FindByTrackingNumber(ctx context.Context, number tracking.TrackingNumber) (*tracking.ClaimedIdentifier, error) {
	row, err := r.queries.GetTrackingNumber(ctx, r.db, number.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("tracking number not found")
		}
		return nil, infra.WrapRepoErr("failed to get tracking number", err)
	}
	rec, err := converter.ClaimedIdentifierFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert tracking number row", err)
	}
	return rec, nil
}
