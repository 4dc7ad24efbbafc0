package sqlitestore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"tracking-number-generator/internal/domain/tracking"
	"tracking-number-generator/internal/infra"
	"tracking-number-generator/internal/pkg/clock"
	"tracking-number-generator/internal/pkg/errs"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

//go:embed schema.sql
var schemaSQL string

// Store is an embedded uniqueness arbiter backed by a single SQLite file.
// Writes go through one connection; the UNIQUE constraint decides claims.
type Store struct {
	sqlDB *sql.DB
	clock clock.Clock
}

// Open opens (creating if needed) the SQLite file at path and applies the schema.
func Open(path string, clk clock.Clock) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errs.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errs.Wrap(err, "open sqlite db")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errs.Wrap(err, "ping sqlite db")
	}
	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, errs.Wrap(err, "apply sqlite schema")
	}
	return &Store{sqlDB: sqlDB, clock: clk}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) TryClaim(ctx context.Context, rec *tracking.ClaimedIdentifier) (tracking.ClaimOutcome, error) {
	now := toMillis(s.clock.Now())
	res, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO tracking_numbers (
    tracking_number, origin_country_id, destination_country_id, weight_thousandths,
    customer_id, customer_name, customer_slug, request_id, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (tracking_number) DO NOTHING`,
		rec.TrackingNumber().String(),
		rec.Origin().String(),
		rec.Destination().String(),
		rec.Weight().Thousandths(),
		rec.CustomerID().String(),
		rec.CustomerName().String(),
		rec.CustomerSlug().String(),
		rec.RequestID().String(),
		now,
		now,
	)
	if err != nil {
		if isTrackingNumberUniqueViolation(err) {
			return tracking.ClaimOutcomeCollision, nil
		}
		return tracking.ClaimOutcomeUnknown, infra.WrapRepoErr("failed to claim tracking number", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return tracking.ClaimOutcomeUnknown, infra.WrapRepoErr("failed to read claim result", err)
	}
	if affected == 0 {
		return tracking.ClaimOutcomeCollision, nil
	}
	return tracking.ClaimOutcomeClaimed, nil
}

func (s *Store) FindByTrackingNumber(ctx context.Context, number tracking.TrackingNumber) (*tracking.ClaimedIdentifier, error) {
	var (
		origin, destination, customerID, customerName, customerSlug, requestID string
		weight, createdAt, updatedAt                                           int64
	)
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT origin_country_id, destination_country_id, weight_thousandths, customer_id,
       customer_name, customer_slug, request_id, created_at, updated_at
FROM tracking_numbers
WHERE tracking_number = ?`, number.String()).Scan(
		&origin, &destination, &weight, &customerID,
		&customerName, &customerSlug, &requestID, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.NotFound("tracking number not found")
		}
		return nil, infra.WrapRepoErr("failed to get tracking number", err)
	}

	rec, err := reconstruct(number, origin, destination, weight, customerID, customerName, customerSlug, requestID, createdAt, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert tracking number row", err)
	}
	return rec, nil
}

func reconstruct(
	number tracking.TrackingNumber,
	origin, destination string,
	weight int64,
	customerID, customerName, customerSlug, requestID string,
	createdAt, updatedAt int64,
) (*tracking.ClaimedIdentifier, error) {
	o, err := tracking.NewCountryCode(origin)
	if err != nil {
		return nil, err
	}
	d, err := tracking.NewCountryCode(destination)
	if err != nil {
		return nil, err
	}
	w, err := tracking.NewWeightFromThousandths(weight)
	if err != nil {
		return nil, err
	}
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, err
	}
	name, err := tracking.NewCustomerName(customerName)
	if err != nil {
		return nil, err
	}
	slug, err := tracking.NewCustomerSlug(customerSlug)
	if err != nil {
		return nil, err
	}
	rid, err := uuid.Parse(requestID)
	if err != nil {
		return nil, err
	}
	return tracking.ReconstructClaimedIdentifier(number, o, d, w, cid, name, slug, rid, fromMillis(createdAt), fromMillis(updatedAt)), nil
}

func isTrackingNumberUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	onTrackingNumber := strings.Contains(message, "tracking_numbers.tracking_number")
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return onTrackingNumber
		}
		return false
	}
	return onTrackingNumber && strings.Contains(message, "unique constraint failed")
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
