//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"math/big"
	"testing"

	"tracking-number-generator/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThousandthsFromNumeric(t *testing.T) {
	testCases := []struct {
		name    string
		input   pgtype.Numeric
		want    int64
		wantErr bool
	}{
		{name: "scale matches", input: pgconv.ThousandthsToNumeric(1234), want: 1234},
		{name: "smallest weight", input: pgconv.ThousandthsToNumeric(1), want: 1},
		{name: "largest weight", input: pgconv.ThousandthsToNumeric(999999), want: 999999},
		{name: "coarser scale", input: pgtype.Numeric{Int: big.NewInt(15), Exp: -1, Valid: true}, want: 1500},
		{name: "integer with positive exponent", input: pgtype.Numeric{Int: big.NewInt(2), Exp: 1, Valid: true}, want: 20000},
		{name: "finer scale without remainder", input: pgtype.Numeric{Int: big.NewInt(12340), Exp: -4, Valid: true}, want: 1234},
		{name: "finer scale with remainder", input: pgtype.Numeric{Int: big.NewInt(12345), Exp: -4, Valid: true}, wantErr: true},
		{name: "null", input: pgtype.Numeric{}, wantErr: true},
		{name: "nan", input: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pgconv.ThousandthsFromNumeric(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
	assert.False(t, pgconv.IsNoRows(nil))
}
