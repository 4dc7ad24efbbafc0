//go:build unit

package seencache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracking-number-generator/internal/domain/tracking"
	"tracking-number-generator/internal/infra/seencache"
	"tracking-number-generator/tests/common/builder"
	commandsmock "tracking-number-generator/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func record(t *testing.T, number string) *tracking.ClaimedIdentifier {
	t.Helper()
	n, err := tracking.NewTrackingNumber(number)
	require.NoError(t, err)
	return tracking.NewClaimedIdentifier(n, builder.NewTrackingRequestBuilder().MustBuildDomain(), uuid.New())
}

func TestCachingArbiter_TryClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("claimed identifier is a collision on the next try without a store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockTrackingNumberArbiter(ctrl)
		store.EXPECT().TryClaim(gomock.Any(), gomock.Any()).Return(tracking.ClaimOutcomeClaimed, nil).Times(1)
		cache := seencache.New(store, time.Minute, 100)

		outcome, err := cache.TryClaim(ctx, record(t, "SEEN00001"))
		require.NoError(t, err)
		assert.Equal(t, tracking.ClaimOutcomeClaimed, outcome)

		outcome, err = cache.TryClaim(ctx, record(t, "SEEN00001"))
		require.NoError(t, err)
		assert.Equal(t, tracking.ClaimOutcomeCollision, outcome)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("store collision is remembered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockTrackingNumberArbiter(ctrl)
		store.EXPECT().TryClaim(gomock.Any(), gomock.Any()).Return(tracking.ClaimOutcomeCollision, nil).Times(1)
		cache := seencache.New(store, time.Minute, 100)

		for range 3 {
			outcome, err := cache.TryClaim(ctx, record(t, "TAKEN0001"))
			require.NoError(t, err)
			assert.Equal(t, tracking.ClaimOutcomeCollision, outcome)
		}
	})

	t.Run("store errors are passed through and not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockTrackingNumberArbiter(ctrl)
		storeErr := errors.New("store unavailable")
		gomock.InOrder(
			store.EXPECT().TryClaim(gomock.Any(), gomock.Any()).Return(tracking.ClaimOutcomeUnknown, storeErr),
			store.EXPECT().TryClaim(gomock.Any(), gomock.Any()).Return(tracking.ClaimOutcomeClaimed, nil),
		)
		cache := seencache.New(store, time.Minute, 100)

		_, err := cache.TryClaim(ctx, record(t, "FLAKY0001"))
		assert.ErrorIs(t, err, storeErr)
		assert.Zero(t, cache.Len())

		outcome, err := cache.TryClaim(ctx, record(t, "FLAKY0001"))
		require.NoError(t, err)
		assert.Equal(t, tracking.ClaimOutcomeClaimed, outcome)
	})

	t.Run("distinct identifiers always reach the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockTrackingNumberArbiter(ctrl)
		store.EXPECT().TryClaim(gomock.Any(), gomock.Any()).Return(tracking.ClaimOutcomeClaimed, nil).Times(2)
		cache := seencache.New(store, time.Minute, 100)

		_, err := cache.TryClaim(ctx, record(t, "FIRST0001"))
		require.NoError(t, err)
		_, err = cache.TryClaim(ctx, record(t, "SECOND001"))
		require.NoError(t, err)
	})

	t.Run("expired entries go back to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockTrackingNumberArbiter(ctrl)
		gomock.InOrder(
			store.EXPECT().TryClaim(gomock.Any(), gomock.Any()).Return(tracking.ClaimOutcomeClaimed, nil),
			store.EXPECT().TryClaim(gomock.Any(), gomock.Any()).Return(tracking.ClaimOutcomeCollision, nil),
		)
		cache := seencache.New(store, 20*time.Millisecond, 100)

		_, err := cache.TryClaim(ctx, record(t, "SHORTTTL1"))
		require.NoError(t, err)
		time.Sleep(50 * time.Millisecond)

		outcome, err := cache.TryClaim(ctx, record(t, "SHORTTTL1"))
		require.NoError(t, err)
		assert.Equal(t, tracking.ClaimOutcomeCollision, outcome)
	})
}
