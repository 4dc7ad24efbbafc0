//go:build e2e

package tracking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"tracking-number-generator/internal/domain/tracking"
	"tracking-number-generator/internal/handler/dto/response"
	"tracking-number-generator/tests/common/builder"
	"tracking-number-generator/tests/common/dbtest"
	"tracking-number-generator/tests/common/httptest"
	"tracking-number-generator/tests/common/testutil"
	"tracking-number-generator/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	nextTrackingNumberURL = "/next-tracking-number"
	healthURL             = "/health"
	scopedHealthURL       = "/next-tracking-number/health"
)

type TrackingNumberSuite struct {
	e2e.SharedSuite
}

func (s *TrackingNumberSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestTrackingNumberSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TrackingNumberSuite))
}

// =============================================================================
// TestNextTrackingNumber - issuance API tests
// =============================================================================

func (s *TrackingNumberSuite) TestNextTrackingNumber() {
	s.Run("Normal case: MY to ID parcel receives a persisted tracking number", func() {
		t := s.T()

		b := builder.NewTrackingRequestBuilder()
		w := httptest.PerformQuery(t, s.Router, nextTrackingNumberURL, b.BuildQuery())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertUncacheableJSON(t, w)

		var got response.TrackingNumberResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))

		want := response.TrackingNumberResponse{
			CreatedAt:    "2018-11-20T19:29:32+08:00",
			CustomerID:   "de619854-b59b-425e-9db4-943979e1bd49",
			CustomerName: "RedBox Logistics",
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(response.TrackingNumberResponse{}, "TrackingNumber", "RequestID")); diff != "" {
			t.Errorf("response mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, tracking.IsValidTrackingNumber(got.TrackingNumber), "got %q", got.TrackingNumber)
		_, err := uuid.Parse(got.RequestID)
		require.NoError(t, err)

		var (
			origin, destination, slug, requestID string
			weight                               float64
		)
		err = s.DB.QueryRow(context.Background(), `
			SELECT origin_country_id, destination_country_id, weight::float8, customer_slug, request_id::text
			FROM tracking_numbers WHERE tracking_number = $1`, got.TrackingNumber).
			Scan(&origin, &destination, &weight, &slug, &requestID)
		require.NoError(t, err)
		assert.Equal(t, "MY", origin)
		assert.Equal(t, "ID", destination)
		assert.InDelta(t, 1.234, weight, 1e-9)
		assert.Equal(t, "redbox-logistics", slug)
		assert.Equal(t, got.RequestID, requestID)
	})

	s.Run("Normal case: boundary weights are accepted and stored exactly", func() {
		t := s.T()

		for _, w := range []string{"0.001", "999.999"} {
			b := builder.NewTrackingRequestBuilder().WithWeight(w)
			rec := httptest.PerformQuery(t, s.Router, nextTrackingNumberURL, b.BuildQuery())
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got response.TrackingNumberResponse
			require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &got))

			var stored string
			err := s.DB.QueryRow(context.Background(),
				"SELECT weight::text FROM tracking_numbers WHERE tracking_number = $1", got.TrackingNumber).Scan(&stored)
			require.NoError(t, err)
			assert.Equal(t, w, stored)
		}
	})

	s.Run("Normal case: 100 parallel requests yield 100 distinct numbers", func() {
		t := s.T()

		const n = 100
		query := builder.NewTrackingRequestBuilder().BuildQuery()

		var (
			mu      sync.Mutex
			numbers = make(map[string]struct{}, n)
			codes   = make([]int, n)
			wg      sync.WaitGroup
		)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformQuery(t, s.Router, nextTrackingNumberURL, query)
				codes[i] = rec.Code
				if rec.Code != http.StatusOK {
					return
				}
				var got response.TrackingNumberResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
					return
				}
				mu.Lock()
				numbers[got.TrackingNumber] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()

		for i, code := range codes {
			require.Equal(t, http.StatusOK, code, "request %d", i)
		}
		assert.Len(t, numbers, n)
		assert.Equal(t, n, dbtest.CountTrackingNumbers(t, s.DB))
		assert.Equal(t, n, dbtest.CountDistinctTrackingNumbers(t, s.DB))
	})

	s.Run("Normal case: pre-existing rows are never reissued", func() {
		t := s.T()

		dbtest.InsertTrackingNumber(t, s.DB, "AAAAAAAA")
		dbtest.InsertTrackingNumber(t, s.DB, "ZZZZZZZZZZZZZZZZ")

		for range 10 {
			rec := httptest.PerformQuery(t, s.Router, nextTrackingNumberURL, builder.NewTrackingRequestBuilder().BuildQuery())
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		}
		assert.Equal(t, 12, dbtest.CountDistinctTrackingNumbers(t, s.DB))
	})

	s.Run("Error case: invalid input returns 400 and writes nothing", func() {
		testCases := []struct {
			name  string
			field string
			value any
		}{
			{name: "zero weight", field: "weight", value: "0"},
			{name: "weight above range", field: "weight", value: "1000"},
			{name: "weight with four decimals", field: "weight", value: "1.2345"},
			{name: "unknown origin", field: "origin_country_id", value: "XX"},
			{name: "slug with a space", field: "customer_slug", value: "Red Box"},
			{name: "bad created_at", field: "created_at", value: "yesterday"},
			{name: "missing customer_id", field: "customer_id", value: nil},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				t := s.T()

				q := testutil.QueryMap(builder.NewTrackingRequestBuilder().BuildQuery(), testutil.Field(tc.field, tc.value))
				rec := httptest.PerformQuery(t, s.Router, nextTrackingNumberURL, q)
				httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
				httptest.AssertErrorDetailFields(t, rec, tc.field)
				httptest.AssertUncacheableJSON(t, rec)
				assert.Equal(t, 0, dbtest.CountTrackingNumbers(t, s.DB))
			})
		}
	})
}

// =============================================================================
// TestHealth - health endpoints
// =============================================================================

func (s *TrackingNumberSuite) TestHealth() {
	for _, path := range []string{healthURL, scopedHealthURL} {
		s.Run("Normal case: "+path+" reports UP", func() {
			t := s.T()

			rec := httptest.PerformQuery(t, s.Router, path, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var got response.HealthResponse
			require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &got))
			assert.Equal(t, "UP", got.Status)
			assert.Equal(t, "tracking-number-generator", got.Service)
			ts, err := time.Parse(time.RFC3339, got.Timestamp)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now(), ts, time.Minute)
		})
	}
}
