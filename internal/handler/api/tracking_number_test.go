//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"tracking-number-generator/internal/domain/tracking"
	"tracking-number-generator/internal/handler/api"
	reqdto "tracking-number-generator/internal/handler/dto/request"
	resdto "tracking-number-generator/internal/handler/dto/response"
	"tracking-number-generator/internal/pkg/clock"
	"tracking-number-generator/internal/pkg/errs"
	"tracking-number-generator/internal/usecase/commands"
	"tracking-number-generator/tests/common/builder"
	"tracking-number-generator/tests/common/httptest"
	"tracking-number-generator/tests/common/testutil"
	commandsmock "tracking-number-generator/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const nextTrackingNumberURL = "/next-tracking-number"

type TrackingNumberHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTrackingNumberCommands
	handler      *api.TrackingNumberHandler
}

func (s *TrackingNumberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTrackingNumberCommands(s.mockCtrl)
	s.handler = api.NewTrackingNumberHandler(s.mockCommands)

	s.router.GET(nextTrackingNumberURL, s.handler.NextTrackingNumber)
}

func (s *TrackingNumberHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackingNumberHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrackingNumberHandlerTestSuite))
}

type testCaseTracking struct {
	name        string
	mutate      func(q url.Values)
	expectCode  int
	expectField string
}

func issued(req tracking.IssuanceRequest) *tracking.IssuanceResult {
	number, _ := tracking.NewTrackingNumber("AB12CD34EF")
	claimed := tracking.NewClaimedIdentifier(number, req, uuid.New())
	result := tracking.NewIssuanceResult(claimed, req)
	return &result
}

// ================================================================================
// TestNextTrackingNumber
// ================================================================================

func (s *TrackingNumberHandlerTestSuite) TestNextTrackingNumber() {
	base := builder.NewTrackingRequestBuilder()
	query := base.BuildQuery()

	s.Run("success: returns 200 with the issued tracking number", func() {
		var got tracking.IssuanceRequest
		s.mockCommands.EXPECT().IssueTrackingNumber(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req tracking.IssuanceRequest) (*tracking.IssuanceResult, error) {
				got = req
				return issued(req), nil
			}).Times(1)

		rec := httptest.PerformQuery(s.T(), s.router, nextTrackingNumberURL, query)

		var body resdto.TrackingNumberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("AB12CD34EF", body.TrackingNumber)
		s.Equal("2018-11-20T19:29:32+08:00", body.CreatedAt)
		s.Equal(base.CustomerID.String(), body.CustomerID)
		s.Equal("RedBox Logistics", body.CustomerName)
		_, err := uuid.Parse(body.RequestID)
		s.NoError(err)

		s.Equal("MY", got.Origin.String())
		s.Equal("ID", got.Destination.String())
		s.Equal(int64(1234), got.Weight.Thousandths())
		s.True(base.CreatedAt.Equal(got.CreatedAt))
		s.Equal(base.CustomerID, got.CustomerID)
		s.Equal("redbox-logistics", got.CustomerSlug.String())
	})

	bound := []testCaseTracking{
		{name: "weight boundary OK (0.001)", mutate: testutil.Field("weight", "0.001"), expectCode: http.StatusOK},
		{name: "weight boundary OK (999.999)", mutate: testutil.Field("weight", "999.999"), expectCode: http.StatusOK},
		{name: "weight boundary OK (integer)", mutate: testutil.Field("weight", "12"), expectCode: http.StatusOK},
		{name: "weight boundary invalid (0)", mutate: testutil.Field("weight", "0"), expectCode: http.StatusBadRequest, expectField: "weight"},
		{name: "weight boundary invalid (0.000)", mutate: testutil.Field("weight", "0.000"), expectCode: http.StatusBadRequest, expectField: "weight"},
		{name: "weight boundary invalid (1000)", mutate: testutil.Field("weight", "1000"), expectCode: http.StatusBadRequest, expectField: "weight"},
		{name: "weight precision invalid (four decimals)", mutate: testutil.Field("weight", "1.2345"), expectCode: http.StatusBadRequest, expectField: "weight"},
		{name: "weight negative", mutate: testutil.Field("weight", "-1"), expectCode: http.StatusBadRequest, expectField: "weight"},
		{name: "customer_name length OK (255 chars)", mutate: testutil.Field("customer_name", strings.Repeat("a", 255)), expectCode: http.StatusOK},
		{name: "customer_name length invalid (256 chars)", mutate: testutil.Field("customer_name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest, expectField: "customer_name"},
		{name: "customer_slug length OK (100 chars)", mutate: testutil.Field("customer_slug", strings.Repeat("a", 100)), expectCode: http.StatusOK},
		{name: "customer_slug length invalid (101 chars)", mutate: testutil.Field("customer_slug", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest, expectField: "customer_slug"},
	}

	format := []testCaseTracking{
		{name: "origin not a country code", mutate: testutil.Field("origin_country_id", "XX"), expectCode: http.StatusBadRequest, expectField: "origin_country_id"},
		{name: "destination too long", mutate: testutil.Field("destination_country_id", "IDN"), expectCode: http.StatusBadRequest, expectField: "destination_country_id"},
		{name: "created_at not RFC 3339", mutate: testutil.Field("created_at", "2018-11-20 19:29:32"), expectCode: http.StatusBadRequest, expectField: "created_at"},
		{name: "customer_id not a UUID", mutate: testutil.Field("customer_id", "not-a-uuid"), expectCode: http.StatusBadRequest, expectField: "customer_id"},
		{name: "customer_slug not kebab-case", mutate: testutil.Field("customer_slug", "RedBox_Logistics"), expectCode: http.StatusBadRequest, expectField: "customer_slug"},
		{name: "customer_slug trailing hyphen", mutate: testutil.Field("customer_slug", "redbox-"), expectCode: http.StatusBadRequest, expectField: "customer_slug"},
		{name: "customer_name blank", mutate: testutil.Field("customer_name", "   "), expectCode: http.StatusBadRequest, expectField: "customer_name"},
	}

	missing := []testCaseTracking{
		{name: "missing field: origin_country_id", mutate: testutil.Field("origin_country_id", nil), expectCode: http.StatusBadRequest, expectField: "origin_country_id"},
		{name: "missing field: destination_country_id", mutate: testutil.Field("destination_country_id", nil), expectCode: http.StatusBadRequest, expectField: "destination_country_id"},
		{name: "missing field: weight", mutate: testutil.Field("weight", nil), expectCode: http.StatusBadRequest, expectField: "weight"},
		{name: "missing field: created_at", mutate: testutil.Field("created_at", nil), expectCode: http.StatusBadRequest, expectField: "created_at"},
		{name: "missing field: customer_id", mutate: testutil.Field("customer_id", nil), expectCode: http.StatusBadRequest, expectField: "customer_id"},
		{name: "missing field: customer_name", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest, expectField: "customer_name"},
		{name: "missing field: customer_slug", mutate: testutil.Field("customer_slug", nil), expectCode: http.StatusBadRequest, expectField: "customer_slug"},
	}

	allValidationTestCases := [][]testCaseTracking{bound, format, missing}

	s.Run("validation: boundary, format and missing fields", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					q := testutil.QueryMap(query, tc.mutate)

					if tc.expectCode == http.StatusOK {
						s.mockCommands.EXPECT().IssueTrackingNumber(gomock.Any(), gomock.Any()).
							DoAndReturn(func(_ context.Context, req tracking.IssuanceRequest) (*tracking.IssuanceResult, error) {
								return issued(req), nil
							}).Times(1)
					}
					rec := httptest.PerformQuery(s.T(), s.router, nextTrackingNumberURL, q)
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
						httptest.AssertErrorDetailFields(s.T(), rec, tc.expectField)
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "generation exhausted",
				commandsError:  errs.Mark(errs.New("unable to generate unique tracking number after 3 attempts"), commands.ErrGenerationExhausted),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Unable to generate a unique tracking number",
			},
			{
				name:           "interrupted during backoff",
				commandsError:  errs.Mark(errs.Wrap(context.Canceled, "interrupted"), commands.ErrInterruptedDuringBackoff),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "interrupted",
			},
			{
				name:           "generation failed",
				commandsError:  errs.Mark(errs.New("connection refused"), commands.ErrGenerationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Tracking number generation failed",
			},
			{
				name:           "domain validation error",
				commandsError:  errs.Mark(errs.New("bad input"), errs.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "unclassified error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().IssueTrackingNumber(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformQuery(s.T(), s.router, nextTrackingNumberURL, query)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestHealth
// ================================================================================

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{name: "store reachable", wantCode: http.StatusOK, wantStatus: "UP"},
		{name: "store unreachable", pingErr: errors.New("dial tcp: connection refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "DOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := api.NewHealthHandler(fakePinger{err: tt.pingErr}, clock.NewMockClock(now))
			router := gin.New()
			router.GET("/health", h.Health)
			router.GET("/next-tracking-number/health", h.Health)

			for _, path := range []string{"/health", "/next-tracking-number/health"} {
				rec := httptest.PerformQuery(t, router, path, nil)
				require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

				var body resdto.HealthResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantStatus, body.Status)
				assert.Equal(t, api.ServiceName, body.Service)
				assert.Equal(t, "2025-01-02T03:04:05Z", body.Timestamp)
			}
		})
	}
}
