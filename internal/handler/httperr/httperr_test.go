//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tracking-number-generator/internal/handler/httperr"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/next-tracking-number", nil)
	c.Set("request_id", "req-1")
	cause := errors.New("retries exhausted")

	httperr.AbortWithError(c, http.StatusServiceUnavailable, cause, "Try again", nil)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Try again"},"request_id":"req-1"}`, rec.Body.String())

	require.Len(t, c.Errors, 1)
	recorded := c.Errors.Last()
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	assert.ErrorIs(t, recorded, cause)
	meta, ok := recorded.Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, meta.Status)
}

func TestAbortWithError_NilErrorPanics(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid request", nil)
	})
}
