//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"tracking-number-generator/internal/handler/api"
	"tracking-number-generator/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEcho(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/next-tracking-number/debug", api.DebugEcho)

	rec := httptest.PerformQuery(t, router, "/next-tracking-number/debug", url.Values{
		"weight":            {"1.234"},
		"origin_country_id": {"MY"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Method string            `json:"method"`
		Path   string            `json:"path"`
		Query  map[string]string `json:"query"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.MethodGet, body.Method)
	assert.Equal(t, "/next-tracking-number/debug", body.Path)
	assert.Equal(t, map[string]string{"weight": "1.234", "origin_country_id": "MY"}, body.Query)
}
