package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Echo query parameters
// @Description Debug-only endpoint that echoes the query string back as JSON
// @Tags debug
// @Produce json
// @Success 200 {object} map[string]string
// @Router /next-tracking-number/debug [get]
func DebugEcho(c *gin.Context) {
	params := make(map[string]string, len(c.Request.URL.Query()))
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"query":  params,
	})
}
