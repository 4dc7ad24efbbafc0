package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"tracking-number-generator/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows and exposes X-Request-ID, whatever the
// configured header lists say, so browser callers can correlate issuances.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withRequestIDHeader(cfg.AllowHeaders),
		ExposeHeaders:    withRequestIDHeader(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS configured for tracking API",
		slog.Any("origins", corsCfg.AllowOrigins),
		slog.Any("methods", corsCfg.AllowMethods))
	return cors.New(corsCfg)
}

func withRequestIDHeader(headers []string) []string {
	if slices.ContainsFunc(headers, func(h string) bool { return strings.EqualFold(h, RequestIDHeader) }) {
		return headers
	}
	return append(slices.Clone(headers), RequestIDHeader)
}
