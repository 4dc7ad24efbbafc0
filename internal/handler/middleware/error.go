package middleware

import (
	"log/slog"

	"tracking-number-generator/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes an error envelope for handlers that recorded an error
// on the context without answering. The newest public envelope wins; any
// other recorded error becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				if resp.RequestID == "" {
					resp.RequestID = GetRequestID(c)
				}
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			return
		}

		slog.Error("unanswered request error",
			slog.String("request_id", GetRequestID(c)),
			slog.String("path", c.Request.URL.Path),
			slog.String("errors", c.Errors.String()))
		resp := httperr.Internal(c)
		c.JSON(resp.Status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					slog.Any("error", err),
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path))

				resp := httperr.Internal(c)
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
