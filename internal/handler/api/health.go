package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	resdto "tracking-number-generator/internal/handler/dto/response"
	"tracking-number-generator/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

const ServiceName = "tracking-number-generator"

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	clk   clock.Clock
}

func NewHealthHandler(store Pinger, clk clock.Clock) *HealthHandler {
	return &HealthHandler{store: store, clk: clk}
}

// @Summary Health check
// @Description Report service health including store reachability
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Failure 503 {object} resdto.HealthResponse
// @Router /health [get]
// @Router /next-tracking-number/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := statusUp, http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "health check: store unreachable", "error", err)
		status, code = statusDown, http.StatusServiceUnavailable
	}

	c.JSON(code, resdto.HealthResponse{
		Status:    status,
		Service:   ServiceName,
		Timestamp: h.clk.Now().UTC().Format(time.RFC3339),
	})
}
