package api

import (
	"log/slog"
	"net/http"

	reqdto "tracking-number-generator/internal/handler/dto/request"
	resdto "tracking-number-generator/internal/handler/dto/response"
	"tracking-number-generator/internal/handler/httperr"
	"tracking-number-generator/internal/pkg/errs"
	"tracking-number-generator/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TrackingNumberHandler struct {
	cmds commands.TrackingNumberCommands
}

func NewTrackingNumberHandler(cmds commands.TrackingNumberCommands) *TrackingNumberHandler {
	return &TrackingNumberHandler{cmds: cmds}
}

// @Summary Issue tracking number
// @Description Issue a new unique tracking number for a parcel
// @Tags tracking
// @Produce json
// @Param origin_country_id query string true "ISO 3166-1 alpha-2 origin country" example(MY)
// @Param destination_country_id query string true "ISO 3166-1 alpha-2 destination country" example(ID)
// @Param weight query string true "Weight in kg, up to three decimals" example(1.234)
// @Param created_at query string true "RFC 3339 timestamp" example(2018-11-20T19:29:32+08:00)
// @Param customer_id query string true "Customer UUID"
// @Param customer_name query string true "Customer name" example(RedBox Logistics)
// @Param customer_slug query string true "Kebab-case customer slug" example(redbox-logistics)
// @Success 200 {object} resdto.TrackingNumberResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /next-tracking-number [get]
func (h *TrackingNumberHandler) NextTrackingNumber(c *gin.Context) {
	var req reqdto.NextTrackingNumberRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.ValidationDetail(err))
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.ValidationDetail(err))
		return
	}

	result, err := h.cmds.IssueTrackingNumber(c.Request.Context(), domainReq)
	if err != nil {
		status, msg := issuanceErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	slog.DebugContext(c.Request.Context(), "tracking number issued",
		"tracking_number", result.TrackingNumber.String(),
		"request_id", result.RequestID.String())
	c.JSON(http.StatusOK, resdto.FromIssuanceResult(result))
}

func issuanceErrorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, commands.ErrGenerationExhausted):
		return http.StatusServiceUnavailable, "Unable to generate a unique tracking number, please retry"
	case errs.Is(err, commands.ErrInterruptedDuringBackoff):
		return http.StatusServiceUnavailable, "Tracking number generation was interrupted"
	case errs.Is(err, commands.ErrGenerationFailed):
		return http.StatusInternalServerError, "Tracking number generation failed"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
