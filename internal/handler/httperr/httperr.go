package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON body of every failed tracking-number request.
// RequestID echoes the X-Request-ID header so a caller can quote it.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail    any    `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail, RequestID: c.GetString("request_id")}
	resp.Error.Message = msg
	return resp
}

func Internal(c *gin.Context) Response {
	return NewResponse(c, http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError writes the envelope and keeps err on c.Errors for the
// logging middleware. err must be non-nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := NewResponse(c, status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
