package upstream

import (
	"errors"
	"net/http"

	"stars_admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// RespondError maps upstream failures onto the response envelope.
func RespondError(c *gin.Context, err error) {
	if errors.Is(err, ErrNoToken) {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Session has no token")
		return
	}
	var se *StatusError
	if errors.As(err, &se) {
		response.Error(c, http.StatusBadGateway, response.ErrUpstreamStatus, se.Error())
		return
	}
	response.Error(c, http.StatusBadGateway, response.ErrUpstreamUnavailable, "Platform backend unavailable")
}
