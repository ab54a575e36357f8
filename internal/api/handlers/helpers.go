package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crypticbroker/platform-api/pkg/apperrors"
	"github.com/crypticbroker/platform-api/pkg/response"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(v), true
}

// writeError maps service errors onto HTTP statuses. Anything outside the
// domain error taxonomy is a 500 with a generic body.
func writeError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, response.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
