package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/infinitivesi/lab-8/pkg/apperror"
)

// ParamID parses a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.NewError(apperror.ValidationAppError, "invalid "+name, http.StatusBadRequest, err)
	}
	return uint(id), nil
}
