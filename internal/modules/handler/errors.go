package handler

import (
	"errors"
	"net/http"

	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/atriumstudio/atrium/internal/modules/service"
	"github.com/gin-gonic/gin"
)

// respondErr translates the shared service error kinds into HTTP responses.
// Validation failures render inline with their message; store failures are
// retryable and say so.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrImageRead):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, serializer.Err(http.StatusConflict, err.Error(), err))
	case errors.Is(err, service.ErrSessionBusy):
		c.JSON(http.StatusConflict, serializer.Err(http.StatusConflict, "an operation is already in flight", err))
	case errors.Is(err, service.ErrStore):
		c.JSON(http.StatusServiceUnavailable, serializer.StoreErr("", err))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}
