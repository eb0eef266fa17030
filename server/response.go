package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/viprogramm/audio11eleven/errors"
)

// RespondWithError inspects err: if it is an *apperrors.AppError the status
// and flat `{"error": <message>}` body are derived automatically; otherwise a
// generic 500 is sent. Causes and codes never reach the client.
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// RespondOK sends a 200 response with the given body as-is. The relay's
// public responses are flat objects, not envelopes.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
