package api

import (
	"errors"
	"net/http"

	"github.com/authormark-api/internal/apperr"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// statusFor maps error kinds to HTTP status codes
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInsufficientBalance:
		return http.StatusPaymentRequired
	case apperr.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an application error as a structured response with a
// stable kind and a human-readable message. The underlying cause is logged
// but never sent to the client.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Msg("Unclassified error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"kind": apperr.KindInternal, "message": "internal server error"},
		})
		return
	}

	status := statusFor(appErr.Kind)
	if status >= 500 {
		log.Error().Err(err).Str("op", appErr.Op).Msg("Operation failed")
	}

	c.JSON(status, gin.H{
		"error": gin.H{"kind": appErr.Kind, "message": appErr.Message},
	})
}
