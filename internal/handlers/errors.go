package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloodlifesaver/api/internal/repository"
	"bloodlifesaver/api/internal/respond"
	"bloodlifesaver/api/internal/service"
)

// respondError maps service and repository errors onto the envelope.
// Unexpected failures log with full detail; the message text reaches the
// client only outside production.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respond.Error(c, http.StatusBadRequest, validationErr.Error(), "")
	case errors.Is(err, service.ErrEmailTaken):
		respond.Error(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, service.ErrRequestNotPending):
		respond.Error(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, service.ErrInvalidCredentials):
		respond.Error(c, http.StatusUnauthorized, err.Error(), "")
	case errors.Is(err, repository.ErrUserNotFound):
		respond.Error(c, http.StatusNotFound, "User not found", "")
	case errors.Is(err, repository.ErrDonorNotFound):
		respond.Error(c, http.StatusNotFound, "Donor not found", "")
	case errors.Is(err, repository.ErrRequestNotFound):
		respond.Error(c, http.StatusNotFound, "Blood request not found", "")
	default:
		h.log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		detail := ""
		if h.cfg.Environment != "production" {
			detail = err.Error()
		}
		respond.Error(c, http.StatusInternalServerError, "Internal server error", detail)
	}
}
