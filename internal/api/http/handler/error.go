package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dracula-tv/media-backend/internal/api/http/response"
	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
	"github.com/dracula-tv/media-backend/internal/ratelimit"
	"github.com/dracula-tv/media-backend/internal/token"
)

func handleError(c *gin.Context, logger *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredential):
		response.FieldErrors(c, http.StatusBadRequest, "invalid request",
			map[string]string{"current_password": "Current password is incorrect."})
	case errors.Is(err, model.ErrEmailTaken):
		response.FieldErrors(c, http.StatusBadRequest, "invalid request",
			map[string]string{"email": "Email already in use"})
	case errors.Is(err, model.ErrInvalidAvatarKey):
		response.FieldErrors(c, http.StatusBadRequest, "invalid request",
			map[string]string{"image": "Upload the avatar first and pass the key you were given."})
	case errors.Is(err, model.ErrUnsupportedContentType):
		response.FieldErrors(c, http.StatusBadRequest, "invalid request",
			map[string]string{"content_type": "Unsupported image type."})
	case errors.Is(err, model.ErrPathPrincipalMismatch), errors.Is(err, model.ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, "you do not have permission to perform this action")
	case errors.Is(err, model.ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "not found")
	case errors.Is(err, ratelimit.ErrLimited):
		response.Error(c, http.StatusTooManyRequests, response.CodeTooManyRequests, "too many attempts, try again later")
	case errors.Is(err, model.ErrStorageUnavailable):
		logger.Error("object storage unavailable", "path", c.Request.URL.Path, "error", err.Error())
		response.Error(c, http.StatusBadGateway, response.CodeStorageUnavailable, "object storage unavailable")
	case errors.Is(err, token.ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, response.CodeServerMisconfigured, "authentication is not configured")
	case errors.Is(err, token.ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthenticated, "invalid token")
	default:
		_ = c.Error(err)
		logger.Error("request failed", "path", c.Request.URL.Path, "error", err.Error())
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "internal server error")
	}
}
