package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dracula-tv/media-backend/internal/api/http/response"
	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
	"github.com/dracula-tv/media-backend/internal/token"
)

// Authenticate validates bearer tokens and injects the principal into the request context.
type Authenticate struct {
	authenticator  model.Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator model.Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects the request unless the Authorization header carries a valid token.
func (m *Authenticate) Handle(c *gin.Context) {
	principal, err := m.authenticator.Authenticate(c.GetHeader("Authorization"))
	if err != nil {
		if errors.Is(err, token.ErrNotConfigured) {
			m.logger.Error("token secret is not configured")
			response.Error(c, http.StatusInternalServerError, response.CodeServerMisconfigured, "authentication is not configured")
			c.Abort()
			return
		}

		m.logger.Debug("request not authenticated",
			"path", c.Request.URL.Path,
			"error", err.Error())
		c.Header("WWW-Authenticate", `Bearer realm="api"`)
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthenticated, unauthenticatedMessage(err))
		c.Abort()
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetPrincipalToContext(c.Request.Context(), principal))
	c.Next()
}

func unauthenticatedMessage(err error) string {
	switch {
	case errors.Is(err, token.ErrMissingCredentials):
		return "authentication credentials were not provided"
	case errors.Is(err, token.ErrTokenExpired):
		return "token has expired"
	default:
		return "invalid token"
	}
}
