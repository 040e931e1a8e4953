package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dracula-tv/media-backend/internal/api/http/handler"
	"github.com/dracula-tv/media-backend/internal/api/http/middleware"
	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
)

// Router builds the gin engines of the account and watchlist services.
// Both share CORS, request logging and bearer authentication.
type Router struct {
	authenticator  model.Authenticator
	contextManager model.ContextManager
	allowedOrigins []string
	healthCheck    func(ctx context.Context) error
	logger         *logger.Logger
}

// New creates a Router.
func New(
	authenticator model.Authenticator,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authenticator:  authenticator,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// SetHealthCheck makes /healthz report 503 while check fails.
func (r *Router) SetHealthCheck(check func(ctx context.Context) error) {
	r.healthCheck = check
}

// Account returns the engine of the account service.
func (r *Router) Account(service handler.AccountService) *gin.Engine {
	engine, api := r.base("/api/accounts")

	h := handler.NewAccount(service, r.contextManager, r.logger)
	api.GET("/profile/:user_id/", h.GetProfile)
	api.PUT("/profile/:user_id/", h.UpdateProfile)
	api.PATCH("/profile/:user_id/", h.UpdateProfile)
	api.POST("/change-password/:user_id/", h.ChangePassword)
	api.POST("/avatar/:user_id/upload-url/", h.AvatarUploadURL)

	return engine
}

// Watchlist returns the engine of the watchlist service.
func (r *Router) Watchlist(service handler.WatchlistService) *gin.Engine {
	engine, api := r.base("/api/watchlist")

	h := handler.NewWatchlist(service, r.contextManager, r.logger)
	api.GET("/", h.List)
	api.POST("/", h.Create)
	api.GET("/:id/", h.Get)
	api.PUT("/:id/", h.Replace)
	api.PATCH("/:id/", h.Patch)
	api.DELETE("/:id/", h.Delete)

	return engine
}

func (r *Router) base(prefix string) (*gin.Engine, *gin.RouterGroup) {
	handler.RegisterValidation()

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle, middleware.CORS(r.allowedOrigins))

	engine.GET("/healthz", r.health)

	return engine, engine.Group(prefix, authenticate.Handle)
}

func (r *Router) health(c *gin.Context) {
	if r.healthCheck != nil {
		if err := r.healthCheck(c.Request.Context()); err != nil {
			r.logger.Warn("health check failed", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
