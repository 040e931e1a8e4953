package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dracula-tv/media-backend/internal/api/http/response"
	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
)

// AccountService is the set of account use-cases served over HTTP.
type AccountService interface {
	GetProfile(ctx context.Context, principal model.Principal, userID string) (model.Profile, error)
	UpdateProfile(ctx context.Context, principal model.Principal, userID string, update model.ProfileUpdate) (model.Profile, error)
	ChangePassword(ctx context.Context, principal model.Principal, userID, current, next string) error
	AvatarUploadURL(ctx context.Context, principal model.Principal, userID, contentType string) (model.AvatarUpload, error)
}

type Account struct {
	service        AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAccount(service AccountService, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{service: service, contextManager: contextManager, logger: logger}
}

type profileResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Image         *string   `json:"image"`
	ImageURL      *string   `json:"image_url"`
	ImageURLError string    `json:"image_url_error,omitempty"`
	Role          *string   `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newProfileResponse(p model.Profile) profileResponse {
	resp := profileResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		EmailVerified: p.EmailVerified,
		Image:         p.Image,
		Role:          p.Role,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.ImageURL != nil {
		resp.ImageURL = &p.ImageURL.URL
	}
	if p.ImageURLErr != nil {
		resp.ImageURLError = "unavailable"
	}
	return resp
}

type updateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
	Image *string `json:"image" binding:"omitempty,max=255"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

type uploadURLRequest struct {
	ContentType string `json:"content_type" binding:"required,oneof=image/jpeg image/png image/webp image/gif"`
}

type uploadURLResponse struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Account) GetProfile(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), principal, c.Param("user_id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// UpdateProfile serves both PUT and PATCH; absent fields are left untouched either way.
func (h *Account) UpdateProfile(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), principal, c.Param("user_id"), model.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(profile))
}

func (h *Account) ChangePassword(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.service.ChangePassword(c.Request.Context(), principal, c.Param("user_id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "password updated"})
}

func (h *Account) AvatarUploadURL(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req uploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	upload, err := h.service.AvatarUploadURL(c.Request.Context(), principal, c.Param("user_id"), req.ContentType)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, uploadURLResponse{
		Key:       upload.Key,
		UploadURL: upload.URL,
		ExpiresAt: upload.ExpiresAt,
	})
}

func (h *Account) principal(c *gin.Context) (model.Principal, bool) {
	return principalFromRequest(c, h.contextManager)
}

func principalFromRequest(c *gin.Context, contextManager model.ContextManager) (model.Principal, bool) {
	principal, ok := contextManager.GetPrincipalFromContext(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthenticated, "authentication credentials were not provided")
		return model.Principal{}, false
	}
	return principal, true
}
