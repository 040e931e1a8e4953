package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dracula-tv/media-backend/internal/api/http/response"
	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
)

const posterURLRules = "omitempty,http_url,max=200"

// WatchlistService is the set of watchlist use-cases served over HTTP.
type WatchlistService interface {
	List(ctx context.Context, principal model.Principal, filter model.WatchlistFilter) ([]model.WatchlistEntry, error)
	Create(ctx context.Context, principal model.Principal, entry model.WatchlistEntry) (model.WatchlistEntry, error)
	Get(ctx context.Context, principal model.Principal, id uuid.UUID) (model.WatchlistEntry, error)
	Update(ctx context.Context, principal model.Principal, id uuid.UUID, patch model.WatchlistPatch) (model.WatchlistEntry, error)
	Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error
}

type Watchlist struct {
	service        WatchlistService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewWatchlist(service WatchlistService, contextManager model.ContextManager, logger *logger.Logger) *Watchlist {
	return &Watchlist{service: service, contextManager: contextManager, logger: logger}
}

type entryResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	MediaID   string    `json:"media_id"`
	MediaType string    `json:"media_type"`
	Title     string    `json:"title"`
	PosterURL *string   `json:"poster_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newEntryResponse(e model.WatchlistEntry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		MediaID:   e.MediaID,
		MediaType: string(e.MediaType),
		Title:     e.Title,
		PosterURL: e.PosterURL,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type listQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=watching completed planned"`
	MediaType string `form:"media_type" binding:"omitempty,oneof=anime movie"`
}

// createEntryRequest has no user_id: the owner always comes from the token.
type createEntryRequest struct {
	MediaID   string  `json:"media_id" binding:"required,max=255"`
	MediaType string  `json:"media_type" binding:"required,oneof=anime movie"`
	Title     string  `json:"title" binding:"required,max=512"`
	PosterURL *string `json:"poster_url" binding:"omitempty,http_url,max=200"`
	Status    string  `json:"status" binding:"omitempty,oneof=watching completed planned"`
}

type replaceEntryRequest struct {
	MediaID   string  `json:"media_id" binding:"required,max=255"`
	MediaType string  `json:"media_type" binding:"required,oneof=anime movie"`
	Title     string  `json:"title" binding:"required,max=512"`
	PosterURL *string `json:"poster_url" binding:"omitempty,http_url,max=200"`
	Status    string  `json:"status" binding:"required,oneof=watching completed planned"`
}

type patchEntryRequest struct {
	MediaID   *string        `json:"media_id" binding:"omitempty,min=1,max=255"`
	MediaType *string        `json:"media_type" binding:"omitempty,oneof=anime movie"`
	Title     *string        `json:"title" binding:"omitempty,min=1,max=512"`
	PosterURL nullableString `json:"poster_url"`
	Status    *string        `json:"status" binding:"omitempty,oneof=watching completed planned"`
}

// nullableString tells an explicit null apart from an absent field.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (h *Watchlist) List(c *gin.Context) {
	principal, ok := principalFromRequest(c, h.contextManager)
	if !ok {
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	entries, err := h.service.List(c.Request.Context(), principal, model.WatchlistFilter{
		Status:    model.WatchStatus(q.Status),
		MediaType: model.MediaType(q.MediaType),
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, newEntryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Watchlist) Create(c *gin.Context) {
	principal, ok := principalFromRequest(c, h.contextManager)
	if !ok {
		return
	}

	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.service.Create(c.Request.Context(), principal, model.WatchlistEntry{
		MediaID:   req.MediaID,
		MediaType: model.MediaType(req.MediaType),
		Title:     req.Title,
		PosterURL: req.PosterURL,
		Status:    model.WatchStatus(req.Status),
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, newEntryResponse(entry))
}

func (h *Watchlist) Get(c *gin.Context) {
	principal, ok := principalFromRequest(c, h.contextManager)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := h.service.Get(c.Request.Context(), principal, id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newEntryResponse(entry))
}

// Replace is PUT: every mutable field is overwritten.
func (h *Watchlist) Replace(c *gin.Context) {
	principal, ok := principalFromRequest(c, h.contextManager)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req replaceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	mediaType := model.MediaType(req.MediaType)
	status := model.WatchStatus(req.Status)
	patch := model.WatchlistPatch{
		MediaID:   &req.MediaID,
		MediaType: &mediaType,
		Title:     &req.Title,
		PosterURL: &req.PosterURL,
		Status:    &status,
	}

	h.update(c, principal, id, patch)
}

// Patch is PATCH: only fields present in the body change.
func (h *Watchlist) Patch(c *gin.Context) {
	principal, ok := principalFromRequest(c, h.contextManager)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req patchEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.PosterURL.Value != nil && !validateVar(c, "poster_url", *req.PosterURL.Value, posterURLRules) {
		return
	}

	patch := model.WatchlistPatch{
		MediaID: req.MediaID,
		Title:   req.Title,
	}
	if req.MediaType != nil {
		mt := model.MediaType(*req.MediaType)
		patch.MediaType = &mt
	}
	if req.Status != nil {
		st := model.WatchStatus(*req.Status)
		patch.Status = &st
	}
	if req.PosterURL.Set {
		patch.PosterURL = &req.PosterURL.Value
	}

	h.update(c, principal, id, patch)
}

func (h *Watchlist) update(c *gin.Context, principal model.Principal, id uuid.UUID, patch model.WatchlistPatch) {
	entry, err := h.service.Update(c.Request.Context(), principal, id, patch)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newEntryResponse(entry))
}

func (h *Watchlist) Delete(c *gin.Context) {
	principal, ok := principalFromRequest(c, h.contextManager)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), principal, id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// entryID parses the :id path parameter. Ids that are not UUIDs cannot exist.
func entryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}
