package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dracula-tv/media-backend/internal/authz"
	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
)

// Watchlist implements watchlist use-cases scoped to the calling principal.
type Watchlist struct {
	store  model.WatchlistStore
	logger *logger.Logger
}

func NewWatchlist(store model.WatchlistStore, logger *logger.Logger) *Watchlist {
	return &Watchlist{store: store, logger: logger}
}

// List returns the principal's entries, newest first.
func (s *Watchlist) List(ctx context.Context, principal model.Principal, filter model.WatchlistFilter) ([]model.WatchlistEntry, error) {
	if principal.ID == "" {
		return []model.WatchlistEntry{}, nil
	}

	entries, err := s.store.ListByUser(ctx, principal.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}

// Create stores entry under the principal. Any owner set by the caller is replaced.
func (s *Watchlist) Create(ctx context.Context, principal model.Principal, entry model.WatchlistEntry) (model.WatchlistEntry, error) {
	if principal.ID == "" {
		return model.WatchlistEntry{}, model.ErrForbidden
	}

	entry.ID = uuid.New()
	entry.UserID = principal.ID
	if entry.Status == "" {
		entry.Status = model.WatchStatusPlanned
	}

	created, err := s.store.Create(ctx, entry)
	if err != nil {
		s.logger.Error("Watchlist service: failed to create entry",
			"user_id", principal.ID,
			"error", err.Error())
		return model.WatchlistEntry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	s.logger.Debug("Watchlist service: entry created",
		"user_id", principal.ID,
		"entry_id", created.ID)

	return created, nil
}

func (s *Watchlist) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (model.WatchlistEntry, error) {
	return s.owned(ctx, principal, id)
}

// Update applies patch to an owned entry. The owner never changes.
func (s *Watchlist) Update(ctx context.Context, principal model.Principal, id uuid.UUID, patch model.WatchlistPatch) (model.WatchlistEntry, error) {
	entry, err := s.owned(ctx, principal, id)
	if err != nil {
		return model.WatchlistEntry{}, err
	}

	updated, err := s.store.Update(ctx, patch.Apply(entry))
	if err != nil {
		return model.WatchlistEntry{}, fmt.Errorf("failed to update entry: %w", err)
	}

	return updated, nil
}

func (s *Watchlist) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if _, err := s.owned(ctx, principal, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id, principal.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.logger.Debug("Watchlist service: entry deleted",
		"user_id", principal.ID,
		"entry_id", id)

	return nil
}

func (s *Watchlist) owned(ctx context.Context, principal model.Principal, id uuid.UUID) (model.WatchlistEntry, error) {
	entry, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.WatchlistEntry{}, fmt.Errorf("failed to get entry by id: %w", err)
	}

	if !authz.Authorize(&principal, entry.UserID) {
		s.logger.Warn("Watchlist service: access to entry of another user",
			"principal", principal.ID,
			"entry_id", id)
		return model.WatchlistEntry{}, model.ErrForbidden
	}

	return entry, nil
}
