package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WatchlistStore defines persistence operations for watchlist entries.
type WatchlistStore interface {
	Create(ctx context.Context, entry WatchlistEntry) (WatchlistEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (WatchlistEntry, error)
	ListByUser(ctx context.Context, userID string, filter WatchlistFilter) ([]WatchlistEntry, error)
	Update(ctx context.Context, entry WatchlistEntry) (WatchlistEntry, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

// WatchlistEntry is a media item saved by a user.
type WatchlistEntry struct {
	ID        uuid.UUID
	UserID    string
	MediaID   string
	MediaType MediaType
	Title     string
	PosterURL *string
	Status    WatchStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WatchlistFilter narrows a listing. Zero values match everything.
type WatchlistFilter struct {
	Status    WatchStatus
	MediaType MediaType
}

// WatchlistPatch carries the mutable fields of an entry. Nil fields are left untouched.
// The owner is not part of it.
type WatchlistPatch struct {
	MediaID   *string
	MediaType *MediaType
	Title     *string
	PosterURL **string
	Status    *WatchStatus
}

// Apply returns entry with the patch applied.
func (p WatchlistPatch) Apply(entry WatchlistEntry) WatchlistEntry {
	if p.MediaID != nil {
		entry.MediaID = *p.MediaID
	}
	if p.MediaType != nil {
		entry.MediaType = *p.MediaType
	}
	if p.Title != nil {
		entry.Title = *p.Title
	}
	if p.PosterURL != nil {
		entry.PosterURL = *p.PosterURL
	}
	if p.Status != nil {
		entry.Status = *p.Status
	}
	return entry
}

// MediaType enumerates media kinds.
type MediaType string

const (
	// MediaTypeAnime is an anime title.
	MediaTypeAnime MediaType = "anime"
	// MediaTypeMovie is a movie title.
	MediaTypeMovie MediaType = "movie"
)

// WatchStatus enumerates viewing progress.
type WatchStatus string

const (
	WatchStatusWatching  WatchStatus = "watching"
	WatchStatusCompleted WatchStatus = "completed"
	WatchStatusPlanned   WatchStatus = "planned"
)
