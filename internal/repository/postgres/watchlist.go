package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dracula-tv/media-backend/internal/model"
)

var _ model.WatchlistStore = (*WatchlistRepository)(nil)

type WatchlistRepository struct {
	db DBTX
}

func NewWatchlistRepository(db DBTX) *WatchlistRepository {
	return &WatchlistRepository{
		db: db,
	}
}

const watchlistColumns = `id, user_id, media_id, media_type, title, poster_url, status, created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (model.WatchlistEntry, error) {
	var e model.WatchlistEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.MediaID, &e.MediaType, &e.Title,
		&e.PosterURL, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *WatchlistRepository) Create(ctx context.Context, entry model.WatchlistEntry) (model.WatchlistEntry, error) {
	query := `
		INSERT INTO watchlist_entries (id, user_id, media_id, media_type, title, poster_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + watchlistColumns

	saved, err := scanEntry(r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.MediaID, string(entry.MediaType), entry.Title,
		entry.PosterURL, string(entry.Status),
	))
	if err != nil {
		return model.WatchlistEntry{}, fmt.Errorf("failed to create watchlist entry: %w", err)
	}

	return saved, nil
}

func (r *WatchlistRepository) GetByID(ctx context.Context, id uuid.UUID) (model.WatchlistEntry, error) {
	query := `SELECT ` + watchlistColumns + ` FROM watchlist_entries WHERE id = $1`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WatchlistEntry{}, model.ErrNotFound
		}
		return model.WatchlistEntry{}, fmt.Errorf("failed to get watchlist entry: %w", err)
	}

	return entry, nil
}

// ListByUser returns the user's entries, newest first. Scoping happens in the
// query itself; rows of other users are never read.
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string, filter model.WatchlistFilter) ([]model.WatchlistEntry, error) {
	query := `
		SELECT ` + watchlistColumns + `
		FROM watchlist_entries
		WHERE user_id = $1
		  AND ($2::text = '' OR status = $2::text)
		  AND ($3::text = '' OR media_type = $3::text)
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, string(filter.Status), string(filter.MediaType))
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist entries: %w", err)
	}
	defer rows.Close()

	entries := []model.WatchlistEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list watchlist entries: %w", err)
	}

	return entries, nil
}

// Update writes the mutable fields of entry. The owner is part of the WHERE
// clause and is never written.
func (r *WatchlistRepository) Update(ctx context.Context, entry model.WatchlistEntry) (model.WatchlistEntry, error) {
	query := `
		UPDATE watchlist_entries
		SET media_id = $3, media_type = $4, title = $5, poster_url = $6, status = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + watchlistColumns

	saved, err := scanEntry(r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.MediaID, string(entry.MediaType), entry.Title,
		entry.PosterURL, string(entry.Status),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WatchlistEntry{}, model.ErrNotFound
		}
		return model.WatchlistEntry{}, fmt.Errorf("failed to update watchlist entry: %w", err)
	}

	return saved, nil
}

func (r *WatchlistRepository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	const query = `DELETE FROM watchlist_entries WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
