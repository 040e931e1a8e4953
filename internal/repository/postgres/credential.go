package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dracula-tv/media-backend/internal/model"
)

// credentialProvider marks the email/password row in the provider's account table.
const credentialProvider = "credential"

var _ model.CredentialStore = (*CredentialRepository)(nil)

// CredentialRepository reads and rotates password records in the provider's account table.
type CredentialRepository struct {
	db DBTX
}

func NewCredentialRepository(db DBTX) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) GetPassword(ctx context.Context, userID string) (string, error) {
	const query = `
		SELECT password FROM account
		WHERE "userId" = $1 AND "providerId" = $2 AND password IS NOT NULL`

	var record string
	if err := r.db.QueryRowContext(ctx, query, userID, credentialProvider).Scan(&record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get password: %w", err)
	}

	return record, nil
}

// UpdatePassword replaces the record in one statement so readers never see a partial change.
func (r *CredentialRepository) UpdatePassword(ctx context.Context, userID, record string) error {
	const query = `
		UPDATE account SET password = $1, "updatedAt" = NOW()
		WHERE "userId" = $2 AND "providerId" = $3`

	res, err := r.db.ExecContext(ctx, query, record, userID, credentialProvider)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
