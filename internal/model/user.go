package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users. The table belongs to the
// external auth provider.
type UserStore interface {
	GetByID(ctx context.Context, id string) (User, error)
	EmailTakenByOther(ctx context.Context, email, excludeID string) (bool, error)
	Update(ctx context.Context, id string, update ProfileUpdate) (User, error)
}

// CredentialStore reads and rotates the password credential of a user.
type CredentialStore interface {
	GetPassword(ctx context.Context, userID string) (string, error)
	UpdatePassword(ctx context.Context, userID, record string) error
}

// User represents a profile row.
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	Image         *string
	Role          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfileUpdate carries the profile fields a user may change. Nil fields are left untouched.
type ProfileUpdate struct {
	Name  *string
	Email *string
	Image *string
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Image == nil
}

// Profile is a user together with a signed URL for the avatar.
// ImageURLErr is set when the avatar exists but no URL could be signed.
type Profile struct {
	User
	ImageURL    *PresignedURL
	ImageURLErr error
}

// AvatarUpload describes where a client must PUT a new avatar.
type AvatarUpload struct {
	Key string
	PresignedURL
}
