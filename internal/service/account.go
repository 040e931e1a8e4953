package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dracula-tv/media-backend/internal/logger"
	"github.com/dracula-tv/media-backend/internal/model"
	"github.com/dracula-tv/media-backend/internal/password"
)

const avatarPrefix = "avatars/"

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Account implements profile, password and avatar use-cases.
// Every operation requires the path user to be the authenticated principal.
type Account struct {
	userStore       model.UserStore
	credentialStore model.CredentialStore
	avatars         model.AvatarStorage
	limiter         model.AttemptLimiter
	hasher          *password.Hasher
	logger          *logger.Logger
}

func NewAccount(
	userStore model.UserStore,
	credentialStore model.CredentialStore,
	avatars model.AvatarStorage,
	limiter model.AttemptLimiter,
	hasher *password.Hasher,
	logger *logger.Logger,
) *Account {
	return &Account{
		userStore:       userStore,
		credentialStore: credentialStore,
		avatars:         avatars,
		limiter:         limiter,
		hasher:          hasher,
		logger:          logger,
	}
}

func (s *Account) GetProfile(ctx context.Context, principal model.Principal, userID string) (model.Profile, error) {
	if err := checkPathUser(principal, userID); err != nil {
		s.logger.Warn("Account service: profile access for another user",
			"principal", principal.ID,
			"user_id", userID)
		return model.Profile{}, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return s.profile(ctx, user), nil
}

func (s *Account) UpdateProfile(ctx context.Context, principal model.Principal, userID string, update model.ProfileUpdate) (model.Profile, error) {
	if err := checkPathUser(principal, userID); err != nil {
		s.logger.Warn("Account service: profile update for another user",
			"principal", principal.ID,
			"user_id", userID)
		return model.Profile{}, err
	}

	current, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if update.Empty() {
		return s.profile(ctx, current), nil
	}

	if update.Email != nil && *update.Email != current.Email {
		taken, err := s.userStore.EmailTakenByOther(ctx, *update.Email, userID)
		if err != nil {
			return model.Profile{}, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return model.Profile{}, model.ErrEmailTaken
		}
	}

	if update.Image != nil && *update.Image != "" {
		if err := s.checkAvatarKey(ctx, userID, *update.Image); err != nil {
			return model.Profile{}, err
		}
	}

	updated, err := s.userStore.Update(ctx, userID, update)
	if errors.Is(err, model.ErrEmailTaken) {
		return model.Profile{}, err
	}
	if err != nil {
		s.logger.Error("Account service: failed to update profile",
			"user_id", userID,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to update user: %w", err)
	}

	if update.Image != nil && current.Image != nil && *current.Image != "" && *current.Image != *update.Image {
		if err := s.avatars.Delete(ctx, *current.Image); err != nil {
			s.logger.Warn("Account service: failed to delete replaced avatar",
				"user_id", userID,
				"key", *current.Image,
				"error", err.Error())
		}
	}

	s.logger.Info("Account service: profile updated",
		"user_id", userID)

	return s.profile(ctx, updated), nil
}

// ChangePassword verifies current against the stored credential and replaces it with
// a fresh record for next. The stored record is untouched unless verification passes.
func (s *Account) ChangePassword(ctx context.Context, principal model.Principal, userID, current, next string) error {
	if err := checkPathUser(principal, userID); err != nil {
		s.logger.Warn("Account service: password change for another user",
			"principal", principal.ID,
			"user_id", userID)
		return err
	}

	limitKey := "change-password:" + userID
	if err := s.limiter.Allow(ctx, limitKey); err != nil {
		s.logger.Warn("Account service: password change attempt rejected by limiter",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to check attempt limit: %w", err)
	}

	stored, err := s.credentialStore.GetPassword(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		// social-login accounts have no password to verify against
		return model.ErrInvalidCredential
	}
	if err != nil {
		return fmt.Errorf("failed to get credential: %w", err)
	}

	if !s.hasher.Verify(current, stored) {
		s.logger.Info("Account service: current password mismatch",
			"user_id", userID)
		return model.ErrInvalidCredential
	}

	record, err := s.hasher.Rotate(next)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.credentialStore.UpdatePassword(ctx, userID, record.String()); err != nil {
		s.logger.Error("Account service: failed to store password",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.limiter.Reset(ctx, limitKey); err != nil {
		s.logger.Warn("Account service: failed to reset attempt limit",
			"user_id", userID,
			"error", err.Error())
	}

	s.logger.Info("Account service: password changed",
		"user_id", userID)

	return nil
}

func (s *Account) AvatarUploadURL(ctx context.Context, principal model.Principal, userID, contentType string) (model.AvatarUpload, error) {
	if err := checkPathUser(principal, userID); err != nil {
		return model.AvatarUpload{}, err
	}

	ext, ok := avatarExtensions[contentType]
	if !ok {
		return model.AvatarUpload{}, model.ErrUnsupportedContentType
	}

	key := avatarPrefix + userID + "/" + uuid.NewString() + ext

	url, err := s.avatars.PresignUpload(ctx, key)
	if err != nil {
		s.logger.Error("Account service: failed to presign avatar upload",
			"user_id", userID,
			"key", key,
			"error", err.Error())
		return model.AvatarUpload{}, fmt.Errorf("failed to presign upload: %w", err)
	}

	return model.AvatarUpload{Key: key, PresignedURL: url}, nil
}

func (s *Account) checkAvatarKey(ctx context.Context, userID, key string) error {
	prefix := avatarPrefix + userID + "/"
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) || strings.Contains(key, "..") {
		return model.ErrInvalidAvatarKey
	}

	exists, err := s.avatars.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check avatar: %w: %w", model.ErrStorageUnavailable, err)
	}
	if !exists {
		return model.ErrInvalidAvatarKey
	}

	return nil
}

func (s *Account) profile(ctx context.Context, user model.User) model.Profile {
	p := model.Profile{User: user}
	if user.Image == nil || *user.Image == "" {
		return p
	}

	url, err := s.avatars.PresignDownload(ctx, *user.Image)
	if err != nil {
		s.logger.Warn("Account service: failed to presign avatar",
			"user_id", user.ID,
			"error", err.Error())
		p.ImageURLErr = err
		return p
	}
	p.ImageURL = &url

	return p
}

func checkPathUser(principal model.Principal, userID string) error {
	if principal.ID == "" || principal.ID != userID {
		return model.ErrPathPrincipalMismatch
	}
	return nil
}
