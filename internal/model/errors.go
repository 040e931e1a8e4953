package model

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the principal does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrPathPrincipalMismatch is returned when the user id in the URL is not the caller's.
	ErrPathPrincipalMismatch = errors.New("path user does not match authenticated principal")
	// ErrInvalidCredential is returned when the current password does not verify.
	ErrInvalidCredential = errors.New("current password is incorrect")
	// ErrEmailTaken is returned when another user already has the email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidAvatarKey is returned for image keys outside the caller's avatar prefix
	// or for objects that were never uploaded.
	ErrInvalidAvatarKey = errors.New("invalid avatar key")
	// ErrUnsupportedContentType is returned for avatar uploads that are not a known image type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
	// ErrStorageUnavailable is returned when the object store cannot sign a URL.
	ErrStorageUnavailable = errors.New("object storage unavailable")
)
