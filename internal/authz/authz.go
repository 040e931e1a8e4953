// Package authz decides whether a principal may act on a resource it owns.
package authz

import "github.com/dracula-tv/media-backend/internal/model"

// Authorize reports whether principal owns a resource recorded as ownerID.
func Authorize(principal *model.Principal, ownerID string) bool {
	return principal != nil && principal.ID != "" && principal.ID == ownerID
}
