package response

import "github.com/gin-gonic/gin"

// Error codes sent in the error envelope.
const (
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeValidation          = "VALIDATION_ERROR"
	CodeTooManyRequests     = "TOO_MANY_REQUESTS"
	CodeServerMisconfigured = "SERVER_MISCONFIGURED"
	CodeStorageUnavailable  = "STORAGE_UNAVAILABLE"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)

// Error sends the unified payload {"error": {"code", "message"}}.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// FieldErrors sends a validation envelope with per-field messages.
func FieldErrors(c *gin.Context, status int, message string, fields map[string]string) {
	c.JSON(status, gin.H{"error": gin.H{"code": CodeValidation, "message": message, "fields": fields}})
}
