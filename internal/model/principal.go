package model

// Principal is the identity of the caller, derived from a validated bearer token.
// It lives for one request and is never persisted.
type Principal struct {
	ID string
}
