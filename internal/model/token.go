package model

// Authenticator resolves an Authorization header into a Principal.
type Authenticator interface {
	Authenticate(header string) (Principal, error)
}
