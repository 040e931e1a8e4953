package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dracula-tv/media-backend/internal/model"
)

var (
	// ErrUnauthenticated is the class of every credential failure.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrMissingCredentials is returned when no Authorization header was sent.
	ErrMissingCredentials = fmt.Errorf("%w: no credentials provided", ErrUnauthenticated)
	// ErrTokenExpired is returned for tokens whose exp claim has passed.
	ErrTokenExpired = fmt.Errorf("%w: token has expired", ErrUnauthenticated)
	// ErrNotConfigured is returned when the process has no shared secret.
	// It is not an ErrUnauthenticated: the server is broken, not the caller.
	ErrNotConfigured = errors.New("token secret is not configured")
)

const bearerScheme = "bearer"

// subjectClaims are checked in order; the first usable one becomes the principal id.
var subjectClaims = []string{"user_id", "sub", "id"}

var _ model.Authenticator = (*JWT)(nil)

// JWT authenticates HS256 bearer tokens signed with a shared secret.
// The audience claim is not checked.
type JWT struct {
	secretKey []byte
	parser    *jwt.Parser
}

// NewJWT creates an authenticator for the given shared secret.
// An empty secret yields an authenticator that rejects every request with ErrNotConfigured.
func NewJWT(secretKey string) *JWT {
	return &JWT{
		secretKey: []byte(secretKey),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithJSONNumber(),
		),
	}
}

// Authenticate validates an Authorization header value and returns its principal.
func (j *JWT) Authenticate(header string) (model.Principal, error) {
	if len(j.secretKey) == 0 {
		return model.Principal{}, ErrNotConfigured
	}

	tokenString, err := extractBearerToken(header)
	if err != nil {
		return model.Principal{}, err
	}

	claims := jwt.MapClaims{}
	token, err := j.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Principal{}, ErrTokenExpired
		}
		return model.Principal{}, fmt.Errorf("%w: invalid token: %v", ErrUnauthenticated, err)
	}
	if !token.Valid {
		return model.Principal{}, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	id, ok := subjectFromClaims(claims)
	if !ok {
		return model.Principal{}, fmt.Errorf("%w: user id not found in token", ErrUnauthenticated)
	}

	return model.Principal{ID: id}, nil
}

func extractBearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", ErrMissingCredentials
	}
	if !strings.EqualFold(parts[0], bearerScheme) {
		return "", fmt.Errorf("%w: unsupported authorization scheme", ErrUnauthenticated)
	}
	switch len(parts) {
	case 1:
		return "", fmt.Errorf("%w: invalid token header, no credentials provided", ErrUnauthenticated)
	case 2:
		return parts[1], nil
	default:
		return "", fmt.Errorf("%w: invalid token header, token must not contain spaces", ErrUnauthenticated)
	}
}

func subjectFromClaims(claims jwt.MapClaims) (string, bool) {
	for _, name := range subjectClaims {
		if id, ok := usableSubject(claims[name]); ok {
			return id, true
		}
	}
	return "", false
}

// usableSubject accepts non-empty strings and non-zero numbers.
// Booleans and other JSON types are rejected rather than stringified.
func usableSubject(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, val != ""
	case json.Number:
		if f, err := val.Float64(); err != nil || f == 0 {
			return "", false
		}
		return val.String(), true
	default:
		return "", false
	}
}
