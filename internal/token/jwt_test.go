package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dracula-tv/media-backend/internal/model"
)

const testSecret = "secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func bearer(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
}

func TestJWT_Authenticate_Subject(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{name: "sub", claims: jwt.MapClaims{"sub": "u1", "exp": future}, want: "u1"},
		{name: "no exp", claims: jwt.MapClaims{"sub": "u1"}, want: "u1"},
		{name: "user_id wins over sub", claims: jwt.MapClaims{"user_id": "a", "sub": "b", "id": "c"}, want: "a"},
		{name: "sub wins over id", claims: jwt.MapClaims{"sub": "b", "id": "c"}, want: "b"},
		{name: "id fallback", claims: jwt.MapClaims{"id": "c"}, want: "c"},
		{name: "empty user_id skipped", claims: jwt.MapClaims{"user_id": "", "sub": "b"}, want: "b"},
		{name: "numeric id", claims: jwt.MapClaims{"user_id": 42}, want: "42"},
		{name: "zero id skipped", claims: jwt.MapClaims{"user_id": 0, "id": "c"}, want: "c"},
		{name: "audience ignored", claims: jwt.MapClaims{"sub": "u1", "aud": "someone-else"}, want: "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewJWT(testSecret).Authenticate(bearer(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, model.Principal{ID: tt.want}, got)
		})
	}
}

func TestJWT_Authenticate_SchemeIsCaseInsensitive(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u1"})

	for _, scheme := range []string{"bearer", "BEARER", "BeArEr"} {
		got, err := NewJWT(testSecret).Authenticate(scheme + " " + token)
		require.NoError(t, err, scheme)
		assert.Equal(t, "u1", got.ID)
	}
}

func TestJWT_Authenticate_Rejects(t *testing.T) {
	valid := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u1"})
	none := sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": "u1"})
	hs512 := sign(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"sub": "u1"})

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "empty header", header: "", wantErr: ErrMissingCredentials},
		{name: "blank header", header: "   ", wantErr: ErrMissingCredentials},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrUnauthenticated},
		{name: "scheme only", header: "Bearer", wantErr: ErrUnauthenticated},
		{name: "token with spaces", header: "Bearer " + valid + " extra", wantErr: ErrUnauthenticated},
		{name: "garbage token", header: "Bearer not.a.jwt", wantErr: ErrUnauthenticated},
		{name: "wrong secret", header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "u1"}), wantErr: ErrUnauthenticated},
		{name: "alg none", header: "Bearer " + none, wantErr: ErrUnauthenticated},
		{name: "alg HS512", header: "Bearer " + hs512, wantErr: ErrUnauthenticated},
		{name: "expired", header: bearer(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix()}), wantErr: ErrTokenExpired},
		{name: "no subject", header: bearer(t, jwt.MapClaims{"name": "x"}), wantErr: ErrUnauthenticated},
		{name: "boolean subject", header: bearer(t, jwt.MapClaims{"sub": true}), wantErr: ErrUnauthenticated},
		{name: "object subject", header: bearer(t, jwt.MapClaims{"user_id": map[string]any{"id": "u1"}}), wantErr: ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewJWT(testSecret).Authenticate(tt.header)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrUnauthenticated)
			assert.Equal(t, model.Principal{}, got)
		})
	}
}

func TestJWT_Authenticate_NotConfigured(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u1"})

	_, err := NewJWT("").Authenticate("Bearer " + token)
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.NotErrorIs(t, err, ErrUnauthenticated)

	_, err = NewJWT("").Authenticate("")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
