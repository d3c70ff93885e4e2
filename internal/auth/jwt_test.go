package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/interview-backend/internal/config"
	"github.com/prepmate/interview-backend/internal/entity"
)

func newTokenService(ttl time.Duration) *TokenService {
	return NewTokenService(config.AuthConfig{
		JWTSecret: "test-secret-at-least-16-chars",
		TokenTTL:  ttl,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTokenService(time.Hour)
	user := &entity.User{ID: "user-1", Email: "user@example.com"}

	token, expiresAt, err := svc.Generate(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTokenService(-time.Minute)

	token, _, err := svc.Generate(&entity.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := newTokenService(time.Hour)
	verifier := NewTokenService(config.AuthConfig{
		JWTSecret: "a-completely-different-secret",
		TokenTTL:  time.Hour,
	})

	token, _, err := issuer.Generate(&entity.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTokenService(time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestMiddleware(t *testing.T) {
	svc := newTokenService(time.Hour)
	token, _, err := svc.Generate(&entity.User{ID: "user-1"})
	require.NoError(t, err)

	var gotUserID string
	handler := Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/interviews", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/interviews", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/interviews", nil)
		req.Header.Set("Authorization", "Token "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/interviews", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
