package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatluaknyang/guuk-api/internal/api/middleware"
	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/mocks"
	"github.com/gatluaknyang/guuk-api/internal/service/auth"
)

func newAuthedChain(jwtService *mocks.JWTService, userStore *mocks.UserStore) http.Handler {
	m := middleware.NewAuthMiddleware(jwtService, userStore)
	return m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.GetUsername(r)
		if !ok {
			http.Error(w, "no username", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(username))
	}))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	validJWT := &mocks.JWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			require.Equal(t, "good-token", tokenString)
			return &auth.Claims{Username: "gatluak"}, nil
		},
	}
	knownUser := &mocks.UserStore{
		GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username, HashedPassword: "hash"}, nil
		},
	}

	t.Run("passes a valid token and resolves the username", func(t *testing.T) {
		t.Parallel()
		handler := newAuthedChain(validJWT, knownUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gatluak", w.Body.String())
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		t.Parallel()
		handler := newAuthedChain(validJWT, knownUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		t.Parallel()
		handler := newAuthedChain(validJWT, knownUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an expired token with a specific message", func(t *testing.T) {
		t.Parallel()
		expiredJWT := &mocks.JWTService{
			ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				return nil, auth.ErrExpiredToken
			},
		}
		handler := newAuthedChain(expiredJWT, knownUser)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer stale")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("rejects a token whose subject no longer exists", func(t *testing.T) {
		t.Parallel()
		handler := newAuthedChain(validJWT, &mocks.UserStore{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
