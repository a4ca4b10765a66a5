package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatluaknyang/guuk-api/internal/api"
	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/mocks"
	"github.com/gatluaknyang/guuk-api/internal/service/auth"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	newHandler := func(userStore *mocks.UserStore) *api.AuthHandler {
		return api.NewAuthHandler(
			userStore,
			&mocks.JWTService{},
			&mocks.PasswordHasher{},
			&mocks.PasswordVerifier{},
		)
	}

	t.Run("registers a new user", func(t *testing.T) {
		t.Parallel()
		var created *domain.User
		userStore := &mocks.UserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				created = user
				return nil
			},
		}
		handler := newHandler(userStore)

		w := postJSON(t, handler.Register, "/register", map[string]string{
			"username": "gatluak",
			"password": "correct horse battery",
			"email":    "gatluak@example.com",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "registered", body["status"])
		// The user field is the bare username, not the user record.
		assert.Equal(t, "gatluak", body["user"])

		require.NotNil(t, created)
		assert.Equal(t, "gatluak", created.Username)
		assert.Equal(t, "hashed:correct horse battery", created.HashedPassword)
		assert.Empty(t, created.Password)

		// The hash must never leak into the response.
		assert.NotContains(t, w.Body.String(), "hashed:")
	})

	t.Run("rejects a duplicate username with 400", func(t *testing.T) {
		t.Parallel()
		userStore := &mocks.UserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrUsernameExists
			},
		}
		handler := newHandler(userStore)

		w := postJSON(t, handler.Register, "/register", map[string]string{
			"username": "gatluak",
			"password": "correct horse battery",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Username already exists")
	})

	t.Run("rejects an invalid username", func(t *testing.T) {
		t.Parallel()
		handler := newHandler(&mocks.UserStore{})

		w := postJSON(t, handler.Register, "/register", map[string]string{
			"username": "not valid!",
			"password": "correct horse battery",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a missing password", func(t *testing.T) {
		t.Parallel()
		handler := newHandler(&mocks.UserStore{})

		w := postJSON(t, handler.Register, "/register", map[string]string{
			"username": "gatluak",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	storedUser := func() *domain.User {
		return &domain.User{
			ID:             [16]byte{1},
			Username:       "gatluak",
			HashedPassword: "stored-hash",
			CreatedAt:      time.Now().UTC(),
		}
	}

	t.Run("returns a bearer token on valid credentials", func(t *testing.T) {
		t.Parallel()
		var stampedUser string
		userStore := &mocks.UserStore{
			GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				return storedUser(), nil
			},
			UpdateLastLoginFn: func(ctx context.Context, username string, at time.Time) error {
				stampedUser = username
				return nil
			},
		}
		jwtService := &mocks.JWTService{
			GenerateTokenFn: func(ctx context.Context, username string) (string, error) {
				assert.Equal(t, "gatluak", username)
				return "signed-token", nil
			},
		}
		handler := api.NewAuthHandler(userStore, jwtService, &mocks.PasswordHasher{}, &mocks.PasswordVerifier{})

		w := postJSON(t, handler.Login, "/login", map[string]string{
			"username": "gatluak",
			"password": "correct horse battery",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "signed-token", body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
		assert.Equal(t, "gatluak", body["user"])
		assert.Equal(t, "gatluak", stampedUser)

		// The user's id and password hash stay out of the response.
		assert.NotContains(t, w.Body.String(), "stored-hash")
		assert.NotContains(t, w.Body.String(), "id")
	})

	t.Run("rejects a wrong password with 401", func(t *testing.T) {
		t.Parallel()
		userStore := &mocks.UserStore{
			GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				return storedUser(), nil
			},
		}
		verifier := &mocks.PasswordVerifier{
			CompareFn: func(hashedPassword, password string) error {
				return auth.ErrInvalidCredentials
			},
		}
		handler := api.NewAuthHandler(userStore, &mocks.JWTService{}, &mocks.PasswordHasher{}, verifier)

		w := postJSON(t, handler.Login, "/login", map[string]string{
			"username": "gatluak",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("treats an unknown user the same as a wrong password", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(&mocks.UserStore{}, &mocks.JWTService{}, &mocks.PasswordHasher{}, &mocks.PasswordVerifier{})

		w := postJSON(t, handler.Login, "/login", map[string]string{
			"username": "ghost",
			"password": "whatever",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("still succeeds when the last login stamp fails", func(t *testing.T) {
		t.Parallel()
		userStore := &mocks.UserStore{
			GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				return storedUser(), nil
			},
			UpdateLastLoginFn: func(ctx context.Context, username string, at time.Time) error {
				return store.ErrStoreUnavailable
			},
		}
		handler := api.NewAuthHandler(userStore, &mocks.JWTService{}, &mocks.PasswordHasher{}, &mocks.PasswordVerifier{})

		w := postJSON(t, handler.Login, "/login", map[string]string{
			"username": "gatluak",
			"password": "correct horse battery",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
