package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

// UserStore is a configurable mock of store.UserStore.
type UserStore struct {
	CreateFn          func(ctx context.Context, user *domain.User) error
	GetByUsernameFn   func(ctx context.Context, username string) (*domain.User, error)
	UpdateLastLoginFn func(ctx context.Context, username string, at time.Time) error
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, store.ErrUserNotFound
}

func (m *UserStore) UpdateLastLogin(ctx context.Context, username string, at time.Time) error {
	if m.UpdateLastLoginFn != nil {
		return m.UpdateLastLoginFn(ctx, username, at)
	}
	return nil
}

// HistoryStore is a configurable mock of store.HistoryStore.
type HistoryStore struct {
	AppendFn     func(ctx context.Context, entry *domain.ContentEntry) (uuid.UUID, error)
	ListByUserFn func(ctx context.Context, username string) ([]domain.ContentEntry, error)
}

var _ store.HistoryStore = (*HistoryStore)(nil)

func (m *HistoryStore) Append(ctx context.Context, entry *domain.ContentEntry) (uuid.UUID, error) {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, entry)
	}
	return uuid.New(), nil
}

func (m *HistoryStore) ListByUser(ctx context.Context, username string) ([]domain.ContentEntry, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, username)
	}
	return []domain.ContentEntry{}, nil
}

// QuizStore is a configurable mock of store.QuizStore.
type QuizStore struct {
	CreateFn       func(ctx context.Context, quiz *domain.Quiz) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	ListFn         func(ctx context.Context) ([]domain.Quiz, error)
	AppendResultFn func(ctx context.Context, result *domain.QuizResult) error
}

var _ store.QuizStore = (*QuizStore)(nil)

func (m *QuizStore) Create(ctx context.Context, quiz *domain.Quiz) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, quiz)
	}
	return nil
}

func (m *QuizStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrQuizNotFound
}

func (m *QuizStore) List(ctx context.Context) ([]domain.Quiz, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Quiz{}, nil
}

func (m *QuizStore) AppendResult(ctx context.Context, result *domain.QuizResult) error {
	if m.AppendResultFn != nil {
		return m.AppendResultFn(ctx, result)
	}
	return nil
}

// BlobStore is a configurable mock of store.BlobStore.
type BlobStore struct {
	PutFn func(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

var _ store.BlobStore = (*BlobStore)(nil)

func (m *BlobStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if m.PutFn != nil {
		return m.PutFn(ctx, key, contentType, r)
	}
	return "https://example.com/media/" + key, nil
}
