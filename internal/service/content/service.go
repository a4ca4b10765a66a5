// Package content implements the content-generation service: it routes
// requests through the generation dispatcher, normalizes the result and
// appends it to the caller's history.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/generation"
	"github.com/gatluaknyang/guuk-api/internal/platform/logger"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

// DefaultProvider is used by the legacy endpoints and whenever a request
// omits the provider field.
const DefaultProvider = "openai"

// Service defines the content-generation operations exposed to the API
// layer.
type Service interface {
	// Generate dispatches one generation request and persists the
	// resulting entry. An empty provider selects DefaultProvider;
	// legacy selects the bare-kind type label of the original
	// non-advanced endpoints.
	Generate(ctx context.Context, kind domain.ContentKind, provider, prompt, user string, legacy bool) (*domain.ContentEntry, error)

	// Save persists a caller-supplied entry (the /save-content flow).
	// The entry's created_at is stamped here, not by the caller.
	Save(ctx context.Context, entry *domain.ContentEntry) (*domain.ContentEntry, error)

	// History returns the user's entries, newest first.
	History(ctx context.Context, user string) ([]domain.ContentEntry, error)
}

type service struct {
	dispatcher *generation.Dispatcher
	history    store.HistoryStore
	logger     *slog.Logger
	timeFunc   func() time.Time // Injectable for testing
}

// NewService creates a content Service over the given dispatcher and
// history store. If log is nil, the default logger is used.
func NewService(dispatcher *generation.Dispatcher, history store.HistoryStore, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{
		dispatcher: dispatcher,
		history:    history,
		logger:     log.With(slog.String("component", "content_service")),
		timeFunc:   func() time.Time { return time.Now().UTC() },
	}
}

// Generate implements Service.Generate.
func (s *service) Generate(
	ctx context.Context,
	kind domain.ContentKind,
	provider, prompt, user string,
	legacy bool,
) (*domain.ContentEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == "" {
		return nil, domain.ErrEmptyEntryUser
	}
	if provider == "" {
		provider = DefaultProvider
	}

	entry, err := s.dispatcher.Dispatch(ctx, kind, provider, prompt, user, legacy)
	if err != nil {
		return nil, err
	}

	id, err := s.history.Append(ctx, &entry)
	if err != nil {
		log.Error("failed to append generated entry",
			slog.String("user", user),
			slog.String("type", entry.Type),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist entry: %w", err)
	}
	entry.ID = id

	log.Info("entry generated",
		slog.String("user", user),
		slog.String("type", entry.Type),
		slog.String("entry_id", id.String()))

	return &entry, nil
}

// Save implements Service.Save.
func (s *service) Save(ctx context.Context, entry *domain.ContentEntry) (*domain.ContentEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	entry.CreatedAt = s.timeFunc()
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	id, err := s.history.Append(ctx, entry)
	if err != nil {
		log.Error("failed to append saved entry",
			slog.String("user", entry.User),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist entry: %w", err)
	}
	entry.ID = id

	return entry, nil
}

// History implements Service.History.
func (s *service) History(ctx context.Context, user string) ([]domain.ContentEntry, error) {
	if user == "" {
		return nil, domain.ErrEmptyEntryUser
	}
	return s.history.ListByUser(ctx, user)
}
