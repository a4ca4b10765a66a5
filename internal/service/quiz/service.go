// Package quiz implements quiz creation, listing and scored submission.
package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/platform/logger"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

// Service defines the quiz operations exposed to the API layer.
type Service interface {
	// Create validates and persists a new quiz owned by createdBy.
	Create(ctx context.Context, title, createdBy string, questions []domain.QuizQuestion) (*domain.Quiz, error)

	// List returns all quizzes, newest first.
	List(ctx context.Context) ([]domain.Quiz, error)

	// Get returns one quiz by ID, answers included. The API layer is
	// responsible for stripping answers before responding.
	Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)

	// Submit scores the given answers against the quiz and records the
	// result for the submitting user.
	Submit(ctx context.Context, id uuid.UUID, user string, answers []int) (*domain.QuizResult, error)
}

type service struct {
	quizzes  store.QuizStore
	logger   *slog.Logger
	timeFunc func() time.Time // Injectable for testing
}

// NewService creates a quiz Service over the given store. If log is
// nil, the default logger is used.
func NewService(quizzes store.QuizStore, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{
		quizzes:  quizzes,
		logger:   log.With(slog.String("component", "quiz_service")),
		timeFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Create implements Service.Create.
func (s *service) Create(
	ctx context.Context,
	title, createdBy string,
	questions []domain.QuizQuestion,
) (*domain.Quiz, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	quiz, err := domain.NewQuiz(title, createdBy, questions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.quizzes.Create(ctx, quiz); err != nil {
		log.Error("failed to create quiz",
			slog.String("creator", createdBy),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	log.Info("quiz created",
		slog.String("quiz_id", quiz.ID.String()),
		slog.String("creator", createdBy),
		slog.Int("questions", len(quiz.Questions)))

	return quiz, nil
}

// List implements Service.List.
func (s *service) List(ctx context.Context) ([]domain.Quiz, error) {
	return s.quizzes.List(ctx)
}

// Get implements Service.Get.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	return s.quizzes.GetByID(ctx, id)
}

// Submit implements Service.Submit.
func (s *service) Submit(
	ctx context.Context,
	id uuid.UUID,
	user string,
	answers []int,
) (*domain.QuizResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == "" {
		return nil, fmt.Errorf("%w: user cannot be empty", domain.ErrValidation)
	}

	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &domain.QuizResult{
		User:        user,
		QuizID:      quiz.ID,
		Score:       quiz.Score(answers),
		Total:       len(quiz.Questions),
		Answers:     answers,
		SubmittedAt: s.timeFunc(),
	}

	if err := s.quizzes.AppendResult(ctx, result); err != nil {
		log.Error("failed to record quiz result",
			slog.String("quiz_id", id.String()),
			slog.String("user", user),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	log.Info("quiz submitted",
		slog.String("quiz_id", id.String()),
		slog.String("user", user),
		slog.Int("score", result.Score),
		slog.Int("total", result.Total))

	return result, nil
}
