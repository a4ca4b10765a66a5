package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/domain"
)

// QuizStore defines the interface for quiz persistence.
type QuizStore interface {
	// Create saves a new quiz to the store.
	Create(ctx context.Context, quiz *domain.Quiz) error

	// GetByID retrieves a quiz by its unique ID, answers included.
	// Returns ErrQuizNotFound if the quiz does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)

	// List retrieves all quizzes, newest first.
	List(ctx context.Context) ([]domain.Quiz, error)

	// AppendResult records a scored submission for the submitting user.
	AppendResult(ctx context.Context, result *domain.QuizResult) error
}
