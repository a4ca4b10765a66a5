package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/platform/logger"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

// PostgresQuizStore implements the store.QuizStore interface using a
// PostgreSQL database as the storage backend. Questions and submitted
// answers are stored as JSONB.
type PostgresQuizStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuizStore creates a new PostgreSQL implementation of the
// QuizStore interface. If logger is nil, a default logger will be used.
func NewPostgresQuizStore(db store.DBTX, logger *slog.Logger) *PostgresQuizStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuizStore{
		db:     db,
		logger: logger.With(slog.String("component", "quiz_store")),
	}
}

// Ensure PostgresQuizStore implements store.QuizStore interface
var _ store.QuizStore = (*PostgresQuizStore)(nil)

// Create implements store.QuizStore.Create
func (s *PostgresQuizStore) Create(ctx context.Context, quiz *domain.Quiz) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := quiz.Validate(); err != nil {
		log.Warn("quiz validation failed during create",
			slog.String("error", err.Error()),
			slog.String("quiz_id", quiz.ID.String()))
		return err
	}

	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}

	query := `
		INSERT INTO quizzes (id, title, questions, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		quiz.ID,
		quiz.Title,
		questions,
		quiz.CreatedBy,
		quiz.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create quiz",
			slog.String("error", err.Error()),
			slog.String("quiz_id", quiz.ID.String()))
		return mapError(err)
	}

	log.Info("quiz created successfully",
		slog.String("quiz_id", quiz.ID.String()),
		slog.String("created_by", quiz.CreatedBy))
	return nil
}

// GetByID implements store.QuizStore.GetByID
// Returns store.ErrQuizNotFound if the quiz does not exist.
func (s *PostgresQuizStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, questions, created_by, created_at
		FROM quizzes
		WHERE id = $1
	`

	var quiz domain.Quiz
	var questions []byte

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&quiz.ID,
		&quiz.Title,
		&questions,
		&quiz.CreatedBy,
		&quiz.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("quiz not found", slog.String("quiz_id", id.String()))
			return nil, store.ErrQuizNotFound
		}
		log.Error("failed to get quiz by ID",
			slog.String("error", err.Error()),
			slog.String("quiz_id", id.String()))
		return nil, mapError(err)
	}

	if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}

	return &quiz, nil
}

// List implements store.QuizStore.List
// Quizzes come back newest first.
func (s *PostgresQuizStore) List(ctx context.Context) ([]domain.Quiz, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, questions, created_by, created_at
		FROM quizzes
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query quizzes", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	quizzes := []domain.Quiz{}
	for rows.Next() {
		var quiz domain.Quiz
		var questions []byte

		err := rows.Scan(
			&quiz.ID,
			&quiz.Title,
			&questions,
			&quiz.CreatedBy,
			&quiz.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan quiz row", slog.String("error", err.Error()))
			return nil, err
		}

		if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	return quizzes, nil
}

// AppendResult implements store.QuizStore.AppendResult
// Returns store.ErrInvalidEntity if the quiz the result refers to does
// not exist.
func (s *PostgresQuizStore) AppendResult(ctx context.Context, result *domain.QuizResult) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	query := `
		INSERT INTO quiz_results (id, username, quiz_id, score, total, answers, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		uuid.New(),
		result.User,
		result.QuizID,
		result.Score,
		result.Total,
		answers,
		result.SubmittedAt,
	)

	if err != nil {
		log.Error("failed to append quiz result",
			slog.String("error", err.Error()),
			slog.String("quiz_id", result.QuizID.String()),
			slog.String("user", result.User))
		return mapError(err)
	}

	log.Debug("quiz result recorded",
		slog.String("quiz_id", result.QuizID.String()),
		slog.String("user", result.User),
		slog.Int("score", result.Score))
	return nil
}
