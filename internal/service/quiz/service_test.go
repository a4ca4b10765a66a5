package quiz_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/service/quiz"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

type mockQuizStore struct {
	created   []*domain.Quiz
	createErr error
	quizzes   map[uuid.UUID]*domain.Quiz
	results   []*domain.QuizResult
	resultErr error
}

func newMockQuizStore() *mockQuizStore {
	return &mockQuizStore{quizzes: make(map[uuid.UUID]*domain.Quiz)}
}

func (m *mockQuizStore) Create(ctx context.Context, q *domain.Quiz) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, q)
	m.quizzes[q.ID] = q
	return nil
}

func (m *mockQuizStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	q, ok := m.quizzes[id]
	if !ok {
		return nil, store.ErrQuizNotFound
	}
	return q, nil
}

func (m *mockQuizStore) List(ctx context.Context) ([]domain.Quiz, error) {
	out := make([]domain.Quiz, 0, len(m.quizzes))
	for _, q := range m.quizzes {
		out = append(out, *q)
	}
	return out, nil
}

func (m *mockQuizStore) AppendResult(ctx context.Context, r *domain.QuizResult) error {
	if m.resultErr != nil {
		return m.resultErr
	}
	m.results = append(m.results, r)
	return nil
}

func sampleQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{Question: "2+2?", Options: []string{"3", "4", "5"}, Answer: 1},
		{Question: "Capital of Kenya?", Options: []string{"Nairobi", "Juba"}, Answer: 0},
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("persists a valid quiz", func(t *testing.T) {
		t.Parallel()
		quizzes := newMockQuizStore()
		svc := quiz.NewService(quizzes, nil)

		created, err := svc.Create(context.Background(), "Basics", "gatluak", sampleQuestions())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "gatluak", created.CreatedBy)
		require.Len(t, quizzes.created, 1)
	})

	t.Run("rejects a quiz with an out-of-range answer", func(t *testing.T) {
		t.Parallel()
		quizzes := newMockQuizStore()
		svc := quiz.NewService(quizzes, nil)

		questions := []domain.QuizQuestion{
			{Question: "?", Options: []string{"a"}, Answer: 3},
		}
		_, err := svc.Create(context.Background(), "Broken", "gatluak", questions)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, quizzes.created)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		t.Parallel()
		svc := quiz.NewService(newMockQuizStore(), nil)
		_, err := svc.Create(context.Background(), "", "gatluak", sampleQuestions())
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	newQuizInStore := func(t *testing.T, quizzes *mockQuizStore) *domain.Quiz {
		t.Helper()
		q, err := domain.NewQuiz("Basics", "gatluak", sampleQuestions())
		require.NoError(t, err)
		require.NoError(t, quizzes.Create(context.Background(), q))
		return q
	}

	t.Run("scores and records a submission", func(t *testing.T) {
		t.Parallel()
		quizzes := newMockQuizStore()
		q := newQuizInStore(t, quizzes)
		svc := quiz.NewService(quizzes, nil)

		result, err := svc.Submit(context.Background(), q.ID, "nyadeng", []int{1, 1})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Score)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, "nyadeng", result.User)
		assert.False(t, result.SubmittedAt.IsZero())
		require.Len(t, quizzes.results, 1)
	})

	t.Run("scores a short submission against the answered prefix", func(t *testing.T) {
		t.Parallel()
		quizzes := newMockQuizStore()
		q := newQuizInStore(t, quizzes)
		svc := quiz.NewService(quizzes, nil)

		result, err := svc.Submit(context.Background(), q.ID, "nyadeng", []int{1})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Score)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("returns not found for an unknown quiz", func(t *testing.T) {
		t.Parallel()
		svc := quiz.NewService(newMockQuizStore(), nil)
		_, err := svc.Submit(context.Background(), uuid.New(), "nyadeng", []int{0})
		assert.ErrorIs(t, err, store.ErrQuizNotFound)
	})

	t.Run("rejects an empty user", func(t *testing.T) {
		t.Parallel()
		quizzes := newMockQuizStore()
		q := newQuizInStore(t, quizzes)
		svc := quiz.NewService(quizzes, nil)

		_, err := svc.Submit(context.Background(), q.ID, "", []int{0})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, quizzes.results)
	})

	t.Run("propagates a result-store failure", func(t *testing.T) {
		t.Parallel()
		quizzes := newMockQuizStore()
		q := newQuizInStore(t, quizzes)
		quizzes.resultErr = store.ErrStoreUnavailable
		svc := quiz.NewService(quizzes, nil)

		_, err := svc.Submit(context.Background(), q.ID, "nyadeng", []int{0})
		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	})
}
