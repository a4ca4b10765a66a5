package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []QuizQuestion {
	return []QuizQuestion{
		{Question: "2+2?", Options: []string{"3", "4"}, Answer: 1},
		{Question: "capital of France?", Options: []string{"Lyon", "Nice", "Paris"}, Answer: 2},
		{Question: "largest planet?", Options: []string{"Jupiter", "Mars"}, Answer: 0},
	}
}

func TestNewQuiz(t *testing.T) {
	t.Parallel()

	quiz, err := NewQuiz("General Knowledge", "alice", sampleQuestions())
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, "alice", quiz.CreatedBy)
	assert.False(t, quiz.CreatedAt.IsZero())
	assert.Len(t, quiz.Questions, 3)
}

func TestNewQuizValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		title     string
		createdBy string
		questions []QuizQuestion
		wantErr   error
	}{
		{name: "empty title", createdBy: "alice", questions: sampleQuestions(), wantErr: ErrEmptyQuizTitle},
		{name: "empty creator", title: "Q", questions: sampleQuestions(), wantErr: ErrEmptyQuizCreator},
		{name: "no questions", title: "Q", createdBy: "alice", wantErr: ErrNoQuizQuestions},
		{
			name: "answer index out of range", title: "Q", createdBy: "alice",
			questions: []QuizQuestion{{Question: "x?", Options: []string{"a"}, Answer: 3}},
			wantErr:   ErrInvalidQuizAnswer,
		},
		{
			name: "negative answer index", title: "Q", createdBy: "alice",
			questions: []QuizQuestion{{Question: "x?", Options: []string{"a"}, Answer: -1}},
			wantErr:   ErrInvalidQuizAnswer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewQuiz(tc.title, tc.createdBy, tc.questions)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestQuizScore(t *testing.T) {
	t.Parallel()

	quiz, err := NewQuiz("Q", "alice", []QuizQuestion{
		{Question: "a", Options: []string{"x", "y"}, Answer: 0},
		{Question: "b", Options: []string{"x", "y", "z"}, Answer: 2},
		{Question: "c", Options: []string{"x", "y"}, Answer: 1},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{name: "all correct", answers: []int{0, 2, 1}, want: 3},
		{name: "partial submission counts answered prefix", answers: []int{0, 1}, want: 1},
		{name: "empty submission", answers: nil, want: 0},
		{name: "extra answers beyond quiz are ignored", answers: []int{0, 2, 1, 0, 0}, want: 3},
		{name: "out-of-range selections are simply wrong", answers: []int{9, 9, 9}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, quiz.Score(tc.answers))
		})
	}
}
