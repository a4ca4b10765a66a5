package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Quiz
var (
	ErrEmptyQuizID       = errors.New("quiz ID cannot be empty")
	ErrEmptyQuizTitle    = errors.New("quiz title cannot be empty")
	ErrEmptyQuizCreator  = errors.New("quiz creator cannot be empty")
	ErrNoQuizQuestions   = errors.New("quiz must have at least one question")
	ErrInvalidQuizAnswer = errors.New("question answer index out of range")
)

// QuizQuestion is a single multiple-choice question. Answer is the index
// of the correct option.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Quiz is an ordered set of questions owned by its creator.
type Quiz struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
}

// QuizResult records one scored submission against a quiz.
type QuizResult struct {
	User        string    `json:"user"`
	QuizID      uuid.UUID `json:"quiz_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Answers     []int     `json:"answers"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewQuiz creates a new Quiz owned by createdBy and stamps creation time.
// Returns an error if validation fails.
func NewQuiz(title, createdBy string, questions []QuizQuestion) (*Quiz, error) {
	quiz := &Quiz{
		ID:        uuid.New(),
		Title:     title,
		Questions: questions,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	return quiz, nil
}

// Validate checks if the Quiz has valid data.
func (q *Quiz) Validate() error {
	if q.ID == uuid.Nil {
		return ErrEmptyQuizID
	}

	if q.Title == "" {
		return ErrEmptyQuizTitle
	}

	if q.CreatedBy == "" {
		return ErrEmptyQuizCreator
	}

	if len(q.Questions) == 0 {
		return ErrNoQuizQuestions
	}

	for _, question := range q.Questions {
		if question.Answer < 0 || question.Answer >= len(question.Options) {
			return ErrInvalidQuizAnswer
		}
	}

	return nil
}

// Score compares submitted answers against the quiz by position.
// Submitted answers beyond the question count are ignored; a submission
// shorter than the quiz simply scores the answered prefix.
func (q *Quiz) Score(answers []int) int {
	correct := 0
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.Answer {
			correct++
		}
	}
	return correct
}
