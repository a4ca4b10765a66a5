package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=1,max=72"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// RegisterResponse defines the successful registration response. User
// carries the bare username, not the user record.
type RegisterResponse struct {
	Status string `json:"status"`
	User   string `json:"user"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful login response. User carries the
// bare username.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        string `json:"user"`
}

// GenerateRequest defines the payload for the legacy generation
// endpoints.
type GenerateRequest struct {
	User   string `json:"user" validate:"required"`
	Prompt string `json:"prompt"`
}

// GenerateAdvancedRequest defines the payload for the provider-aware
// generation endpoints. Model is accepted for forward compatibility but
// provider configuration decides the model actually used.
type GenerateAdvancedRequest struct {
	User     string `json:"user" validate:"required"`
	Prompt   string `json:"prompt"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// SaveContentRequest defines the payload for the /save-content endpoint.
type SaveContentRequest struct {
	User   string `json:"user" validate:"required"`
	Prompt string `json:"prompt"`
	Output string `json:"output" validate:"required"`
	Type   string `json:"type" validate:"required"`
}

// EntryResponse wraps a persisted history entry.
type EntryResponse struct {
	Status string               `json:"status"`
	Entry  *domain.ContentEntry `json:"entry"`
}

// HistoryResponse defines the response for the user history endpoint.
type HistoryResponse struct {
	User    string                `json:"user"`
	History []domain.ContentEntry `json:"history"`
}

// UploadMediaResponse defines the response for the media upload endpoint.
type UploadMediaResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// CreateQuizRequest defines the payload for the quiz creation endpoint.
type CreateQuizRequest struct {
	Title     string                `json:"title" validate:"required"`
	Questions []QuizQuestionPayload `json:"questions" validate:"required,min=1,dive"`
}

// QuizQuestionPayload is one question in a quiz creation request.
type QuizQuestionPayload struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"required,min=2"`
	Answer   int      `json:"answer" validate:"min=0"`
}

// QuizQuestionResponse is a question with the correct answer stripped.
type QuizQuestionResponse struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizResponse is a quiz as returned to takers: no answers.
type QuizResponse struct {
	ID        uuid.UUID              `json:"id"`
	Title     string                 `json:"title"`
	Questions []QuizQuestionResponse `json:"questions"`
	CreatedBy string                 `json:"created_by"`
	CreatedAt time.Time              `json:"created_at"`
}

// SubmitQuizRequest defines the payload for the quiz submission endpoint.
type SubmitQuizRequest struct {
	QuizID  uuid.UUID `json:"quiz_id" validate:"required"`
	Answers []int     `json:"answers" validate:"required"`
}

// SubmitQuizResponse defines the response for a scored submission.
type SubmitQuizResponse struct {
	Status string `json:"status"`
	Score  int    `json:"score"`
	Total  int    `json:"total"`
}

// quizToResponse converts a quiz into its answer-free response form.
func quizToResponse(quiz *domain.Quiz) QuizResponse {
	questions := make([]QuizQuestionResponse, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuizQuestionResponse{
			Question: q.Question,
			Options:  q.Options,
		}
	}
	return QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Questions: questions,
		CreatedBy: quiz.CreatedBy,
		CreatedAt: quiz.CreatedAt,
	}
}
