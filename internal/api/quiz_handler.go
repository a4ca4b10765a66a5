package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/api/middleware"
	"github.com/gatluaknyang/guuk-api/internal/api/shared"
	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/service/quiz"
)

// QuizHandler handles quiz creation, listing and submission.
type QuizHandler struct {
	quizService quiz.Service
	validator   *validator.Validate
}

// NewQuizHandler creates a new QuizHandler with the given dependencies.
func NewQuizHandler(quizService quiz.Service) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		validator:   validator.New(),
	}
}

// Create handles the /quiz/create endpoint. The creator is the
// authenticated user.
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	questions := make([]domain.QuizQuestion, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = domain.QuizQuestion{
			Question: q.Question,
			Options:  q.Options,
			Answer:   q.Answer,
		}
	}

	created, err := h.quizService.Create(r.Context(), req.Title, username, questions)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// List handles the /quiz/list endpoint. Answers are stripped.
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	responses := make([]QuizResponse, len(quizzes))
	for i := range quizzes {
		responses[i] = quizToResponse(&quizzes[i])
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles the /quiz/{id} endpoint. Answers are stripped.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid quiz ID")
		return
	}

	found, err := h.quizService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quizToResponse(found))
}

// Submit handles the /quiz/submit endpoint.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsername(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SubmitQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.quizService.Submit(r.Context(), req.QuizID, username, req.Answers)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SubmitQuizResponse{
		Status: "submitted",
		Score:  result.Score,
		Total:  result.Total,
	})
}
