package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gatluaknyang/guuk-api/internal/api/shared"
	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/service/content"
)

// ContentHandler handles content generation, saving and history.
type ContentHandler struct {
	contentService content.Service
	validator      *validator.Validate
}

// NewContentHandler creates a new ContentHandler with the given dependencies.
func NewContentHandler(contentService content.Service) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		validator:      validator.New(),
	}
}

// GenerateLegacy returns a handler for one of the original generation
// endpoints: no auth, implicit openai provider, bare-kind type label.
func (h *ContentHandler) GenerateLegacy(kind domain.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest

		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
		if err := h.validator.Struct(req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
			return
		}

		entry, err := h.contentService.Generate(r.Context(), kind, "", req.Prompt, req.User, true)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		shared.RespondWithJSON(w, r, http.StatusOK, EntryResponse{Status: "ok", Entry: entry})
	}
}

// GenerateAdvanced returns a handler for one of the provider-aware
// generation endpoints. The authenticated flows carry an explicit
// provider and a "{kind}_{provider}" type label.
func (h *ContentHandler) GenerateAdvanced(kind domain.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateAdvancedRequest

		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
		if err := h.validator.Struct(req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
			return
		}

		entry, err := h.contentService.Generate(r.Context(), kind, req.Provider, req.Prompt, req.User, false)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		shared.RespondWithJSON(w, r, http.StatusOK, EntryResponse{Status: "ok", Entry: entry})
	}
}

// SaveContent handles the /save-content endpoint.
func (h *ContentHandler) SaveContent(w http.ResponseWriter, r *http.Request) {
	var req SaveContentRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	entry := &domain.ContentEntry{
		User:   req.User,
		Prompt: req.Prompt,
		Output: req.Output,
		Type:   req.Type,
	}
	saved, err := h.contentService.Save(r.Context(), entry)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EntryResponse{Status: "saved", Entry: saved})
}

// History handles the /user/history endpoint. The owner is named by the
// `user` query parameter.
func (h *ContentHandler) History(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing user parameter")
		return
	}

	entries, err := h.contentService.History(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HistoryResponse{
		User:    user,
		History: entries,
	})
}
