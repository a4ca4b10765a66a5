package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/api/shared"
	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

// maxUploadBytes caps the multipart form size for media uploads.
const maxUploadBytes = 50 << 20 // 50 MiB

// MediaHandler handles media uploads.
type MediaHandler struct {
	blobStore    store.BlobStore
	historyStore store.HistoryStore
	timeFunc     func() time.Time // Injectable for testing
}

// NewMediaHandler creates a new MediaHandler with the given dependencies.
func NewMediaHandler(blobStore store.BlobStore, historyStore store.HistoryStore) *MediaHandler {
	return &MediaHandler{
		blobStore:    blobStore,
		historyStore: historyStore,
		timeFunc:     func() time.Time { return time.Now().UTC() },
	}
}

// Upload handles the /upload-media endpoint. It accepts a multipart
// form with a `file` part plus `user`, `media_type` and optional
// `title`/`prompt` fields, stores the blob, and appends a history entry
// carrying the public URL.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	user := r.FormValue("user")
	mediaType := r.FormValue("media_type")
	prompt := r.FormValue("prompt")
	if prompt == "" {
		prompt = r.FormValue("title")
	}
	if user == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing user field")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing file")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !allowedMediaContentType(contentType) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unsupported media content type")
		return
	}
	if mediaType == "" {
		mediaType = strings.SplitN(contentType, "/", 2)[0]
	}

	filename := sanitizeFilename(header.Filename)
	key := fmt.Sprintf("%s/%s/%s_%s", user, mediaType, uuid.New().String()[:8], filename)

	url, err := h.blobStore.Put(r.Context(), key, contentType, file)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to store media")
		return
	}

	entry := &domain.ContentEntry{
		User:       user,
		Prompt:     prompt,
		StorageURL: url,
		MediaType:  mediaType,
		Type:       "upload_" + mediaType,
		CreatedAt:  h.timeFunc(),
	}
	if _, err := h.historyStore.Append(r.Context(), entry); err != nil {
		HandleAPIError(w, r, err, "Failed to record upload")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UploadMediaResponse{
		Status:   "uploaded",
		Filename: filename,
		URL:      url,
	})
}

// allowedMediaContentType accepts image, video and audio payloads only.
func allowedMediaContentType(contentType string) bool {
	for _, prefix := range []string{"image/", "video/", "audio/"} {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}

// sanitizeFilename strips any path components and replaces characters
// the blob store would reject.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.TrimLeft(name, ".")
	if name == "" || name == "/" {
		name = "upload"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
