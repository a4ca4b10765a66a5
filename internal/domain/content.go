package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContentKind identifies the shape of a generated artifact.
type ContentKind string

// Supported content kinds. Text carries its result inline; all other
// kinds carry a URL to the produced media.
const (
	KindText      ContentKind = "text"
	KindImage     ContentKind = "image"
	KindVideo     ContentKind = "video"
	KindAnimation ContentKind = "animation"
	KindVoiceover ContentKind = "voiceover"
)

// Common validation errors for ContentEntry
var (
	ErrEmptyEntryUser     = errors.New("entry user cannot be empty")
	ErrEmptyEntryType     = errors.New("entry type cannot be empty")
	ErrConflictingPayload = errors.New("entry must carry exactly one of output or storage_url")
)

// IsValid reports whether k is one of the supported content kinds.
func (k ContentKind) IsValid() bool {
	switch k {
	case KindText, KindImage, KindVideo, KindAnimation, KindVoiceover:
		return true
	}
	return false
}

// IsMedia reports whether the kind persists a storage URL rather than
// inline text output.
func (k ContentKind) IsMedia() bool {
	return k.IsValid() && k != KindText
}

// MediaType returns the media_type label persisted alongside a storage
// URL. It mirrors the kind, with voiceover mapping to "audio".
func (k ContentKind) MediaType() string {
	if k == KindVoiceover {
		return "audio"
	}
	return string(k)
}

// ContentEntry is the canonical persisted record of one generation or
// save action. Entries are immutable once written; there is no update or
// delete path. The JSON field names are part of the public API contract.
type ContentEntry struct {
	ID         uuid.UUID `json:"id,omitempty"`
	User       string    `json:"user"`
	Prompt     string    `json:"prompt"`
	Output     string    `json:"output,omitempty"`
	StorageURL string    `json:"storage_url,omitempty"`
	MediaType  string    `json:"media_type,omitempty"`
	Type       string    `json:"type"`
	Provider   string    `json:"provider,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks the entry's structural invariants: a non-empty owner
// and type label, and exactly one payload field. Media entries must
// carry a media_type; text entries must not.
func (e *ContentEntry) Validate() error {
	if e.User == "" {
		return ErrEmptyEntryUser
	}

	if e.Type == "" {
		return ErrEmptyEntryType
	}

	hasOutput := e.Output != ""
	hasURL := e.StorageURL != ""
	if hasOutput == hasURL {
		return ErrConflictingPayload
	}

	if hasURL && e.MediaType == "" {
		return NewValidationError("media_type", "is required for media entries", ErrValidation)
	}

	if hasOutput && e.MediaType != "" {
		return NewValidationError("media_type", "must be empty for text entries", ErrValidation)
	}

	return nil
}
