package generation

import (
	"time"

	"github.com/gatluaknyang/guuk-api/internal/domain"
)

// NormalizeParams carries everything the normalizer needs besides the
// timestamp.
type NormalizeParams struct {
	Kind     domain.ContentKind
	Provider string
	Prompt   string
	Output   Output
	User     string

	// Legacy selects the bare-kind type label used by the original
	// non-advanced endpoints ("text" instead of "text_openai"). The
	// provider field is omitted from legacy entries as well.
	Legacy bool
}

// Normalize assembles the canonical ContentEntry for a generation result.
// It is a pure function: no I/O, and identical params with an identical
// now always yield an identical entry. The caller stamps now so that the
// store sees the same created_at it persists.
func Normalize(p NormalizeParams, now time.Time) domain.ContentEntry {
	entry := domain.ContentEntry{
		User:      p.User,
		Prompt:    p.Prompt,
		Type:      TypeLabel(p.Kind, p.Provider, p.Legacy),
		CreatedAt: now,
	}

	if !p.Legacy {
		entry.Provider = p.Provider
	}

	if p.Kind.IsMedia() {
		entry.StorageURL = p.Output.URL
		entry.MediaType = p.Kind.MediaType()
	} else {
		entry.Output = p.Output.Text
	}

	return entry
}

// TypeLabel derives the stored type label for a (kind, provider) pair:
// "{kind}_{provider}", or the bare kind for legacy entries.
func TypeLabel(kind domain.ContentKind, provider string, legacy bool) string {
	if legacy || provider == "" {
		return string(kind)
	}
	return string(kind) + "_" + provider
}
