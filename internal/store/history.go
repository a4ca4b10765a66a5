package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/domain"
)

// HistoryStore defines the interface for the per-user append-only log of
// content entries. Entries are immutable once appended; there is no
// update or delete operation.
type HistoryStore interface {
	// Append inserts one entry into the owner's log and returns the
	// store-assigned entry ID. The insert is atomic: either the whole
	// entry is observable afterwards or nothing is.
	// Returns ErrStoreUnavailable if the backing store is unreachable.
	Append(ctx context.Context, entry *domain.ContentEntry) (uuid.UUID, error)

	// ListByUser fetches every entry belonging to the user, sorted by
	// created_at descending. Entries with a zero created_at sort last.
	// Ties may be broken arbitrarily but entries are never dropped or
	// duplicated. Returns an empty slice for an unknown user.
	ListByUser(ctx context.Context, username string) ([]domain.ContentEntry, error)
}
