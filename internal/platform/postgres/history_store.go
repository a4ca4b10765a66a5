package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/platform/logger"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

// PostgresHistoryStore implements the store.HistoryStore interface
// using a PostgreSQL database as the storage backend. The table is an
// append-only log: rows are never updated or deleted.
type PostgresHistoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresHistoryStore creates a new PostgreSQL implementation of
// the HistoryStore interface. If logger is nil, a default logger will
// be used.
func NewPostgresHistoryStore(db store.DBTX, logger *slog.Logger) *PostgresHistoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresHistoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "history_store")),
	}
}

// Ensure PostgresHistoryStore implements store.HistoryStore interface
var _ store.HistoryStore = (*PostgresHistoryStore)(nil)

// Append implements store.HistoryStore.Append
// It inserts one entry and returns the store-assigned ID. An ID already
// set on the entry is kept so callers can pre-generate IDs.
func (s *PostgresHistoryStore) Append(ctx context.Context, entry *domain.ContentEntry) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("entry validation failed during append",
			slog.String("error", err.Error()),
			slog.String("user", entry.User))
		return uuid.Nil, err
	}

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO history_entries
			(id, username, prompt, output, storage_url, media_type, type, provider, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		id,
		entry.User,
		entry.Prompt,
		nullString(entry.Output),
		nullString(entry.StorageURL),
		nullString(entry.MediaType),
		entry.Type,
		nullString(entry.Provider),
		createdAt,
	)

	if err != nil {
		log.Error("failed to append history entry",
			slog.String("error", err.Error()),
			slog.String("user", entry.User),
			slog.String("type", entry.Type))
		return uuid.Nil, mapError(err)
	}

	log.Debug("history entry appended",
		slog.String("entry_id", id.String()),
		slog.String("user", entry.User),
		slog.String("type", entry.Type))
	return id, nil
}

// ListByUser implements store.HistoryStore.ListByUser
// Entries come back newest first; rows with a NULL created_at sort last.
func (s *PostgresHistoryStore) ListByUser(ctx context.Context, username string) ([]domain.ContentEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, prompt, output, storage_url, media_type, type, provider, created_at
		FROM history_entries
		WHERE username = $1
		ORDER BY created_at DESC NULLS LAST, id
	`

	rows, err := s.db.QueryContext(ctx, query, username)
	if err != nil {
		log.Error("failed to query history entries",
			slog.String("error", err.Error()),
			slog.String("user", username))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	entries := []domain.ContentEntry{}
	for rows.Next() {
		var entry domain.ContentEntry
		var output, storageURL, mediaType, provider sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.User,
			&entry.Prompt,
			&output,
			&storageURL,
			&mediaType,
			&entry.Type,
			&provider,
			&createdAt,
		)
		if err != nil {
			log.Error("failed to scan history row",
				slog.String("error", err.Error()))
			return nil, err
		}

		entry.Output = output.String
		entry.StorageURL = storageURL.String
		entry.MediaType = mediaType.String
		entry.Provider = provider.String
		if createdAt.Valid {
			entry.CreatedAt = createdAt.Time
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	log.Debug("listed history entries",
		slog.String("user", username),
		slog.Int("count", len(entries)))
	return entries, nil
}
