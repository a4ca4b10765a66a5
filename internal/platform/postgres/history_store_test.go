package postgres_test

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/platform/postgres"
	"github.com/gatluaknyang/guuk-api/internal/store"
)

var historyInsertPattern = regexp.QuoteMeta(`
		INSERT INTO history_entries
			(id, username, prompt, output, storage_url, media_type, type, provider, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`)

var historySelectPattern = regexp.QuoteMeta(`
		SELECT id, username, prompt, output, storage_url, media_type, type, provider, created_at
		FROM history_entries
		WHERE username = $1
		ORDER BY created_at DESC NULLS LAST, id
	`)

func TestPostgresHistoryStore_Append(t *testing.T) {
	t.Parallel()

	t.Run("inserts a text entry and assigns an ID", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		historyStore := postgres.NewPostgresHistoryStore(db, nil)

		entry := &domain.ContentEntry{
			User:      "gatluak",
			Prompt:    "a poem",
			Output:    "roses are red",
			Type:      "text_openai",
			Provider:  "openai",
			CreatedAt: time.Now().UTC(),
		}

		mock.ExpectExec(historyInsertPattern).
			WithArgs(
				sqlmock.AnyArg(), entry.User, entry.Prompt,
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				entry.Type, sqlmock.AnyArg(), entry.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := historyStore.Append(context.Background(), entry)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps a pre-set entry ID", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		historyStore := postgres.NewPostgresHistoryStore(db, nil)

		preset := uuid.New()
		entry := &domain.ContentEntry{
			ID:         preset,
			User:       "gatluak",
			Prompt:     "a cat",
			StorageURL: "https://example.com/cat.png",
			MediaType:  "image",
			Type:       "image_openai",
			Provider:   "openai",
			CreatedAt:  time.Now().UTC(),
		}

		mock.ExpectExec(historyInsertPattern).
			WithArgs(
				preset, entry.User, entry.Prompt,
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				entry.Type, sqlmock.AnyArg(), entry.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := historyStore.Append(context.Background(), entry)
		require.NoError(t, err)
		assert.Equal(t, preset, id)
	})

	t.Run("rejects an invalid entry without touching the database", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		historyStore := postgres.NewPostgresHistoryStore(db, nil)

		entry := &domain.ContentEntry{Type: "text", Output: "x"}
		_, err := historyStore.Append(context.Background(), entry)
		assert.ErrorIs(t, err, domain.ErrEmptyEntryUser)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps an unreachable database to ErrStoreUnavailable", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		historyStore := postgres.NewPostgresHistoryStore(db, nil)

		entry := &domain.ContentEntry{
			User:   "gatluak",
			Prompt: "hi",
			Output: "x",
			Type:   "text",
		}
		connRefused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		mock.ExpectExec(historyInsertPattern).WillReturnError(connRefused)

		_, err := historyStore.Append(context.Background(), entry)
		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	})
}

func TestPostgresHistoryStore_ListByUser(t *testing.T) {
	t.Parallel()

	t.Run("returns entries with nullable fields mapped", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		historyStore := postgres.NewPostgresHistoryStore(db, nil)

		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{
			"id", "username", "prompt", "output", "storage_url",
			"media_type", "type", "provider", "created_at",
		}).
			AddRow(uuid.New(), "gatluak", "a cat", nil, "https://example.com/cat.png", "image", "image_openai", "openai", now).
			AddRow(uuid.New(), "gatluak", "a poem", "roses are red", nil, nil, "text", nil, now.Add(-time.Hour))
		mock.ExpectQuery(historySelectPattern).WithArgs("gatluak").WillReturnRows(rows)

		entries, err := historyStore.ListByUser(context.Background(), "gatluak")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "image", entries[0].MediaType)
		assert.Empty(t, entries[0].Output)
		assert.Equal(t, "roses are red", entries[1].Output)
		assert.Empty(t, entries[1].Provider)
	})

	t.Run("returns an empty slice for an unknown user", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		historyStore := postgres.NewPostgresHistoryStore(db, nil)

		rows := sqlmock.NewRows([]string{
			"id", "username", "prompt", "output", "storage_url",
			"media_type", "type", "provider", "created_at",
		})
		mock.ExpectQuery(historySelectPattern).WithArgs("ghost").WillReturnRows(rows)

		entries, err := historyStore.ListByUser(context.Background(), "ghost")
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
