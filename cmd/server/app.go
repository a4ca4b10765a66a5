package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gatluaknyang/guuk-api/internal/api"
	"github.com/gatluaknyang/guuk-api/internal/api/middleware"
	"github.com/gatluaknyang/guuk-api/internal/config"
	"github.com/gatluaknyang/guuk-api/internal/domain"
	"github.com/gatluaknyang/guuk-api/internal/generation"
	"github.com/gatluaknyang/guuk-api/internal/platform/blob"
	"github.com/gatluaknyang/guuk-api/internal/platform/gemini"
	"github.com/gatluaknyang/guuk-api/internal/platform/openai"
	"github.com/gatluaknyang/guuk-api/internal/platform/postgres"
	"github.com/gatluaknyang/guuk-api/internal/service/auth"
	"github.com/gatluaknyang/guuk-api/internal/service/content"
	"github.com/gatluaknyang/guuk-api/internal/service/quiz"
)

// Fixed sample URLs for the media kinds OpenAI has no real API for yet.
const (
	sampleVideoURL     = "https://www.w3schools.com/html/mov_bbb.mp4"
	sampleAnimationURL = "https://media.giphy.com/media/ICOgUNjpvO0PC/giphy.gif"
	sampleVoiceoverURL = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3"
)

// application holds the wired-up dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	authHandler    *api.AuthHandler
	contentHandler *api.ContentHandler
	quizHandler    *api.QuizHandler
	mediaHandler   *api.MediaHandler
	authMiddleware *middleware.AuthMiddleware

	mediaRoot string
}

// newApplication builds every store, service and handler from the
// configuration and database handle.
func newApplication(ctx context.Context, cfg *config.Config, db *sql.DB, log *slog.Logger) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db, log)
	historyStore := postgres.NewPostgresHistoryStore(db, log)
	quizStore := postgres.NewPostgresQuizStore(db, log)

	blobStore, err := blob.NewLocalStore(cfg.Media.StoragePath, cfg.Media.PublicBaseURL, log)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	registry, err := buildRegistry(ctx, cfg.Providers, log)
	if err != nil {
		return nil, err
	}
	dispatcher := generation.NewDispatcher(registry, log)

	contentService := content.NewService(dispatcher, historyStore, log)
	quizService := quiz.NewService(quizStore, log)

	return &application{
		config: cfg,
		logger: log,
		authHandler: api.NewAuthHandler(
			userStore,
			jwtService,
			auth.NewBcryptHasher(),
			auth.NewBcryptVerifier(),
		),
		contentHandler: api.NewContentHandler(contentService),
		quizHandler:    api.NewQuizHandler(quizService),
		mediaHandler:   api.NewMediaHandler(blobStore, historyStore),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, userStore),
		mediaRoot:      blobStore.Root(),
	}, nil
}

// buildRegistry registers an adapter for every (kind, provider) pair the
// API serves. Real adapters cover openai text/image and gemini text;
// the rest are deterministic stubs so every pair stays dispatchable.
func buildRegistry(ctx context.Context, cfg config.ProvidersConfig, log *slog.Logger) (*generation.Registry, error) {
	registry := generation.NewRegistry()

	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
	geminiText, err := gemini.NewTextAdapter(ctx, cfg.GeminiAPIKey, cfg.GeminiTextModel, log)
	if err != nil {
		return nil, err
	}

	// Text
	registry.Register(domain.KindText, "openai", openai.NewTextAdapter(openaiClient, cfg.OpenAITextModel))
	registry.Register(domain.KindText, "gemini", geminiText)
	registry.Register(domain.KindText, "claude", generation.NewStubTextAdapter("Claude"))
	registry.Register(domain.KindText, "manus", generation.NewStubTextAdapter("Manus"))

	// Image
	registry.Register(domain.KindImage, "openai", openai.NewImageAdapter(openaiClient, cfg.OpenAIImageModel))
	for _, provider := range []string{"gemini", "claude", "manus"} {
		registry.Register(domain.KindImage, provider,
			generation.NewStubMediaAdapter(stubMediaURL(domain.KindImage, provider)))
	}

	// Video, animation and voiceover have no production APIs wired yet:
	// openai serves fixed samples, the rest provider-labelled stubs.
	samples := map[domain.ContentKind]string{
		domain.KindVideo:     sampleVideoURL,
		domain.KindAnimation: sampleAnimationURL,
		domain.KindVoiceover: sampleVoiceoverURL,
	}
	for kind, sample := range samples {
		registry.Register(kind, "openai", generation.NewStubMediaAdapter(sample))
		for _, provider := range []string{"gemini", "claude", "manus"} {
			registry.Register(kind, provider,
				generation.NewStubMediaAdapter(stubMediaURL(kind, provider)))
		}
	}

	return registry, nil
}

// stubMediaURL builds the deterministic placeholder URL for a stubbed
// media pair.
func stubMediaURL(kind domain.ContentKind, provider string) string {
	return fmt.Sprintf("https://placehold.co/400x300?text=%s+%s", provider, kind)
}
