package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/gatluaknyang/guuk-api/internal/api/middleware"
	"github.com/gatluaknyang/guuk-api/internal/api/shared"
	"github.com/gatluaknyang/guuk-api/internal/domain"
)

// routes assembles the HTTP router: public endpoints (registration,
// login, the legacy generation flows, history, media) and a bearer-
// protected group for the advanced flows, saving, uploads and quizzes.
func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"message": "GUUK AI API is running",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/register", app.authHandler.Register)
	r.Group(func(r chi.Router) {
		// Brute-force protection on credential guessing.
		r.Use(httprate.LimitByIP(10, time.Minute))
		r.Post("/login", app.authHandler.Login)
	})

	// Legacy generation flows: no auth, implicit openai provider.
	r.Post("/generate-text", app.contentHandler.GenerateLegacy(domain.KindText))
	r.Post("/generate-image", app.contentHandler.GenerateLegacy(domain.KindImage))
	r.Post("/generate-video", app.contentHandler.GenerateLegacy(domain.KindVideo))
	r.Post("/generate-animation", app.contentHandler.GenerateLegacy(domain.KindAnimation))

	r.Get("/user/history", app.contentHandler.History)

	// Stored media is public once uploaded.
	fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(app.mediaRoot)))
	r.Get("/media/*", fileServer.ServeHTTP)

	// Bearer-protected surface.
	r.Group(func(r chi.Router) {
		r.Use(app.authMiddleware.Authenticate)

		r.Post("/save-content", app.contentHandler.SaveContent)
		r.Post("/upload-media", app.mediaHandler.Upload)

		r.Post("/generate-text-advanced", app.contentHandler.GenerateAdvanced(domain.KindText))
		r.Post("/generate-image-advanced", app.contentHandler.GenerateAdvanced(domain.KindImage))
		r.Post("/generate-video-advanced", app.contentHandler.GenerateAdvanced(domain.KindVideo))
		// The cartoon flow produces animation entries.
		r.Post("/generate-cartoon-advanced", app.contentHandler.GenerateAdvanced(domain.KindAnimation))
		r.Post("/generate-voiceover-advanced", app.contentHandler.GenerateAdvanced(domain.KindVoiceover))

		r.Post("/quiz/create", app.quizHandler.Create)
		r.Get("/quiz/list", app.quizHandler.List)
		r.Get("/quiz/{id}", app.quizHandler.Get)
		r.Post("/quiz/submit", app.quizHandler.Submit)
	})

	return r
}
