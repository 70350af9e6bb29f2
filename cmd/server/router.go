package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lunalearn/luna-api/internal/api"
	apiMiddleware "github.com/lunalearn/luna-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	slideshowHandler := api.NewSlideshowHandler(app.slideshowService, app.logger)
	quizHandler := api.NewQuizHandler(app.quizService, app.logger)
	flashcardHandler := api.NewFlashcardHandler(app.flashcardService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/slideshows", slideshowHandler.CreateSlideshow)
		r.Get("/slideshows/stream", slideshowHandler.StreamSlideshow)

		r.Post("/quizzes", quizHandler.StartQuiz)
		r.Get("/quizzes/{id}", quizHandler.GetQuiz)
		r.Post("/quizzes/{id}/answers", quizHandler.SubmitAnswer)
		r.Post("/quizzes/{id}/retry", quizHandler.RetryQuiz)

		r.Post("/flashcards", flashcardHandler.CreateFlashcards)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
