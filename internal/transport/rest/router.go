package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heartmarshall/langportal-backend/internal/config"
	"github.com/heartmarshall/langportal-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	Health      *HealthHandler
	Sessions    *SessionHandler
	Catalog     *CatalogHandler
	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter
	RateLimit   config.RateLimitConfig
}

// NewRouter builds the HTTP handler. Health probes sit outside the API rate
// limit; LLM-backed endpoints get the stricter submit limit.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(d.RateLimiter.Limit(d.RateLimit.RequestsPerMinute))
		llm := d.RateLimiter.Limit(d.RateLimit.SubmitsPerMinute)

		r.Get("/groups", d.Catalog.ListGroups)
		r.With(llm).Get("/writing/prompts", d.Sessions.ListWritingPrompts)

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", d.Sessions.History)
			r.Post("/flashcards", d.Sessions.StartFlashcards)
			r.Post("/quiz", d.Sessions.StartQuiz)
			r.Post("/writing", d.Sessions.StartWriting)

			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", d.Sessions.Abandon)
				r.Get("/current", d.Sessions.Current)
				r.Get("/summary", d.Sessions.Summary)
				r.Post("/sync", d.Sessions.Sync)
				r.Post("/flashcards/answer", d.Sessions.AnswerFlashcard)
				r.With(llm).Post("/quiz/answer", d.Sessions.AnswerQuiz)
				r.Post("/quiz/resume", d.Sessions.ResumeQuiz)
				r.With(llm).Post("/writing/submit", d.Sessions.SubmitWriting)
				r.Post("/writing/retry", d.Sessions.RetryWriting)
			})
		})
	})

	return r
}
