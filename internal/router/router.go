package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/idears-dev/idears/internal/middleware/metrics"
	"github.com/idears-dev/idears/internal/setup"
)

// New creates and configures the router with all the routes.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Http.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	h := deps.Handler

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Attachment binaries, served by the recorded /uploads/<file> path
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.Media.Root()))))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ideas", func(r chi.Router) {
			r.Get("/", h.GetIdeas)
			r.Post("/", h.CreateIdea)

			r.Route("/{ideaId}", func(r chi.Router) {
				r.Get("/", h.GetIdea)
				r.Put("/", h.UpdateIdea)
				r.Delete("/", h.DeleteIdea)
				r.Post("/upvote", h.UpvoteIdea)

				r.Get("/notes", h.GetNotes)
				r.Post("/notes", h.CreateNote)

				r.Get("/attachments", h.GetAttachments)
				r.Post("/attachments", h.CreateAttachment)
			})
		})

		// Notes and attachments are deleted by their own ids
		r.Delete("/notes/{id}", h.DeleteNote)
		r.Delete("/attachments/{id}", h.DeleteAttachment)
	})

	return r
}
