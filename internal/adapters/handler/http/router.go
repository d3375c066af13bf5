package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewHandler(questionHandler *QuestionHandler, proposalHandler *ProposalHandler, rotationHandler *RotationHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.History)
			r.Get("/current", questionHandler.Current)
			r.Get("/trending/top", questionHandler.Trending)
			r.Post("/rotate-weekly", rotationHandler.RotateWeekly)
			r.Get("/{id}", questionHandler.Get)
			r.Post("/{id}/vote", questionHandler.Vote)
			r.Post("/{id}/comments", questionHandler.AddComment)
		})

		r.Route("/proposed-questions", func(r chi.Router) {
			r.Get("/", proposalHandler.List)
			r.Get("/top", proposalHandler.Top)
			r.Post("/", proposalHandler.Submit)
			r.Get("/{id}", proposalHandler.Get)
			r.Post("/{id}/vote", proposalHandler.Vote)
		})
	})

	return r
}
