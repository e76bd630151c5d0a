package quiz

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the quiz sub-router, meant to be mounted at the root.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/quizzes", h.ListQuizzes)

	r.Route("/quiz", func(r chi.Router) {
		r.Post("/generate", h.GenerateQuiz)
		r.Get("/{id}", h.GetQuiz)
		r.Post("/{id}/submit", h.SubmitQuiz)
		r.Get("/{id}/attempts", h.ListAttempts)
		r.Get("/{id}/attempts/{attemptId}", h.GetAttempt)
	})

	return r
}
