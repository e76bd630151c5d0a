package quiz

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
)

type QuizContainer struct {
	Repo    Repository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, generator aiquiz.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, generator)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
