package container

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/quiz"
)

type Container struct {
	Config          config.Config
	DB              *gorm.DB
	AIQuizContainer *aiquiz.AIQuizContainer
	QuizContainer   *quiz.QuizContainer
}

// New connects and migrates the database and wires every feature container.
func New(ctx context.Context, cfg config.Config) (*Container, error) {
	db, err := config.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := quiz.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build quiz generator: %w", err)
	}
	quizContainer := quiz.NewQuizContainer(db, aiQuizContainer.Service)

	return &Container{
		Config:          cfg,
		DB:              db,
		AIQuizContainer: aiQuizContainer,
		QuizContainer:   quizContainer,
	}, nil
}

func (c *Container) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
