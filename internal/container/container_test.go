package container_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/container"
)

func TestNew(t *testing.T) {
	cfg := config.Config{
		DBDriver:      config.DriverSQLite,
		DatabaseURL:   filepath.Join(t.TempDir(), "app.db"),
		AIProvider:    config.ProviderOpenAI,
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: "http://127.0.0.1:1/v1",
		AIMaxRetries:  0,
		AITimeout:     time.Second,
	}

	c, err := container.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.NotNil(t, c.QuizContainer.Handler)
	assert.NotNil(t, c.AIQuizContainer.Service)
	assert.True(t, c.DB.Migrator().HasTable("quiz_attempt_answers"))

	quizzes, err := c.QuizContainer.Service.ListQuizzes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, quizzes)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := container.New(context.Background(), config.Config{DBDriver: "oracle", DatabaseURL: "x"})
	assert.ErrorContains(t, err, "unsupported driver")
}
