package quiz_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/quiz"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.Connect(context.Background(), config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseURL: filepath.Join(t.TempDir(), "quiz.db"),
	})
	require.NoError(t, err)
	require.NoError(t, quiz.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// fakeGenerator returns a fixed 5x4 quiz. Question i has its correct answer at
// option index i%4.
type fakeGenerator struct {
	mu     sync.Mutex
	err    error
	topics []string
	extras []string
}

func (g *fakeGenerator) GenerateQuiz(ctx context.Context, topic, extra string) (*aiquiz.Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.topics = append(g.topics, topic)
	g.extras = append(g.extras, extra)
	if g.err != nil {
		return nil, g.err
	}
	return &aiquiz.Result{
		Questions: sampleQuestions(topic),
		Provider:  "fake",
		Model:     "fake-model",
		Calls:     1,
		Usage:     aiquiz.Usage{PromptTokens: 100, CompletionTokens: 200, TotalTokens: 300},
	}, nil
}

func sampleQuestions(topic string) []aiquiz.Question {
	questions := make([]aiquiz.Question, 0, aiquiz.QuestionsPerQuiz)
	for i := 0; i < aiquiz.QuestionsPerQuiz; i++ {
		q := aiquiz.Question{
			ID:           fmt.Sprintf("gen-q%d", i+1),
			QuestionText: fmt.Sprintf("%s question %d?", topic, i+1),
			Explanation:  fmt.Sprintf("Explanation %d", i+1),
			Order:        i + 1,
		}
		for j := 0; j < aiquiz.OptionsPerQuestion; j++ {
			q.Options = append(q.Options, aiquiz.Option{
				ID:          fmt.Sprintf("gen-q%d-o%d", i+1, j+1),
				OptionText:  fmt.Sprintf("Answer %d.%d", i+1, j+1),
				OptionLabel: aiquiz.OptionLabels[j],
				IsCorrect:   j == i%aiquiz.OptionsPerQuestion,
				Order:       j + 1,
			})
		}
		questions = append(questions, q)
	}
	return questions
}

// stepClock returns times one minute apart, starting at a fixed instant.
func stepClock() func() time.Time {
	var mu sync.Mutex
	next := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

func correctAnswers(q *quiz.QuizDTO) map[string][]string {
	answers := make(map[string][]string, len(q.Questions))
	for _, question := range q.Questions {
		for _, o := range question.Options {
			if o.IsCorrect {
				answers[question.ID] = append(answers[question.ID], o.ID)
			}
		}
	}
	return answers
}

func wrongOption(q quiz.QuestionDTO) string {
	for _, o := range q.Options {
		if !o.IsCorrect {
			return o.ID
		}
	}
	return ""
}

func correctOption(q quiz.QuestionDTO) string {
	for _, o := range q.Options {
		if o.IsCorrect {
			return o.ID
		}
	}
	return ""
}
