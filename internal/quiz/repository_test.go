package quiz_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizgen-lambda/internal/quiz"
)

func strPtr(s string) *string { return &s }

func newQuizEntity(topic string) *quiz.Quiz {
	q := &quiz.Quiz{
		Topic:       topic,
		Description: strPtr("about " + topic),
		Generation:  datatypes.NewJSONType(quiz.GenerationMeta{Provider: "fake", Model: "m", Calls: 2, TotalTokens: 9}),
	}
	for i := 0; i < 3; i++ {
		question := quiz.QuizQuestion{
			QuestionText: fmt.Sprintf("Q%d", i+1),
			Explanation:  strPtr(fmt.Sprintf("E%d", i+1)),
			OrderIndex:   i + 1,
		}
		for j, label := range []string{"A", "B", "C", "D"} {
			question.Options = append(question.Options, quiz.QuestionOption{
				OptionText:  fmt.Sprintf("O%d%s", i+1, label),
				OptionLabel: strPtr(label),
				IsCorrect:   j == 0,
				OrderIndex:  j + 1,
			})
		}
		q.Questions = append(q.Questions, question)
	}
	return q
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateQuizBackfillsIDsAndRoundTrips", func(t *testing.T) {
		repo := quiz.NewRepository(newTestDB(t))
		q := newQuizEntity("Rivers")

		require.NoError(t, repo.CreateQuiz(ctx, q))
		require.NotZero(t, q.ID)
		for _, question := range q.Questions {
			assert.Equal(t, q.ID, question.QuizID)
			for _, o := range question.Options {
				assert.NotZero(t, o.ID)
				assert.Equal(t, question.ID, o.QuestionID)
			}
		}

		loaded, err := repo.GetByID(ctx, quiz.FormatID(q.ID))
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "Rivers", loaded.Topic)
		assert.Equal(t, "about Rivers", *loaded.Description)
		assert.Equal(t, 2, loaded.Generation.Data().Calls)
		assert.Equal(t, 9, loaded.Generation.Data().TotalTokens)

		require.Len(t, loaded.Questions, 3)
		for i, question := range loaded.Questions {
			assert.Equal(t, q.Questions[i].ID, question.ID)
			assert.Equal(t, i+1, question.OrderIndex)
			assert.Equal(t, fmt.Sprintf("Q%d", i+1), question.QuestionText)
			require.Len(t, question.Options, 4)
			for j, o := range question.Options {
				assert.Equal(t, j+1, o.OrderIndex)
				assert.Equal(t, q.Questions[i].Options[j].ID, o.ID)
				assert.Equal(t, j == 0, o.IsCorrect)
			}
		}
	})

	t.Run("GetByIDTreatsMalformedAndMissingAsAbsent", func(t *testing.T) {
		repo := quiz.NewRepository(newTestDB(t))
		require.NoError(t, repo.CreateQuiz(ctx, newQuizEntity("Rivers")))

		for _, id := range []string{"", "abc", "-1", "0", "1.0", "999"} {
			got, err := repo.GetByID(ctx, id)
			assert.NoError(t, err, id)
			assert.Nil(t, got, id)
		}
	})

	t.Run("ListOrdersNewestFirst", func(t *testing.T) {
		repo := quiz.NewRepository(newTestDB(t))
		var ids []uint
		for _, topic := range []string{"first", "second", "third"} {
			q := newQuizEntity(topic)
			require.NoError(t, repo.CreateQuiz(ctx, q))
			ids = append(ids, q.ID)
		}

		quizzes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, quizzes, 3)
		assert.Equal(t, []uint{ids[2], ids[1], ids[0]}, []uint{quizzes[0].ID, quizzes[1].ID, quizzes[2].ID})
		assert.Empty(t, quizzes[0].Questions)
	})

	t.Run("AttemptsAreScopedAndOrdered", func(t *testing.T) {
		repo := quiz.NewRepository(newTestDB(t))
		q := newQuizEntity("Rivers")
		require.NoError(t, repo.CreateQuiz(ctx, q))
		other := newQuizEntity("Lakes")
		require.NoError(t, repo.CreateQuiz(ctx, other))

		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		var ids []uint
		for i, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
			a := &quiz.QuizAttempt{
				QuizID:         q.ID,
				CompletedAt:    base.Add(offset),
				CorrectCount:   i,
				TotalQuestions: 3,
				Answers: []quiz.QuizAttemptAnswer{
					{QuestionID: q.Questions[0].ID, SelectedOptionID: &q.Questions[0].Options[0].ID, IsCorrect: true},
				},
			}
			require.NoError(t, repo.CreateAttempt(ctx, a))
			ids = append(ids, a.ID)
		}

		attempts, err := repo.ListAttemptsByQuiz(ctx, quiz.FormatID(q.ID))
		require.NoError(t, err)
		require.Len(t, attempts, 3)
		assert.Equal(t, []uint{ids[1], ids[2], ids[0]}, []uint{attempts[0].ID, attempts[1].ID, attempts[2].ID})

		none, err := repo.ListAttemptsByQuiz(ctx, "not-a-number")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)

		got, err := repo.GetAttemptByID(ctx, quiz.FormatID(q.ID), quiz.FormatID(ids[0]))
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Answers, 1)
		assert.True(t, got.Answers[0].IsCorrect)

		wrongQuiz, err := repo.GetAttemptByID(ctx, quiz.FormatID(other.ID), quiz.FormatID(ids[0]))
		require.NoError(t, err)
		assert.Nil(t, wrongQuiz)

		malformed, err := repo.GetAttemptByID(ctx, quiz.FormatID(q.ID), "x1")
		require.NoError(t, err)
		assert.Nil(t, malformed)
	})

	t.Run("CreateQuizIsAllOrNothing", func(t *testing.T) {
		db := newTestDB(t)
		repo := quiz.NewRepository(db)
		q := newQuizEntity("Rivers")
		q.Questions[1].Options[1].OrderIndex = q.Questions[1].Options[0].OrderIndex

		require.Error(t, repo.CreateQuiz(ctx, q))

		var quizzes, questions, options int64
		require.NoError(t, db.Model(&quiz.Quiz{}).Count(&quizzes).Error)
		require.NoError(t, db.Model(&quiz.QuizQuestion{}).Count(&questions).Error)
		require.NoError(t, db.Model(&quiz.QuestionOption{}).Count(&options).Error)
		assert.Zero(t, quizzes)
		assert.Zero(t, questions)
		assert.Zero(t, options)
	})

	t.Run("CreateAttemptIsAllOrNothing", func(t *testing.T) {
		db := newTestDB(t)
		repo := quiz.NewRepository(db)
		q := newQuizEntity("Rivers")
		require.NoError(t, repo.CreateQuiz(ctx, q))

		questionID := q.Questions[0].ID
		err := repo.CreateAttempt(ctx, &quiz.QuizAttempt{
			QuizID:         q.ID,
			CompletedAt:    time.Now(),
			TotalQuestions: 3,
			Answers: []quiz.QuizAttemptAnswer{
				{QuestionID: questionID},
				{QuestionID: questionID},
			},
		})
		require.Error(t, err)

		var attempts, answers int64
		require.NoError(t, db.Model(&quiz.QuizAttempt{}).Count(&attempts).Error)
		require.NoError(t, db.Model(&quiz.QuizAttemptAnswer{}).Count(&answers).Error)
		assert.Zero(t, attempts)
		assert.Zero(t, answers)
	})

	t.Run("DeletesCascadeAndClearSelections", func(t *testing.T) {
		db := newTestDB(t)
		repo := quiz.NewRepository(db)
		q := newQuizEntity("Rivers")
		require.NoError(t, repo.CreateQuiz(ctx, q))

		selected := q.Questions[0].Options[1].ID
		a := &quiz.QuizAttempt{
			QuizID:         q.ID,
			CompletedAt:    time.Now(),
			TotalQuestions: 3,
			Answers:        []quiz.QuizAttemptAnswer{{QuestionID: q.Questions[0].ID, SelectedOptionID: &selected}},
		}
		require.NoError(t, repo.CreateAttempt(ctx, a))

		require.NoError(t, db.Delete(&quiz.QuestionOption{}, selected).Error)
		var answer quiz.QuizAttemptAnswer
		require.NoError(t, db.First(&answer, a.Answers[0].ID).Error)
		assert.Nil(t, answer.SelectedOptionID)

		require.NoError(t, db.Delete(&quiz.Quiz{}, q.ID).Error)
		for _, model := range []any{&quiz.QuizQuestion{}, &quiz.QuestionOption{}, &quiz.QuizAttempt{}, &quiz.QuizAttemptAnswer{}} {
			var n int64
			require.NoError(t, db.Model(model).Count(&n).Error)
			assert.Zero(t, n, "%T rows left after quiz delete", model)
		}
	})
}
