package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

const maxTopicLength = 255

type QuizService interface {
	GenerateQuiz(ctx context.Context, topic string, description *string) (*QuizDTO, error)
	GetQuiz(ctx context.Context, quizID string) (*QuizDTO, error)
	ListQuizzes(ctx context.Context) ([]QuizSummaryDTO, error)
	SubmitQuiz(ctx context.Context, quizID string, answers map[string][]string) (*QuizResultDTO, error)
	GetAttemptsForQuiz(ctx context.Context, quizID string) ([]AttemptSummaryDTO, error)
	GetAttemptByID(ctx context.Context, quizID, attemptID string) (*QuizResultDTO, error)
}

type quizService struct {
	repo      Repository
	generator aiquiz.Service
	now       func() time.Time
}

func NewService(repo Repository, generator aiquiz.Service) QuizService {
	return &quizService{
		repo:      repo,
		generator: generator,
		now:       time.Now,
	}
}

// NewServiceWithClock is NewService with a fixed time source for completedAt.
func NewServiceWithClock(repo Repository, generator aiquiz.Service, now func() time.Time) QuizService {
	s := NewService(repo, generator).(*quizService)
	s.now = now
	return s
}

func (s *quizService) GenerateQuiz(ctx context.Context, topic string, description *string) (*QuizDTO, error) {
	log := config.WithContext(ctx)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, newValidationError("topic is required")
	}
	if utf8.RuneCountInString(topic) > maxTopicLength {
		return nil, newValidationError("topic must be at most %d characters", maxTopicLength)
	}
	description = normalizeDescription(description)

	log.WithField("topic", topic).Info("Generating quiz...")

	extra := ""
	if description != nil {
		extra = *description
	}
	generated, err := s.generator.GenerateQuiz(ctx, topic, extra)
	if err != nil {
		return nil, err
	}

	quiz := fromGenerated(topic, description, generated)
	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		log.WithError(err).Error("Failed to store generated quiz")
		return nil, fmt.Errorf("store quiz: %w", err)
	}

	log.WithFields(logrus.Fields{
		"quiz_id":   quiz.ID,
		"questions": len(quiz.Questions),
	}).Info("Quiz created")
	return toQuizDTO(quiz), nil
}

func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*QuizDTO, error) {
	quiz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz")
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return toQuizDTO(quiz), nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]QuizSummaryDTO, error) {
	quizzes, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quizzes")
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	summaries := make([]QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, toQuizSummaryDTO(q))
	}
	return summaries, nil
}

func (s *quizService) SubmitQuiz(ctx context.Context, quizID string, answers map[string][]string) (*QuizResultDTO, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	if answers == nil {
		return nil, newValidationError("answers is required")
	}

	quiz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz for submission")
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	grade := GradeSubmission(quiz.Questions, answers)

	attempt := &QuizAttempt{
		QuizID:         quiz.ID,
		CompletedAt:    s.now().UTC(),
		CorrectCount:   grade.Score,
		TotalQuestions: grade.Total,
		Answers:        make([]QuizAttemptAnswer, 0, len(grade.Questions)),
	}
	for _, g := range grade.Questions {
		attempt.Answers = append(attempt.Answers, QuizAttemptAnswer{
			QuestionID:       g.QuestionID,
			SelectedOptionID: g.SelectedOptionID,
			IsCorrect:        g.IsCorrect,
		})
	}

	if err := s.repo.CreateAttempt(ctx, attempt); err != nil {
		log.WithError(err).Error("Failed to store attempt")
		return nil, fmt.Errorf("store attempt: %w", err)
	}

	log.WithFields(logrus.Fields{
		"attempt_id": attempt.ID,
		"score":      grade.Score,
		"total":      grade.Total,
	}).Info("Quiz submitted")

	results := make([]QuestionResultDTO, 0, len(grade.Questions))
	for i, g := range grade.Questions {
		results = append(results, QuestionResultDTO{
			QuestionID:        FormatID(g.QuestionID),
			IsCorrect:         g.IsCorrect,
			SelectedOptionIDs: g.Selected,
			CorrectOptionIDs:  g.CorrectOptionIDs,
			Explanation:       explanationFor(&quiz.Questions[i]),
		})
	}
	return buildResult(quiz, attempt, results), nil
}

func (s *quizService) GetAttemptsForQuiz(ctx context.Context, quizID string) ([]AttemptSummaryDTO, error) {
	attempts, err := s.repo.ListAttemptsByQuiz(ctx, quizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list attempts")
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	summaries := make([]AttemptSummaryDTO, 0, len(attempts))
	for _, a := range attempts {
		summaries = append(summaries, toAttemptSummaryDTO(a))
	}
	return summaries, nil
}

// GetAttemptByID rebuilds a result from stored answer rows without grading again.
func (s *quizService) GetAttemptByID(ctx context.Context, quizID, attemptID string) (*QuizResultDTO, error) {
	log := config.WithContext(ctx)

	attempt, err := s.repo.GetAttemptByID(ctx, quizID, attemptID)
	if err != nil {
		log.WithError(err).Error("Failed to load attempt")
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	if attempt == nil {
		return nil, ErrAttemptNotFound
	}

	quiz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz for attempt")
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if quiz == nil {
		return nil, ErrAttemptNotFound
	}

	byQuestion := make(map[uint]QuizAttemptAnswer, len(attempt.Answers))
	for _, a := range attempt.Answers {
		byQuestion[a.QuestionID] = a
	}

	results := make([]QuestionResultDTO, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		result := QuestionResultDTO{
			QuestionID:        FormatID(q.ID),
			SelectedOptionIDs: []string{},
			CorrectOptionIDs:  correctOptionIDs(q),
			Explanation:       explanationFor(q),
		}
		if a, ok := byQuestion[q.ID]; ok {
			result.IsCorrect = a.IsCorrect
			if a.SelectedOptionID != nil {
				result.SelectedOptionIDs = []string{FormatID(*a.SelectedOptionID)}
			}
		}
		results = append(results, result)
	}
	return buildResult(quiz, attempt, results), nil
}

func buildResult(quiz *Quiz, attempt *QuizAttempt, results []QuestionResultDTO) *QuizResultDTO {
	dto := toQuizDTO(quiz)
	return &QuizResultDTO{
		QuizID:          dto.ID,
		AttemptID:       FormatID(attempt.ID),
		Score:           attempt.CorrectCount,
		TotalQuestions:  attempt.TotalQuestions,
		MaxScore:        attempt.TotalQuestions,
		QuestionResults: results,
		Questions:       dto.Questions,
	}
}

func correctOptionIDs(q *QuizQuestion) []string {
	ids := make([]string, 0, 1)
	for _, o := range q.Options {
		if o.IsCorrect {
			ids = append(ids, FormatID(o.ID))
		}
	}
	return ids
}

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func fromGenerated(topic string, description *string, res *aiquiz.Result) *Quiz {
	quiz := &Quiz{
		Topic:       topic,
		Description: description,
		Questions:   make([]QuizQuestion, 0, len(res.Questions)),
	}
	quiz.Generation = datatypes.NewJSONType(GenerationMeta{
		Provider:         res.Provider,
		Model:            res.Model,
		Calls:            res.Calls,
		PromptTokens:     res.Usage.PromptTokens,
		CompletionTokens: res.Usage.CompletionTokens,
		TotalTokens:      res.Usage.TotalTokens,
	})

	for _, q := range res.Questions {
		explanation := q.Explanation
		question := QuizQuestion{
			QuestionText: q.QuestionText,
			Explanation:  &explanation,
			OrderIndex:   q.Order,
			Options:      make([]QuestionOption, 0, len(q.Options)),
		}
		for _, o := range q.Options {
			option := QuestionOption{
				OptionText: o.OptionText,
				IsCorrect:  o.IsCorrect,
				OrderIndex: o.Order,
			}
			if o.OptionLabel != "" {
				label := o.OptionLabel
				option.OptionLabel = &label
			}
			question.Options = append(question.Options, option)
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz
}
