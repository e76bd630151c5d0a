package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

var ErrGeneration = errors.New("quiz generation failed")

const (
	defaultMaxRetries = 2
	defaultTimeout    = 90 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
)

type Service interface {
	GenerateQuiz(ctx context.Context, topic, extra string) (*Result, error)
}

type service struct {
	provider   Provider
	maxRetries int
	timeout    time.Duration
	retryDelay time.Duration
	newID      func() string
}

type ServiceOption func(*service)

func WithMaxRetries(n int) ServiceOption {
	return func(s *service) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithTimeout bounds each provider call, not the whole retry loop.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithRetryDelay(d time.Duration) ServiceOption {
	return func(s *service) { s.retryDelay = d }
}

func WithIDGenerator(fn func() string) ServiceOption {
	return func(s *service) { s.newID = fn }
}

func NewService(provider Provider, opts ...ServiceOption) Service {
	s := &service{
		provider:   provider,
		maxRetries: defaultMaxRetries,
		timeout:    defaultTimeout,
		retryDelay: defaultRetryDelay,
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) GenerateQuiz(ctx context.Context, topic, extra string) (*Result, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"provider": s.provider.Name(),
		"model":    s.provider.Model(),
	})

	user := BuildUserPrompt(topic, extra)

	var (
		usage   Usage
		lastErr error
	)
	for attempt := 1; attempt <= s.maxRetries+1; attempt++ {
		if attempt > 1 {
			if err := s.wait(ctx); err != nil {
				lastErr = errors.Join(lastErr, err)
				break
			}
		}

		generated, u, err := s.generateOnce(ctx, user)
		usage.add(u)
		if err == nil {
			log.WithFields(logrus.Fields{
				"attempt":      attempt,
				"total_tokens": usage.TotalTokens,
			}).Info("[AIQUIZ] Quiz generated")

			return &Result{
				Questions: toQuestions(generated, s.newID),
				Provider:  s.provider.Name(),
				Model:     s.provider.Model(),
				Calls:     attempt,
				Usage:     usage,
			}, nil
		}

		lastErr = err
		if ctx.Err() != nil || isPermanent(err) {
			break
		}
		log.WithError(err).WithField("attempt", attempt).Warn("[AIQUIZ] Generation attempt failed")
	}

	log.WithError(lastErr).Error("[AIQUIZ] Giving up on quiz generation")
	return nil, fmt.Errorf("%w: %w", ErrGeneration, lastErr)
}

func (s *service) generateOnce(ctx context.Context, user string) (*GeneratedQuiz, Usage, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completion, err := s.provider.Generate(callCtx, systemPrompt, user)
	if err != nil {
		return nil, Usage{}, err
	}

	generated, err := DecodeGeneratedQuiz(completion.Content)
	if err != nil {
		return nil, completion.Usage, err
	}
	if err := Validate(generated); err != nil {
		return nil, completion.Usage, err
	}
	return generated, completion.Usage, nil
}

func (s *service) wait(ctx context.Context) error {
	if s.retryDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.retryDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// toQuestions assigns ids, orders and labels by array position. Missing fields fall
// back to zero values instead of failing.
func toQuestions(g *GeneratedQuiz, newID func() string) []Question {
	questions := make([]Question, 0, len(g.Questions))
	for i, q := range g.Questions {
		options := make([]Option, 0, len(q.Options))
		for j, o := range q.Options {
			opt := Option{
				ID:         newID(),
				OptionText: o.Text,
				IsCorrect:  o.IsCorrect != nil && *o.IsCorrect,
				Order:      j + 1,
			}
			if j < len(OptionLabels) {
				opt.OptionLabel = OptionLabels[j]
			}
			options = append(options, opt)
		}

		explanation := ""
		if q.Explanation != nil {
			explanation = *q.Explanation
		}

		questions = append(questions, Question{
			ID:           newID(),
			QuestionText: q.QuestionText,
			Explanation:  explanation,
			Order:        i + 1,
			Options:      options,
		})
	}
	return questions
}
