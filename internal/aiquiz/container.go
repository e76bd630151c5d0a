package aiquiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

type AIQuizContainer struct {
	Service Service
}

func NewAIQuizContainer(ctx context.Context, cfg config.Config) (*AIQuizContainer, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	service := NewService(provider,
		WithMaxRetries(cfg.AIMaxRetries),
		WithTimeout(cfg.AITimeout),
	)

	return &AIQuizContainer{
		Service: service,
	}, nil
}

func NewProvider(ctx context.Context, cfg config.Config) (Provider, error) {
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey(), cfg.OpenAIBaseURL, cfg.AIModel), nil
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg.APIKey(), cfg.AIModel)
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.AIProvider)
	}
}
