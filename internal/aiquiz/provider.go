package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

const DefaultOpenAIModel = openai.GPT4o

type Provider interface {
	Name() string
	Model() string
	// Generate asks for a value shaped like GeneratedQuiz and returns the raw text.
	Generate(ctx context.Context, system, user string) (*Completion, error)
}

type Completion struct {
	Content string
	Usage   Usage
}

// permanentError marks provider failures that another attempt cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func isPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

type openAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, baseURL, model string) Provider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &openAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *openAIProvider) Name() string  { return config.ProviderOpenAI }
func (p *openAIProvider) Model() string { return p.model }

func (p *openAIProvider) Generate(ctx context.Context, system, user string) (*Completion, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        schemaName,
				Description: schemaDescription,
				Schema:      openAISchema(),
				Strict:      true,
			},
		},
	})
	if err != nil {
		log.WithError(err).Error("OpenAI chat completion failed")
		return nil, classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("empty response from OpenAI")
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, fmt.Errorf("model refused to generate quiz: %s", choice.Message.Refusal)
	}

	log.Debugf("[AIQUIZ] Raw OpenAI response:\n%s", choice.Message.Content)

	return &Completion{
		Content: choice.Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func classifyOpenAIError(err error) error {
	wrapped := fmt.Errorf("openai request failed: %w", err)

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && !retryableStatus(apiErr.HTTPStatusCode) {
		return Permanent(wrapped)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && !retryableStatus(reqErr.HTTPStatusCode) {
		return Permanent(wrapped)
	}
	return wrapped
}

func retryableStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return true
	}
	return code == 0 || code >= 500
}

func openAISchema() *jsonschema.Definition {
	option := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"text":      {Type: jsonschema.String, Description: descOptionText},
			"isCorrect": {Type: jsonschema.Boolean, Description: descIsCorrect},
		},
		Required:             []string{"text", "isCorrect"},
		AdditionalProperties: false,
	}

	question := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"questionText": {Type: jsonschema.String, Description: descQuestionText},
			"options": {
				Type:        jsonschema.Array,
				Description: descOptions,
				Items:       &option,
			},
			"explanation": {Type: jsonschema.String, Description: descExplanation},
		},
		Required:             []string{"questionText", "options", "explanation"},
		AdditionalProperties: false,
	}

	return &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"questions": {
				Type:        jsonschema.Array,
				Description: descQuestions,
				Items:       &question,
			},
		},
		Required:             []string{"questions"},
		AdditionalProperties: false,
	}
}
