package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

const DefaultGeminiModel = "gemini-2.0-flash"

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Name() string  { return config.ProviderGemini }
func (p *geminiProvider) Model() string { return p.model }

func (p *geminiProvider) Generate(ctx context.Context, system, user string) (*Completion, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    geminiSchema(),
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	if raw == "" {
		return nil, errors.New("empty response from Gemini")
	}

	completion := &Completion{Content: raw}
	if u := result.UsageMetadata; u != nil {
		completion.Usage = Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return completion, nil
}

func geminiSchema() *genai.Schema {
	questions := int64(QuestionsPerQuiz)
	options := int64(OptionsPerQuestion)

	option := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"text":      {Type: genai.TypeString, Description: descOptionText},
			"isCorrect": {Type: genai.TypeBoolean, Description: descIsCorrect},
		},
		Required:         []string{"text", "isCorrect"},
		PropertyOrdering: []string{"text", "isCorrect"},
	}

	question := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"questionText": {Type: genai.TypeString, Description: descQuestionText},
			"options": {
				Type:        genai.TypeArray,
				Description: descOptions,
				Items:       option,
				MinItems:    &options,
				MaxItems:    &options,
			},
			"explanation": {Type: genai.TypeString, Description: descExplanation},
		},
		Required:         []string{"questionText", "options", "explanation"},
		PropertyOrdering: []string{"questionText", "options", "explanation"},
	}

	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: schemaDescription,
		Properties: map[string]*genai.Schema{
			"questions": {
				Type:        genai.TypeArray,
				Description: descQuestions,
				Items:       question,
				MinItems:    &questions,
				MaxItems:    &questions,
			},
		},
		Required: []string{"questions"},
	}
}
