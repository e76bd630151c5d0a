package aiquiz

// GeneratedQuiz is the raw value a provider returns. Nothing downstream trusts it
// until Validate has accepted it.
type GeneratedQuiz struct {
	Questions []GeneratedQuestion `json:"questions" validate:"len=5,dive"`
}

type GeneratedQuestion struct {
	QuestionText string            `json:"questionText"`
	Options      []GeneratedOption `json:"options" validate:"len=4,dive"`
	Explanation  *string           `json:"explanation"`
}

type GeneratedOption struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect *bool  `json:"isCorrect" validate:"required"`
}

// Question is a validated question with its options labeled and ordered.
type Question struct {
	ID           string
	QuestionText string
	Explanation  string
	Order        int
	Options      []Option
}

type Option struct {
	ID          string
	OptionText  string
	OptionLabel string
	IsCorrect   bool
	Order       int
}

type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

func (u *Usage) add(o Usage) {
	u.PromptTokens += o.PromptTokens
	u.CompletionTokens += o.CompletionTokens
	u.TotalTokens += o.TotalTokens
}

type Result struct {
	Questions []Question
	Provider  string
	Model     string
	// Calls is how many provider requests it took to get an accepted response.
	Calls int
	Usage Usage
}
