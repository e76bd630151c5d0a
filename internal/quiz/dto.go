package quiz

import (
	util "github.com/saulo-duarte/quizgen-lambda/internal/utils"
)

type GenerateQuizRequest struct {
	Topic       *string `json:"topic" example:"Photosynthesis"`
	Description *string `json:"description,omitempty" example:"Focus on the light-dependent reactions"`
}

type SubmitQuizRequest struct {
	Answers map[string][]string `json:"answers" swaggertype:"object"`
}

type OptionDTO struct {
	ID          string  `json:"id" example:"12"`
	OptionText  string  `json:"optionText" example:"Chlorophyll"`
	OptionLabel *string `json:"optionLabel,omitempty" example:"A"`
	IsCorrect   bool    `json:"isCorrect"`
	Order       int     `json:"order" example:"1"`
}

type QuestionDTO struct {
	ID           string      `json:"id" example:"3"`
	QuestionText string      `json:"questionText"`
	Explanation  *string     `json:"explanation,omitempty"`
	Order        int         `json:"order" example:"1"`
	Options      []OptionDTO `json:"options"`
}

type QuizDTO struct {
	ID          string        `json:"id" example:"1"`
	Topic       string        `json:"topic" example:"Photosynthesis"`
	Description *string       `json:"description,omitempty"`
	Questions   []QuestionDTO `json:"questions"`
	CreatedAt   util.UTCTime  `json:"createdAt" swaggertype:"string" example:"2024-03-10T00:04:05.123Z"`
	UpdatedAt   util.UTCTime  `json:"updatedAt" swaggertype:"string" example:"2024-03-10T00:04:05.123Z"`
}

type QuizSummaryDTO struct {
	ID          string       `json:"id" example:"1"`
	Topic       string       `json:"topic" example:"Photosynthesis"`
	Description *string      `json:"description,omitempty"`
	CreatedAt   util.UTCTime `json:"createdAt" swaggertype:"string" example:"2024-03-10T00:04:05.123Z"`
}

type AttemptSummaryDTO struct {
	ID             string       `json:"id" example:"7"`
	CompletedAt    util.UTCTime `json:"completedAt" swaggertype:"string" example:"2024-03-10T00:09:41.007Z"`
	CorrectCount   int          `json:"correctCount" example:"4"`
	TotalQuestions int          `json:"totalQuestions" example:"5"`
}

type QuestionResultDTO struct {
	QuestionID        string   `json:"questionId"`
	IsCorrect         bool     `json:"isCorrect"`
	SelectedOptionIDs []string `json:"selectedOptionIds"`
	CorrectOptionIDs  []string `json:"correctOptionIds"`
	Explanation       *string  `json:"explanation,omitempty"`
}

type QuizResultDTO struct {
	QuizID          string              `json:"quizId"`
	AttemptID       string              `json:"attemptId"`
	Score           int                 `json:"score"`
	TotalQuestions  int                 `json:"totalQuestions"`
	MaxScore        int                 `json:"maxScore"`
	QuestionResults []QuestionResultDTO `json:"questionResults"`
	Questions       []QuestionDTO       `json:"questions"`
}

type QuizResponse struct {
	Quiz *QuizDTO `json:"quiz"`
}

type QuizListResponse struct {
	Quizzes []QuizSummaryDTO `json:"quizzes"`
}

type AttemptListResponse struct {
	Attempts []AttemptSummaryDTO `json:"attempts"`
}

type QuizResultResponse struct {
	Result *QuizResultDTO `json:"result"`
}

func toQuizDTO(q *Quiz) *QuizDTO {
	questions := make([]QuestionDTO, 0, len(q.Questions))
	for i := range q.Questions {
		questions = append(questions, toQuestionDTO(&q.Questions[i]))
	}
	return &QuizDTO{
		ID:          FormatID(q.ID),
		Topic:       q.Topic,
		Description: q.Description,
		Questions:   questions,
		CreatedAt:   util.NewUTCTime(q.CreatedAt),
		UpdatedAt:   util.NewUTCTime(q.UpdatedAt),
	}
}

func toQuestionDTO(q *QuizQuestion) QuestionDTO {
	options := make([]OptionDTO, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, OptionDTO{
			ID:          FormatID(o.ID),
			OptionText:  o.OptionText,
			OptionLabel: o.OptionLabel,
			IsCorrect:   o.IsCorrect,
			Order:       o.OrderIndex,
		})
	}
	return QuestionDTO{
		ID:           FormatID(q.ID),
		QuestionText: q.QuestionText,
		Explanation:  q.Explanation,
		Order:        q.OrderIndex,
		Options:      options,
	}
}

func toQuizSummaryDTO(q Quiz) QuizSummaryDTO {
	return QuizSummaryDTO{
		ID:          FormatID(q.ID),
		Topic:       q.Topic,
		Description: q.Description,
		CreatedAt:   util.NewUTCTime(q.CreatedAt),
	}
}

func toAttemptSummaryDTO(a QuizAttempt) AttemptSummaryDTO {
	return AttemptSummaryDTO{
		ID:             FormatID(a.ID),
		CompletedAt:    util.NewUTCTime(a.CompletedAt),
		CorrectCount:   a.CorrectCount,
		TotalQuestions: a.TotalQuestions,
	}
}
