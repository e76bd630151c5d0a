package quiz

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Quiz struct {
	ID          uint                               `gorm:"primaryKey"`
	Topic       string                             `gorm:"type:varchar(255);not null"`
	Description *string                            `gorm:"type:text"`
	Generation  datatypes.JSONType[GenerationMeta] `gorm:"not null"`
	CreatedAt   time.Time                          `gorm:"not null;index"`
	UpdatedAt   time.Time                          `gorm:"not null"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Attempts  []QuizAttempt  `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

func (Quiz) TableName() string { return "quizzes" }

// GenerationMeta records how a quiz was produced. It never leaves the service.
type GenerationMeta struct {
	Provider         string `json:"provider"`
	Model            string `json:"model"`
	Calls            int    `json:"calls"`
	PromptTokens     int    `json:"promptTokens"`
	CompletionTokens int    `json:"completionTokens"`
	TotalTokens      int    `json:"totalTokens"`
}

type QuizQuestion struct {
	ID           uint      `gorm:"primaryKey"`
	QuizID       uint      `gorm:"not null;uniqueIndex:idx_quiz_question_order"`
	QuestionText string    `gorm:"type:text;not null"`
	Explanation  *string   `gorm:"type:text"`
	OrderIndex   int       `gorm:"not null;uniqueIndex:idx_quiz_question_order"`
	CreatedAt    time.Time `gorm:"not null"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (QuizQuestion) TableName() string { return "quiz_questions" }

type QuestionOption struct {
	ID          uint      `gorm:"primaryKey"`
	QuestionID  uint      `gorm:"not null;uniqueIndex:idx_question_option_order"`
	OptionText  string    `gorm:"type:text;not null"`
	OptionLabel *string   `gorm:"type:varchar(1)"`
	IsCorrect   bool      `gorm:"not null"`
	OrderIndex  int       `gorm:"not null;uniqueIndex:idx_question_option_order"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (QuestionOption) TableName() string { return "question_options" }

type QuizAttempt struct {
	ID             uint      `gorm:"primaryKey"`
	QuizID         uint      `gorm:"not null;index"`
	CompletedAt    time.Time `gorm:"not null;index"`
	CorrectCount   int       `gorm:"not null"`
	TotalQuestions int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`

	Answers []QuizAttemptAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }

type QuizAttemptAnswer struct {
	ID               uint  `gorm:"primaryKey"`
	AttemptID        uint  `gorm:"not null;uniqueIndex:idx_attempt_question"`
	QuestionID       uint  `gorm:"not null;uniqueIndex:idx_attempt_question"`
	SelectedOptionID *uint `gorm:"index"`
	IsCorrect        bool  `gorm:"not null"`

	Question       *QuizQuestion   `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	SelectedOption *QuestionOption `gorm:"foreignKey:SelectedOptionID;constraint:OnDelete:SET NULL"`
}

func (QuizAttemptAnswer) TableName() string { return "quiz_attempt_answers" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Quiz{},
		&QuizQuestion{},
		&QuestionOption{},
		&QuizAttempt{},
		&QuizAttemptAnswer{},
	)
}
