package quiz

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the only place where external string ids become storage keys.
// Lookups with malformed ids behave exactly like lookups for missing rows.
type Repository interface {
	CreateQuiz(ctx context.Context, q *Quiz) error
	GetByID(ctx context.Context, id string) (*Quiz, error)
	List(ctx context.Context) ([]Quiz, error)

	CreateAttempt(ctx context.Context, a *QuizAttempt) error
	ListAttemptsByQuiz(ctx context.Context, quizID string) ([]QuizAttempt, error)
	GetAttemptByID(ctx context.Context, quizID, attemptID string) (*QuizAttempt, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &quizRepository{db: db}
}

// CreateQuiz inserts the quiz, its questions and their options in that order,
// back-filling store ids into q.
func (r *quizRepository) CreateQuiz(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(q).Error; err != nil {
			return err
		}
		if len(q.Questions) == 0 {
			return nil
		}

		for i := range q.Questions {
			q.Questions[i].QuizID = q.ID
		}
		if err := tx.Omit(clause.Associations).Create(&q.Questions).Error; err != nil {
			return err
		}

		for i := range q.Questions {
			question := &q.Questions[i]
			if len(question.Options) == 0 {
				continue
			}
			for j := range question.Options {
				question.Options[j].QuestionID = question.ID
			}
			if err := tx.Create(&question.Options).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizRepository) GetByID(ctx context.Context, id string) (*Quiz, error) {
	key, ok := ParseID(id)
	if !ok {
		return nil, nil
	}

	var quiz Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&quiz, key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) List(ctx context.Context) ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) CreateAttempt(ctx context.Context, a *QuizAttempt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(a).Error; err != nil {
			return err
		}
		if len(a.Answers) == 0 {
			return nil
		}
		for i := range a.Answers {
			a.Answers[i].AttemptID = a.ID
		}
		return tx.Omit(clause.Associations).Create(&a.Answers).Error
	})
}

func (r *quizRepository) ListAttemptsByQuiz(ctx context.Context, quizID string) ([]QuizAttempt, error) {
	key, ok := ParseID(quizID)
	if !ok {
		return []QuizAttempt{}, nil
	}

	var attempts []QuizAttempt
	if err := r.db.WithContext(ctx).
		Where("quiz_id = ?", key).
		Order("completed_at DESC").
		Order("id DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *quizRepository) GetAttemptByID(ctx context.Context, quizID, attemptID string) (*QuizAttempt, error) {
	quizKey, ok := ParseID(quizID)
	if !ok {
		return nil, nil
	}
	attemptKey, ok := ParseID(attemptID)
	if !ok {
		return nil, nil
	}

	var attempt QuizAttempt
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Where("id = ? AND quiz_id = ?", attemptKey, quizKey).
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}
