package quiz

// QuestionGrade is the outcome for one question of a submission.
type QuestionGrade struct {
	QuestionID       uint
	IsCorrect        bool
	Selected         []string
	CorrectOptionIDs []string
	// SelectedOptionID is what gets stored: the first selection, when it names
	// one of the question's own options.
	SelectedOptionID *uint
}

type Grade struct {
	Score     int
	Total     int
	Questions []QuestionGrade
}

// GradeSubmission scores answers against questions in their stored order. A
// question is correct only when the selected set equals the correct set.
// Answers for unknown question ids are ignored.
func GradeSubmission(questions []QuizQuestion, answers map[string][]string) Grade {
	grade := Grade{
		Total:     len(questions),
		Questions: make([]QuestionGrade, 0, len(questions)),
	}

	for _, q := range questions {
		correct := make(map[string]struct{})
		correctIDs := make([]string, 0, 1)
		known := make(map[string]uint, len(q.Options))
		for _, o := range q.Options {
			id := FormatID(o.ID)
			known[id] = o.ID
			if o.IsCorrect {
				correct[id] = struct{}{}
				correctIDs = append(correctIDs, id)
			}
		}

		selected := answers[FormatID(q.ID)]
		if selected == nil {
			selected = []string{}
		}

		isCorrect := sameSet(selected, correct)
		if isCorrect {
			grade.Score++
		}

		var selectedOptionID *uint
		if len(selected) > 0 {
			if key, ok := known[selected[0]]; ok {
				selectedOptionID = &key
			}
		}

		grade.Questions = append(grade.Questions, QuestionGrade{
			QuestionID:       q.ID,
			IsCorrect:        isCorrect,
			Selected:         selected,
			CorrectOptionIDs: correctIDs,
			SelectedOptionID: selectedOptionID,
		})
	}
	return grade
}

func sameSet(selected []string, correct map[string]struct{}) bool {
	seen := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		if _, ok := correct[id]; !ok {
			return false
		}
		seen[id] = struct{}{}
	}
	return len(seen) == len(correct)
}

// explanationFor surfaces an explanation only for questions that have a
// known-correct option.
func explanationFor(q *QuizQuestion) *string {
	for _, o := range q.Options {
		if o.IsCorrect {
			return q.Explanation
		}
	}
	return nil
}
