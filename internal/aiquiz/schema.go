package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	QuestionsPerQuiz   = 5
	OptionsPerQuestion = 4
)

var OptionLabels = [OptionsPerQuestion]string{"A", "B", "C", "D"}

var ErrInvalidSchema = errors.New("generated quiz does not match schema")

const (
	schemaName        = "GeneratedQuiz"
	schemaDescription = "A quiz with 5 multiple-choice questions, each with 4 options (A-D) and one correct answer."

	descQuestions    = "Exactly 5 multiple-choice questions on the given topic"
	descQuestionText = "The multiple-choice question text"
	descOptions      = "Exactly 4 options; exactly one must have isCorrect: true"
	descExplanation  = "Brief explanation of why the correct answer is right; use empty string if the question is self-evident"
	descOptionText   = "The answer option text"
	descIsCorrect    = "Whether this option is the correct answer"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(oneCorrectOption, GeneratedQuestion{})
	return v
}

func oneCorrectOption(sl validator.StructLevel) {
	q := sl.Current().Interface().(GeneratedQuestion)
	if len(q.Options) != OptionsPerQuestion {
		return
	}
	correct := 0
	for _, o := range q.Options {
		if o.IsCorrect != nil && *o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		sl.ReportError(q.Options, "options", "Options", "onecorrect", "")
	}
}

// Validate is the gate between provider output and the rest of the system.
func Validate(g *GeneratedQuiz) error {
	if g == nil {
		return fmt.Errorf("%w: empty response", ErrInvalidSchema)
	}
	err := validate.Struct(g)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSchema, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "len":
		return fmt.Sprintf("%s: expected exactly %s entries, got %d", field, fe.Param(), lenOf(fe.Value()))
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "onecorrect":
		return fmt.Sprintf("%s: exactly one option must be marked correct", field)
	default:
		return fmt.Sprintf("%s: failed %q rule", field, fe.Tag())
	}
}

func lenOf(v interface{}) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len()
	}
	return 0
}

// DecodeGeneratedQuiz parses a provider's text output, tolerating a fenced code block.
func DecodeGeneratedQuiz(raw string) (*GeneratedQuiz, error) {
	clean := cleanJSONContent(raw)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidSchema)
	}

	var g GeneratedQuiz
	if err := json.Unmarshal([]byte(clean), &g); err != nil {
		return nil, fmt.Errorf("%w: response is not valid JSON: %v", ErrInvalidSchema, err)
	}
	return &g, nil
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
