package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz godoc
// @Summary      Generate a quiz
// @Description  Generates a 5-question multiple-choice quiz on a topic and stores it
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body GenerateQuizRequest true "Topic and optional context"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /quiz/generate [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateQuizRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz generation")
		writeError(w, r, err)
		return
	}
	if req.Topic == nil {
		writeError(w, r, newValidationError("topic is required"))
		return
	}

	quiz, err := h.service.GenerateQuiz(r.Context(), *req.Topic, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, QuizResponse{Quiz: quiz})
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  Returns a quiz with its questions and options in order
// @Tags         quizzes
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Success      200 {object} QuizResponse
// @Failure      404 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /quiz/{id} [get]
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.GetQuiz(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, QuizResponse{Quiz: quiz})
}

// ListQuizzes godoc
// @Summary      List quizzes
// @Description  Lists all quizzes, most recently created first
// @Tags         quizzes
// @Produce      json
// @Success      200 {object} QuizListResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /quizzes [get]
func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.ListQuizzes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, QuizListResponse{Quizzes: quizzes})
}

// SubmitQuiz godoc
// @Summary      Submit answers
// @Description  Grades a submission and records it as an attempt
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Param        request body SubmitQuizRequest true "Selected option ids keyed by question id"
// @Success      200 {object} QuizResultResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      404 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /quiz/{id}/submit [post]
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitQuizRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz submission")
		writeError(w, r, err)
		return
	}
	if req.Answers == nil {
		writeError(w, r, newValidationError("answers is required"))
		return
	}

	result, err := h.service.SubmitQuiz(r.Context(), chi.URLParam(r, "id"), req.Answers)
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, QuizResultResponse{Result: result})
}

// ListAttempts godoc
// @Summary      List attempts
// @Description  Lists attempts for a quiz, most recently completed first
// @Tags         attempts
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Success      200 {object} AttemptListResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /quiz/{id}/attempts [get]
func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.service.GetAttemptsForQuiz(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, AttemptListResponse{Attempts: attempts})
}

// GetAttempt godoc
// @Summary      Get an attempt
// @Description  Rebuilds a stored attempt as a quiz result
// @Tags         attempts
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Param        attemptId path string true "Attempt ID"
// @Success      200 {object} QuizResultResponse
// @Failure      404 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Router       /quiz/{id}/attempts/{attemptId} [get]
func (h *Handler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAttemptByID(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "attemptId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, QuizResultResponse{Result: result})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return newValidationError("%s has an invalid type: expected %s", typeErr.Field, describeType(typeErr))
		case errors.Is(err, io.EOF):
			return newValidationError("request body is required")
		default:
			return newValidationError("invalid request body: %v", err)
		}
	}
	return nil
}

func describeType(err *json.UnmarshalTypeError) string {
	switch err.Field {
	case "answers":
		return "an object mapping question ids to arrays of option ids"
	case "topic", "description":
		return "a string"
	}
	if strings.HasPrefix(err.Field, "answers.") {
		return "an array of option ids"
	}
	return fmt.Sprint(err.Type)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		config.Error(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, ErrQuizNotFound):
		config.Error(w, http.StatusNotFound, "Quiz not found")
	case errors.Is(err, ErrAttemptNotFound):
		config.Error(w, http.StatusNotFound, "Attempt not found")
	case errors.Is(err, aiquiz.ErrGeneration):
		config.WithContext(r.Context()).WithError(err).Error("Quiz generation failed")
		config.Error(w, http.StatusInternalServerError, err.Error())
	default:
		config.WithContext(r.Context()).WithError(err).Error("Request failed")
		config.Error(w, http.StatusInternalServerError, err.Error())
	}
}
