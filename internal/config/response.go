package config

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Error      string `json:"error" example:"Bad Request"`
	Message    string `json:"message" example:"topic is required"`
	StatusCode int    `json:"statusCode" example:"400"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{
		Error:      http.StatusText(status),
		Message:    message,
		StatusCode: status,
	})
}
