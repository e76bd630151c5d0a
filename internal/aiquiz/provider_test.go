package aiquiz_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
)

func chatCompletionBody(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
		"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 34, "total_tokens": 46},
	}
}

func TestOpenAIProvider(t *testing.T) {
	t.Run("SendsSchemaAndReturnsContent", func(t *testing.T) {
		quizJSON := validQuizJSON(t)
		var captured map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &captured))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(chatCompletionBody(quizJSON))
		}))
		defer srv.Close()

		p := aiquiz.NewOpenAIProvider("test-key", srv.URL+"/v1", "")
		assert.Equal(t, "openai", p.Name())
		assert.Equal(t, aiquiz.DefaultOpenAIModel, p.Model())

		c, err := p.Generate(context.Background(), "system", "user")
		require.NoError(t, err)
		assert.Equal(t, quizJSON, c.Content)
		assert.Equal(t, aiquiz.Usage{PromptTokens: 12, CompletionTokens: 34, TotalTokens: 46}, c.Usage)

		assert.Equal(t, aiquiz.DefaultOpenAIModel, captured["model"])
		format, ok := captured["response_format"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "json_schema", format["type"])
		schema, ok := format["json_schema"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "GeneratedQuiz", schema["name"])
		assert.Equal(t, true, schema["strict"])
	})

	t.Run("ServiceRetriesServerErrors", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":{"message":"upstream exploded","type":"server_error"}}`)
		}))
		defer srv.Close()

		svc := newTestService(aiquiz.NewOpenAIProvider("k", srv.URL+"/v1", "gpt-4o-mini"), aiquiz.WithMaxRetries(2))
		_, err := svc.GenerateQuiz(context.Background(), "Tides", "")

		require.ErrorIs(t, err, aiquiz.ErrGeneration)
		assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	})

	t.Run("ServiceStopsOnAuthError", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
		}))
		defer srv.Close()

		svc := newTestService(aiquiz.NewOpenAIProvider("k", srv.URL+"/v1", ""), aiquiz.WithMaxRetries(2))
		_, err := svc.GenerateQuiz(context.Background(), "Tides", "")

		require.ErrorIs(t, err, aiquiz.ErrGeneration)
		assert.Contains(t, err.Error(), "Incorrect API key provided")
		assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	})
}
