package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-coach-api/internal/config"
)

func newTestAdapter(url string) *OpenAIAdapter {
	return NewOpenAIAdapter(&config.Config{
		LLM: config.LLM{
			APIKey:    "test-key",
			BaseURL:   url,
			Model:     "test-model",
			MaxTokens: 50,
		},
	})
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])
		assert.Len(t, req["messages"], 2)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  Bundle a case with every phone.  "}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 7, "total_tokens": 17}
		}`))
	}))
	defer server.Close()

	text, err := newTestAdapter(server.URL).Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "Bundle a case with every phone.", text)
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL).Complete(context.Background(), "", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","model":"test-model","choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL).Complete(context.Background(), "", "user")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestComplete_NotConfigured(t *testing.T) {
	adapter := NewOpenAIAdapter(&config.Config{})

	_, err := adapter.Complete(context.Background(), "", "user")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
