/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/oppianmatt/gptify/metrics"
)

// chatStub serves canned chat completion responses and records what it saw.
type chatStub struct {
	status       int
	finishReason string
	content      string

	gotModel    string
	gotMessages int
}

func (s *chatStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		s.gotModel = req.Model
		s.gotMessages = len(req.Messages)

		if s.status != 0 && s.status != http.StatusOK {
			w.WriteHeader(s.status)
			_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": s.finishReason,
				"message": map[string]any{
					"role":    "assistant",
					"content": s.content,
				},
			}},
			"usage": map[string]any{
				"prompt_tokens":     12,
				"completion_tokens": 7,
				"total_tokens":      19,
			},
		})
	}
}

func newStubClient(t *testing.T, stub *chatStub) *openaiClient {
	t.Helper()
	srv := httptest.NewServer(stub.handler(t))
	t.Cleanup(srv.Close)

	s := defaultSettings()
	return &openaiClient{
		client: openai.NewClient(
			option.WithAPIKey("sk-test"),
			option.WithBaseURL(srv.URL),
			option.WithMaxRetries(0),
		),
		model:       "gpt-3.5-turbo",
		maxTokens:   s.maxTokens,
		temperature: s.temperature,
		usage:       metrics.NewUsage("test.gptify"),
	}
}

func TestOpenAICompleteSuccess(t *testing.T) {
	stub := &chatStub{finishReason: "stop", content: "print(\"hi\")\n"}
	c := newStubClient(t, stub)

	got, err := c.Complete(context.Background(), "reformat this")
	if err != nil {
		t.Fatalf("Complete() unexpected error: %v", err)
	}
	if got != "print(\"hi\")\n" {
		t.Errorf("Complete() = %q, want %q", got, "print(\"hi\")\n")
	}
	if stub.gotModel != "gpt-3.5-turbo" {
		t.Errorf("request model = %q, want gpt-3.5-turbo", stub.gotModel)
	}
	if stub.gotMessages != 1 {
		t.Errorf("request carried %d messages, want 1", stub.gotMessages)
	}
}

func TestOpenAICompleteTruncated(t *testing.T) {
	stub := &chatStub{finishReason: "length", content: "partial output"}
	c := newStubClient(t, stub)

	_, err := c.Complete(context.Background(), "reformat this")
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Complete() error = %v, want ErrTruncated", err)
	}
}

func TestOpenAICompleteEmpty(t *testing.T) {
	stub := &chatStub{finishReason: "stop", content: ""}
	c := newStubClient(t, stub)

	_, err := c.Complete(context.Background(), "reformat this")
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Complete() error = %v, want ErrEmpty", err)
	}
}

func TestOpenAICompleteServerError(t *testing.T) {
	stub := &chatStub{status: http.StatusInternalServerError}
	c := newStubClient(t, stub)

	_, err := c.Complete(context.Background(), "reformat this")
	if err == nil {
		t.Error("Complete() should surface a non-2xx response as an error")
	}
}
