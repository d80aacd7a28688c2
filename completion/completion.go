/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Interface is the capability the formatter depends on: submit a prompt,
// receive the completion text.
type Interface interface {
	// Complete submits prompt to the service and returns the completion text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Credentials holds the per-provider API keys. Only the key for the
// provider selected by the model name needs to be set.
type Credentials struct {
	OpenAI    string
	Anthropic string
	Gemini    string
}

var (
	// ErrNoCredential is returned by New when the selected provider has no
	// API key configured.
	ErrNoCredential = errors.New("missing API key")

	// ErrTruncated is returned when the model stopped because the response
	// hit the output token limit.
	ErrTruncated = errors.New("completion truncated by token limit")

	// ErrEmpty is returned when the service responds without any text.
	ErrEmpty = errors.New("empty completion")
)

// New creates a completion client for model, selecting the provider from
// the model name prefix.
func New(ctx context.Context, model string, creds Credentials, opts ...Option) (Interface, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	switch lower := strings.ToLower(model); {
	case isOpenAIModel(lower):
		return newOpenAI(creds.OpenAI, model, s)
	case strings.HasPrefix(lower, "claude-"):
		return newClaude(creds.Anthropic, model, s)
	case strings.HasPrefix(lower, "gemini-"):
		return newGemini(ctx, creds.Gemini, model, s)
	default:
		return nil, fmt.Errorf("unsupported model: %s (expected gpt-*, o*, claude-*, or gemini-*)", model)
	}
}

// isOpenAIModel reports whether the lowercased model name belongs to
// OpenAI: the gpt-* chat family or the o-series reasoning family
// (o1, o3-mini, o4-mini, ...).
func isOpenAIModel(lower string) bool {
	if strings.HasPrefix(lower, "gpt-") {
		return true
	}
	return len(lower) > 1 && lower[0] == 'o' && lower[1] >= '0' && lower[1] <= '9'
}

// settings carries the provider-independent generation parameters.
type settings struct {
	maxTokens   int64
	temperature float64
}

func defaultSettings() settings {
	return settings{
		maxTokens:   4096,
		temperature: 0.1, // low temperature keeps iterations from thrashing
	}
}
