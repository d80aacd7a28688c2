/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package completion

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/oppianmatt/gptify/metrics"
	"google.golang.org/genai"
)

// geminiClient implements Interface using Google's Generative AI SDK.
type geminiClient struct {
	client      *genai.Client
	model       string
	maxTokens   int64
	temperature float64
	usage       *metrics.Usage
}

func newGemini(ctx context.Context, key, model string, s settings) (*geminiClient, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is required for model %q", ErrNoCredential, model)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Google AI client: %w", err)
	}
	return &geminiClient{
		client:      client,
		model:       model,
		maxTokens:   s.maxTokens,
		temperature: s.temperature,
		usage:       metrics.NewUsage(metrics.MeterName),
	}, nil
}

// Complete implements Interface.
func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := clog.FromContext(ctx)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     ptr(float32(c.temperature)),
		MaxOutputTokens: int32(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if resp.UsageMetadata != nil {
		c.usage.RecordTokens(ctx, c.model,
			int64(resp.UsageMetadata.PromptTokenCount),
			int64(resp.UsageMetadata.CandidatesTokenCount))
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: response carried no candidates", ErrEmpty)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		return "", fmt.Errorf("%w: finish reason %q", ErrTruncated, resp.Candidates[0].FinishReason)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmpty
	}

	log.With("model", c.model).
		With("completion_length", len(text)).
		Info("Received completion")
	return text, nil
}

func ptr[T any](v T) *T {
	return &v
}
