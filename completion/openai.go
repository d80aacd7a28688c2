/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package completion

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/oppianmatt/gptify/metrics"
)

// openaiClient implements Interface using OpenAI's chat completions API.
type openaiClient struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
	usage       *metrics.Usage
}

func newOpenAI(key, model string, s settings) (*openaiClient, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is required for model %q", ErrNoCredential, model)
	}
	return &openaiClient{
		// The SDK retries transient errors on its own; a failed iteration
		// must surface instead, so retries are off.
		client: openai.NewClient(
			option.WithAPIKey(key),
			option.WithMaxRetries(0),
		),
		model:       model,
		maxTokens:   s.maxTokens,
		temperature: s.temperature,
		usage:       metrics.NewUsage(metrics.MeterName),
	}, nil
}

// Complete implements Interface.
func (c *openaiClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := clog.FromContext(ctx)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	c.usage.RecordTokens(ctx, c.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response carried no choices", ErrEmpty)
	}
	choice := resp.Choices[0]
	if choice.FinishReason == "length" {
		return "", fmt.Errorf("%w: finish reason %q", ErrTruncated, choice.FinishReason)
	}
	if choice.Message.Content == "" {
		return "", ErrEmpty
	}

	log.With("model", c.model).
		With("completion_length", len(choice.Message.Content)).
		Info("Received completion")
	return choice.Message.Content, nil
}
