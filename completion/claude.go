/*
Copyright 2026 The gptify Authors
SPDX-License-Identifier: Apache-2.0
*/

package completion

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
	"github.com/oppianmatt/gptify/metrics"
)

// claudeClient implements Interface using Anthropic's Messages API.
type claudeClient struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	usage       *metrics.Usage
}

func newClaude(key, model string, s settings) (*claudeClient, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is required for model %q", ErrNoCredential, model)
	}
	return &claudeClient{
		// The SDK retries transient errors on its own; a failed iteration
		// must surface instead, so retries are off.
		client: anthropic.NewClient(
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
func (c *claudeClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := clog.FromContext(ctx)

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}

	c.usage.RecordTokens(ctx, c.model, msg.Usage.InputTokens, msg.Usage.OutputTokens)

	if msg.StopReason == anthropic.StopReasonMaxTokens {
		return "", fmt.Errorf("%w: stop reason %q", ErrTruncated, msg.StopReason)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", ErrEmpty
	}

	log.With("model", c.model).
		With("completion_length", len(text)).
		Info("Received completion")
	return text, nil
}
